package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artwork-search-service/internal/adapters/primary/http/handlers"
	"artwork-search-service/internal/adapters/primary/http/middleware"
	"artwork-search-service/internal/adapters/secondary/metmuseum"
	"artwork-search-service/internal/adapters/secondary/postgres"
	"artwork-search-service/internal/adapters/secondary/smithsonian"
	"artwork-search-service/internal/config"
	"artwork-search-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Database pool (optional - based on config)
	var pool *pgxpool.Pool
	if cfg.Database.Enabled() {
		pool, err = postgres.NewPool(context.Background(), &cfg.Database)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer pool.Close()
		log.Info("database connection established")
	} else {
		log.Info("database disabled")
	}

	// Secondary Adapters (Output Ports - Collections)
	smithsonianClient := smithsonian.NewSmithsonianClient(&cfg.Smithsonian)
	metClient := metmuseum.NewMetClient(&cfg.Met)

	// Core Services (Application Layer)
	searchSvc := services.NewSearchService(cfg.Search.Timeout, smithsonianClient, metClient)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(searchSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	if err := h.RegisterPages(router); err != nil {
		log.Fatalf("register pages: %v", err)
	}

	api := router.Group("/api/v1")
	h.RegisterRoutes(api)

	var db handlers.Pinger
	if pool != nil {
		db = pool
	}
	router.GET("/healthz", handlers.Health(db))

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr: addr,
		Handler: cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
		})(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
