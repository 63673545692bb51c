package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultPort           = 3300
	defaultSmithsonianURL = "https://api.si.edu/openaccess/api/v1.0"
	defaultMetURL         = "https://collectionapi.metmuseum.org/public/collection/v1"
)

type Config struct {
	Server      ServerConfig
	Search      SearchConfig
	Smithsonian SmithsonianConfig
	Met         MetConfig
	Database    DatabaseConfig
	Logger      LoggerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type SearchConfig struct {
	Timeout time.Duration
}

// SmithsonianConfig configures the Smithsonian Open Access client.
type SmithsonianConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
	Rows    int // 0 = provider default page size
}

// MetConfig configures the Metropolitan Museum collection client.
type MetConfig struct {
	URL            string
	Timeout        time.Duration
	MaxConcurrency int
}

// DatabaseConfig is optional; an empty URL disables the pool.
type DatabaseConfig struct {
	URL      string
	MaxConns int
}

func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("CONFIG_FILE", ".env")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_CORS_ORIGINS", "*")
	v.SetDefault("SEARCH_TIMEOUT", "60s")
	v.SetDefault("SMITHSONIAN_URL", defaultSmithsonianURL)
	v.SetDefault("SMITHSONIAN_APIKEY", "")
	v.SetDefault("SMITHSONIAN_TIMEOUT", "15s")
	v.SetDefault("SMITHSONIAN_ROWS", 0)
	v.SetDefault("MET_URL", defaultMetURL)
	v.SetDefault("MET_TIMEOUT", "15s")
	v.SetDefault("MET_MAX_CONCURRENCY", 10)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DATABASE_MAX_CONNS", 4)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()
	if err := v.BindEnv("SERVER_PORT", "SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}

	// Optional dotenv file; real environment variables still win.
	v.SetConfigFile(v.GetString("CONFIG_FILE"))
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("SERVER_HOST"),
			Port:        v.GetInt("SERVER_PORT"),
			CORSOrigins: splitList(v.GetString("SERVER_CORS_ORIGINS")),
		},
		Search: SearchConfig{
			Timeout: parseDuration(v.GetString("SEARCH_TIMEOUT"), 60*time.Second),
		},
		Smithsonian: SmithsonianConfig{
			URL:     strings.TrimRight(v.GetString("SMITHSONIAN_URL"), "/"),
			APIKey:  v.GetString("SMITHSONIAN_APIKEY"),
			Timeout: parseDuration(v.GetString("SMITHSONIAN_TIMEOUT"), 15*time.Second),
			Rows:    v.GetInt("SMITHSONIAN_ROWS"),
		},
		Met: MetConfig{
			URL:            strings.TrimRight(v.GetString("MET_URL"), "/"),
			Timeout:        parseDuration(v.GetString("MET_TIMEOUT"), 15*time.Second),
			MaxConcurrency: v.GetInt("MET_MAX_CONCURRENCY"),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			MaxConns: v.GetInt("DATABASE_MAX_CONNS"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if cfg.Met.MaxConcurrency <= 0 {
		cfg.Met.MaxConcurrency = 10
	}

	return cfg, nil
}

// serverPort prefers SERVER_PORT, then PORT from the environment or the
// dotenv file.
func serverPort(v *viper.Viper) int {
	if port := v.GetInt("SERVER_PORT"); port > 0 {
		return port
	}
	if port := v.GetInt("PORT"); port > 0 {
		return port
	}
	return defaultPort
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
