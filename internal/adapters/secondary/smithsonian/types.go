package smithsonian

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Open Access search response structures. Every nested block is optional.
type searchResponse struct {
	Status   int             `json:"status"`
	Response *searchEnvelope `json:"response"`
}

type searchEnvelope struct {
	Rows     []row `json:"rows"`
	RowCount int   `json:"rowCount"`
}

type row struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Content *content `json:"content"`
}

type content struct {
	DescriptiveNonRepeating *descriptive `json:"descriptiveNonRepeating"`
	Freetext                *freetext    `json:"freetext"`
}

type descriptive struct {
	DataSource  string       `json:"data_source"`
	OnlineMedia *onlineMedia `json:"online_media"`
}

type onlineMedia struct {
	MediaCount flexInt `json:"mediaCount"`
	Media      []media `json:"media"`
}

type media struct {
	Thumbnail string `json:"thumbnail"`
	Content   string `json:"content"`
}

type freetext struct {
	Name  []labeledText `json:"name"`
	Notes []labeledText `json:"notes"`
}

type labeledText struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// flexInt decodes a JSON number or a numeric string; anything else is 0.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		var fl float64
		if json.Unmarshal(data, &fl) == nil {
			n = int(fl)
		}
	}
	*f = flexInt(n)
	return nil
}

func (r row) artistName() string {
	if r.Content == nil || r.Content.Freetext == nil || len(r.Content.Freetext.Name) == 0 {
		return ""
	}
	return r.Content.Freetext.Name[0].Content
}

func (r row) dataSource() string {
	if r.Content == nil || r.Content.DescriptiveNonRepeating == nil {
		return ""
	}
	return r.Content.DescriptiveNonRepeating.DataSource
}

// thumbnail returns the first media thumbnail when the row reports media.
func (r row) thumbnail() string {
	if r.Content == nil || r.Content.DescriptiveNonRepeating == nil {
		return ""
	}
	om := r.Content.DescriptiveNonRepeating.OnlineMedia
	if om == nil || om.MediaCount <= 0 || len(om.Media) == 0 {
		return ""
	}
	return om.Media[0].Thumbnail
}

func (r row) firstNote() string {
	if r.Content == nil || r.Content.Freetext == nil || len(r.Content.Freetext.Notes) == 0 {
		return ""
	}
	return r.Content.Freetext.Notes[0].Content
}
