package domain

import (
	"encoding/json"
	"strings"
)

// CreateArticleInput carries the client-supplied fields of a new article.
type CreateArticleInput struct {
	Page       string     `json:"page" form:"page"`
	Category   string     `json:"category" form:"category"`
	Slug       string     `json:"slug" form:"slug"`
	Tag        string     `json:"tag" form:"tag"`
	Title      string     `json:"title" form:"title"`
	Excerpt    string     `json:"excerpt" form:"excerpt"`
	Date       string     `json:"date" form:"date"`
	Time       string     `json:"time" form:"time"`
	Paragraphs Paragraphs `json:"paragraphs" form:"paragraphs"`
	VideoURL   string     `json:"videoUrl" form:"videoUrl"`
}

// Normalize trims every text field and paragraph.
func (in *CreateArticleInput) Normalize() {
	in.Page = strings.TrimSpace(in.Page)
	in.Category = strings.TrimSpace(in.Category)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Tag = strings.TrimSpace(in.Tag)
	in.Title = strings.TrimSpace(in.Title)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.VideoURL = strings.TrimSpace(in.VideoURL)
	in.Paragraphs = in.Paragraphs.Trimmed()
}

// Paragraphs is an ordered list of text blocks. In JSON it accepts either a
// single string or an array of strings.
type Paragraphs []string

// Trimmed returns a copy with every block trimmed. Never nil.
func (p Paragraphs) Trimmed() Paragraphs {
	out := make(Paragraphs, 0, len(p))
	for _, s := range p {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func (p *Paragraphs) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Paragraphs{}
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = Paragraphs{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*p = many
	return nil
}
