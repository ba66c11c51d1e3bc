package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tier is the target word-count band chosen at submission time
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"

	DefaultTier = TierB
)

// Tiers lists the selectable tiers in display order
var Tiers = []Tier{TierA, TierB, TierC, TierD}

var tierWords = map[Tier]string{
	TierA: "2000-3000",
	TierB: "3000-5000",
	TierC: "5000-8000",
	TierD: "8000-12000",
}

func (t Tier) Valid() bool {
	_, ok := tierWords[t]
	return ok
}

// WordRange returns the word band, e.g. "3000-5000"
func (t Tier) WordRange() string { return tierWords[t] }

func ParseTier(raw string) (Tier, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultTier, nil
	}
	t := Tier(raw)
	if !t.Valid() {
		return "", fmt.Errorf("invalid tier %q", raw)
	}
	return t, nil
}

// Format is an export format offered by the backend
type Format string

const (
	FormatMarkdown    Format = "markdown"
	FormatPDF         Format = "pdf"
	FormatHTML        Format = "html"
	FormatXiaohongshu Format = "xiaohongshu"
)

// Formats lists the selectable formats in display order
var Formats = []Format{FormatMarkdown, FormatPDF, FormatHTML, FormatXiaohongshu}

// DefaultFormats is the initial selection of the generate form
var DefaultFormats = []Format{FormatMarkdown, FormatPDF}

func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// Extension is the file suffix used when the backend names no file
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatPDF:
		return ".pdf"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ContentType is the MIME type served for f when the backend omits one
func (f Format) ContentType() string {
	switch f {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	if !f.Valid() {
		return "", fmt.Errorf("invalid format %q", raw)
	}
	return f, nil
}

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	Topic   string   `json:"topic"`
	Tier    Tier     `json:"tier"`
	Formats []Format `json:"formats"`
}

// GenerateResponse is the reply of POST /api/generate
type GenerateResponse struct {
	ArticleID string `json:"article_id"`
	Message   string `json:"message,omitempty"`
}

// ArticleList is the reply of GET /api/articles
type ArticleList struct {
	Articles []Article `json:"articles"`
	Page     int       `json:"page,omitempty"`
	Limit    int       `json:"limit,omitempty"`
	Total    int       `json:"total,omitempty"`
}

// UnmarshalJSON keeps a missing or null articles field as an empty list
func (l *ArticleList) UnmarshalJSON(data []byte) error {
	type plain ArticleList
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Articles == nil {
		decoded.Articles = []Article{}
	}
	*l = ArticleList(decoded)
	return nil
}
