package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Article is a generation task as reported by the backend
type Article struct {
	ID          string          `json:"id"`
	Topic       string          `json:"topic"`
	Tier        Tier            `json:"tier"`
	Status      Status          `json:"status"`
	Progress    float64         `json:"progress"`
	CreatedAt   Timestamp       `json:"created_at"`
	CompletedAt *Timestamp      `json:"completed_at,omitempty"`
	Content     *ArticleContent `json:"content,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// ArticleContent is only present once an article is completed
type ArticleContent struct {
	Title    string   `json:"title"`
	Markdown string   `json:"markdown"`
	HTML     string   `json:"html,omitempty"`
	Images   []string `json:"images,omitempty"`
}

// DisplayTitle prefers the generated title over the submitted topic
func (a *Article) DisplayTitle() string {
	if a.Content != nil && strings.TrimSpace(a.Content.Title) != "" {
		return a.Content.Title
	}
	return a.Topic
}

// ProgressPercent clamps progress to [0, 100]
func (a *Article) ProgressPercent() float64 {
	switch {
	case a.Progress < 0:
		return 0
	case a.Progress > 100:
		return 100
	default:
		return a.Progress
	}
}

// HasContent reports whether a completed article carries a renderable body
func (a *Article) HasContent() bool {
	return a.Status == StatusCompleted && a.Content != nil
}

// Timestamp decodes the backend's ISO-8601 times, with or without zone
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func ParseTimestamp(raw string) (Timestamp, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Display formats the time the way the site shows dates
func (t Timestamp) Display() string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}
