package view

import (
	"strings"
	"testing"
	"time"

	"github.com/AnTengye/aiwriter/web/model"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		lang   string
	}{
		{"", "zh-CN"},
		{"zh-CN,zh;q=0.9", "zh-CN"},
		{"zh-TW", "zh-CN"},
		{"en-US,en;q=0.9", "en"},
		{"en-GB", "en"},
		{"fr-FR", "zh-CN"},
		{"de;q=0.9,en;q=0.8", "en"},
		{"not a header;;", "zh-CN"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := Negotiate(tt.header).Lang; got != tt.lang {
				t.Errorf("Negotiate(%q) = %s, want %s", tt.header, got, tt.lang)
			}
		})
	}
}

func TestLocaleT(t *testing.T) {
	zh := DefaultLocale()
	en := Negotiate("en")

	if got := zh.T("nav.gallery"); got != "作品画廊" {
		t.Errorf("Expected '作品画廊', got '%s'", got)
	}
	if got := en.T("nav.gallery"); got != "Gallery" {
		t.Errorf("Expected 'Gallery', got '%s'", got)
	}
	// Missing English keys fall back to Chinese
	if got := en.T("brand"); got != "AI WRITER" {
		t.Errorf("Expected fallback 'AI WRITER', got '%s'", got)
	}
	if got := zh.T("no.such.key"); got != "no.such.key" {
		t.Errorf("Expected key echoed, got '%s'", got)
	}
	if got := zh.T("gallery.tier", model.TierC); got != "C 档" {
		t.Errorf("Expected 'C 档', got '%s'", got)
	}
}

func TestStatusLabels(t *testing.T) {
	zh := DefaultLocale()

	expected := map[model.Status]string{
		model.StatusPending:          "等待开始",
		model.StatusResearching:      "正在调研...",
		model.StatusWriting:          "AI 生成内容中...",
		model.StatusGeneratingImages: "生成配图中...",
		model.StatusIntegrating:      "整合内容...",
		model.StatusCompleted:        "已完成",
		model.StatusFailed:           "生成失败",
		model.StatusUnknown:          "状态未知",
		model.Status("queued"):       "状态未知",
	}
	for status, want := range expected {
		if got := zh.StatusLabel(status); got != want {
			t.Errorf("StatusLabel(%s) = %s, want %s", status, got, want)
		}
	}

	steps := []string{"完成多源调研", "完成 AI 内容生成", "生成 KAFKA 风格配图", "整合和导出"}
	for i, status := range model.ProgressSteps {
		if got := zh.StepLabel(status); got != steps[i] {
			t.Errorf("StepLabel(%s) = %s, want %s", status, got, steps[i])
		}
	}

	if got := zh.FormatLabel(model.FormatXiaohongshu); got != "小红书" {
		t.Errorf("Expected '小红书', got '%s'", got)
	}
}

func TestCatalogsCoverStatuses(t *testing.T) {
	for _, status := range []model.Status{
		model.StatusPending, model.StatusResearching, model.StatusWriting,
		model.StatusGeneratingImages, model.StatusIntegrating,
		model.StatusCompleted, model.StatusFailed, model.StatusUnknown,
	} {
		key := "status." + string(status)
		if _, ok := zhMessages[key]; !ok {
			t.Errorf("Missing zh message %s", key)
		}
		if _, ok := enMessages[key]; !ok {
			t.Errorf("Missing en message %s", key)
		}
	}
}

func TestLocaleAgo(t *testing.T) {
	zh := DefaultLocale()
	en := Negotiate("en")

	if zh.Ago(time.Time{}) != "" {
		t.Error("Expected empty string for zero time")
	}

	past := time.Now().Add(-5 * time.Minute)
	if got := zh.Ago(past); got != "5 分钟前" {
		t.Errorf("Expected '5 分钟前', got '%s'", got)
	}
	if got := en.Ago(past); !strings.Contains(got, "minutes ago") {
		t.Errorf("Expected English relative time, got '%s'", got)
	}
	if got := zh.Ago(time.Now().Add(-3 * time.Hour)); got != "3 小时前" {
		t.Errorf("Expected '3 小时前', got '%s'", got)
	}
}
