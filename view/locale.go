package view

import (
	"fmt"
	"time"

	"github.com/AnTengye/aiwriter/web/model"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
)

// Locale resolves UI labels for one language. Missing keys fall back to
// Chinese, then to the key itself.
type Locale struct {
	Tag      language.Tag
	Lang     string
	OGLocale string

	messages  map[string]string
	relLabels [2]string
	relMags   []humanize.RelTimeMagnitude
}

var (
	supported = []language.Tag{language.SimplifiedChinese, language.English}
	matcher   = language.NewMatcher(supported)

	zhLocale = &Locale{
		Tag:       language.SimplifiedChinese,
		Lang:      "zh-CN",
		OGLocale:  "zh_CN",
		messages:  zhMessages,
		relLabels: [2]string{"前", "后"},
		relMags:   zhMagnitudes,
	}
	enLocale = &Locale{
		Tag:      language.English,
		Lang:     "en",
		OGLocale: "en_US",
		messages: enMessages,
	}
)

var zhMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "刚刚", DivBy: time.Second},
	{D: time.Minute, Format: "%d 秒%s", DivBy: time.Second},
	{D: time.Hour, Format: "%d 分钟%s", DivBy: time.Minute},
	{D: humanize.Day, Format: "%d 小时%s", DivBy: time.Hour},
	{D: humanize.Month, Format: "%d 天%s", DivBy: humanize.Day},
	{D: humanize.Year, Format: "%d 个月%s", DivBy: humanize.Month},
	{D: humanize.LongTime, Format: "%d 年%s", DivBy: humanize.Year},
}

// DefaultLocale is used when the browser expresses no usable preference
func DefaultLocale() *Locale { return zhLocale }

// Negotiate picks the best supported locale for an Accept-Language header
func Negotiate(acceptLanguage string) *Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return zhLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return zhLocale
	}
	if supported[index] == language.English {
		return enLocale
	}
	return zhLocale
}

// T looks up key and formats it with args when given
func (l *Locale) T(key string, args ...any) string {
	msg, ok := l.messages[key]
	if !ok {
		msg, ok = zhMessages[key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func (l *Locale) StatusLabel(s model.Status) string {
	if !s.Known() {
		return l.T("status.unknown")
	}
	return l.T("status." + string(s))
}

func (l *Locale) StepLabel(s model.Status) string {
	return l.T("step." + string(s))
}

func (l *Locale) FormatLabel(f model.Format) string {
	return l.T("format." + string(f))
}

// Ago renders t relative to now, e.g. "3 分钟前"
func (l *Locale) Ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if l.relMags == nil {
		return humanize.Time(t)
	}
	return humanize.CustomRelTime(t, time.Now(), l.relLabels[0], l.relLabels[1], l.relMags)
}
