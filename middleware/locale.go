package middleware

import (
	"github.com/AnTengye/aiwriter/web/view"
	"github.com/gin-gonic/gin"
)

const localeKey = "locale"

// Locale negotiates the UI language from Accept-Language. A lang query
// parameter overrides the header.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Accept-Language")
		if lang := c.Query("lang"); lang != "" {
			header = lang
		}

		loc := view.Negotiate(header)
		c.Set(localeKey, loc)
		c.Header("Content-Language", loc.Lang)
		c.Header("Vary", "Accept-Language")

		c.Next()
	}
}

// GetLocale returns the negotiated locale, or the default when the
// middleware did not run.
func GetLocale(c *gin.Context) *view.Locale {
	if v, ok := c.Get(localeKey); ok {
		if loc, ok := v.(*view.Locale); ok {
			return loc
		}
	}
	return view.DefaultLocale()
}
