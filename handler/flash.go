package handler

import (
	"log/slog"
	"strings"

	"github.com/AnTengye/aiwriter/web/middleware"
	"github.com/AnTengye/aiwriter/web/view"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flashes are stored as "kind|message" strings so the cookie codec
// needs no registered types.
const flashSep = "|"

func session(c *gin.Context) sessions.Session {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return nil
	}
	return sessions.Default(c)
}

// addFlash queues a toast for the next rendered page
func addFlash(c *gin.Context, kind, message string) {
	s := session(c)
	if s == nil {
		return
	}
	s.AddFlash(kind + flashSep + message)
	if err := s.Save(); err != nil {
		slog.Warn("failed to save flash", "error", err, "request_id", middleware.GetRequestID(c))
	}
}

// takeFlashes drains queued toasts
func takeFlashes(c *gin.Context) []view.Toast {
	s := session(c)
	if s == nil {
		return nil
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(); err != nil {
		slog.Warn("failed to clear flashes", "error", err, "request_id", middleware.GetRequestID(c))
	}

	toasts := make([]view.Toast, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			continue
		}
		kind, message, found := strings.Cut(str, flashSep)
		if !found {
			kind, message = view.ToastSuccess, str
		}
		toasts = append(toasts, view.Toast{Kind: kind, Message: message})
	}
	return toasts
}
