package handler

import (
	"net/http"
	"time"

	"github.com/AnTengye/aiwriter/web/service"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	registry *service.WatchRegistry
}

func NewHealthHandler(registry *service.WatchRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

type watchedArticle struct {
	ArticleID string    `json:"article_id"`
	Streams   int       `json:"streams"`
	Since     time.Time `json:"since"`
}

// Health reports liveness and the status streams currently open
func (h *HealthHandler) Health(c *gin.Context) {
	ids := h.registry.Articles()
	watched := make([]watchedArticle, 0, len(ids))
	for _, id := range ids {
		watches := h.registry.ByArticle(id)
		if len(watches) == 0 {
			continue
		}
		entry := watchedArticle{ArticleID: id, Streams: len(watches), Since: watches[0].StartedAt}
		for _, w := range watches[1:] {
			if w.StartedAt.Before(entry.Since) {
				entry.Since = w.StartedAt
			}
		}
		watched = append(watched, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"timestamp":        time.Now().Format(time.RFC3339),
		"active_watches":   h.registry.Count(),
		"watched_articles": watched,
	})
}
