package handler

import (
	"errors"
	"html"
	"html/template"
	"mime"
	"net/http"

	"github.com/AnTengye/aiwriter/web/config"
	"github.com/AnTengye/aiwriter/web/middleware"
	"github.com/AnTengye/aiwriter/web/model"
	"github.com/AnTengye/aiwriter/web/pkg/logger"
	"github.com/AnTengye/aiwriter/web/service"
	"github.com/AnTengye/aiwriter/web/view"
	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	pages
	backend  Backend
	registry *service.WatchRegistry
	markdown *service.MarkdownRenderer
	poll     config.PollConfig
}

func NewArticleHandler(backend Backend, registry *service.WatchRegistry, site view.Site, poll config.PollConfig) *ArticleHandler {
	return &ArticleHandler{
		pages:    pages{site: site},
		backend:  backend,
		registry: registry,
		markdown: service.NewMarkdownRenderer(),
		poll:     poll,
	}
}

// Detail renders the article once. Unfinished articles include the
// progress panel, which subscribes to Events.
func (h *ArticleHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	ctx := logger.WithArticleID(c.Request.Context(), id)
	page := h.newPage(c, view.PageArticle)
	loc := page.Locale

	article, err := h.backend.GetArticle(ctx, id)
	if err != nil {
		logger.Warn(ctx, "fetch article failed", "error", err)
		page.Data = view.NewArticleData(nil, loc)
		page.Title = loc.T("article.not_found")
		page.AddToast(view.ToastError, loc.T("article.fetch_failed"))
		status := http.StatusBadGateway
		if errors.Is(err, service.ErrNotFound) {
			status = http.StatusNotFound
		}
		h.html(c, status, page)
		return
	}

	data := view.NewArticleData(article, loc)
	if data.State == view.ArticleCompleted {
		body, err := h.markdown.Render(article.Content.Markdown)
		if err != nil {
			logger.Error(ctx, "render markdown failed", "error", err)
			body = template.HTML("<pre>" + html.EscapeString(article.Content.Markdown) + "</pre>")
		}
		data.Body = body
	}
	page.Title = article.DisplayTitle()
	page.Data = data
	h.html(c, http.StatusOK, page)
}

// Events streams status snapshots over SSE until the article reaches a
// terminal status or the client goes away.
func (h *ArticleHandler) Events(c *gin.Context) {
	id := c.Param("id")
	loc := middleware.GetLocale(c)
	ctx := logger.WithArticleID(c.Request.Context(), id)

	ctx, release, err := h.registry.Register(ctx, id)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	defer release()

	c.Header("X-Accel-Buffering", "no")

	poller := service.NewPoller(h.backend.GetArticle, &h.poll)
	final, err := poller.Run(ctx, id, func(a *model.Article) {
		c.SSEvent("snapshot", view.NewSnapshot(a, loc))
		c.Writer.Flush()
	})
	if err != nil {
		// Request still open means the registry cut us off (evicted or
		// shutting down). Tell the client so it stops reconnecting.
		if c.Request.Context().Err() == nil {
			logger.Info(ctx, "status stream evicted")
			c.SSEvent("evicted", gin.H{"id": id})
			c.Writer.Flush()
			return
		}
		logger.Debug(ctx, "status stream closed", "reason", err)
		return
	}

	c.SSEvent("done", view.NewSnapshot(final, loc))
	c.Writer.Flush()
}

// Status returns one JSON snapshot for clients without EventSource
func (h *ArticleHandler) Status(c *gin.Context) {
	id := c.Param("id")
	ctx := logger.WithArticleID(c.Request.Context(), id)
	loc := middleware.GetLocale(c)

	article, err := h.backend.GetStatus(ctx, id)
	if err != nil {
		logger.Warn(ctx, "fetch status failed", "error", err)
		c.JSON(errorStatus(err), gin.H{"error": loc.T("article.fetch_failed")})
		return
	}

	c.JSON(http.StatusOK, view.NewSnapshot(article, loc))
}

// Download proxies an export from the backend as an attachment
func (h *ArticleHandler) Download(c *gin.Context) {
	id := c.Param("id")
	ctx := logger.WithArticleID(c.Request.Context(), id)
	loc := middleware.GetLocale(c)

	format, err := model.ParseFormat(c.Param("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": loc.T("generate.invalid_format")})
		return
	}

	dl, err := h.backend.Download(ctx, id, format)
	if err != nil {
		logger.Warn(ctx, "download failed", "error", err, "format", format)
		message := service.BackendMessage(err)
		if message == "" {
			message = loc.T("article.download_failed")
		}
		c.JSON(errorStatus(err), gin.H{"error": message})
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": dl.Filename}))
	c.Data(http.StatusOK, dl.ContentType, dl.Body)
}

// errorStatus maps a backend error to the status we answer with
func errorStatus(err error) int {
	if errors.Is(err, service.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
