package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/AnTengye/aiwriter/web/middleware"
	"github.com/AnTengye/aiwriter/web/model"
	"github.com/AnTengye/aiwriter/web/pkg/logger"
	"github.com/AnTengye/aiwriter/web/service"
	"github.com/AnTengye/aiwriter/web/view"
	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pages
	backend Backend
}

func NewPageHandler(backend Backend, site view.Site) *PageHandler {
	return &PageHandler{pages: pages{site: site}, backend: backend}
}

// Home renders the landing page
func (h *PageHandler) Home(c *gin.Context) {
	page := h.newPage(c, view.PageHome)
	page.Data = view.NewHomeData()
	h.html(c, http.StatusOK, page)
}

// GenerateForm renders an empty generate form with the default selection
func (h *PageHandler) GenerateForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, view.NewGenerateForm())
}

// Generate validates the submitted form, creates the article and redirects
// to its status page. Invalid input never reaches the backend.
func (h *PageHandler) Generate(c *gin.Context) {
	loc := middleware.GetLocale(c)
	form, req, problem := parseGenerateForm(c)
	if problem != "" {
		form.Error = loc.T(problem)
		h.renderForm(c, http.StatusUnprocessableEntity, form)
		return
	}

	ctx := c.Request.Context()
	resp, err := h.backend.Generate(ctx, req)
	if err != nil {
		logger.Error(ctx, "generate failed", "error", err, "topic", req.Topic)
		form.Error = service.BackendMessage(err)
		if form.Error == "" {
			form.Error = loc.T("generate.failed")
		}
		h.renderForm(c, http.StatusBadGateway, form)
		return
	}

	logger.Info(logger.WithArticleID(ctx, resp.ArticleID), "article requested",
		"tier", req.Tier,
		"formats", req.Formats,
	)
	addFlash(c, view.ToastSuccess, loc.T("generate.created"))
	c.Redirect(http.StatusSeeOther, "/article/"+url.PathEscape(resp.ArticleID))
}

// RateLimited re-renders the submitted form when POST /generate is throttled
func (h *PageHandler) RateLimited(c *gin.Context) {
	loc := middleware.GetLocale(c)
	form, _, _ := parseGenerateForm(c)
	form.Error = loc.T("generate.rate_limited")
	h.renderForm(c, http.StatusTooManyRequests, form)
}

func (h *PageHandler) renderForm(c *gin.Context, status int, form view.GenerateForm) {
	page := h.newPage(c, view.PageGenerate)
	page.Title = page.Locale.T("nav.generate")
	page.Data = form
	h.html(c, status, page)
}

// parseGenerateForm reads the posted fields. The returned form echoes the
// user's input; problem is a message key when the input is invalid.
func parseGenerateForm(c *gin.Context) (view.GenerateForm, model.GenerateRequest, string) {
	form := view.GenerateForm{
		Topic:    c.PostForm("topic"),
		Tier:     model.DefaultTier,
		Selected: make(map[model.Format]bool),
	}

	var problem string
	tier, err := model.ParseTier(c.PostForm("tier"))
	if err != nil {
		problem = "generate.invalid_tier"
	} else {
		form.Tier = tier
	}

	var formats []model.Format
	for _, raw := range c.PostFormArray("formats") {
		f, err := model.ParseFormat(raw)
		if err != nil {
			if problem == "" {
				problem = "generate.invalid_format"
			}
			continue
		}
		if !form.Selected[f] {
			form.Selected[f] = true
			formats = append(formats, f)
		}
	}

	topic := strings.TrimSpace(form.Topic)
	switch {
	case topic == "":
		problem = "generate.topic_required"
	case len(formats) == 0 && problem == "":
		problem = "generate.format_required"
	}

	return form, model.GenerateRequest{Topic: topic, Tier: tier, Formats: formats}, problem
}

// Gallery lists every article; the filter only decides which cards start visible
func (h *PageHandler) Gallery(c *gin.Context) {
	page := h.newPage(c, view.PageGallery)
	page.Title = page.Locale.T("nav.gallery")
	filter := model.ParseFilter(c.Query("filter"))

	ctx := c.Request.Context()
	list, err := h.backend.ListArticles(ctx, service.ListOptions{})
	if err != nil {
		logger.Error(ctx, "list articles failed", "error", err)
		data := view.NewGalleryData([]model.Article{}, filter)
		data.Failed = true
		page.Data = data
		page.AddToast(view.ToastError, page.Locale.T("gallery.load_failed"))
		h.html(c, http.StatusBadGateway, page)
		return
	}

	page.Data = view.NewGalleryData(list.Articles, filter)
	h.html(c, http.StatusOK, page)
}

// NotFound renders the error page for unmatched routes
func (h *PageHandler) NotFound(c *gin.Context) {
	h.errorPage(c, view.NotFoundData())
}

// InternalError is the browser-facing page shown after a recovered panic
func (h *PageHandler) InternalError(c *gin.Context) {
	h.errorPage(c, view.InternalErrorData())
}
