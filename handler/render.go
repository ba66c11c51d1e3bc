package handler

import (
	"github.com/AnTengye/aiwriter/web/middleware"
	"github.com/AnTengye/aiwriter/web/view"
	"github.com/gin-gonic/gin"
)

// pages builds view.Page values for the current request
type pages struct {
	site view.Site
}

func (p pages) newPage(c *gin.Context, name string) *view.Page {
	page := view.NewPage(name, c.Request.URL.Path, middleware.GetLocale(c), p.site)
	page.Toasts = takeFlashes(c)
	return page
}

func (p pages) html(c *gin.Context, status int, page *view.Page) {
	c.HTML(status, page.Name, page)
}

// errorPage renders the shared error page with data's status code
func (p pages) errorPage(c *gin.Context, data view.ErrorData) {
	page := p.newPage(c, view.PageError)
	page.Title = page.Locale.T(data.MessageKey)
	page.Data = data
	p.html(c, data.Code, page)
}
