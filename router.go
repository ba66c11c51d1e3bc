package main

import (
	"fmt"
	"time"

	"github.com/AnTengye/aiwriter/web/config"
	"github.com/AnTengye/aiwriter/web/handler"
	"github.com/AnTengye/aiwriter/web/middleware"
	"github.com/AnTengye/aiwriter/web/service"
	"github.com/AnTengye/aiwriter/web/view"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func newRouter(cfg *config.Config, backend handler.Backend, registry *service.WatchRegistry) (*gin.Engine, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	site := view.Site{Name: cfg.Site.Name, BaseURL: cfg.Site.BaseURL}
	pageHandler := handler.NewPageHandler(backend, site)
	articleHandler := handler.NewArticleHandler(backend, registry, site, cfg.Poll)
	healthHandler := handler.NewHealthHandler(registry)

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{Path: "/", MaxAge: 3600, HttpOnly: true})

	router := gin.New()
	router.HTMLRender = renderer

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(pageHandler.InternalError))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Cache())
	router.Use(sessions.Sessions(cfg.Session.Name, store))
	router.Use(middleware.Locale())

	router.StaticFS("/static", view.Static())
	router.GET("/health", healthHandler.Health)

	router.GET("/", pageHandler.Home)
	router.GET("/generate", pageHandler.GenerateForm)
	router.POST("/generate",
		middleware.RateLimit(cfg.Server.GenerateRateLimit, time.Minute, pageHandler.RateLimited),
		pageHandler.Generate,
	)
	router.GET("/gallery", pageHandler.Gallery)
	router.GET("/article/:id", articleHandler.Detail)
	router.GET("/article/:id/events", articleHandler.Events)

	api := router.Group("/api", middleware.CORS())
	{
		api.GET("/status/:id", articleHandler.Status)
		api.GET("/articles/:id/download/:format", articleHandler.Download)
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}

	router.NoRoute(pageHandler.NotFound)

	return router, nil
}
