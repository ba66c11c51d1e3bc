package handler

import (
	"context"

	"github.com/AnTengye/aiwriter/web/model"
	"github.com/AnTengye/aiwriter/web/service"
)

// Backend is the part of service.BackendClient the handlers call
type Backend interface {
	Generate(ctx context.Context, req model.GenerateRequest) (*model.GenerateResponse, error)
	GetArticle(ctx context.Context, id string) (*model.Article, error)
	GetStatus(ctx context.Context, id string) (*model.Article, error)
	ListArticles(ctx context.Context, opts service.ListOptions) (*model.ArticleList, error)
	Download(ctx context.Context, id string, format model.Format) (*service.Download, error)
}

var _ Backend = (*service.BackendClient)(nil)
