package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AnTengye/aiwriter/web/config"
	"github.com/AnTengye/aiwriter/web/middleware"
	"github.com/AnTengye/aiwriter/web/model"
	"github.com/AnTengye/aiwriter/web/service"
	"github.com/AnTengye/aiwriter/web/view"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testSite = view.Site{Name: "AI Writer", BaseURL: "http://localhost:3000"}

// fakeBackend records calls and replays canned replies
type fakeBackend struct {
	mu sync.Mutex

	generateResp  *model.GenerateResponse
	generateErr   error
	generateCalls []model.GenerateRequest

	// articles is replayed in order; the last entry repeats
	articles   []*model.Article
	articleErr error
	getCalls   int

	status    *model.Article
	statusErr error

	list    *model.ArticleList
	listErr error

	download    *service.Download
	downloadErr error
	formats     []model.Format
}

func (f *fakeBackend) Generate(_ context.Context, req model.GenerateRequest) (*model.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generateCalls = append(f.generateCalls, req)
	return f.generateResp, f.generateErr
}

func (f *fakeBackend) GetArticle(_ context.Context, _ string) (*model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.articleErr != nil {
		return nil, f.articleErr
	}
	i := f.getCalls - 1
	if i >= len(f.articles) {
		i = len(f.articles) - 1
	}
	return f.articles[i], nil
}

func (f *fakeBackend) GetStatus(_ context.Context, _ string) (*model.Article, error) {
	return f.status, f.statusErr
}

func (f *fakeBackend) ListArticles(_ context.Context, _ service.ListOptions) (*model.ArticleList, error) {
	return f.list, f.listErr
}

func (f *fakeBackend) Download(_ context.Context, _ string, format model.Format) (*service.Download, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.formats = append(f.formats, format)
	return f.download, f.downloadErr
}

func (f *fakeBackend) calls() (generate, get int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.generateCalls), f.getCalls
}

type testServer struct {
	router   *gin.Engine
	registry *service.WatchRegistry
}

func newTestServer(t *testing.T, backend *fakeBackend, opts ...func(*config.PollConfig)) *testServer {
	t.Helper()

	renderer, err := view.New()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}

	poll := config.PollConfig{
		Interval:   config.Duration(time.Millisecond),
		MaxBackoff: config.Duration(time.Millisecond),
	}
	for _, opt := range opts {
		opt(&poll)
	}
	registry := service.NewWatchRegistry(&poll)
	t.Cleanup(registry.StopAll)

	pages := NewPageHandler(backend, testSite)
	articles := NewArticleHandler(backend, registry, testSite, poll)
	health := NewHealthHandler(registry)

	router := gin.New()
	router.HTMLRender = renderer
	router.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	router.Use(middleware.Locale())

	router.GET("/", pages.Home)
	router.GET("/generate", pages.GenerateForm)
	router.POST("/generate", middleware.RateLimit(3, time.Minute, pages.RateLimited), pages.Generate)
	router.GET("/gallery", pages.Gallery)
	router.GET("/article/:id", articles.Detail)
	router.GET("/article/:id/events", articles.Events)
	router.GET("/api/status/:id", articles.Status)
	router.GET("/api/articles/:id/download/:format", articles.Download)
	router.GET("/health", health.Health)
	router.NoRoute(pages.NotFound)

	return &testServer{router: router, registry: registry}
}

func (s *testServer) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("Expected response to contain %q", want)
		}
	}
}
