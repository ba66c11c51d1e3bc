package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/AnTengye/aiwriter/web/config"
	"github.com/AnTengye/aiwriter/web/model"
	"github.com/AnTengye/aiwriter/web/pkg/logger"
	"github.com/dustin/go-humanize"
)

// ErrNotFound matches any *APIError carrying a 404
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx reply from the backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// BackendMessage extracts the backend-supplied message from err, if any
func BackendMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// BackendClient talks to the article generation API
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// ListOptions paginates GET /api/articles; zero values are omitted
type ListOptions struct {
	Page  int
	Limit int
}

// Download is an exported article file
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

// downloadEnvelope is how the backend wraps exports it renders inline
type downloadEnvelope struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

func NewBackendClient(cfg *config.BackendConfig) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout.Std(),
		},
	}
}

// Generate submits a new article generation task
func (c *BackendClient) Generate(ctx context.Context, req model.GenerateRequest) (*model.GenerateResponse, error) {
	var result model.GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/generate", nil, req, &result); err != nil {
		return nil, err
	}
	if result.ArticleID == "" {
		err := errors.New("backend response missing article_id")
		logger.Error(ctx, "backend request failed", "method", http.MethodPost, "path", "/api/generate", "error", err)
		return nil, err
	}
	return &result, nil
}

// GetArticle fetches the full article record
func (c *BackendClient) GetArticle(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	if err := c.doJSON(ctx, http.MethodGet, "/api/articles/"+url.PathEscape(id), nil, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// GetStatus fetches the lightweight status record (no content)
func (c *BackendClient) GetStatus(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	if err := c.doJSON(ctx, http.MethodGet, "/api/status/"+url.PathEscape(id), nil, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// ListArticles fetches the article list
func (c *BackendClient) ListArticles(ctx context.Context, opts ListOptions) (*model.ArticleList, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var list model.ArticleList
	if err := c.doJSON(ctx, http.MethodGet, "/api/articles", query, nil, &list); err != nil {
		return nil, err
	}
	if list.Articles == nil {
		list.Articles = []model.Article{}
	}
	return &list, nil
}

// Download fetches an export of the article in the given format
func (c *BackendClient) Download(ctx context.Context, id string, format model.Format) (*Download, error) {
	path := fmt.Sprintf("/api/articles/%s/download/%s", url.PathEscape(id), format)

	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(ctx, http.MethodGet, path, fmt.Errorf("failed to read response: %w", err))
	}

	dl := &Download{
		Filename:    id + format.Extension(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
	if name := dispositionFilename(resp.Header.Get("Content-Disposition")); name != "" {
		dl.Filename = name
	}

	if isJSON(dl.ContentType) {
		var env downloadEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, c.fail(ctx, http.MethodGet, path, fmt.Errorf("failed to parse response: %w", err))
		}
		if err := c.unwrap(ctx, dl, env, format); err != nil {
			return nil, c.fail(ctx, http.MethodGet, path, err)
		}
	}
	if dl.ContentType == "" {
		dl.ContentType = format.ContentType()
	}

	logger.Info(ctx, "download ready",
		"format", format,
		"filename", dl.Filename,
		"size", humanize.Bytes(uint64(len(dl.Body))),
	)
	return dl, nil
}

// unwrap resolves an envelope into file bytes, following url for remote exports
func (c *BackendClient) unwrap(ctx context.Context, dl *Download, env downloadEnvelope, format model.Format) error {
	if env.Filename != "" {
		dl.Filename = env.Filename
	}
	dl.ContentType = env.ContentType
	if dl.ContentType == "" {
		dl.ContentType = format.ContentType()
	}

	switch {
	case env.Content != "":
		dl.Body = []byte(env.Content)
		return nil
	case env.URL != "":
		target := env.URL
		if strings.HasPrefix(target, "/") {
			target = c.baseURL + target
		}
		logger.Info(ctx, "backend request", "method", http.MethodGet, "path", target)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to fetch export: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Message: "export unavailable"}
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}
		dl.Body = body
		return nil
	default:
		return &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("no %s export available", format)}
	}
}

// doJSON sends body as JSON and decodes a 2xx reply into out
func (c *BackendClient) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(ctx, method, path, fmt.Errorf("failed to read response: %w", err))
	}
	if err := json.Unmarshal(data, out); err != nil {
		return c.fail(ctx, method, path, fmt.Errorf("failed to parse response: %w, body: %s", err, truncate(string(data), 200)))
	}
	return nil
}

// do dispatches the request, logging it first, and turns non-2xx into *APIError
func (c *BackendClient) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(ctx, method, path, fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewReader(jsonData)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, c.fail(ctx, method, path, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, */*")

	logger.Info(ctx, "backend request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(ctx, method, path, fmt.Errorf("failed to send request: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, c.fail(ctx, method, path, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
		})
	}
	return resp, nil
}

func (c *BackendClient) fail(ctx context.Context, method, path string, err error) error {
	logger.Error(ctx, "backend request failed", "method", method, "path", path, "error", err)
	return err
}

// errorMessage pulls a human-readable message out of an error body.
// FastAPI uses {"detail": "..."} or a list of {"msg": "..."} for validation.
func errorMessage(data []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Error   string          `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return truncate(strings.TrimSpace(string(data)), 200)
	}

	if len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil && detail != "" {
			return detail
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(payload.Detail, &items); err == nil {
			msgs := make([]string, 0, len(items))
			for _, item := range items {
				if item.Msg != "" {
					msgs = append(msgs, item.Msg)
				}
			}
			if len(msgs) > 0 {
				return strings.Join(msgs, "; ")
			}
		}
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
