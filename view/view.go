package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/AnTengye/aiwriter/web/model"
	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names, one template file each
const (
	PageHome     = "home"
	PageGenerate = "generate"
	PageGallery  = "gallery"
	PageArticle  = "article"
	PageError    = "error"
)

var pageNames = []string{PageHome, PageGenerate, PageGallery, PageArticle, PageError}

var funcs = template.FuncMap{
	"percent": func(v float64) string { return fmt.Sprintf("%.0f", v) },
	"lower":   strings.ToLower,
}

// Renderer holds one parsed template set per page, each wrapped by the layout
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Instance implements gin's render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		panic(fmt.Sprintf("view: unknown page %q", name))
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// execute writes a page outside of gin
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Static serves the embedded css/js
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// ErrorData is the body of the error page
type ErrorData struct {
	Code       int
	MessageKey string
}

func NotFoundData() ErrorData {
	return ErrorData{Code: http.StatusNotFound, MessageKey: "error.not_found"}
}

func InternalErrorData() ErrorData {
	return ErrorData{Code: http.StatusInternalServerError, MessageKey: "error.internal"}
}

const (
	ToastSuccess = "success"
	ToastError   = "error"
)

type Toast struct {
	Kind    string
	Message string
}

type Site struct {
	Name    string
	BaseURL string
}

type NavItem struct {
	Href   string
	Label  string
	Active bool
}

var navLinks = []struct{ href, key string }{
	{"/", "nav.home"},
	{"/generate", "nav.generate"},
	{"/gallery", "nav.gallery"},
}

// Page is the data every template receives; Data carries the page body
type Page struct {
	Name   string
	Title  string
	Path   string
	Locale *Locale
	Site   Site
	Toasts []Toast
	Data   any
}

func NewPage(name, path string, loc *Locale, site Site) *Page {
	if loc == nil {
		loc = DefaultLocale()
	}
	return &Page{Name: name, Path: path, Locale: loc, Site: site}
}

func (p *Page) AddToast(kind, message string) {
	p.Toasts = append(p.Toasts, Toast{Kind: kind, Message: message})
}

// FullTitle is the document title
func (p *Page) FullTitle() string {
	if p.Title == "" {
		return p.Locale.T("meta.title")
	}
	return p.Title + " | " + p.Site.Name
}

func (p *Page) Canonical() string {
	return strings.TrimRight(p.Site.BaseURL, "/") + p.Path
}

// Nav marks the link matching the current path as active
func (p *Page) Nav() []NavItem {
	items := make([]NavItem, len(navLinks))
	for i, link := range navLinks {
		active := p.Path == link.href
		if link.href != "/" && strings.HasPrefix(p.Path, link.href+"/") {
			active = true
		}
		items[i] = NavItem{Href: link.href, Label: p.Locale.T(link.key), Active: active}
	}
	return items
}

type Feature struct {
	Icon     string
	TitleKey string
}

type Stat struct {
	Value    string
	LabelKey string
}

// HomeData is the static landing page content
type HomeData struct {
	Features []Feature
	Stats    []Stat
	Tech     []string
}

func NewHomeData() HomeData {
	return HomeData{
		Features: []Feature{
			{"🔍", "home.feature.research"},
			{"🤖", "home.feature.claude"},
			{"🎨", "home.feature.images"},
			{"📦", "home.feature.export"},
		},
		Stats: []Stat{
			{"127", "home.stats.articles"},
			{"89", "home.stats.users"},
			{"99.9", "home.stats.rate"},
		},
		Tech: []string{"Next.js 14", "TypeScript", "Tailwind CSS", "FastAPI", "Claude API", "Gemini API", "Vercel", "Railway"},
	}
}

// GenerateForm is the generate page state, re-rendered with the user's input on error
type GenerateForm struct {
	Topic    string
	Tier     model.Tier
	Selected map[model.Format]bool
	Error    string
}

func NewGenerateForm() GenerateForm {
	selected := make(map[model.Format]bool)
	for _, f := range model.DefaultFormats {
		selected[f] = true
	}
	return GenerateForm{Tier: model.DefaultTier, Selected: selected}
}

func (f GenerateForm) Tiers() []model.Tier     { return model.Tiers }
func (f GenerateForm) Formats() []model.Format { return model.Formats }

// GalleryData lists every article; Filter picks which cards start visible
type GalleryData struct {
	Articles []model.Article
	Filter   model.Filter
	Visible  int
	Failed   bool
}

func NewGalleryData(articles []model.Article, filter model.Filter) GalleryData {
	return GalleryData{
		Articles: articles,
		Filter:   filter,
		Visible:  len(model.FilterArticles(articles, filter)),
	}
}

func (g GalleryData) Filters() []model.Filter { return model.Filters }

// Article view states
const (
	ArticleNotFound  = "not_found"
	ArticleFailed    = "failed"
	ArticleCompleted = "completed"
	ArticleProgress  = "progress"
)

type StepView struct {
	Status model.Status    `json:"status"`
	Label  string          `json:"label"`
	State  model.StepState `json:"state"`
}

func NewStepViews(current model.Status, loc *Locale) []StepView {
	steps := model.Steps(current)
	views := make([]StepView, len(steps))
	for i, step := range steps {
		views[i] = StepView{Status: step.Status, Label: loc.StepLabel(step.Status), State: step.State}
	}
	return views
}

// ArticleData is the article page state. Live marks pages that subscribe
// to status updates; terminal articles never do.
type ArticleData struct {
	State   string
	Article *model.Article
	Body    template.HTML
	Status  string
	Steps   []StepView
	Error   string
	Live    bool
}

// NewArticleData picks the view state for a. A completed article without
// content is still shown as in progress, without a live subscription.
func NewArticleData(a *model.Article, loc *Locale) ArticleData {
	d := ArticleData{Article: a}
	switch {
	case a == nil:
		d.State = ArticleNotFound
		return d
	case a.Status == model.StatusFailed:
		d.State = ArticleFailed
		d.Error = a.Error
		if strings.TrimSpace(d.Error) == "" {
			d.Error = loc.T("article.unknown_error")
		}
	case a.HasContent():
		d.State = ArticleCompleted
	default:
		d.State = ArticleProgress
	}
	d.Status = loc.StatusLabel(a.Status)
	d.Steps = NewStepViews(a.Status, loc)
	d.Live = d.State == ArticleProgress && !a.Status.IsTerminal()
	return d
}

// Downloads lists the export links offered on a completed article
func (a ArticleData) Downloads() []model.Format {
	return []model.Format{model.FormatPDF, model.FormatMarkdown}
}

// Snapshot is the payload of a status stream event
type Snapshot struct {
	ID       string       `json:"id"`
	Status   model.Status `json:"status"`
	Progress float64      `json:"progress"`
	Label    string       `json:"label"`
	Steps    []StepView   `json:"steps"`
	Terminal bool         `json:"terminal"`
}

func NewSnapshot(a *model.Article, loc *Locale) Snapshot {
	return Snapshot{
		ID:       a.ID,
		Status:   a.Status,
		Progress: a.ProgressPercent(),
		Label:    loc.StatusLabel(a.Status),
		Steps:    NewStepViews(a.Status, loc),
		Terminal: a.Status.IsTerminal(),
	}
}
