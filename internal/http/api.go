package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/site"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// PublicAPI exposes a site.Service over HTTP.
type PublicAPI struct {
	service        *site.Service
	renderer       interfaces.MarkdownParser
	logger         interfaces.Logger
	baseURL        string
	analyticsID    string
	requestTimeout time.Duration
	now            func() time.Time
}

// APIOption mutates the PublicAPI configuration.
type APIOption func(*PublicAPI)

// NewPublicAPI constructs a PublicAPI over service.
func NewPublicAPI(service *site.Service, opts ...APIOption) *PublicAPI {
	api := &PublicAPI{
		service:  service,
		renderer: markdown.NewGoldmarkParser(interfaces.ParseOptions{}),
		logger:   logging.NoOp(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) APIOption {
	return func(api *PublicAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// WithRenderer overrides the markdown renderer used for detail routes.
func WithRenderer(renderer interfaces.MarkdownParser) APIOption {
	return func(api *PublicAPI) {
		if renderer != nil {
			api.renderer = renderer
		}
	}
}

// WithBaseURL sets the public origin used in sitemap.xml and robots.txt.
func WithBaseURL(baseURL string) APIOption {
	return func(api *PublicAPI) {
		api.baseURL = strings.TrimSpace(baseURL)
	}
}

// WithAnalyticsID publishes the analytics property id with the site settings.
func WithAnalyticsID(id string) APIOption {
	return func(api *PublicAPI) {
		api.analyticsID = strings.TrimSpace(id)
	}
}

// WithRequestTimeout bounds each request. Zero disables the timeout.
func WithRequestTimeout(timeout time.Duration) APIOption {
	return func(api *PublicAPI) {
		if timeout > 0 {
			api.requestTimeout = timeout
		}
	}
}

// WithClock sets the clock used for sitemap entries without a date.
func WithClock(now func() time.Time) APIOption {
	return func(api *PublicAPI) {
		if now != nil {
			api.now = now
		}
	}
}

// Handler returns the router serving every route of the API.
func (api *PublicAPI) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if api.requestTimeout > 0 {
		r.Use(chimw.Timeout(api.requestTimeout))
	}
	r.Use(api.sessionMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		api.writeError(w, r, notFound("route", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		api.writeError(w, r, methodNotAllowed(r.Method, r.URL.Path))
	})

	r.Get("/healthz", api.handleHealth)
	r.Get("/sitemap.xml", api.handleSitemap)
	r.Get("/robots.txt", api.handleRobots)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", api.handleCategories)
		r.Get("/categories/{id}", api.handleCategory)

		r.Get("/projects", api.handleProjects)
		r.Get("/projects/featured", api.handleFeatured)
		r.Get("/projects/stats", api.handleStats)
		r.Get("/projects/{category}", api.handleCategoryProjects)
		r.Get("/projects/{category}/{slug}", api.handleProject)

		r.Get("/tags", api.handleTags)
		r.Get("/tags/{tag}", api.handleTag)
		r.Get("/tools", api.handleTools)
		r.Get("/tools/{tool}", api.handleTool)

		r.Get("/articles", api.handleArticles)
		r.Get("/articles/{slug}", api.handleArticle)

		r.Get("/settings/{name}", api.handleSettings)

		r.Get("/search", api.handleSearch)
		r.Get("/paths", api.handlePaths)
	})
	return r
}
