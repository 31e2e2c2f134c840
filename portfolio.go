package portfolio

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/commands"
	buildcmd "github.com/goliatone/go-portfolio/internal/commands/build"
	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/generator"
	porthttp "github.com/goliatone/go-portfolio/internal/http"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/logging/console"
	"github.com/goliatone/go-portfolio/internal/logging/gologger"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/settings"
	"github.com/goliatone/go-portfolio/internal/site"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

type (
	Project        = content.Project
	Article        = content.Article
	CategoryInfo   = content.CategoryInfo
	Site           = settings.Site
	Hero           = settings.Hero
	NavigationLink = settings.NavigationLink
	Skills         = settings.Skills
	Page           = settings.Page
	Session        = site.Session
	SearchEntry    = site.SearchEntry
	StaticPath     = site.StaticPath
	StaticFile     = generator.StaticFile

	ValidateContentCommand   = buildcmd.ValidateContentCommand
	BuildSitemapCommand      = buildcmd.BuildSitemapCommand
	ExportSearchIndexCommand = buildcmd.ExportSearchIndexCommand
)

// Module is the top level portfolio runtime: one content tree, its loggers
// and the adapters serving it.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	service  *site.Service
	renderer interfaces.MarkdownParser
	now      func() time.Time
}

// Option customises New.
type Option func(*moduleOptions)

type moduleOptions struct {
	provider interfaces.LoggerProvider
	fsys     fs.FS
	now      func() time.Time
}

// WithLoggerProvider replaces the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		o.provider = provider
	}
}

// WithContentFS reads content from fsys instead of Config.ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(o *moduleOptions) {
		o.fsys = fsys
	}
}

// WithClock sets the clock used for undated documents and sitemap entries.
func WithClock(now func() time.Time) Option {
	return func(o *moduleOptions) {
		o.now = now
	}
}

// New validates cfg and wires the content layer.
func New(cfg Config, opts ...Option) (*Module, error) {
	options := moduleOptions{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.now == nil {
		options.now = time.Now
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		built, err := NewLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	fsys := options.fsys
	if fsys == nil {
		info, err := os.Stat(cfg.ContentDir)
		if err != nil {
			return nil, fmt.Errorf("portfolio: content dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("portfolio: content dir %s is not a directory", cfg.ContentDir)
		}
		fsys = os.DirFS(cfg.ContentDir)
	}

	service := site.NewService(fsys, site.Config{
		Logger:         logging.SiteLogger(provider),
		ContentLogger:  logging.ContentLogger(provider),
		SettingsLogger: logging.SettingsLogger(provider),
		Now:            options.now,
	})

	return &Module{
		cfg:      cfg,
		provider: provider,
		service:  service,
		renderer: markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Markdown.Extensions,
			Sanitize:   cfg.Markdown.Sanitize,
			HardWraps:  cfg.Markdown.HardWraps,
		}),
		now: options.now,
	}, nil
}

// Config returns the validated configuration.
func (m *Module) Config() Config {
	return m.cfg
}

// Service exposes the site service.
func (m *Module) Service() *site.Service {
	return m.service
}

// Session opens a request scoped session. It must not outlive ctx.
func (m *Module) Session(ctx context.Context) *Session {
	return m.service.NewSession(ctx, "")
}

// StaticFiles lists every content route with the file a static export
// writes for it.
func (m *Module) StaticFiles(ctx context.Context) []StaticFile {
	return generator.StaticFiles(m.Session(ctx).StaticPaths())
}

// Logger returns the module logger registered under name.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, name)
}

// HTTPHandler returns the JSON API router.
func (m *Module) HTTPHandler() http.Handler {
	api := porthttp.NewPublicAPI(m.service,
		porthttp.WithLogger(logging.HTTPLogger(m.provider)),
		porthttp.WithRenderer(m.renderer),
		porthttp.WithBaseURL(m.cfg.BaseURL),
		porthttp.WithAnalyticsID(m.cfg.AnalyticsID),
		porthttp.WithRequestTimeout(m.cfg.Server.RequestTimeout),
		porthttp.WithClock(m.now),
	)
	return api.Handler()
}

// ValidateContentHandler returns the handler behind the validate command.
func (m *Module) ValidateContentHandler() *buildcmd.ValidateContentHandler {
	return buildcmd.NewValidateContentHandler(m.service, commands.CommandLogger(m.provider, "content"))
}

// BuildSitemapHandler returns the handler writing sitemap.xml and robots.txt.
func (m *Module) BuildSitemapHandler() *buildcmd.BuildSitemapHandler {
	return buildcmd.NewBuildSitemapHandler(m.service, commands.CommandLogger(m.provider, "generator"), m.now)
}

// ExportSearchIndexHandler returns the handler writing the search index.
func (m *Module) ExportSearchIndexHandler() *buildcmd.ExportSearchIndexHandler {
	return buildcmd.NewExportSearchIndexHandler(m.service, commands.CommandLogger(m.provider, "generator"))
}

// NewLoggerProvider builds the provider named by cfg.Provider. An empty
// provider selects the console logger.
func NewLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "console":
		opts := console.Options{
			JSON:  strings.EqualFold(strings.TrimSpace(cfg.Format), "json"),
			Focus: cfg.Focus,
		}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("portfolio: unknown logging provider %q", cfg.Provider)
	}
}
