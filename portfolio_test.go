package portfolio_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	portfolio "github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

type namedProvider struct {
	names []string
}

func (p *namedProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return nil
}

func newModule(tb testing.TB, provider interfaces.LoggerProvider) *portfolio.Module {
	tb.Helper()
	fsys := fstest.MapFS{
		"tableau/sales.md": {Data: []byte("---\ntitle: Sales\nstatus: published\ndate: 2024-04-01\n---\nSales **story**\n")},
	}
	cfg := portfolio.DefaultConfig()
	cfg.BaseURL = "https://example.com"
	module, err := portfolio.New(cfg,
		portfolio.WithContentFS(fsys),
		portfolio.WithLoggerProvider(provider),
		portfolio.WithClock(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }),
	)
	if err != nil {
		tb.Fatalf("new module: %v", err)
	}
	return module
}

func TestModuleWiresModuleLoggers(t *testing.T) {
	provider := &namedProvider{}
	module := newModule(t, provider)
	_ = module.HTTPHandler()
	_ = module.ValidateContentHandler()

	joined := strings.Join(provider.names, ",")
	for _, want := range []string{"portfolio.site", "portfolio.content", "portfolio.settings", "portfolio.http", "portfolio.commands.content"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected logger %s to be requested, got %s", want, joined)
		}
	}
}

func TestModuleSessionAndHandler(t *testing.T) {
	module := newModule(t, nil)

	session := module.Session(context.Background())
	if got := session.ProjectSlugs("tableau"); len(got) != 1 || got[0] != "sales" {
		t.Fatalf("unexpected slugs %v", got)
	}

	rec := httptest.NewRecorder()
	module.HTTPHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects/tableau/sales", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "\\u003cstrong\\u003estory") {
		t.Fatalf("expected rendered body in response: %s", rec.Body.String())
	}
}

func TestModuleCommands(t *testing.T) {
	module := newModule(t, nil)
	ctx := context.Background()
	output := t.TempDir()

	if err := module.ValidateContentHandler().Execute(ctx, portfolio.ValidateContentCommand{Strict: true}); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := module.BuildSitemapHandler().Execute(ctx, portfolio.BuildSitemapCommand{Output: output, BaseURL: "https://example.com"}); err != nil {
		t.Fatalf("sitemap: %v", err)
	}
	if err := module.ExportSearchIndexHandler().Execute(ctx, portfolio.ExportSearchIndexCommand{Output: output}); err != nil {
		t.Fatalf("search index: %v", err)
	}
	for _, name := range []string{"sitemap.xml", "robots.txt", "search-index.json"} {
		if _, err := os.Stat(filepath.Join(output, name)); err != nil {
			t.Fatalf("expected %s to be written: %v", name, err)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := portfolio.DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if _, err := portfolio.New(cfg, portfolio.WithContentFS(fstest.MapFS{})); err == nil {
		t.Fatal("expected invalid config error")
	}
}

func TestNewRequiresContentDir(t *testing.T) {
	cfg := portfolio.DefaultConfig()
	cfg.ContentDir = filepath.Join(t.TempDir(), "missing")
	if _, err := portfolio.New(cfg); err == nil {
		t.Fatal("expected missing content dir error")
	}
}

func TestNewLoggerProvider(t *testing.T) {
	for _, provider := range []string{"", "console", "gologger"} {
		got, err := portfolio.NewLoggerProvider(portfolio.LoggingConfig{Provider: provider, Level: "warn"})
		if err != nil || got == nil {
			t.Fatalf("%q: unexpected result %v, %v", provider, got, err)
		}
	}
	if _, err := portfolio.NewLoggerProvider(portfolio.LoggingConfig{Provider: "syslog"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
