package buildcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-portfolio/internal/commands"
	"github.com/goliatone/go-portfolio/internal/domain"
	"github.com/goliatone/go-portfolio/internal/generator"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/site"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

const (
	validateOperation    = "content.validate"
	sitemapOperation     = "sitemap.build"
	searchIndexOperation = "search_index.export"
)

// ErrContentSourceRequired is returned when neither the handler nor the
// message names a content tree.
var ErrContentSourceRequired = errors.New("build command: content source required")

var (
	_ command.Commander[ValidateContentCommand]   = (*ValidateContentHandler)(nil)
	_ command.Commander[BuildSitemapCommand]      = (*BuildSitemapHandler)(nil)
	_ command.Commander[ExportSearchIndexCommand] = (*ExportSearchIndexHandler)(nil)
)

// ValidateContentHandler runs the build time content audit.
type ValidateContentHandler struct {
	inner *commands.Handler[ValidateContentCommand]
}

// NewValidateContentHandler audits service, or the directory named by the
// message when it sets ContentDir. service may be nil in the latter case.
func NewValidateContentHandler(service *site.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateContentCommand]) *ValidateContentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ValidateContentCommand) error {
		source := service
		if dir := strings.TrimSpace(msg.ContentDir); dir != "" {
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("content dir: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("content dir %s is not a directory", dir)
			}
			source = site.NewService(os.DirFS(dir), site.Config{Logger: baseLogger})
		}
		if source == nil {
			return ErrContentSourceRequired
		}

		report, err := source.Repository().Audit(ctx)
		if err != nil {
			return err
		}
		settingsProblems, err := source.Settings().Check(ctx)
		if err != nil {
			return err
		}
		if msg.Strict {
			report.Problems = append(report.Problems, settingsProblems...)
		} else {
			for _, problem := range settingsProblems {
				baseLogger.Warn("content.command.validate.settings", "error", problem)
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"powerbi_count":  report.Projects[domain.CategoryPowerBI],
			"tableau_count":  report.Projects[domain.CategoryTableau],
			"excel_count":    report.Projects[domain.CategoryExcel],
			"article_count":  report.Articles,
			"published":      report.Published,
			"problem_count":  len(report.Problems),
			"settings_count": len(settingsProblems),
		}).Info("content.command.validate.completed")
		return report.Err()
	}

	handlerOpts := []commands.HandlerOption[ValidateContentCommand]{
		commands.WithLogger[ValidateContentCommand](baseLogger),
		commands.WithOperation[ValidateContentCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateContentCommand) map[string]any {
			fields := map[string]any{}
			if msg.ContentDir != "" {
				fields["content_dir"] = msg.ContentDir
			}
			if msg.Strict {
				fields["strict"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateContentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ValidateContentCommand].
func (h *ValidateContentHandler) Execute(ctx context.Context, msg ValidateContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BuildSitemapHandler writes sitemap.xml and robots.txt for the published
// content of service.
type BuildSitemapHandler struct {
	inner *commands.Handler[BuildSitemapCommand]
}

// NewBuildSitemapHandler creates a handler bound to service. now stamps
// routes without a date and defaults to time.Now.
func NewBuildSitemapHandler(service *site.Service, logger interfaces.Logger, now func() time.Time, opts ...commands.HandlerOption[BuildSitemapCommand]) *BuildSitemapHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildSitemapCommand) error {
		if service == nil {
			return ErrContentSourceRequired
		}
		session := service.NewSession(ctx, "")
		gen := generator.New(generator.Config{BaseURL: msg.BaseURL, Now: now}, generator.NewDirWriter(msg.Output), baseLogger)

		paths := session.StaticPaths()
		sitemap, err := gen.WriteSitemap(ctx, paths)
		if err != nil {
			return err
		}
		robots, err := gen.WriteRobots(ctx)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"route_count":    len(paths) + len(generator.SectionRoutes),
			"sitemap_size":   sitemap.Size,
			"sitemap_sha256": sitemap.Checksum,
			"robots_size":    robots.Size,
		}).Info("generator.command.sitemap.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSitemapCommand]{
		commands.WithLogger[BuildSitemapCommand](baseLogger),
		commands.WithOperation[BuildSitemapCommand](sitemapOperation),
		commands.WithMessageFields(func(msg BuildSitemapCommand) map[string]any {
			return map[string]any{
				"output":   msg.Output,
				"base_url": msg.BaseURL,
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSitemapHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildSitemapCommand].
func (h *BuildSitemapHandler) Execute(ctx context.Context, msg BuildSitemapCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExportSearchIndexHandler writes the published search index as JSON.
type ExportSearchIndexHandler struct {
	inner *commands.Handler[ExportSearchIndexCommand]
}

func NewExportSearchIndexHandler(service *site.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ExportSearchIndexCommand]) *ExportSearchIndexHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ExportSearchIndexCommand) error {
		if service == nil {
			return ErrContentSourceRequired
		}
		entries := service.NewSession(ctx, "").SearchIndex()
		gen := generator.New(generator.Config{}, generator.NewDirWriter(msg.Output), baseLogger)
		artifact, err := gen.WriteSearchIndex(ctx, msg.File, entries)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"entry_count": len(entries),
			"path":        artifact.Path,
			"size":        artifact.Size,
		}).Info("generator.command.search_index.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportSearchIndexCommand]{
		commands.WithLogger[ExportSearchIndexCommand](baseLogger),
		commands.WithOperation[ExportSearchIndexCommand](searchIndexOperation),
		commands.WithMessageFields(func(msg ExportSearchIndexCommand) map[string]any {
			fields := map[string]any{"output": msg.Output}
			if msg.File != "" {
				fields["file"] = msg.File
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportSearchIndexHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ExportSearchIndexCommand].
func (h *ExportSearchIndexHandler) Execute(ctx context.Context, msg ExportSearchIndexCommand) error {
	return h.inner.Execute(ctx, msg)
}
