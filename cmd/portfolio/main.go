package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	portfolio "github.com/goliatone/go-portfolio"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

var moduleBuilder = func(cfg portfolio.Config) (*portfolio.Module, error) {
	return portfolio.New(cfg)
}

var errUsage = errors.New("usage: portfolio <serve|validate|sitemap|search-index|paths> [flags]")

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("portfolio: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cfg, err := portfolio.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	name, rest := args[0], args[1:]
	switch name {
	case "serve":
		return runServe(ctx, cfg, rest)
	case "validate":
		return runValidate(ctx, cfg, rest)
	case "sitemap":
		return runSitemap(ctx, cfg, rest)
	case "search-index":
		return runSearchIndex(ctx, cfg, rest)
	case "paths":
		return runPaths(ctx, cfg, rest, stdout)
	default:
		return fmt.Errorf("unknown command %q: %w", name, errUsage)
	}
}

// commonFlags binds the flags every subcommand shares onto cfg.
func commonFlags(name string, cfg *portfolio.Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "Path to the content root")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Public site URL used for absolute links")
	return fs
}

func runServe(ctx context.Context, cfg portfolio.Config, args []string) error {
	fs := commonFlags("serve", &cfg)
	fs.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "Listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	logger := module.Logger("portfolio.cli")

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           module.HTTPHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http.server.listening", "addr", cfg.Server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("http.server.shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runValidate(ctx context.Context, cfg portfolio.Config, args []string) error {
	fs := commonFlags("validate", &cfg)
	strict := fs.Bool("strict", false, "Treat settings problems as failures")
	if err := fs.Parse(args); err != nil {
		return err
	}
	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	return dispatch(ctx, module.ValidateContentHandler(), portfolio.ValidateContentCommand{Strict: *strict})
}

func runSitemap(ctx context.Context, cfg portfolio.Config, args []string) error {
	fs := commonFlags("sitemap", &cfg)
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory receiving sitemap.xml and robots.txt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	return dispatch(ctx, module.BuildSitemapHandler(), portfolio.BuildSitemapCommand{
		Output:  cfg.OutputDir,
		BaseURL: cfg.BaseURL,
	})
}

func runSearchIndex(ctx context.Context, cfg portfolio.Config, args []string) error {
	fs := commonFlags("search-index", &cfg)
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory receiving the search index")
	file := fs.String("file", "", "Index file name (defaults to search-index.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	return dispatch(ctx, module.ExportSearchIndexHandler(), portfolio.ExportSearchIndexCommand{
		Output: cfg.OutputDir,
		File:   *file,
	})
}

func runPaths(ctx context.Context, cfg portfolio.Config, args []string, stdout io.Writer) error {
	fs := commonFlags("paths", &cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(module.StaticFiles(ctx))
}

// dispatch routes msg through the command dispatcher so the CLI exercises
// the same path as any other subscriber.
func dispatch[T command.Message](ctx context.Context, handler command.Commander[T], msg T) error {
	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(0))
	defer sub.Unsubscribe()
	return dispatcher.Dispatch(ctx, msg)
}
