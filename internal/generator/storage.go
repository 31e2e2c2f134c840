package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type writeCategory string

const (
	categorySitemap     writeCategory = "sitemap"
	categoryRobots      writeCategory = "robots"
	categorySearchIndex writeCategory = "search_index"
)

// writeFileRequest describes a file write operation routed through the artifact writer.
type writeFileRequest struct {
	Path     string
	Content  io.Reader
	Size     int64
	Category writeCategory
	Checksum string
}

// ArtifactWriter abstracts where generator outputs end up.
type ArtifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
}

// NewDirWriter writes artifacts below root on the local filesystem.
func NewDirWriter(root string) ArtifactWriter {
	return &dirWriter{root: root}
}

type dirWriter struct {
	root string
}

func (w *dirWriter) resolve(rel string) string {
	return filepath.Join(w.root, filepath.FromSlash(rel))
}

func (w *dirWriter) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" || path == "." {
		return os.MkdirAll(w.root, 0o755)
	}
	return os.MkdirAll(w.resolve(path), 0o755)
}

func (w *dirWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Content == nil {
		return errors.New("generator: write requires content reader")
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}
	target := w.resolve(req.Path)
	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("generator: create %s: %w", req.Path, err)
	}
	if _, err := io.Copy(file, req.Content); err != nil {
		file.Close()
		return fmt.Errorf("generator: write %s: %w", req.Path, err)
	}
	return file.Close()
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, writeFileRequest) error { return nil }
