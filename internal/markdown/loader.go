package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"
)

const defaultExtension = ".md"

// LoaderConfig configures how Markdown files are discovered.
type LoaderConfig struct {
	// Extension selects the files to load, compared case-insensitively (defaults to ".md").
	Extension string
}

// Loader reads Markdown sources from a filesystem. Directory listings are
// never recursive: every content partition is a flat directory.
type Loader struct {
	fs        fs.FS
	extension string
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	ext := strings.ToLower(strings.TrimSpace(cfg.Extension))
	if ext == "" {
		ext = defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Loader{
		fs:        filesystem,
		extension: ext,
	}
}

// DocumentResult carries the raw source of one file.
type DocumentResult struct {
	// Name is the base file name, e.g. "Q3-Report.MD".
	Name string
	// Path is the slash separated path relative to the filesystem root.
	Path    string
	Source  []byte
	ModTime time.Time
}

// Matches reports whether name carries the loader's extension.
func (l *Loader) Matches(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), l.extension)
}

// TrimExtension strips the loader's extension from name, whatever its case.
func (l *Loader) TrimExtension(name string) string {
	if !l.Matches(name) {
		return name
	}
	return name[:len(name)-len(l.extension)]
}

// Exists reports whether path exists in the filesystem.
func (l *Loader) Exists(path string) bool {
	_, err := fs.Stat(l.fs, path)
	return err == nil
}

// LoadFile reads a single file.
func (l *Loader) LoadFile(ctx context.Context, filePath string) (*DocumentResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	filePath = path.Clean(strings.TrimPrefix(filePath, "/"))
	data, err := fs.ReadFile(l.fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", filePath, err)
	}

	result := &DocumentResult{
		Name:   path.Base(filePath),
		Path:   filePath,
		Source: data,
	}
	if info, err := fs.Stat(l.fs, filePath); err == nil {
		result.ModTime = info.ModTime()
	}
	return result, nil
}

// LoadDirectory reads every matching file directly inside dir, ordered by
// file name. A missing directory yields no documents and no error.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*DocumentResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	dir = path.Clean(strings.TrimPrefix(dir, "/"))
	entries, err := fs.ReadDir(l.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("markdown loader list %s: %w", dir, err)
	}

	var results []*DocumentResult
	for _, entry := range entries {
		if entry.IsDir() || !l.Matches(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := l.LoadFile(ctx, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
