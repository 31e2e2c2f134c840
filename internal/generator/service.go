package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/site"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

const (
	SitemapFile     = "sitemap.xml"
	RobotsFile      = "robots.txt"
	SearchIndexFile = "search-index.json"
)

// Config captures the host artifacts are generated for. Where they land is
// up to the ArtifactWriter.
type Config struct {
	BaseURL string
	// Now stamps routes without a date. Defaults to time.Now.
	Now func() time.Time
}

// Artifact reports a file written by the generator.
type Artifact struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Checksum string `json:"checksum"`
	Category string `json:"category"`
}

// Generator writes the build time artifacts derived from a site session.
type Generator struct {
	cfg    Config
	writer ArtifactWriter
	logger interfaces.Logger
}

// New returns a Generator. A nil writer discards output, which keeps dry
// runs cheap.
func New(cfg Config, writer ArtifactWriter, logger interfaces.Logger) *Generator {
	if writer == nil {
		writer = noopWriter{}
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Generator{cfg: cfg, writer: writer, logger: logger}
}

// WriteSitemap renders and writes sitemap.xml.
func (g *Generator) WriteSitemap(ctx context.Context, paths []site.StaticPath) (Artifact, error) {
	content := BuildSitemap(g.cfg.BaseURL, SitemapEntries(paths), g.cfg.Now())
	return g.write(ctx, SitemapFile, content, categorySitemap)
}

// WriteRobots renders and writes robots.txt.
func (g *Generator) WriteRobots(ctx context.Context) (Artifact, error) {
	return g.write(ctx, RobotsFile, BuildRobots(g.cfg.BaseURL), categoryRobots)
}

// WriteSearchIndex writes entries as JSON under name, defaulting to
// SearchIndexFile.
func (g *Generator) WriteSearchIndex(ctx context.Context, name string, entries []site.SearchEntry) (Artifact, error) {
	if strings.TrimSpace(name) == "" {
		name = SearchIndexFile
	}
	if entries == nil {
		entries = []site.SearchEntry{}
	}
	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return Artifact{}, err
	}
	return g.write(ctx, name, string(payload)+"\n", categorySearchIndex)
}

func (g *Generator) write(ctx context.Context, name, content string, category writeCategory) (Artifact, error) {
	fullPath := strings.TrimLeft(path.Clean("/"+name), "/")
	if err := g.writer.EnsureDir(ctx, path.Dir(fullPath)); err != nil {
		return Artifact{}, err
	}
	req := writeFileRequest{
		Path:     fullPath,
		Content:  strings.NewReader(content),
		Size:     int64(len(content)),
		Category: category,
		Checksum: computeHash([]byte(content)),
	}
	if err := g.writer.WriteFile(ctx, req); err != nil {
		return Artifact{}, err
	}
	g.logger.Info("generator.artifact.written", "path", req.Path, "size", req.Size, "category", string(category))
	return Artifact{
		Path:     req.Path,
		Size:     req.Size,
		Checksum: req.Checksum,
		Category: string(category),
	}, nil
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
