package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/domain"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/validation"
	"github.com/goliatone/go-slug"
)

const (
	// DefaultTitle is used when a document has no title.
	DefaultTitle = "Untitled"

	markdownExtension = ".md"
)

// Project is one case study parsed from a Markdown file.
type Project struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Thumbnail       string          `json:"thumbnail"`
	Video           string          `json:"video,omitempty"`
	PDF             string          `json:"pdf,omitempty"`
	PowerBIEmbedURL string          `json:"powerbi_embed_url,omitempty"`
	TableauEmbedURL string          `json:"tableau_embed_url,omitempty"`
	Download        string          `json:"download,omitempty"`
	Tools           []string        `json:"tools"`
	Tags            []string        `json:"tags,omitempty"`
	Order           int             `json:"order"`
	Status          domain.Status   `json:"status"`
	Featured        bool            `json:"featured"`
	Date            time.Time       `json:"date"`
	Slug            string          `json:"slug"`
	Category        domain.Category `json:"category"`
	Content         string          `json:"content"`
}

// URL returns the public route of the project.
func (p Project) URL() string {
	return "/" + p.Category.String() + "/" + p.Slug
}

func (p Project) published() bool { return p.Status.IsPublished() }

// ParseOption customises ParseProject and ParseArticle.
type ParseOption func(*parseConfig)

type parseConfig struct {
	now func() time.Time
}

// WithNow sets the clock used for documents that carry no date.
func WithNow(now func() time.Time) ParseOption {
	return func(cfg *parseConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// SlugFromFilename strips the Markdown extension, whatever its case, and
// lowercases the rest. No other sanitising is applied.
func SlugFromFilename(filename string) string {
	name := filename
	if idx := strings.LastIndexAny(name, `/\`); idx >= 0 {
		name = name[idx+1:]
	}
	if strings.HasSuffix(strings.ToLower(name), markdownExtension) {
		name = name[:len(name)-len(markdownExtension)]
	}
	return strings.ToLower(name)
}

// ParseProject builds a Project from one file's source. A Project is returned
// in every case; fields that could not be read carry their defaults and a
// *ParseError describes what went wrong.
func ParseProject(source []byte, filename string, category domain.Category, opts ...ParseOption) (Project, error) {
	cfg := newParseConfig(opts)
	doc := parseDocument(source, validation.SchemaProject)
	fields := newFieldReader(doc.meta)

	tools, _ := fields.Strings("tools")
	if tools == nil {
		tools = []string{}
	}
	tags, _ := fields.Strings("tags")

	project := Project{
		Title:           fields.String("title", DefaultTitle),
		Description:     fields.String("description", ""),
		Thumbnail:       fields.String("thumbnail", ""),
		Video:           fields.String("video", ""),
		PDF:             fields.String("pdf", ""),
		PowerBIEmbedURL: fields.String("powerbi_embed_url", ""),
		TableauEmbedURL: fields.String("tableau_embed_url", ""),
		Download:        fields.String("download", ""),
		Tools:           tools,
		Tags:            tags,
		Order:           fields.Int("order", 0),
		Status:          fields.Status("status"),
		Featured:        fields.Bool("featured", false),
		Date:            fields.Time("date", cfg.now()),
		Slug:            SlugFromFilename(filename),
		Category:        category,
		Content:         doc.body,
	}

	issues := append(doc.issues, fields.issues...)
	if !slug.IsValid(project.Slug) {
		issues = append(issues, validation.ValidationIssue{
			Location: "/slug",
			Message:  fmt.Sprintf("derived slug %q is not URL safe", project.Slug),
		})
	}
	return project, newParseError(filename, issues, doc.cause)
}

type parsedDocument struct {
	meta   markdown.FrontMatter
	body   string
	issues []validation.ValidationIssue
	cause  error
}

// parseDocument splits and normalizes the header, then validates it against
// schema. A header that cannot be parsed leaves meta empty so every field
// falls back to its default.
func parseDocument(source []byte, schema string) parsedDocument {
	meta, body, err := markdown.ParseFrontMatter(source)
	if err != nil {
		return parsedDocument{meta: markdown.NewFrontMatter(0), cause: err}
	}

	normalized := markdown.Normalize(meta)
	doc := parsedDocument{meta: normalized, body: string(body)}
	if err := validation.Validate(schema, normalized.Map()); err != nil {
		doc.issues = validation.Issues(err)
	}
	return doc
}
