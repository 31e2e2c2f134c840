package content

import (
	"time"

	"github.com/goliatone/go-portfolio/internal/domain"
	"github.com/goliatone/go-portfolio/internal/validation"
)

// DefaultArticleCategory is assigned to articles without a category.
const DefaultArticleCategory = "Analytics"

// Article is a long-form piece stored under the articles directory. Unlike
// projects its category is free text.
type Article struct {
	Title    string        `json:"title"`
	Summary  string        `json:"summary"`
	Category string        `json:"category"`
	Tags     []string      `json:"tags"`
	Status   domain.Status `json:"status"`
	Featured bool          `json:"featured"`
	Date     time.Time     `json:"date"`
	Slug     string        `json:"slug"`
	Content  string        `json:"content"`
}

// URL returns the public route of the article.
func (a Article) URL() string {
	return "/articles/" + a.Slug
}

func (a Article) published() bool { return a.Status.IsPublished() }

// ParseArticle builds an Article from one file's source with the same
// defaulting rules as ParseProject.
func ParseArticle(source []byte, filename string, opts ...ParseOption) (Article, error) {
	cfg := newParseConfig(opts)
	doc := parseDocument(source, validation.SchemaArticle)
	fields := newFieldReader(doc.meta)

	tags, _ := fields.Strings("tags")
	if tags == nil {
		tags = []string{}
	}

	article := Article{
		Title:    fields.String("title", DefaultTitle),
		Summary:  fields.String("summary", ""),
		Category: fields.String("category", DefaultArticleCategory),
		Tags:     tags,
		Status:   fields.Status("status"),
		Featured: fields.Bool("featured", false),
		Date:     fields.Time("date", cfg.now()),
		Slug:     SlugFromFilename(filename),
		Content:  doc.body,
	}
	return article, newParseError(filename, append(doc.issues, fields.issues...), doc.cause)
}
