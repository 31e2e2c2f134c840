package site

import (
	"time"

	"github.com/goliatone/go-portfolio/internal/domain"
)

// StaticPath is one pre-renderable content route.
type StaticPath struct {
	// Category is the project category, or "articles" for articles.
	Category string    `json:"category"`
	Slug     string    `json:"slug"`
	Route    string    `json:"route"`
	Updated  time.Time `json:"updated"`
}

const articlesSection = "articles"

// StaticPaths lists every project route, category by category in canonical
// order, followed by every article route.
func (s *Session) StaticPaths() []StaticPath {
	var paths []StaticPath
	for _, category := range domain.Categories() {
		for _, project := range s.Projects(category) {
			paths = append(paths, StaticPath{
				Category: category.String(),
				Slug:     project.Slug,
				Route:    project.URL(),
				Updated:  project.Date,
			})
		}
	}
	for _, article := range s.Articles() {
		paths = append(paths, StaticPath{
			Category: articlesSection,
			Slug:     article.Slug,
			Route:    article.URL(),
			Updated:  article.Date,
		})
	}
	if paths == nil {
		paths = []StaticPath{}
	}
	return paths
}
