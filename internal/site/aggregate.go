package site

import (
	"slices"
	"sort"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/domain"
)

const (
	// FeaturedLimit caps the featured selection.
	FeaturedLimit = 6
	// DefaultRelatedCount is used when RelatedProjects is asked for n <= 0.
	DefaultRelatedCount = 3
)

// CategoryStats counts published projects per category.
type CategoryStats struct {
	PowerBI int `json:"powerbi"`
	Tableau int `json:"tableau"`
	Excel   int `json:"excel"`
	Total   int `json:"total"`
}

// AllProjects returns every published project, newest first.
func (s *Session) AllProjects() []content.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.all.get(func() []content.Project {
		var all []content.Project
		for _, category := range domain.Categories() {
			all = append(all, s.projectsLocked(category)...)
		}
		if all == nil {
			all = []content.Project{}
		}
		content.SortByDate(all)
		return all
	}))
}

// FeaturedProjects returns up to FeaturedLimit featured projects, newest first.
func (s *Session) FeaturedProjects() []content.Project {
	featured := make([]content.Project, 0, FeaturedLimit)
	for _, project := range s.AllProjects() {
		if !project.Featured {
			continue
		}
		featured = append(featured, project)
		if len(featured) == FeaturedLimit {
			break
		}
	}
	return featured
}

func (s *Session) CategoryStats() CategoryStats {
	stats := CategoryStats{
		PowerBI: len(s.Projects(domain.CategoryPowerBI)),
		Tableau: len(s.Projects(domain.CategoryTableau)),
		Excel:   len(s.Projects(domain.CategoryExcel)),
	}
	stats.Total = stats.PowerBI + stats.Tableau + stats.Excel
	return stats
}

// AllTags returns the distinct tags of all published projects, sorted.
func (s *Session) AllTags() []string {
	return distinctSorted(s.AllProjects(), func(p content.Project) []string { return p.Tags })
}

// AllTools returns the distinct tools of all published projects, sorted.
func (s *Session) AllTools() []string {
	return distinctSorted(s.AllProjects(), func(p content.Project) []string { return p.Tools })
}

func (s *Session) ProjectsByTag(tag string) []content.Project {
	return filterProjects(s.AllProjects(), func(p content.Project) bool { return slices.Contains(p.Tags, tag) })
}

func (s *Session) ProjectsByTool(tool string) []content.Project {
	return filterProjects(s.AllProjects(), func(p content.Project) bool { return slices.Contains(p.Tools, tool) })
}

// ProjectBySlug finds a published project. Absence is reported through the
// boolean, never as an error.
func (s *Session) ProjectBySlug(category domain.Category, slug string) (*content.Project, bool) {
	projects := s.Projects(category)
	for i := range projects {
		if projects[i].Slug == slug {
			project := projects[i]
			return &project, true
		}
	}
	return nil, false
}

// ProjectSlugs lists the slugs of the published projects of category.
func (s *Session) ProjectSlugs(category domain.Category) []string {
	projects := s.Projects(category)
	slugs := make([]string, 0, len(projects))
	for _, project := range projects {
		slugs = append(slugs, project.Slug)
	}
	return slugs
}

// ArticleBySlug finds a published article.
func (s *Session) ArticleBySlug(slug string) (*content.Article, bool) {
	articles := s.Articles()
	for i := range articles {
		if articles[i].Slug == slug {
			article := articles[i]
			return &article, true
		}
	}
	return nil, false
}

func (s *Session) ArticleSlugs() []string {
	articles := s.Articles()
	slugs := make([]string, 0, len(articles))
	for _, article := range articles {
		slugs = append(slugs, article.Slug)
	}
	return slugs
}

// Categories returns the static category descriptors.
func (s *Session) Categories() []content.CategoryInfo {
	return content.Categories()
}

func filterProjects(projects []content.Project, keep func(content.Project) bool) []content.Project {
	out := make([]content.Project, 0)
	for _, project := range projects {
		if keep(project) {
			out = append(out, project)
		}
	}
	return out
}

func distinctSorted(projects []content.Project, values func(content.Project) []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, project := range projects {
		for _, value := range values(project) {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			out = append(out, value)
		}
	}
	sort.Strings(out)
	return out
}
