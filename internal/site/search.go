package site

import "strings"

// SearchEntryType distinguishes projects from articles in the search index.
type SearchEntryType string

const (
	SearchProject SearchEntryType = "project"
	SearchArticle SearchEntryType = "article"
)

// SearchEntry is the flattened projection served to the client side search.
type SearchEntry struct {
	Type        SearchEntryType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	Category    string          `json:"category"`
}

// SearchIndex lists published projects, newest first, followed by published
// articles.
func (s *Session) SearchIndex() []SearchEntry {
	projects := s.AllProjects()
	articles := s.Articles()

	entries := make([]SearchEntry, 0, len(projects)+len(articles))
	for _, project := range projects {
		entries = append(entries, SearchEntry{
			Type:        SearchProject,
			Title:       project.Title,
			Description: project.Description,
			URL:         project.URL(),
			Category:    project.Category.String(),
		})
	}
	for _, article := range articles {
		entries = append(entries, SearchEntry{
			Type:        SearchArticle,
			Title:       article.Title,
			Description: article.Summary,
			URL:         article.URL(),
			Category:    article.Category,
		})
	}
	return entries
}

// FilterSearch keeps the entries whose title or description contains query,
// ignoring case. An empty query keeps everything.
func FilterSearch(entries []SearchEntry, query string) []SearchEntry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	out := make([]SearchEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Title), query) ||
			strings.Contains(strings.ToLower(entry.Description), query) {
			out = append(out, entry)
		}
	}
	return out
}
