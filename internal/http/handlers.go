package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/domain"
	"github.com/goliatone/go-portfolio/internal/generator"
	"github.com/goliatone/go-portfolio/internal/settings"
	"github.com/goliatone/go-portfolio/internal/site"
)

const maxRelated = 12

type projectDetail struct {
	content.Project
	HTML    string            `json:"html"`
	Related []content.Project `json:"related"`
}

type articleDetail struct {
	content.Article
	HTML string `json:"html"`
}

type siteSettings struct {
	settings.Site
	AnalyticsID string `json:"analytics_id,omitempty"`
}

func (api *PublicAPI) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (api *PublicAPI) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).Categories())
}

func (api *PublicAPI) handleCategory(w http.ResponseWriter, r *http.Request) {
	raw := pathParam(r, "id")
	category, ok := domain.ParseCategory(raw)
	if !ok {
		api.writeError(w, r, notFound("category", raw))
		return
	}
	info, ok := content.CategoryInfoFor(category)
	if !ok {
		api.writeError(w, r, notFound("category", raw))
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (api *PublicAPI) handleProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).AllProjects())
}

func (api *PublicAPI) handleFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).FeaturedProjects())
}

func (api *PublicAPI) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).CategoryStats())
}

func (api *PublicAPI) handleCategoryProjects(w http.ResponseWriter, r *http.Request) {
	category, ok := domain.ParseCategory(pathParam(r, "category"))
	if !ok {
		api.writeError(w, r, notFound("category", pathParam(r, "category")))
		return
	}
	writeJSON(w, http.StatusOK, api.session(r).Projects(category))
}

// handleProject serves one project with its rendered body and related
// projects. ?related=n changes how many are returned.
func (api *PublicAPI) handleProject(w http.ResponseWriter, r *http.Request) {
	raw := pathParam(r, "category")
	category, ok := domain.ParseCategory(raw)
	if !ok {
		api.writeError(w, r, notFound("category", raw))
		return
	}
	slug := pathParam(r, "slug")
	session := api.session(r)
	project, ok := session.ProjectBySlug(category, slug)
	if !ok {
		api.writeError(w, r, notFound("project", category.String()+"/"+slug))
		return
	}

	html, err := api.renderer.Parse([]byte(project.Content))
	if err != nil {
		api.writeError(w, r, renderFailed(err))
		return
	}
	writeJSON(w, http.StatusOK, projectDetail{
		Project: *project,
		HTML:    string(html),
		Related: session.RelatedProjects(*project, relatedCount(r)),
	})
}

func relatedCount(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("related"))
	if err != nil || n <= 0 {
		return site.DefaultRelatedCount
	}
	return min(n, maxRelated)
}

func (api *PublicAPI) handleTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).AllTags())
}

func (api *PublicAPI) handleTag(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).ProjectsByTag(pathParam(r, "tag")))
}

func (api *PublicAPI) handleTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).AllTools())
}

func (api *PublicAPI) handleTool(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).ProjectsByTool(pathParam(r, "tool")))
}

func (api *PublicAPI) handleArticles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.session(r).Articles())
}

func (api *PublicAPI) handleArticle(w http.ResponseWriter, r *http.Request) {
	slug := pathParam(r, "slug")
	article, ok := api.session(r).ArticleBySlug(slug)
	if !ok {
		api.writeError(w, r, notFound("article", slug))
		return
	}
	html, err := api.renderer.Parse([]byte(article.Content))
	if err != nil {
		api.writeError(w, r, renderFailed(err))
		return
	}
	writeJSON(w, http.StatusOK, articleDetail{Article: *article, HTML: string(html)})
}

func (api *PublicAPI) handleSettings(w http.ResponseWriter, r *http.Request) {
	session := api.session(r)
	name := strings.ToLower(pathParam(r, "name"))

	var payload any
	switch name {
	case "site", "general":
		payload = siteSettings{Site: session.Site(), AnalyticsID: api.analyticsID}
	case "hero":
		payload = session.Hero()
	case "navigation":
		payload = session.Navigation()
	case "skills":
		payload = session.Skills()
	case "about":
		payload = session.About()
	case "profile":
		payload = session.Profile()
	default:
		api.writeError(w, r, notFound("settings", name))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// handleSearch serves the search index, filtered by ?q= when present.
func (api *PublicAPI) handleSearch(w http.ResponseWriter, r *http.Request) {
	entries := api.session(r).SearchIndex()
	if query := r.URL.Query().Get("q"); strings.TrimSpace(query) != "" {
		entries = site.FilterSearch(entries, query)
	}
	writeJSON(w, http.StatusOK, entries)
}

func (api *PublicAPI) handlePaths(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, generator.StaticFiles(api.session(r).StaticPaths()))
}

func (api *PublicAPI) handleSitemap(w http.ResponseWriter, r *http.Request) {
	entries := generator.SitemapEntries(api.session(r).StaticPaths())
	writeText(w, "application/xml; charset=utf-8", generator.BuildSitemap(api.baseURL, entries, api.now()))
}

func (api *PublicAPI) handleRobots(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "text/plain; charset=utf-8", generator.BuildRobots(api.baseURL))
}
