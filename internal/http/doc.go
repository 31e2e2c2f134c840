// Package http serves the portfolio content layer as a read-only JSON API.
//
// Every request gets its own site.Session, so a document is parsed at most
// once per request and edits on disk show up on the next request.
//
// Routes:
//   - Health: /healthz
//   - Projects: /api/projects, /api/projects/featured, /api/projects/stats,
//     /api/projects/{category}, /api/projects/{category}/{slug}
//   - Taxonomy: /api/categories, /api/categories/{id}, /api/tags,
//     /api/tags/{tag}, /api/tools, /api/tools/{tool}
//   - Articles: /api/articles, /api/articles/{slug}
//   - Settings: /api/settings/{name} for site, hero, navigation, skills,
//     about and profile
//   - Build data: /api/search, /api/paths, /sitemap.xml, /robots.txt
package http
