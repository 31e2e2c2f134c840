package generator

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/site"
)

// SectionRoutes are the fixed listing pages always present in the sitemap.
var SectionRoutes = []string{"/", "/powerbi", "/tableau", "/excel", "/articles", "/skills"}

// SitemapEntry is one route in sitemap.xml. A zero LastMod uses the build time.
type SitemapEntry struct {
	Route   string
	LastMod time.Time
}

// SitemapEntries combines the section routes with the content routes.
func SitemapEntries(paths []site.StaticPath) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(SectionRoutes)+len(paths))
	for _, route := range SectionRoutes {
		entries = append(entries, SitemapEntry{Route: route})
	}
	for _, p := range paths {
		entries = append(entries, SitemapEntry{Route: p.Route, LastMod: p.Updated})
	}
	return entries
}

type sitemapEntry struct {
	Location string
	LastMod  time.Time
}

// BuildSitemap renders sitemap.xml for baseURL. Duplicate routes are written
// once and locations are sorted.
func BuildSitemap(baseURL string, routes []SitemapEntry, fallback time.Time) string {
	base := normalizeBaseURL(baseURL)

	entries := make([]sitemapEntry, 0, len(routes))
	seen := map[string]struct{}{}
	for _, entry := range routes {
		route := strings.TrimSpace(entry.Route)
		if route == "" {
			route = "/"
		}
		if !strings.HasPrefix(route, "/") {
			route = "/" + route
		}
		location := base + route
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}
		lastMod := entry.LastMod
		if lastMod.IsZero() {
			lastMod = fallback
		}
		entries = append(entries, sitemapEntry{
			Location: location,
			LastMod:  lastMod,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Location < entries[j].Location
	})

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", escapeXML(entry.Location)))
		if !entry.LastMod.IsZero() {
			builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339)))
		}
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

// BuildRobots renders robots.txt pointing crawlers at the sitemap.
func BuildRobots(baseURL string) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", normalizeBaseURL(baseURL)))
	return builder.String()
}

func normalizeBaseURL(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "http://localhost"
	}
	return base
}

func escapeXML(value string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(value)); err != nil {
		return value
	}
	return buf.String()
}
