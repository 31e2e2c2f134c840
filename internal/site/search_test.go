package site

import (
	"context"
	"reflect"
	"testing"
	"testing/fstest"
	"time"
)

func newContentService(tb testing.TB, files map[string]string) *Service {
	tb.Helper()
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return NewService(fsys, Config{Now: func() time.Time { return fixedNow }})
}

func TestSearchIndexProjection(t *testing.T) {
	svc := newContentService(t, map[string]string{
		"powerbi/revenue.md": "---\ntitle: Revenue Model\ndescription: Monthly revenue\nstatus: published\ndate: 2024-02-01\n---\n",
		"excel/budget.md":    "---\ntitle: Budget\ndescription: Planning workbook\nstatus: published\ndate: 2024-03-01\n---\n",
		"excel/draft.md":     "---\ntitle: Hidden\n---\n",
		"articles/kpis.md":   "---\ntitle: Choosing KPIs\nsummary: What to measure\ncategory: Strategy\nstatus: published\ndate: 2024-01-01\n---\n",
		"articles/unsent.md": "---\ntitle: Unsent\nstatus: draft\n---\n",
	})
	session := svc.NewSession(context.Background(), "")

	got := session.SearchIndex()
	want := []SearchEntry{
		{Type: SearchProject, Title: "Budget", Description: "Planning workbook", URL: "/excel/budget", Category: "excel"},
		{Type: SearchProject, Title: "Revenue Model", Description: "Monthly revenue", URL: "/powerbi/revenue", Category: "powerbi"},
		{Type: SearchArticle, Title: "Choosing KPIs", Description: "What to measure", URL: "/articles/kpis", Category: "Strategy"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected index\n got: %#v\nwant: %#v", got, want)
	}
}

func TestFilterSearch(t *testing.T) {
	entries := []SearchEntry{
		{Title: "Revenue Model", Description: "Monthly revenue"},
		{Title: "Budget", Description: "Planning workbook"},
		{Title: "Choosing KPIs", Description: "What to measure"},
	}

	if got := FilterSearch(entries, "  "); len(got) != 3 {
		t.Fatalf("expected empty query to keep everything, got %d", len(got))
	}
	got := FilterSearch(entries, "REVENUE")
	if len(got) != 1 || got[0].Title != "Revenue Model" {
		t.Fatalf("unexpected title match %#v", got)
	}
	got = FilterSearch(entries, "workbook")
	if len(got) != 1 || got[0].Title != "Budget" {
		t.Fatalf("unexpected description match %#v", got)
	}
	if got := FilterSearch(entries, "forecast"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestStaticPaths(t *testing.T) {
	svc := newContentService(t, map[string]string{
		"tableau/b.md":     "---\nstatus: published\norder: 2\n---\n",
		"tableau/a.md":     "---\nstatus: published\norder: 1\n---\n",
		"powerbi/c.md":     "---\nstatus: published\n---\n",
		"articles/d.md":    "---\nstatus: published\n---\n",
		"articles/skip.md": "---\n---\n",
	})
	session := svc.NewSession(context.Background(), "")

	var routes []string
	for _, path := range session.StaticPaths() {
		routes = append(routes, path.Route)
	}
	want := []string{"/powerbi/c", "/tableau/a", "/tableau/b", "/articles/d"}
	if !reflect.DeepEqual(routes, want) {
		t.Fatalf("expected %v, got %v", want, routes)
	}
	if got := newContentService(t, nil).NewSession(context.Background(), "").StaticPaths(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty, non-nil paths, got %#v", got)
	}
}
