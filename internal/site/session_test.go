package site

import (
	"context"
	"fmt"
	"io/fs"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-portfolio/internal/content"
	"github.com/goliatone/go-portfolio/internal/domain"
)

var fixedNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type countingFS struct {
	fs    fs.FS
	opens atomic.Int64
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.fs.Open(name)
}

type projectFixture struct {
	path     string
	status   string
	order    int
	date     string
	featured bool
	tools    []string
	tags     []string
	title    string
}

func (p projectFixture) file() *fstest.MapFile {
	var b strings.Builder
	b.WriteString("---\n")
	if p.title != "" {
		fmt.Fprintf(&b, "title: %s\n", p.title)
	}
	status := p.status
	if status == "" {
		status = "published"
	}
	fmt.Fprintf(&b, "status: %s\norder: %d\nfeatured: %t\n", status, p.order, p.featured)
	if p.date != "" {
		fmt.Fprintf(&b, "date: %s\n", p.date)
	}
	if p.tools != nil {
		fmt.Fprintf(&b, "tools: [%s]\n", strings.Join(p.tools, ", "))
	}
	if p.tags != nil {
		fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(p.tags, ", "))
	}
	b.WriteString("---\nBody\n")
	return &fstest.MapFile{Data: []byte(b.String())}
}

func newTestService(tb testing.TB, fixtures ...projectFixture) (*Service, *countingFS) {
	tb.Helper()
	fsys := fstest.MapFS{}
	for _, fixture := range fixtures {
		fsys[fixture.path] = fixture.file()
	}
	counting := &countingFS{fs: fsys}
	return NewService(counting, Config{Now: func() time.Time { return fixedNow }}), counting
}

func projectSlugs(projects []content.Project) []string {
	out := make([]string, len(projects))
	for i, project := range projects {
		out[i] = project.Slug
	}
	return out
}

func TestAllProjectsSortedByDateAcrossCategories(t *testing.T) {
	svc, _ := newTestService(t,
		projectFixture{path: "powerbi/p1.md", order: 0, date: "2024-01-01"},
		projectFixture{path: "tableau/t1.md", order: 5, date: "2024-03-01"},
		projectFixture{path: "excel/e1.md", order: 1, date: "2024-02-01"},
		projectFixture{path: "excel/e2.md", status: "draft", date: "2024-12-01"},
	)
	session := svc.NewSession(context.Background(), "")

	got := projectSlugs(session.AllProjects())
	want := []string{"t1", "e1", "p1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDraftsNeverExposed(t *testing.T) {
	svc, _ := newTestService(t,
		projectFixture{path: "powerbi/live.md", date: "2024-01-01", tags: []string{"x"}, tools: []string{"DAX"}, featured: true},
		projectFixture{path: "powerbi/hidden.md", status: "draft", date: "2024-01-02", tags: []string{"x"}, tools: []string{"DAX"}, featured: true},
	)
	session := svc.NewSession(context.Background(), "")

	check := func(name string, projects []content.Project) {
		for _, project := range projects {
			if project.Slug == "hidden" {
				t.Fatalf("%s exposed a draft project", name)
			}
		}
	}
	check("AllProjects", session.AllProjects())
	check("FeaturedProjects", session.FeaturedProjects())
	check("ProjectsByTag", session.ProjectsByTag("x"))
	check("ProjectsByTool", session.ProjectsByTool("DAX"))
	check("Projects", session.Projects(domain.CategoryPowerBI))
	if _, ok := session.ProjectBySlug(domain.CategoryPowerBI, "hidden"); ok {
		t.Fatalf("ProjectBySlug exposed a draft project")
	}
	for _, slug := range session.ProjectSlugs(domain.CategoryPowerBI) {
		if slug == "hidden" {
			t.Fatalf("ProjectSlugs exposed a draft project")
		}
	}
	for _, entry := range session.SearchIndex() {
		if strings.HasSuffix(entry.URL, "/hidden") {
			t.Fatalf("SearchIndex exposed a draft project")
		}
	}
	if stats := session.CategoryStats(); stats.PowerBI != 1 || stats.Total != 1 {
		t.Fatalf("unexpected stats %#v", stats)
	}
}

func TestFeaturedProjectsCap(t *testing.T) {
	var fixtures []projectFixture
	for i := 1; i <= 10; i++ {
		category := domain.Categories()[i%3]
		fixtures = append(fixtures, projectFixture{
			path:     fmt.Sprintf("%s/p%02d.md", category, i),
			date:     fmt.Sprintf("2024-%02d-01", i),
			featured: true,
		})
	}
	svc, _ := newTestService(t, fixtures...)
	session := svc.NewSession(context.Background(), "")

	featured := session.FeaturedProjects()
	if len(featured) != FeaturedLimit {
		t.Fatalf("expected %d featured projects, got %d", FeaturedLimit, len(featured))
	}
	want := []string{"p10", "p09", "p08", "p07", "p06", "p05"}
	if got := projectSlugs(featured); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected the six most recent %v, got %v", want, got)
	}
}

func TestTagAndToolIndexesSortedAndDistinct(t *testing.T) {
	svc, _ := newTestService(t,
		projectFixture{path: "powerbi/a.md", date: "2024-01-01", tags: []string{"sales", "kpi"}, tools: []string{"Power BI", "DAX"}},
		projectFixture{path: "tableau/b.md", date: "2024-01-02", tags: []string{"kpi", "churn"}, tools: []string{"Tableau", "SQL"}},
		projectFixture{path: "excel/c.md", date: "2024-01-03", tags: []string{"sales"}, tools: []string{"SQL", "Excel"}},
	)
	session := svc.NewSession(context.Background(), "")

	if got, want := session.AllTags(), []string{"churn", "kpi", "sales"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected tags %v, got %v", want, got)
	}
	if got, want := session.AllTools(), []string{"DAX", "Excel", "Power BI", "SQL", "Tableau"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected tools %v, got %v", want, got)
	}
	if got := projectSlugs(session.ProjectsByTag("sales")); !reflect.DeepEqual(got, []string{"c", "a"}) {
		t.Fatalf("unexpected tag lookup %v", got)
	}
	if got := projectSlugs(session.ProjectsByTool("SQL")); !reflect.DeepEqual(got, []string{"c", "b"}) {
		t.Fatalf("unexpected tool lookup %v", got)
	}
	if got := session.ProjectsByTag("missing"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty result for unknown tag, got %#v", got)
	}
}

func TestProjectBySlug(t *testing.T) {
	svc, _ := newTestService(t, projectFixture{path: "excel/Q3-Report.MD", date: "2024-01-01", title: "Q3"})
	session := svc.NewSession(context.Background(), "")

	project, ok := session.ProjectBySlug(domain.CategoryExcel, "q3-report")
	if !ok || project == nil || project.Title != "Q3" {
		t.Fatalf("expected to find q3-report, got %#v %v", project, ok)
	}
	if project, ok := session.ProjectBySlug(domain.CategoryTableau, "q3-report"); ok || project != nil {
		t.Fatalf("expected nil, false for another category")
	}
	if _, ok := session.ProjectBySlug(domain.Category("sql"), "q3-report"); ok {
		t.Fatalf("expected unknown category to report not found")
	}
}

func TestSessionMemoizesReads(t *testing.T) {
	svc, counting := newTestService(t,
		projectFixture{path: "powerbi/a.md", date: "2024-01-01"},
		projectFixture{path: "tableau/b.md", date: "2024-01-02"},
	)
	session := svc.NewSession(context.Background(), "req-1")

	first := session.AllProjects()
	session.Hero()
	opens := counting.opens.Load()
	if opens == 0 {
		t.Fatalf("expected the first call to read the filesystem")
	}

	second := session.AllProjects()
	session.Projects(domain.CategoryPowerBI)
	session.Hero()
	session.FeaturedProjects()
	session.AllTags()
	if counting.opens.Load() != opens {
		t.Fatalf("expected memoized calls to avoid the filesystem, opens went from %d to %d", opens, counting.opens.Load())
	}
	if len(first) != len(second) || first[0].Slug != second[0].Slug {
		t.Fatalf("expected memoized results to match, got %v and %v", first, second)
	}

	fresh := svc.NewSession(context.Background(), "req-2")
	fresh.AllProjects()
	if counting.opens.Load() == opens {
		t.Fatalf("expected a new session to read the filesystem again")
	}
}

func TestSessionResultsDoNotAliasCache(t *testing.T) {
	svc, _ := newTestService(t,
		projectFixture{path: "powerbi/a.md", date: "2024-01-01"},
		projectFixture{path: "powerbi/b.md", date: "2024-06-01"},
	)
	session := svc.NewSession(context.Background(), "req-1")

	all := session.AllProjects()
	all[0], all[1] = all[1], all[0]
	all[0].Title = "edited"
	byCategory := session.Projects(domain.CategoryPowerBI)
	byCategory[0] = byCategory[1]

	again := session.AllProjects()
	if again[0].Slug != "b" || again[0].Title == "edited" {
		t.Fatalf("caller edits leaked into the session cache: %#v", again)
	}
	if got := session.ProjectSlugs(domain.CategoryPowerBI); len(got) != 2 || got[0] == got[1] {
		t.Fatalf("caller edits leaked into the category cache: %v", got)
	}
}

func TestSessionSeesNewContent(t *testing.T) {
	fsys := fstest.MapFS{
		"powerbi/a.md": projectFixture{date: "2024-01-01"}.file(),
	}
	svc := NewService(fsys, Config{})

	before := svc.NewSession(context.Background(), "")
	if len(before.AllProjects()) != 1 {
		t.Fatalf("expected one project")
	}

	fsys["powerbi/b.md"] = projectFixture{date: "2024-01-02"}.file()
	if len(before.AllProjects()) != 1 {
		t.Fatalf("an open session must keep its snapshot")
	}
	after := svc.NewSession(context.Background(), "")
	if len(after.AllProjects()) != 2 {
		t.Fatalf("a new session must see the new file")
	}
}

func TestSessionConcurrentAccess(t *testing.T) {
	svc, _ := newTestService(t,
		projectFixture{path: "powerbi/a.md", date: "2024-01-01", tags: []string{"x"}},
		projectFixture{path: "excel/b.md", date: "2024-01-02", tags: []string{"x"}},
	)
	session := svc.NewSession(context.Background(), "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session.AllProjects()
			session.ProjectsByTag("x")
			session.CategoryStats()
			session.Navigation()
		}()
	}
	wg.Wait()
	if len(session.AllProjects()) != 2 {
		t.Fatalf("unexpected project count")
	}
}

func TestSessionContextHelpers(t *testing.T) {
	svc, _ := newTestService(t)
	session := svc.NewSession(context.Background(), "abc")
	if session.ID() != "abc" {
		t.Fatalf("expected explicit id, got %q", session.ID())
	}
	ctx := WithSession(context.Background(), session)
	got, ok := FromContext(ctx)
	if !ok || got != session {
		t.Fatalf("expected session from context")
	}
	if _, ok := FromContext(context.Background()); ok {
		t.Fatalf("expected no session in empty context")
	}
	if generated := svc.NewSession(context.Background(), ""); generated.ID() == "" {
		t.Fatalf("expected generated id")
	}
}
