package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

const groupedProject = `---
basic_info:
  title: Sales Dashboard
  description: Regional revenue overview
media:
  thumbnail: /images/sales.png
  video: /videos/sales.mp4
categorization:
  tools: [Power BI, DAX]
  tags: [finance]
display:
  order: 2
  status: published
  featured: true
date: 2024-06-01
---
# Sales Dashboard

Body text.
`

func TestParseFrontMatter(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte(groupedProject))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	wantKeys := []string{"basic_info", "media", "categorization", "display", "date"}
	if got := fm.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("expected keys %v, got %v", wantKeys, got)
	}

	media, ok := fm.Get("media")
	if !ok {
		t.Fatalf("expected media group")
	}
	group, ok := media.(FrontMatter)
	if !ok {
		t.Fatalf("expected media to decode as FrontMatter, got %T", media)
	}
	if got := group.Keys(); !reflect.DeepEqual(got, []string{"thumbnail", "video"}) {
		t.Fatalf("expected media keys in document order, got %v", got)
	}
	if !strings.Contains(string(body), "# Sales Dashboard") {
		t.Fatalf("markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatter_NoHeader(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("# Just markdown\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Len() != 0 {
		t.Fatalf("expected empty frontmatter, got %v", fm.Keys())
	}
	if string(body) != "# Just markdown\n" {
		t.Fatalf("expected full body, got %q", string(body))
	}
}

func TestParseFrontMatter_InvalidYAML(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	if err == nil {
		t.Fatalf("expected error for malformed frontmatter")
	}
}

func TestParseFrontMatter_NotMapping(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\n- one\n- two\n---\nbody\n"))
	if err == nil || !strings.Contains(err.Error(), "mapping") {
		t.Fatalf("expected mapping error, got %v", err)
	}
}

func TestFrontMatterMapConvertsNestedValues(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte(groupedProject))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	plain := fm.Map()
	display, ok := plain["display"].(map[string]any)
	if !ok {
		t.Fatalf("expected display to be a plain map, got %T", plain["display"])
	}
	if display["order"] != 2 {
		t.Fatalf("expected order 2, got %#v", display["order"])
	}
}

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestGoldmarkParser_Sanitize(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("Hello <script>alert(1)</script> world"), interfaces.ParseOptions{
		Sanitize: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected script tag to be removed, got %q", string(html))
	}
}
