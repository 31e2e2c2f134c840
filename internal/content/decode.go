package content

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/domain"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/validation"
)

// dateLayouts lists the textual date formats accepted in frontmatter.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a frontmatter date string using the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}

// fieldReader decodes typed values out of normalized frontmatter. Type
// mismatches are left to schema validation to report; the reader only falls
// back to the supplied default. Problems the schema cannot express (such as an
// unparseable date) are collected as issues.
type fieldReader struct {
	fm     markdown.FrontMatter
	issues []validation.ValidationIssue
}

func newFieldReader(fm markdown.FrontMatter) *fieldReader {
	return &fieldReader{fm: fm}
}

func (r *fieldReader) value(key string) (any, bool) {
	value, ok := r.fm.Get(key)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

func (r *fieldReader) addIssue(key, format string, args ...any) {
	r.issues = append(r.issues, validation.ValidationIssue{
		Location: "/" + key,
		Message:  fmt.Sprintf(format, args...),
	})
}

// String returns the value under key, or fallback when it is absent, empty
// or not a string.
func (r *fieldReader) String(key, fallback string) string {
	value, ok := r.value(key)
	if !ok {
		return fallback
	}
	text, ok := value.(string)
	if !ok || text == "" {
		return fallback
	}
	return text
}

// Strings returns a string sequence. Non-string items are skipped. The second
// result reports whether a sequence was present at all.
func (r *fieldReader) Strings(key string) ([]string, bool) {
	value, ok := r.value(key)
	if !ok {
		return nil, false
	}
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := item.(string); ok {
			out = append(out, text)
		}
	}
	return out, true
}

func (r *fieldReader) Int(key string, fallback int) int {
	value, ok := r.value(key)
	if !ok {
		return fallback
	}
	switch typed := value.(type) {
	case int:
		return typed
	case int64:
		return int(typed)
	case uint64:
		if typed <= math.MaxInt {
			return int(typed)
		}
	case float64:
		if typed == math.Trunc(typed) {
			return int(typed)
		}
	}
	return fallback
}

func (r *fieldReader) Bool(key string, fallback bool) bool {
	value, ok := r.value(key)
	if !ok {
		return fallback
	}
	if flag, ok := value.(bool); ok {
		return flag
	}
	return fallback
}

func (r *fieldReader) Status(key string) domain.Status {
	text, ok := r.fm.Get(key)
	if !ok || text == nil {
		return domain.StatusDraft
	}
	raw, ok := text.(string)
	if !ok {
		return domain.StatusDraft
	}
	status, _ := domain.ParseStatus(raw)
	return status
}

// Time accepts YAML timestamps and strings in any of dateLayouts.
func (r *fieldReader) Time(key string, fallback time.Time) time.Time {
	value, ok := r.value(key)
	if !ok {
		return fallback
	}
	switch typed := value.(type) {
	case time.Time:
		return typed
	case string:
		if strings.TrimSpace(typed) == "" {
			return fallback
		}
		parsed, err := ParseDate(typed)
		if err != nil {
			r.addIssue(key, "%v", err)
			return fallback
		}
		return parsed
	}
	return fallback
}
