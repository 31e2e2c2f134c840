package domain

import "strings"

// Status represents the publication state of a content file.
type Status string

const (
	// StatusDraft marks content that is still being prepared and never exposed.
	StatusDraft Status = "draft"
	// StatusPublished marks content visible to site visitors.
	StatusPublished Status = "published"
)

// ParseStatus maps a raw frontmatter value onto a Status. Matching is exact:
// anything other than "draft" or "published", including "Published", reports
// ok=false and resolves to draft.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusPublished:
		return StatusPublished, true
	case StatusDraft:
		return StatusDraft, true
	default:
		return StatusDraft, false
	}
}

// IsPublished reports whether the status exposes content publicly.
func (s Status) IsPublished() bool {
	return s == StatusPublished
}

// Category partitions projects by the analytics tool they showcase. It doubles
// as the storage directory and the URL segment.
type Category string

const (
	CategoryPowerBI Category = "powerbi"
	CategoryTableau Category = "tableau"
	CategoryExcel   Category = "excel"
)

// Categories enumerates the closed set of supported categories in display order.
func Categories() []Category {
	return []Category{CategoryPowerBI, CategoryTableau, CategoryExcel}
}

// ParseCategory validates a raw category identifier.
func ParseCategory(value string) (Category, bool) {
	candidate := Category(strings.ToLower(strings.TrimSpace(value)))
	if candidate.Valid() {
		return candidate, true
	}
	return "", false
}

// Valid reports whether the category belongs to the supported set.
func (c Category) Valid() bool {
	switch c {
	case CategoryPowerBI, CategoryTableau, CategoryExcel:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}
