package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-portfolio/internal/validation"
)

var (
	ErrUnknownCategory    = errors.New("content: unknown category")
	ErrContentInvalid     = errors.New("content: document has issues")
	ErrFrontMatterInvalid = errors.New("content: frontmatter could not be parsed")
	ErrDuplicateSlug      = errors.New("content: duplicate slug")
)

// ParseError reports the problems found while parsing a single content file.
// The record returned alongside it is still usable: every field that failed
// has its default value.
type ParseError struct {
	File   string
	Issues []validation.ValidationIssue
	// Cause is set when the frontmatter header itself could not be parsed.
	Cause error
}

func (e *ParseError) Error() string {
	parts := make([]string, 0, len(e.Issues)+1)
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	if len(parts) == 0 {
		parts = append(parts, ErrContentInvalid.Error())
	}
	return fmt.Sprintf("%s: %s", e.File, strings.Join(parts, "; "))
}

func (e *ParseError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrFrontMatterInvalid, e.Cause}
	}
	return []error{ErrContentInvalid}
}

// DuplicateSlugError names a file dropped because an earlier file in the same
// directory produced the same slug.
type DuplicateSlugError struct {
	Dir     string
	Slug    string
	Kept    string
	Dropped string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("%s: slug %q from %s already used by %s", e.Dir, e.Slug, e.Dropped, e.Kept)
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

func newParseError(file string, issues []validation.ValidationIssue, cause error) error {
	if len(issues) == 0 && cause == nil {
		return nil
	}
	return &ParseError{File: file, Issues: issues, Cause: cause}
}
