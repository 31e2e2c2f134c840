// Package markdown reads CMS-authored Markdown files: it splits the YAML
// frontmatter from the body while preserving key order, flattens the field
// groups the CMS editor emits, lists content directories and renders bodies
// to HTML through goldmark.
package markdown
