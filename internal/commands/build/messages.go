package buildcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	validateContentMessageType   = "portfolio.content.validate"
	buildSitemapMessageType      = "portfolio.sitemap.build"
	exportSearchIndexMessageType = "portfolio.search_index.export"
)

// ValidateContentCommand reads every project, article and settings document
// and fails when any of them would be dropped or replaced at runtime.
type ValidateContentCommand struct {
	// ContentDir overrides the content root the handler was built with.
	ContentDir string `json:"content_dir,omitempty"`
	// Strict also fails on settings documents that would fall back to defaults.
	// Without it those are only logged.
	Strict bool `json:"strict,omitempty"`
}

// Type implements command.Message.
func (ValidateContentCommand) Type() string { return validateContentMessageType }

// Validate rejects a content dir made of whitespace.
func (cmd ValidateContentCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ContentDir, validation.By(notBlank("portfolio.content.validate.content_dir_blank", "content dir cannot be blank"))),
	)
}

// BuildSitemapCommand writes sitemap.xml and robots.txt into Output.
type BuildSitemapCommand struct {
	Output  string `json:"output"`
	BaseURL string `json:"base_url"`
}

// Type implements command.Message.
func (BuildSitemapCommand) Type() string { return buildSitemapMessageType }

func (cmd BuildSitemapCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Output, validation.Required, validation.By(notBlank("portfolio.sitemap.build.output_required", "output is required"))),
		validation.Field(&cmd.BaseURL, validation.Required, is.URL),
	)
}

// ExportSearchIndexCommand writes the search index JSON into Output. File
// defaults to search-index.json.
type ExportSearchIndexCommand struct {
	Output string `json:"output"`
	File   string `json:"file,omitempty"`
}

// Type implements command.Message.
func (ExportSearchIndexCommand) Type() string { return exportSearchIndexMessageType }

func (cmd ExportSearchIndexCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Output, validation.Required, validation.By(notBlank("portfolio.search_index.export.output_required", "output is required"))),
		validation.Field(&cmd.File, validation.By(func(value any) error {
			name, _ := value.(string)
			if name == "" {
				return nil
			}
			if strings.ContainsAny(name, `/\`) || !strings.HasSuffix(name, ".json") {
				return validation.NewError("portfolio.search_index.export.file_invalid", "file must be a bare .json file name")
			}
			return nil
		})),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		text, _ := value.(string)
		if text != "" && strings.TrimSpace(text) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
