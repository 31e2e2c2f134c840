package runtimeconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	goerrors "github.com/goliatone/go-errors"
)

// EnvPrefix namespaces every environment variable read by Load.
const EnvPrefix = "PORTFOLIO_"

var (
	supportedProviders = []any{"console", "gologger"}
	supportedLevels    = []any{"trace", "debug", "info", "warn", "warning", "error", "fatal"}
	supportedFormats   = []any{"json", "console", "pretty"}
)

// Config aggregates the process settings of the portfolio binary.
type Config struct {
	// ContentDir is the content root holding the category, articles and
	// settings directories.
	ContentDir  string `env:"CONTENT_DIR"`
	OutputDir   string `env:"OUTPUT_DIR"`
	BaseURL     string `env:"BASE_URL"`
	AnalyticsID string `env:"ANALYTICS_ID"`
	Server      ServerConfig
	Markdown    MarkdownConfig
	Logging     LoggingConfig
}

// ServerConfig captures the HTTP listener settings.
type ServerConfig struct {
	Addr           string        `env:"SERVER_ADDR"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions []string `env:"MARKDOWN_EXTENSIONS" envSeparator:","`
	Sanitize   bool     `env:"MARKDOWN_SANITIZE"`
	HardWraps  bool     `env:"MARKDOWN_HARD_WRAPS"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `env:"LOG_PROVIDER"`
	Level     string   `env:"LOG_LEVEL"`
	Format    string   `env:"LOG_FORMAT"`
	AddSource bool     `env:"LOG_ADD_SOURCE"`
	Focus     []string `env:"LOG_FOCUS" envSeparator:","`
}

// DefaultConfig returns the settings used when the environment is silent.
func DefaultConfig() Config {
	return Config{
		ContentDir: "content",
		OutputDir:  "public",
		BaseURL:    "http://localhost:8080",
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: 15 * time.Second,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify", "tasklist"},
			Sanitize:   true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Load overlays PORTFOLIO_* environment variables on DefaultConfig and
// validates the result.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load reading from environment instead of the process
// environment when environment is not nil.
func LoadFrom(environment map[string]string) (Config, error) {
	cfg := DefaultConfig()
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("portfolio config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and reports every invalid field at once
// as a go-errors validation error.
func (cfg Config) Validate() error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.ContentDir, validation.Required, validation.By(notBlank)),
		validation.Field(&cfg.BaseURL, is.URL),
		validation.Field(&cfg.Server),
		validation.Field(&cfg.Logging),
	)
	if err != nil {
		return goerrors.FromOzzoValidation(err, "portfolio config is invalid").
			WithTextCode("CONFIG_INVALID")
	}
	return nil
}

func (c ServerConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.RequestTimeout, validation.Min(time.Duration(0))),
	)
}

func (c LoggingConfig) Validate() error {
	normalized := LoggingConfig{
		Provider: normalize(c.Provider),
		Level:    normalize(c.Level),
		Format:   normalize(c.Format),
	}
	return validation.ValidateStruct(&normalized,
		validation.Field(&normalized.Provider, validation.In(supportedProviders...)),
		validation.Field(&normalized.Level, validation.In(supportedLevels...)),
		validation.Field(&normalized.Format, validation.In(supportedFormats...)),
	)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func notBlank(value any) error {
	text, _ := value.(string)
	if text != "" && strings.TrimSpace(text) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}
