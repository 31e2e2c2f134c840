package portfolio

import "github.com/goliatone/go-portfolio/internal/runtimeconfig"

type (
	Config         = runtimeconfig.Config
	ServerConfig   = runtimeconfig.ServerConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// EnvPrefix namespaces the environment variables read by LoadConfig.
const EnvPrefix = runtimeconfig.EnvPrefix

// DefaultConfig returns the settings used when the environment is silent.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads PORTFOLIO_* variables over DefaultConfig and validates
// the result.
func LoadConfig() (Config, error) {
	return runtimeconfig.Load()
}
