package statici18n

import "github.com/goliatone/go-static-i18n/internal/runtimeconfig"

var (
	ErrLocaleRequired        = runtimeconfig.ErrLocaleRequired
	ErrDefaultLocaleRequired = runtimeconfig.ErrDefaultLocaleRequired
	ErrDocsDirRequired       = runtimeconfig.ErrDocsDirRequired
	ErrLocaleNotConfigured   = runtimeconfig.ErrLocaleNotConfigured
	ErrLoggingLevelInvalid   = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid  = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the baseline single-locale configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromYAML decodes and validates a YAML configuration document.
func ConfigFromYAML(data []byte) (Config, error) {
	return runtimeconfig.FromYAML(data)
}

// LoadConfigFile reads, decodes, and validates a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	return runtimeconfig.LoadFile(path)
}
