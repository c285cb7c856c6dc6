package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-static-i18n/pkg/interfaces"
)

const (
	rootModule      = "i18n"
	filesModule     = "i18n.files"
	discoveryModule = "i18n.discovery"
	configModule    = "i18n.config"
)

const (
	fieldFilePath = "path"
	fieldLocale   = "locale"
	fieldMatch    = "match"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// FilesLogger returns the logger namespace reserved for file resolution.
func FilesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, filesModule)
}

// DiscoveryLogger returns the logger namespace reserved for the docs walker.
func DiscoveryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, discoveryModule)
}

// ConfigLogger returns the logger namespace reserved for configuration
// loading and validation.
func ConfigLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, configModule)
}

// WithFileContext enriches the provided logger with common resolution fields
// such as source path, matched locale, and match outcome. Empty values are
// ignored.
func WithFileContext(logger interfaces.Logger, path, locale, match string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldFilePath] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	if trimmed := strings.TrimSpace(match); trimmed != "" {
		fields[fieldMatch] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
