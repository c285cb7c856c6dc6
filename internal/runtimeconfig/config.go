// Package runtimeconfig holds the build-scoped configuration consumed by
// locale resolution: the requested and default locales, the configured
// locale set, directory locations, and the URL-style flag.
package runtimeconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-static-i18n/internal/locale"
)

var ErrLocaleRequired = errors.New("statici18n config: requested locale is required")
var ErrDefaultLocaleRequired = errors.New("statici18n config: default locale is required")
var ErrDocsDirRequired = errors.New("statici18n config: docs directory is required")
var ErrLocaleNotConfigured = errors.New("statici18n config: locale is not part of the configured locale set")
var ErrLoggingLevelInvalid = errors.New("statici18n config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("statici18n config: logging format is invalid")

// Config aggregates the settings for one locale build pass. Fields use
// simple types so host applications can extend them later.
type Config struct {
	// Locale is the locale being built; it governs output locations even
	// when content falls back to another variant.
	Locale string `yaml:"locale"`
	// DefaultLocale is the fallback content source when the requested
	// variant is absent.
	DefaultLocale string `yaml:"default_locale"`
	// Locales enumerates every configured locale, in priority order for
	// suffix detection. The default locale is added when missing.
	Locales []string `yaml:"locales"`

	DocsDir string `yaml:"docs_dir"`
	SiteDir string `yaml:"site_dir"`

	// UseDirectoryURLs selects the clean-URL convention (name/index.html).
	// Nil means enabled.
	UseDirectoryURLs *bool `yaml:"use_directory_urls"`

	// IncludeDrafts keeps draft pages during discovery.
	IncludeDrafts bool `yaml:"include_drafts"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig mirrors the options accepted by the go-logger provider.
type LoggingConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns the baseline configuration: English-only docs under
// ./docs rendered to ./site with directory-style URLs.
func DefaultConfig() Config {
	return Config{
		Locale:        "en",
		DefaultLocale: "en",
		Locales:       []string{"en"},
		DocsDir:       "docs",
		SiteDir:       "site",
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "console",
		},
	}
}

// DirectoryURLs resolves the URL-style flag, defaulting to enabled.
func (c Config) DirectoryURLs() bool {
	return c.UseDirectoryURLs == nil || *c.UseDirectoryURLs
}

// AllLocales returns the configured locale set with the requested and
// default locales guaranteed present, preserving configured order.
func (c Config) AllLocales() []string {
	out := append([]string(nil), c.Locales...)
	for _, code := range []string{c.DefaultLocale, c.Locale} {
		if code != "" && !slices.Contains(out, code) {
			out = append(out, code)
		}
	}
	return out
}

// Validate checks structural requirements and locale code syntax. Locale
// syntax is enforced here and nowhere else; resolution trusts its inputs.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		return ErrLocaleRequired
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if strings.TrimSpace(c.DocsDir) == "" {
		return ErrDocsDirRequired
	}

	if err := locale.ValidateCode(c.Locale); err != nil {
		return err
	}
	if err := locale.ValidateCode(c.DefaultLocale); err != nil {
		return err
	}
	if err := locale.ValidateCodes(c.Locales); err != nil {
		return err
	}

	if len(c.Locales) > 0 && !slices.Contains(c.Locales, c.Locale) {
		return fmt.Errorf("%w: %s", ErrLocaleNotConfigured, c.Locale)
	}

	if c.Logging.Enabled {
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, c.Logging.Level)
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, c.Logging.Format)
		}
	}
	return nil
}
