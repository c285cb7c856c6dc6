package runtimeconfig

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Locale = "fr"
	cfg.DefaultLocale = "en"
	cfg.Locales = []string{"en", "fr"}
	return cfg
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if !DefaultConfig().DirectoryURLs() {
		t.Fatal("directory URLs should default to enabled")
	}
}

func TestValidateStructuralRequirements(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"missing_locale", func(c *Config) { c.Locale = "" }, ErrLocaleRequired},
		{"missing_default", func(c *Config) { c.DefaultLocale = " " }, ErrDefaultLocaleRequired},
		{"missing_docs_dir", func(c *Config) { c.DocsDir = "" }, ErrDocsDirRequired},
		{"locale_outside_set", func(c *Config) { c.Locales = []string{"en", "es"} }, ErrLocaleNotConfigured},
		{"bad_logging_level", func(c *Config) { c.Logging.Level = "verbose" }, ErrLoggingLevelInvalid},
		{"bad_logging_format", func(c *Config) { c.Logging.Format = "xml" }, ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateRejectsMalformedLocaleCodes(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Locales = append(cfg.Locales, "français")
	cfg.Locale = "français"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() accepted a malformed locale code")
	}
	if !strings.Contains(err.Error(), "en_US") {
		t.Errorf("error %q does not name the accepted forms", err)
	}
}

func TestAllLocalesIncludesActivePair(t *testing.T) {
	t.Parallel()

	cfg := Config{Locale: "fr", DefaultLocale: "en", Locales: []string{"fr", "es"}}
	got := cfg.AllLocales()

	want := []string{"fr", "es", "en"}
	if len(got) != len(want) {
		t.Fatalf("AllLocales = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllLocales = %v, want %v", got, want)
		}
	}
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	doc := []byte(`
locale: fr
default_locale: en
locales: [en, fr]
docs_dir: documentation
use_directory_urls: false
logging:
  enabled: true
  level: debug
  format: json
`)
	cfg, err := FromYAML(doc)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if cfg.Locale != "fr" || cfg.DocsDir != "documentation" {
		t.Errorf("decoded config = %+v", cfg)
	}
	if cfg.DirectoryURLs() {
		t.Error("use_directory_urls: false was not honored")
	}
	// Omitted keys keep their defaults.
	if cfg.SiteDir != "site" {
		t.Errorf("SiteDir = %q, want default site", cfg.SiteDir)
	}
}

func TestFromYAMLRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	if _, err := FromYAML([]byte("locale: [nested")); err == nil {
		t.Error("malformed yaml accepted")
	}
	if _, err := FromYAML([]byte("locale: FRENCH")); err == nil {
		t.Error("invalid locale code accepted")
	}
}
