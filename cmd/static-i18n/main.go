// Command static-i18n resolves a documentation tree for one locale and
// reports where every source lands in the locale-prefixed site.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	statici18n "github.com/goliatone/go-static-i18n"
	"github.com/goliatone/go-static-i18n/internal/logging/console"
	"github.com/goliatone/go-static-i18n/internal/logging/gologger"
	"github.com/goliatone/go-static-i18n/pkg/interfaces"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("static-i18n: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("static-i18n", flag.ExitOnError)
	configPath := flags.String("config", "", "Path to the YAML configuration file")
	localeFlag := flags.String("locale", "", "Locale to build (overrides the configured locale)")
	manifestPath := flags.String("manifest", "", "Build manifest path (default <site_dir>/"+statici18n.ManifestFileName+")")

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := statici18n.DefaultConfig()
	if *configPath != "" {
		loaded, err := statici18n.LoadConfigFile(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *localeFlag != "" {
		cfg.Locale = *localeFlag
	}

	provider, err := loggerProvider(cfg.Logging)
	if err != nil {
		return err
	}

	collection, err := statici18n.Build(
		context.Background(),
		os.DirFS(cfg.DocsDir),
		cfg,
		statici18n.WithLoggerProvider(provider),
	)
	if err != nil {
		return err
	}

	for _, file := range collection.All() {
		fmt.Fprintf(out, "%-10s %-40s -> %-40s %s\n", file.Match, file.SrcPath, file.SitePath(), file.URL)
	}

	target := *manifestPath
	if target == "" {
		target = filepath.Join(cfg.SiteDir, statici18n.ManifestFileName)
	}
	manifest := statici18n.NewManifest(collection, time.Now())
	data, err := manifest.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func loggerProvider(cfg statici18n.LoggingConfig) (interfaces.LoggerProvider, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	// The console provider keeps diagnostics available when the go-logger
	// backed provider rejects the configured format.
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
		Focus:     cfg.Focus,
	})
	if err != nil {
		return console.NewProvider(console.Options{}), nil
	}
	return provider, nil
}
