// Package statici18n resolves which physical locale-suffixed source file
// backs each logical document of a static documentation build. Sources named
// <stem>.<locale>.<ext> are matched against a requested locale with fallback
// to a default locale, destinations land under a locale-prefixed site tree,
// and a collection of resolved files deduplicates so only one physical
// variant is exposed per logical output location.
package statici18n

import (
	"context"
	"io/fs"
	"time"

	"github.com/goliatone/go-static-i18n/internal/discovery"
	"github.com/goliatone/go-static-i18n/internal/files"
	"github.com/goliatone/go-static-i18n/internal/locale"
	"github.com/goliatone/go-static-i18n/internal/logging"
	"github.com/goliatone/go-static-i18n/pkg/interfaces"
)

type (
	// File is the resolved view of one logical document.
	File = files.File
	// Collection is an ordered, destination-deduplicated set of resolved
	// files with locale-aware lookup.
	Collection = files.Collection
	// Context is the immutable configuration shared by every resolution in
	// a build pass.
	Context = files.Context
	// Discovered is the walker-supplied description of a source file.
	Discovered = files.Discovered
	// Kind distinguishes pages from assets.
	Kind = files.Kind
	// Match tags the outcome of a resolution.
	Match = files.Match
	// Manifest records the outcome of one resolution pass.
	Manifest = files.Manifest
)

// ManifestFileName is the conventional manifest location inside the site
// output directory.
const ManifestFileName = files.ManifestFileName

const (
	KindPage  = files.KindPage
	KindAsset = files.KindAsset

	MatchedRequested = files.MatchedRequested
	MatchedDefault   = files.MatchedDefault
	MatchedNone      = files.MatchedNone
	Unresolved       = files.Unresolved
)

// ValidateLocale checks locale code syntax for a string or for every key of
// a string-keyed mapping. Other shapes pass through untouched.
func ValidateLocale(value any) error {
	return locale.Validate(value)
}

// Resolve runs the priority-ordered fallback search for one document.
func Resolve(ctx Context, initial Discovered) *File {
	return files.Resolve(ctx, initial)
}

// NewCollection builds an empty collection for the given context.
func NewCollection(ctx Context) *Collection {
	return files.NewCollection(ctx)
}

// NewManifest snapshots a collection into a build manifest document.
func NewManifest(c *Collection, generatedAt time.Time) *Manifest {
	return files.NewManifest(c, generatedAt)
}

// RelativeURL returns url relative to other, both site-root relative.
func RelativeURL(url, other string) string {
	return files.RelativeURL(url, other)
}

type buildOptions struct {
	provider interfaces.LoggerProvider
}

// Option customizes a Build run.
type Option func(*buildOptions)

// WithLoggerProvider wires a logging provider into the build; without it the
// pass runs silent.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *buildOptions) {
		o.provider = provider
	}
}

// Build walks the docs filesystem, resolves every discovered file for the
// configured locale, and returns the deduplicated collection. The
// configuration is validated first; this is the only point where locale
// syntax is enforced.
func Build(ctx context.Context, fsys fs.FS, cfg Config, opts ...Option) (*Collection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := buildOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	walker := discovery.NewWalker(fsys, discovery.Config{
		DirectoryURLs: cfg.DirectoryURLs(),
		IncludeDrafts: cfg.IncludeDrafts,
		Logger:        logging.DiscoveryLogger(options.provider),
	})
	discovered, err := walker.Walk(ctx)
	if err != nil {
		return nil, err
	}

	rctx := files.NewContext(fsys, cfg.Locale, cfg.DefaultLocale, cfg.AllLocales(), cfg.DirectoryURLs())
	rctx.DocsDir = cfg.DocsDir
	rctx.SiteDir = cfg.SiteDir

	log := logging.FilesLogger(options.provider)
	collection := files.NewCollection(rctx)
	for _, initial := range discovered {
		file := files.Resolve(rctx, initial)
		if collection.Add(file) {
			logging.WithFileContext(log, file.SrcPath, file.Locale, file.Match.String()).
				Trace("file resolved")
			continue
		}
		log.Debug("duplicate destination dropped",
			"path", initial.Path,
			"destination", file.DestPath,
		)
	}

	log.Info("resolution pass complete",
		"locale", cfg.Locale,
		"default_locale", cfg.DefaultLocale,
		"files", collection.Len(),
	)
	return collection, nil
}
