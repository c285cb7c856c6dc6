// Package files implements locale-aware source resolution for a static
// documentation build. Given a logical document and a resolution context it
// decides which physical locale-suffixed variant backs the document and
// synthesizes its destination path and URL under the locale-prefixed site
// tree.
package files

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/goliatone/go-static-i18n/internal/pathutil"
)

// Discovered describes one logical document as supplied by the external file
// walker: a slash-separated path relative to the docs root, its kind, and
// the destination the walker would assign before any locale resolution. The
// destination is only consulted when resolution degrades to the original
// metadata.
type Discovered struct {
	Path     string
	Kind     Kind
	DestPath string
}

// File is the resolved view of one logical document. It is created once per
// document per build and immutable afterwards.
type File struct {
	Kind Kind

	// InitialPath is the raw path supplied by the walker; it may itself
	// carry a locale suffix when the walker enumerated a suffixed file.
	InitialPath string
	// DetectedLocale is the locale embedded in InitialPath's name, if any.
	// Detection scans the full configured locale list, not just the
	// requested and default locales.
	DetectedLocale string
	// Name is the stem used for destination naming; "index" and "README"
	// stems normalize to "index".
	Name string

	// Match records which candidate won the priority search.
	Match Match
	// Locale is the locale suffix of the matched candidate, empty when the
	// un-suffixed source (or the unresolved original) was chosen.
	Locale string
	// DestLocale is the build's requested locale. It governs the output
	// location even when content fell back to another variant.
	DestLocale string

	// SrcPath is the winning physical source, relative to the docs root.
	SrcPath string
	// DestPath is the output location inside the locale's site subtree.
	DestPath string
	URL      string

	// AbsSrcPath and AbsDestPath are only set when the context carries
	// DocsDir and SiteDir.
	AbsSrcPath  string
	AbsDestPath string
}

// SitePath returns the destination path under the site root, prefixed with
// the build locale. Unresolved files keep the walker's destination
// unchanged, without a locale prefix.
func (f *File) SitePath() string {
	if f.Match == Unresolved || f.DestLocale == "" {
		return f.DestPath
	}
	return path.Join(f.DestLocale, f.DestPath)
}

// Resolve runs the priority-ordered fallback search for one logical
// document. Candidates are tried in a fixed order: the requested-locale
// variant, the default-locale variant, then the bare path. When none exists
// the walker's original metadata is used unchanged, so resolution never
// fails outright.
func Resolve(ctx Context, initial Discovered) *File {
	initialPath := path.Clean(initial.Path)
	ext := pathutil.Suffix(initialPath)

	detected := detectLocale(initialPath, ctx.Locales)
	stemPath := pathutil.TrimSuffix(initialPath)
	if detected != "" {
		stemPath = pathutil.TrimSuffix(stemPath)
	}

	f := &File{
		Kind:           initial.Kind,
		InitialPath:    initialPath,
		DetectedLocale: detected,
		DestLocale:     ctx.Locale,
		Name:           destStem(stemPath),
	}

	candidates := []struct {
		match  Match
		locale string
	}{
		{MatchedRequested, ctx.Locale},
		{MatchedDefault, ctx.DefaultLocale},
		{MatchedNone, ""},
	}

	for _, cand := range candidates {
		src := stemPath + ext
		if cand.locale != "" {
			src = fmt.Sprintf("%s.%s%s", stemPath, cand.locale, ext)
		}
		if !ctx.exists(src) {
			continue
		}

		f.Match = cand.match
		f.Locale = cand.locale
		f.SrcPath = src

		// A locale suffix never survives into the output filename;
		// localization is expressed through the destination directory.
		destName := f.Name + ext
		if cand.locale == "" {
			// Name already ends in the penultimate suffix for compound
			// extensions, so the chain replaces it rather than appending.
			destName = pathutil.WithSuffix(f.Name, pathutil.SuffixChain(initialPath))
		}
		f.DestPath = destPath(src, f.Kind, f.Name, destName, ctx.DirectoryURLs)
		f.URL = destURL(f.DestPath, ctx.Locale, ctx.DirectoryURLs)
		f.anchor(ctx)
		return f
	}

	f.Match = Unresolved
	f.SrcPath = initialPath
	f.DestPath = initial.DestPath
	if f.DestPath == "" {
		f.DestPath = DefaultDestPath(initialPath, f.Kind, ctx.DirectoryURLs)
	}
	f.URL = destURL(f.DestPath, ctx.Locale, ctx.DirectoryURLs)
	f.anchor(ctx)
	return f
}

func (f *File) anchor(ctx Context) {
	if ctx.DocsDir != "" {
		f.AbsSrcPath = filepath.Join(ctx.DocsDir, filepath.FromSlash(f.SrcPath))
	}
	if ctx.SiteDir != "" {
		f.AbsDestPath = filepath.Join(ctx.SiteDir, filepath.FromSlash(f.SitePath()))
	}
}

// URLRelativeTo returns f's URL relative to another resolved file.
func (f *File) URLRelativeTo(other *File) string {
	if other == nil {
		return f.URL
	}
	return RelativeURL(f.URL, other.URL)
}

// DefaultDestPath computes the destination a document would receive before
// any locale resolution. It backs the walker-supplied fallback metadata.
func DefaultDestPath(p string, kind Kind, directoryURLs bool) string {
	if kind != KindPage {
		return p
	}
	name := destStem(pathutil.TrimSuffix(p))
	return destPath(p, kind, name, "", directoryURLs)
}

// detectLocale returns the locale embedded in p's suffix chain, or "" when
// the name carries none. A suffix only counts as a locale marker when the
// file also has a real extension after it.
func detectLocale(p string, locales []string) string {
	ext := pathutil.Suffix(p)
	if ext == "" {
		return ""
	}

	suffixes := map[string]struct{}{}
	for _, suffix := range pathutil.Suffixes(p) {
		suffixes[suffix] = struct{}{}
	}

	for _, lang := range locales {
		if _, ok := suffixes["."+lang]; ok {
			return lang
		}
	}
	return ""
}

func destStem(stemPath string) string {
	base := path.Base(stemPath)
	if base == "index" || base == "README" {
		return "index"
	}
	return base
}

func destPath(src string, kind Kind, name, destName string, directoryURLs bool) string {
	parent := path.Dir(src)
	if kind == KindPage {
		if !directoryURLs || name == "index" {
			return path.Join(parent, name+".html")
		}
		return path.Join(parent, name, "index.html")
	}
	return path.Join(parent, destName)
}
