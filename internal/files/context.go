package files

import "io/fs"

// Context carries the immutable configuration shared by every resolution in
// a single build pass: the requested locale, the fallback locale, the full
// locale set used for suffix detection, the URL-style flag, and the
// filesystem existence predicate.
type Context struct {
	Locale        string
	DefaultLocale string
	Locales       []string
	DirectoryURLs bool
	Exists        func(path string) bool

	// DocsDir and SiteDir anchor absolute source and destination paths.
	// Both are optional; resolution itself works on relative paths.
	DocsDir string
	SiteDir string
}

// NewContext builds a resolution context backed by the given docs filesystem.
func NewContext(fsys fs.FS, requested, fallback string, locales []string, directoryURLs bool) Context {
	return Context{
		Locale:        requested,
		DefaultLocale: fallback,
		Locales:       append([]string(nil), locales...),
		DirectoryURLs: directoryURLs,
		Exists:        ExistsFS(fsys),
	}
}

// ExistsFS adapts an fs.FS into the existence predicate consumed during
// resolution. Probes are uncached; each candidate hits the filesystem.
func ExistsFS(fsys fs.FS) func(string) bool {
	return func(path string) bool {
		if fsys == nil {
			return false
		}
		_, err := fs.Stat(fsys, path)
		return err == nil
	}
}

func (c Context) exists(path string) bool {
	if c.Exists == nil {
		return false
	}
	return c.Exists(path)
}
