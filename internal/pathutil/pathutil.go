// Package pathutil inspects filenames as ordered chains of dot-separated
// suffix tokens. Locale detection and stem computation both work on these
// chains, so the helpers live in one place instead of ad hoc string splits.
package pathutil

import (
	"path"
	"strings"
)

// Suffix returns the final extension of p including the leading dot, or ""
// when the base name has no extension. A leading dot alone (".env") does not
// count as an extension.
func Suffix(p string) string {
	base := path.Base(p)
	idx := strings.LastIndex(base, ".")
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}

// Suffixes returns every extension of p's base name in order, each with its
// leading dot. "guide/intro.fr.md" yields [".fr", ".md"]; hidden files with
// no further dots yield nil.
func Suffixes(p string) []string {
	base := path.Base(p)
	trimmed := strings.TrimPrefix(base, ".")
	parts := strings.Split(trimmed, ".")
	if len(parts) < 2 {
		return nil
	}

	out := make([]string, 0, len(parts)-1)
	for _, part := range parts[1:] {
		out = append(out, "."+part)
	}
	return out
}

// SuffixChain returns the concatenation of every extension of p, e.g.
// ".fr.md" for "intro.fr.md". Empty when the name carries no extension.
func SuffixChain(p string) string {
	return strings.Join(Suffixes(p), "")
}

// TrimSuffix returns p without its final extension. Paths without an
// extension are returned unchanged.
func TrimSuffix(p string) string {
	suffix := Suffix(p)
	if suffix == "" {
		return p
	}
	return strings.TrimSuffix(p, suffix)
}

// WithSuffix replaces p's final extension with suffix. The suffix must
// include its leading dot, or be empty to strip the extension. A path with
// no extension gets the suffix appended.
func WithSuffix(p, suffix string) string {
	return TrimSuffix(p) + suffix
}
