package files

import (
	"path"
	"strings"
)

// destURL converts a destination path into the href served for it. The path
// is slash-separated, index.html collapses to its directory when directory
// URLs are on, and the result is prefixed with the build locale so the root
// page becomes exactly "<locale>/".
func destURL(destPath, locale string, directoryURLs bool) string {
	u := path.Clean(strings.ReplaceAll(destPath, "\\", "/"))
	if u == "." {
		u = ""
	}

	dir, file := path.Split(u)
	if directoryURLs && file == "index.html" {
		if dir == "" {
			u = "."
		} else {
			u = dir
		}
	}

	if locale != "" {
		if u == "." {
			u = locale + "/"
		} else {
			u = locale + "/" + u
		}
	}
	return quoteURL(u)
}

const upperhex = "0123456789ABCDEF"

// quoteURL percent-encodes u for use as an href. Only unreserved bytes and
// the "/" separator pass through; sub-delims such as "&" and "+" are encoded
// so hrefs stay stable regardless of where they are embedded.
func quoteURL(u string) string {
	var b strings.Builder
	b.Grow(len(u))
	for i := 0; i < len(u); i++ {
		c := u[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '/' || c == '-' || c == '.' || c == '_' || c == '~':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xF])
		}
	}
	return b.String()
}

// RelativeURL returns url relative to other. Both operands are slash paths
// relative to the site root; when other names a file (its last segment
// contains a dot) the file part is dropped first. A trailing slash on url is
// preserved.
func RelativeURL(u, other string) string {
	dirname, basename := splitLast(other)
	if strings.Contains(basename, ".") {
		other = dirname
		if other == "" {
			other = "."
		}
	}

	parts1 := splitSegments(u)
	parts2 := splitSegments(other)

	common := 0
	for common < len(parts1) && common < len(parts2) && parts1[common] == parts2[common] {
		common++
	}

	rel := make([]string, 0, len(parts2)-common+len(parts1)-common)
	for i := common; i < len(parts2); i++ {
		rel = append(rel, "..")
	}
	rel = append(rel, parts1[common:]...)

	relurl := strings.Join(rel, "/")
	if relurl == "" {
		relurl = "."
	}
	if strings.HasSuffix(u, "/") {
		return relurl + "/"
	}
	return relurl
}

func splitLast(p string) (dir, base string) {
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", p
	}
	return p[:idx], p[idx+1:]
}

func splitSegments(p string) []string {
	var out []string
	for _, segment := range strings.Split(p, "/") {
		if segment == "" || segment == "." {
			continue
		}
		out = append(out, segment)
	}
	return out
}
