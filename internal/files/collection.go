package files

import (
	"path"

	"github.com/goliatone/go-static-i18n/internal/pathutil"
)

// Collection holds the resolved files of one locale pass. It is built by a
// single owner during the pass and only read afterwards; no locking.
//
// Invariant: no two members share a destination path. Since every resolved
// file finds its own best locale variant, the first insertion per
// destination already covers all of its localized siblings.
type Collection struct {
	ctx    Context
	files  []*File
	byDest map[string]struct{}
	bySrc  map[string]*File
}

// NewCollection builds an empty collection sharing the given resolution
// context for locale-aware lookups.
func NewCollection(ctx Context) *Collection {
	return &Collection{
		ctx:    ctx,
		byDest: map[string]struct{}{},
		bySrc:  map[string]*File{},
	}
}

// Add appends file unless an earlier member already claimed its destination
// path. First insertion wins; later duplicates are dropped, not swapped in.
// The return value reports whether the file was kept.
func (c *Collection) Add(file *File) bool {
	if file == nil {
		return false
	}
	if _, taken := c.byDest[file.DestPath]; taken {
		return false
	}

	c.byDest[file.DestPath] = struct{}{}
	if _, seen := c.bySrc[file.SrcPath]; !seen {
		c.bySrc[file.SrcPath] = file
	}
	c.files = append(c.files, file)
	return true
}

// Contains reports whether a member backs the given logical path, accepting
// any of its locale variants.
func (c *Collection) Contains(logicalPath string) bool {
	_, ok := c.Lookup(logicalPath)
	return ok
}

// Lookup returns the member backing the given logical path. Candidates are
// tried in the same priority order resolution uses: the requested-locale
// suffixed form, the default-locale suffixed form, then the path unchanged.
// A link written against an un-suffixed path therefore transparently
// resolves to the best locale variant present.
func (c *Collection) Lookup(logicalPath string) (*File, bool) {
	cleaned := path.Clean(logicalPath)
	ext := pathutil.Suffix(cleaned)

	candidates := []string{
		pathutil.WithSuffix(cleaned, "."+c.ctx.Locale+ext),
		pathutil.WithSuffix(cleaned, "."+c.ctx.DefaultLocale+ext),
		cleaned,
	}
	for _, candidate := range candidates {
		if file, ok := c.bySrc[candidate]; ok {
			return file, true
		}
	}
	return nil, false
}

// Len returns the number of members kept after deduplication.
func (c *Collection) Len() int { return len(c.files) }

// All returns the members in insertion order.
func (c *Collection) All() []*File {
	return append([]*File(nil), c.files...)
}

// Pages returns the renderable page members in insertion order.
func (c *Collection) Pages() []*File {
	return c.filter(func(f *File) bool { return f.Kind.IsPage() })
}

// Assets returns the non-page members in insertion order.
func (c *Collection) Assets() []*File {
	return c.filter(func(f *File) bool { return !f.Kind.IsPage() })
}

// Context returns the resolution context shared by the members.
func (c *Collection) Context() Context { return c.ctx }

func (c *Collection) filter(keep func(*File) bool) []*File {
	var out []*File
	for _, file := range c.files {
		if keep(file) {
			out = append(out, file)
		}
	}
	return out
}
