// Package discovery walks a documentation source tree and produces the
// initial (path, kind) pairs consumed by locale resolution. Classification
// is extension based: markdown sources become pages, everything else is an
// asset copied verbatim.
package discovery

import (
	"bytes"
	"context"
	"io/fs"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-static-i18n/internal/files"
	"github.com/goliatone/go-static-i18n/internal/logging"
	"github.com/goliatone/go-static-i18n/pkg/interfaces"
)

// Config configures how documentation sources are discovered.
type Config struct {
	// DirectoryURLs is forwarded into the walker's fallback destination
	// metadata so degraded resolutions still land in the right place.
	DirectoryURLs bool
	// IncludeDrafts keeps pages whose frontmatter marks them as drafts.
	IncludeDrafts bool
	Logger        interfaces.Logger
}

// Walker discovers documentation sources inside an fs.FS.
type Walker struct {
	fsys          fs.FS
	directoryURLs bool
	includeDrafts bool
	log           interfaces.Logger
}

// NewWalker constructs a walker over the given docs filesystem.
func NewWalker(fsys fs.FS, cfg Config) *Walker {
	log := cfg.Logger
	if log == nil {
		log = logging.NoOp()
	}
	return &Walker{
		fsys:          fsys,
		directoryURLs: cfg.DirectoryURLs,
		includeDrafts: cfg.IncludeDrafts,
		log:           log,
	}
}

var pageExtensions = map[string]struct{}{
	".md":       {},
	".markdown": {},
}

// Classify returns the kind a path resolves under. Locale suffixes do not
// affect classification; only the final extension counts.
func Classify(path string) files.Kind {
	idx := strings.LastIndex(path, ".")
	if idx >= 0 {
		if _, ok := pageExtensions[strings.ToLower(path[idx:])]; ok {
			return files.KindPage
		}
	}
	return files.KindAsset
}

// Walk enumerates every visible file under the docs root in sorted order.
// Hidden files and directories are skipped, as are draft pages unless the
// walker was configured to include them.
func (w *Walker) Walk(ctx context.Context) ([]files.Discovered, error) {
	if w.fsys == nil {
		return nil, nil
	}

	var out []files.Discovered
	err := fs.WalkDir(w.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path != "." && hidden(path) {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		kind := Classify(path)
		if kind == files.KindPage && !w.includeDrafts {
			draft, err := w.isDraft(path)
			if err != nil {
				w.log.Warn("discovery: unreadable frontmatter", "path", path, "error", err)
			} else if draft {
				w.log.Debug("discovery: skipping draft", "path", path)
				return nil
			}
		}

		out = append(out, files.Discovered{
			Path:     path,
			Kind:     kind,
			DestPath: files.DefaultDestPath(path, kind, w.directoryURLs),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (w *Walker) isDraft(path string) (bool, error) {
	data, err := fs.ReadFile(w.fsys, path)
	if err != nil {
		return false, err
	}

	var meta struct {
		Draft bool `yaml:"draft"`
	}
	if _, err := frontmatter.Parse(bytes.NewReader(data), &meta); err != nil {
		return false, err
	}
	return meta.Draft, nil
}

func hidden(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
