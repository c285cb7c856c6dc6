package files

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// ManifestFileName is the conventional location of the build manifest
	// inside the site output directory.
	ManifestFileName = ".i18n-manifest.json"

	manifestVersion = 1
)

// Manifest records the outcome of one resolution pass: which physical
// source backed each logical document and where it landed in the site tree.
// It is written next to the generated site so later tooling can diff builds.
type Manifest struct {
	Version       int             `json:"version"`
	BuildID       string          `json:"build_id"`
	GeneratedAt   time.Time       `json:"generated_at"`
	Locale        string          `json:"locale"`
	DefaultLocale string          `json:"default_locale"`
	Files         []ManifestEntry `json:"files"`
}

// ManifestEntry captures one resolved file.
type ManifestEntry struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	URL         string `json:"url"`
	Locale      string `json:"locale,omitempty"`
	Match       string `json:"match"`
	Kind        string `json:"kind"`
}

// NewManifest snapshots a collection into a manifest document. Entries keep
// the collection's insertion order.
func NewManifest(c *Collection, generatedAt time.Time) *Manifest {
	manifest := &Manifest{
		Version:     manifestVersion,
		BuildID:     uuid.NewString(),
		GeneratedAt: generatedAt.UTC(),
		Files:       []ManifestEntry{},
	}
	if c == nil {
		return manifest
	}

	ctx := c.Context()
	manifest.Locale = ctx.Locale
	manifest.DefaultLocale = ctx.DefaultLocale

	for _, file := range c.All() {
		manifest.Files = append(manifest.Files, ManifestEntry{
			Source:      file.SrcPath,
			Destination: file.DestPath,
			URL:         file.URL,
			Locale:      file.Locale,
			Match:       file.Match.String(),
			Kind:        file.Kind.String(),
		})
	}
	return manifest
}

// ParseManifest decodes a manifest document, tolerating empty input and
// filling zero-value defaults the way older builds wrote them.
func ParseManifest(data []byte) (*Manifest, error) {
	if len(data) == 0 {
		return &Manifest{Version: manifestVersion, Files: []ManifestEntry{}}, nil
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("files: parse manifest: %w", err)
	}
	if manifest.Version == 0 {
		manifest.Version = manifestVersion
	}
	if manifest.Files == nil {
		manifest.Files = []ManifestEntry{}
	}
	return &manifest, nil
}

// Marshal encodes the manifest as indented JSON.
func (m *Manifest) Marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	cloned := *m
	if cloned.Version == 0 {
		cloned.Version = manifestVersion
	}
	data, err := json.MarshalIndent(&cloned, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("files: marshal manifest: %w", err)
	}
	return data, nil
}
