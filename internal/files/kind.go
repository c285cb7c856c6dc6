package files

// Kind distinguishes renderable documentation pages from static assets.
// Destination-path rules differ between the two variants.
type Kind uint8

const (
	// KindPage marks a renderable documentation page (markdown source).
	KindPage Kind = iota
	// KindAsset marks any other file copied verbatim into the site tree.
	KindAsset
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindAsset:
		return "asset"
	default:
		return "unknown"
	}
}

// IsPage reports whether the kind denotes a renderable page.
func (k Kind) IsPage() bool { return k == KindPage }

// Match tags the outcome of a resolution: which locale candidate, if any,
// was found on disk. Callers branch on the tag instead of catching failures;
// a missing translation never fails a build.
type Match uint8

const (
	// MatchedRequested means the requested-locale variant exists.
	MatchedRequested Match = iota
	// MatchedDefault means resolution fell back to the default-locale variant.
	MatchedDefault
	// MatchedNone means the un-suffixed source backs the document.
	MatchedNone
	// Unresolved means no candidate existed and the walker's original
	// metadata was used unchanged.
	Unresolved
)

func (m Match) String() string {
	switch m {
	case MatchedRequested:
		return "requested"
	case MatchedDefault:
		return "default"
	case MatchedNone:
		return "none"
	case Unresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Localized reports whether the resolution landed on a locale-suffixed file.
func (m Match) Localized() bool {
	return m == MatchedRequested || m == MatchedDefault
}
