package repositories

import "context"

// Manifest is one parsed runtime dependency manifest: the file it came from
// and its flat list of composite library keys ("Name/Version").
type Manifest struct {
	Path    string
	Entries []string
}

// ManifestRepository abstracts the discovery and parsing of build-output
// runtime manifests (*.deps.json). Malformed manifests are skipped with a
// warning, never failing the run.
type ManifestRepository interface {
	// FindManifests returns every parsable runtime manifest under root.
	FindManifests(ctx context.Context, root string) ([]Manifest, error)
}
