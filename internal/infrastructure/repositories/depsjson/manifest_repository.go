// Package depsjson reads .NET build-output runtime manifests (*.deps.json)
// into flat lists of composite library keys.
package depsjson

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/repositories"
)

// ManifestRepository discovers *.deps.json files anywhere under the root,
// including build-output directories. A malformed manifest is skipped with a
// warning; the run never fails because of one bad manifest.
type ManifestRepository struct{}

// NewManifestRepository creates a new ManifestRepository.
func NewManifestRepository() *ManifestRepository {
	return &ManifestRepository{}
}

// depsDocument is the subset of the deps.json schema the cross-referencer
// needs: both sections key their objects by "Name/Version" composite keys.
type depsDocument struct {
	Targets   map[string]map[string]json.RawMessage `json:"targets"`
	Libraries map[string]json.RawMessage            `json:"libraries"`
}

// FindManifests returns every parsable runtime manifest under root.
func (it *ManifestRepository) FindManifests(ctx context.Context, root string) ([]repositories.Manifest, error) {
	var manifests []repositories.Manifest

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			if entry.Name() == ".git" || entry.Name() == "node_modules" {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".deps.json") {
			return nil
		}

		entries, parseErr := readManifest(path)
		if parseErr != nil {
			logger.Warnf("Skipping malformed runtime manifest %q: %v", path, parseErr)
			return nil
		}

		manifests = append(manifests, repositories.Manifest{Path: path, Entries: entries})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return manifests, nil
}

// readManifest parses one deps.json file into its flat set of composite keys.
func readManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc depsDocument
	if unmarshalErr := json.Unmarshal(data, &doc); unmarshalErr != nil {
		return nil, unmarshalErr
	}

	seen := make(map[string]bool)
	var entries []string
	add := func(key string) {
		if key != "" && !seen[key] {
			seen[key] = true
			entries = append(entries, key)
		}
	}

	for _, target := range doc.Targets {
		for key := range target {
			add(key)
		}
	}
	for key := range doc.Libraries {
		add(key)
	}

	sort.Strings(entries)
	return entries, nil
}
