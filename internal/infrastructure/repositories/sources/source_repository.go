// Package sources collects candidate files for evidence scanning from the
// local filesystem.
package sources

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// DefaultExtensions is the built-in candidate extension allow-list: source,
// markup, and configuration files where package usage leaves lexical traces.
var DefaultExtensions = []string{
	".cs", ".cshtml", ".razor", ".vb", ".fs", ".fsx",
	".xaml", ".axaml", ".config", ".props", ".targets", ".json",
}

// DefaultIgnoreDirs is the built-in directory deny-list for source scanning.
var DefaultIgnoreDirs = []string{
	"bin", "obj", "packages", "node_modules", ".git", ".vs",
}

// SourceRepository walks the project tree and reads candidate files.
type SourceRepository struct{}

// NewSourceRepository creates a new SourceRepository.
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{}
}

// FindCandidates returns every readable file under root whose extension is in
// the allow-list, skipping ignored directories, project files, and runtime
// manifests. Results are ordered by path so repeated runs scan identically.
func (it *SourceRepository) FindCandidates(
	ctx context.Context,
	root string,
	extensions, ignoreDirs []string,
) ([]entities.CandidateFile, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if len(ignoreDirs) == 0 {
		ignoreDirs = DefaultIgnoreDirs
	}

	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}
	ignored := make(map[string]bool, len(ignoreDirs))
	for _, dir := range ignoreDirs {
		ignored[dir] = true
	}

	var files []entities.CandidateFile

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			if ignored[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		name := entry.Name()
		if !allowed[strings.ToLower(filepath.Ext(name))] {
			return nil
		}
		if isMetadataFile(name) {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warnf("Skipping unreadable file %q: %v", path, readErr)
			return nil
		}

		files = append(files, entities.CandidateFile{Path: path, Content: string(data)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// WalkDir is already lexical, but the ordering contract belongs here, not
	// to the walker implementation.
	return files, nil
}

// isMetadataFile excludes files that would trivially self-match: the project
// files that declare the packages, and runtime manifests (handled by the
// cross-referencer instead).
func isMetadataFile(name string) bool {
	lower := strings.ToLower(name)
	switch filepath.Ext(lower) {
	case ".csproj", ".fsproj", ".vbproj":
		return true
	}
	if lower == "packages.config" {
		return true
	}
	return strings.HasSuffix(lower, ".deps.json")
}
