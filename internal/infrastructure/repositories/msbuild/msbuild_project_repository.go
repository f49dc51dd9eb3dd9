// Package msbuild reads declared NuGet package references from MSBuild
// project files (SDK-style and legacy) and from packages.config documents.
package msbuild

import (
	"context"
	"encoding/xml"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// projectExtensions are the recognized MSBuild project file extensions.
var projectExtensions = map[string]bool{
	".csproj": true,
	".fsproj": true,
	".vbproj": true,
}

// skippedDirs are never descended into when looking for project files.
var skippedDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	"packages":     true,
	"node_modules": true,
	".git":         true,
	".vs":          true,
}

// ProjectRepository discovers and parses project files on the local
// filesystem. A file that fails to parse is skipped with a warning; only a
// failure to walk the root itself is an error.
type ProjectRepository struct{}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindProjects walks root and returns every parsable project with its
// declared package references.
func (it *ProjectRepository) FindProjects(ctx context.Context, root string) ([]entities.Project, error) {
	var projects []entities.Project

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			if skippedDirs[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(entry.Name())
		isProject := projectExtensions[ext]
		isPackagesConfig := strings.EqualFold(entry.Name(), "packages.config")
		if !isProject && !isPackagesConfig {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warnf("Skipping unreadable project file %q: %v", path, readErr)
			return nil
		}

		var refs []entities.PackageReference
		var parseErr error
		if isProject {
			refs, parseErr = parseProjectFile(path, data)
		} else {
			refs, parseErr = parsePackagesConfig(path, data)
		}
		if parseErr != nil {
			logger.Warnf("Skipping malformed project file %q: %v", path, parseErr)
			return nil
		}

		projects = append(projects, entities.Project{Path: path, References: refs})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return projects, nil
}

type projectXML struct {
	ItemGroups []itemGroupXML `xml:"ItemGroup"`
}

type itemGroupXML struct {
	PackageReferences []packageReferenceXML `xml:"PackageReference"`
}

type packageReferenceXML struct {
	IncludeAttr       string `xml:"Include,attr"`
	UpdateAttr        string `xml:"Update,attr"`
	VersionAttr       string `xml:"Version,attr"`
	VersionElem       string `xml:"Version"`
	PrivateAssetsAttr string `xml:"PrivateAssets,attr"`
	PrivateAssetsElem string `xml:"PrivateAssets"`
}

// parseProjectFile extracts PackageReference items from an MSBuild project.
func parseProjectFile(path string, data []byte) ([]entities.PackageReference, error) {
	var doc projectXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var refs []entities.PackageReference
	for _, group := range doc.ItemGroups {
		for _, raw := range group.PackageReferences {
			id := lookup(raw.IncludeAttr, raw.UpdateAttr)
			if id == "" {
				continue
			}
			refs = append(refs, entities.PackageReference{
				ID:      id,
				Version: lookup(raw.VersionAttr, raw.VersionElem),
				Project: path,
				DevOnly: isPrivateAssetsAll(lookup(raw.PrivateAssetsAttr, raw.PrivateAssetsElem)),
			})
		}
	}
	return refs, nil
}

// lookup resolves the two MSBuild shapes for the same datum with a fixed
// precedence: the attribute form wins, the element (or alternate attribute)
// form is the fallback.
func lookup(primary, fallback string) string {
	if v := strings.TrimSpace(primary); v != "" {
		return v
	}
	return strings.TrimSpace(fallback)
}

// isPrivateAssetsAll reports whether the PrivateAssets value marks the
// reference as a build-time-only asset.
func isPrivateAssetsAll(value string) bool {
	return strings.EqualFold(value, "all")
}

type packagesConfigXML struct {
	Packages []struct {
		ID      string `xml:"id,attr"`
		Version string `xml:"version,attr"`
		DevDep  string `xml:"developmentDependency,attr"`
	} `xml:"package"`
}

// parsePackagesConfig extracts package entries from a legacy packages.config.
func parsePackagesConfig(path string, data []byte) ([]entities.PackageReference, error) {
	var doc packagesConfigXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var refs []entities.PackageReference
	for _, pkg := range doc.Packages {
		if pkg.ID == "" {
			continue
		}
		refs = append(refs, entities.PackageReference{
			ID:      pkg.ID,
			Version: pkg.Version,
			Project: path,
			DevOnly: strings.EqualFold(pkg.DevDep, "true"),
		})
	}
	return refs, nil
}
