package repositories

import (
	"context"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// ProjectRepository abstracts the discovery and parsing of build-metadata
// documents (MSBuild project files, packages.config) under a root directory.
// Implementations skip unparsable files with a warning; only a failure to
// access the root itself is an error.
type ProjectRepository interface {
	// FindProjects returns every project found under root with its declared
	// package references.
	FindProjects(ctx context.Context, root string) ([]entities.Project, error)
}
