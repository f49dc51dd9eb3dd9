package commands

import (
	"context"
	"fmt"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, root string) ([]entities.Project, error)
}

// ListCommand discovers projects and their declared package references
// without running any usage analysis.
type ListCommand struct {
	projectRepo repositories.ProjectRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(projectRepo repositories.ProjectRepository) *ListCommand {
	return &ListCommand{projectRepo: projectRepo}
}

// Execute returns every project found under root.
func (it *ListCommand) Execute(ctx context.Context, root string) ([]entities.Project, error) {
	projects, err := it.projectRepo.FindProjects(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to discover projects under %q: %w", root, err)
	}
	return projects, nil
}
