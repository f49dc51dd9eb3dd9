package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/commands"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// ListController handles the "list" subcommand: show discovered projects and
// their declared package references without scanning anything.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list [path]",
		Short: "List projects and their declared package references",
		Long: `Discover MSBuild project files and packages.config documents under a
directory and print the NuGet packages each one declares, without running
any usage analysis.`,
	}
}

// Execute runs the listing.
func (it *ListController) Execute(_ *cobra.Command, args []string) {
	ctx := context.Background()

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	projects, err := it.command.Execute(ctx, root)
	if err != nil {
		logger.Errorf("Listing failed: %v", err)
		return
	}

	if len(projects) == 0 {
		fmt.Printf("No project files found under %s\n", root)
		return
	}

	for _, project := range projects {
		fmt.Printf("%s (%d package reference(s))\n", project.Path, len(project.References))
		for _, ref := range project.References {
			line := "  " + ref.ID
			if ref.Version != "" {
				line += " @ " + ref.Version
			}
			if ref.DevOnly {
				line += " (private assets)"
			}
			fmt.Println(line)
		}
	}
}
