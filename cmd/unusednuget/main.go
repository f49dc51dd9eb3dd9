package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/infrastructure/controllers"
)

func buildRootCommand(analyzeController *controllers.AnalyzeController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "unused-nuget [path]",
		Short: "Detect declared-but-unused NuGet packages",
		Long: `A static analyzer that scans a .NET solution or project tree, reads the
declared NuGet package references, searches source, markup, and configuration
files for usage evidence, cross-references build-output runtime manifests,
and reports packages that appear unused.

Results are heuristic: the tool reports evidence-backed suspicion, never
certainty, and it modifies nothing.

Usage modes:
  unused-nuget .               Analyze the current directory
  unused-nuget /path/to/sln    Analyze a specific tree
  unused-nuget list [path]     List declared packages without analyzing`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			analyzeController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	analyzeController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if ac, ok := ctrl.(*controllers.AnalyzeController); ok {
			ac.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	// Optional .env for local overrides; absence is not an error
	_ = godotenv.Load()

	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	analyzeController := injectAnalyzeController()
	cobraRoot := buildRootCommand(analyzeController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'unused-nuget': %s", err)
	}
}
