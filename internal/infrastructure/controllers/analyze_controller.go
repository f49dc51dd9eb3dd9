package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/config"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/commands"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/repositories"
)

// AnalyzeController handles the root command with a path argument: run the
// full unused-package analysis on a local tree.
type AnalyzeController struct {
	command  commands.Analyze
	reporter repositories.ReportRepository
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(
	command commands.Analyze,
	reporter repositories.ReportRepository,
) *AnalyzeController {
	return &AnalyzeController{command: command, reporter: reporter}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze",
		Short: "Detect declared-but-unused NuGet packages",
		Long: `Scan a .NET solution or project tree, read the declared NuGet package
references, search the source corpus for usage evidence, cross-reference
build-output runtime manifests, and report packages that appear unused.

The analysis is heuristic: it reports evidence-backed suspicion, never
certainty, and it modifies nothing.`,
	}
}

// Execute runs the analysis.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	settings, verbose, ok := it.buildSettings(cmd)
	if !ok {
		return
	}

	report, err := it.command.Execute(ctx, settings, commands.AnalyzeOptions{
		Root:    root,
		Verbose: verbose,
	})
	if err != nil {
		logger.Errorf("Analysis failed: %v", err)
		return
	}

	if writeErr := it.reporter.Write(report, settings.Detail); writeErr != nil {
		logger.Errorf("Failed to render report: %v", writeErr)
	}
}

// AddFlags adds the analyze-specific flags to the given Cobra command.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("detail", "d", false, "Show the evidence trail for every used package")
	cmd.Flags().Int("workers", 0, "Concurrent scan workers (0 = number of CPUs)")
	cmd.Flags().StringSlice("exclude", nil, "Package id to exclude from the analysis (repeatable)")
	cmd.Flags().Bool("no-manifest", false, "Skip runtime manifest cross-referencing")
}

// buildSettings merges the config file (when present) with CLI flag
// overrides. A missing config file is fine; a malformed one aborts.
func (it *AnalyzeController) buildSettings(cmd *cobra.Command) (*entities.Settings, bool, bool) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	detail, _ := cmd.Flags().GetBool("detail")
	workers, _ := cmd.Flags().GetInt("workers")
	excludes, _ := cmd.Flags().GetStringSlice("exclude")
	noManifest, _ := cmd.Flags().GetBool("no-manifest")

	cfg := &config.Config{}
	path := configPath
	if path == "" {
		if found, err := config.FindConfigFile(); err == nil {
			path = found
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			logger.Errorf("Failed to load config: %v", err)
			return nil, false, false
		}
		logger.Debugf("Using config file: %s", path)
		cfg = loaded
	}

	settings := &entities.Settings{
		Exclude:      append(cfg.Exclude, excludes...),
		ToolPrefixes: cfg.ToolPrefixes,
		Extensions:   cfg.Extensions,
		IgnoreDirs:   cfg.IgnoreDirs,
		Workers:      cfg.Workers,
		Detail:       cfg.Detail || detail,
		SkipManifest: noManifest,
	}
	if workers > 0 {
		settings.Workers = workers
	}

	return settings, verbose, true
}
