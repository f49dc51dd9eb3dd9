package commands

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/matching"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/repositories"
)

// Analyze is the interface for the analysis command.
type Analyze interface {
	Execute(ctx context.Context, settings *entities.Settings, opts AnalyzeOptions) (*entities.Report, error)
}

// AnalyzeOptions holds runtime options for a single analysis run.
type AnalyzeOptions struct {
	Root    string
	Verbose bool
}

// AnalyzeCommand runs the full usage analysis: load declared packages,
// pre-classify exemptions, scan the candidate corpus for evidence,
// cross-reference runtime manifests, and fold everything into the final
// used/unused partition.
type AnalyzeCommand struct {
	projectRepo  repositories.ProjectRepository
	sourceRepo   repositories.SourceRepository
	manifestRepo repositories.ManifestRepository
	matcher      *matching.Matcher
}

// NewAnalyzeCommand creates a new AnalyzeCommand with the given repositories.
func NewAnalyzeCommand(
	projectRepo repositories.ProjectRepository,
	sourceRepo repositories.SourceRepository,
	manifestRepo repositories.ManifestRepository,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		projectRepo:  projectRepo,
		sourceRepo:   sourceRepo,
		manifestRepo: manifestRepo,
		matcher:      matching.NewMatcher(),
	}
}

// Execute runs the analysis on the tree rooted at opts.Root.
func (it *AnalyzeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts AnalyzeOptions,
) (*entities.Report, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	report := &entities.Report{}

	registry, err := it.loadRegistry(ctx, opts.Root, report)
	if err != nil {
		return nil, err
	}

	evidence := it.applyExemptions(registry, settings, report)

	unresolved := make(map[string]bool)
	for _, id := range registry.IDs() {
		if _, done := evidence[id]; !done {
			unresolved[id] = true
		}
	}

	if len(unresolved) > 0 {
		if scanErr := it.scanSources(ctx, settings, opts.Root, unresolved, evidence, report); scanErr != nil {
			return nil, scanErr
		}
	} else if registry.Len() > 0 {
		report.Notes = append(report.Notes, "source scan skipped; every package was resolved before scanning")
	}

	if len(unresolved) > 0 && !settings.SkipManifest {
		if manifestErr := it.crossReferenceManifests(ctx, opts.Root, unresolved, evidence, report); manifestErr != nil {
			return nil, manifestErr
		}
	}

	it.partition(registry, evidence, report)
	return report, nil
}

// loadRegistry reads every project under root and folds its declarations
// into a fresh registry.
func (it *AnalyzeCommand) loadRegistry(
	ctx context.Context,
	root string,
	report *entities.Report,
) (*entities.Registry, error) {
	projects, err := it.projectRepo.FindProjects(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to discover projects under %q: %w", root, err)
	}

	registry := entities.NewRegistry()
	for _, project := range projects {
		logger.Debugf("Project %s declares %d package(s)", project.Path, len(project.References))
		for _, ref := range project.References {
			registry.Add(ref)
		}
	}

	report.ProjectCount = len(projects)
	if len(projects) == 0 {
		report.Notes = append(report.Notes, "no project files found; nothing to analyze")
	} else if registry.Len() == 0 {
		report.Notes = append(report.Notes, "project files declare no package references")
	}

	return registry, nil
}

// applyExemptions drops user-excluded packages from the registry and
// pre-marks tool-framework and development-only packages as used with
// synthetic evidence. Returns the evidence accumulator.
func (it *AnalyzeCommand) applyExemptions(
	registry *entities.Registry,
	settings *entities.Settings,
	report *entities.Report,
) map[string][]entities.Evidence {
	toolPrefixes := append(matching.BuiltinToolPrefixes(), settings.ToolPrefixes...)
	evidence := make(map[string][]entities.Evidence)

	for _, id := range registry.IDs() {
		kind := matching.Classify(id, settings.Exclude, toolPrefixes)
		switch kind {
		case entities.ExemptionUserExcluded:
			logger.Debugf("Excluding %s (%s)", id, kind)
			registry.Remove(id)
			report.Excluded = append(report.Excluded, id)
		case entities.ExemptionToolFramework:
			logger.Debugf("Exempting %s (%s)", id, kind)
			evidence[id] = append(evidence[id], entities.Evidence{
				PackageID: id,
				Rule:      entities.RuleToolFramework,
				Detail:    "matches a known build/test tool prefix",
			})
		case entities.ExemptionNone:
			if registry.DevOnly(id) {
				logger.Debugf("Exempting %s (development-only asset)", id)
				evidence[id] = append(evidence[id], entities.Evidence{
					PackageID: id,
					Rule:      entities.RuleDevDependency,
					Detail:    "declared with private assets only",
				})
			}
		}
	}

	return evidence
}

// scanSources fans candidate files out over a bounded worker group. Workers
// share the unresolved set under one mutex: a package already resolved is
// skipped before matching, and evidence is appended under the same lock. The
// final membership is a monotonic OR over all evidence, so scheduling order
// never changes the partition.
func (it *AnalyzeCommand) scanSources(
	ctx context.Context,
	settings *entities.Settings,
	root string,
	unresolved map[string]bool,
	evidence map[string][]entities.Evidence,
	report *entities.Report,
) error {
	files, err := it.sourceRepo.FindCandidates(ctx, root, settings.Extensions, settings.IgnoreDirs)
	if err != nil {
		return fmt.Errorf("failed to collect candidate files under %q: %w", root, err)
	}

	report.Scanned = true
	report.FileCount = len(files)
	if len(files) == 0 {
		report.Notes = append(report.Notes, "no candidate source files found")
		return nil
	}

	workers := settings.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var mu sync.Mutex
	var group errgroup.Group
	group.SetLimit(workers)

	for _, file := range files {
		file := file
		group.Go(func() error {
			for _, id := range it.snapshotUnresolved(&mu, unresolved) {
				ev, ok := it.matcher.Match(id, file)
				if !ok {
					continue
				}
				mu.Lock()
				if unresolved[id] {
					delete(unresolved, id)
					evidence[id] = append(evidence[id], ev)
					logger.Debugf("Evidence for %s: %s in %s", id, ev.Rule, ev.FilePath)
				}
				mu.Unlock()
			}
			return nil
		})
	}

	return group.Wait()
}

// snapshotUnresolved copies the still-unresolved set so a worker can iterate
// without holding the lock. A package resolved mid-iteration costs one
// redundant match, which is acceptable.
func (it *AnalyzeCommand) snapshotUnresolved(mu *sync.Mutex, unresolved map[string]bool) []string {
	mu.Lock()
	defer mu.Unlock()
	ids := make([]string, 0, len(unresolved))
	for id := range unresolved {
		ids = append(ids, id)
	}
	return ids
}

// crossReferenceManifests resolves remaining packages against build-output
// runtime manifests.
func (it *AnalyzeCommand) crossReferenceManifests(
	ctx context.Context,
	root string,
	unresolved map[string]bool,
	evidence map[string][]entities.Evidence,
	report *entities.Report,
) error {
	manifests, err := it.manifestRepo.FindManifests(ctx, root)
	if err != nil {
		return fmt.Errorf("failed to collect runtime manifests under %q: %w", root, err)
	}

	report.ManifestCount = len(manifests)
	for _, manifest := range manifests {
		for _, ev := range matching.CrossReference(manifest.Path, manifest.Entries, unresolved) {
			evidence[ev.PackageID] = append(evidence[ev.PackageID], ev)
			logger.Debugf("Evidence for %s: listed in %s", ev.PackageID, ev.FilePath)
		}
	}

	return nil
}

// partition folds the evidence accumulator into the final report.
func (it *AnalyzeCommand) partition(
	registry *entities.Registry,
	evidence map[string][]entities.Evidence,
	report *entities.Report,
) {
	for _, id := range registry.IDs() {
		if records, used := evidence[id]; used {
			report.Used = append(report.Used, entities.UsedEntry{ID: id, Evidence: records})
		} else {
			report.Unused = append(report.Unused, entities.UnusedEntry{
				ID:           id,
				Declarations: registry.Declarations(id),
			})
		}
	}
	report.SortStable()
}
