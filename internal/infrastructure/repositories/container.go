package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/repositories"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/infrastructure/repositories/console"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/infrastructure/repositories/depsjson"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/infrastructure/repositories/msbuild"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/infrastructure/repositories/sources"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(msbuild.NewProjectRepository); err != nil {
		return err
	}
	if err := container.Provide(sources.NewSourceRepository); err != nil {
		return err
	}
	if err := container.Provide(depsjson.NewManifestRepository); err != nil {
		return err
	}
	if err := container.Provide(console.NewReportRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *msbuild.ProjectRepository) domainRepos.ProjectRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *sources.SourceRepository) domainRepos.SourceRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *depsjson.ManifestRepository) domainRepos.ManifestRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *console.ReportRepository) domainRepos.ReportRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
