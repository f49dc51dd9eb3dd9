//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs) for the
// domain repository interfaces. These are hand-crafted implementations — no
// mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/repositories"
)

// SpyProjectRepository implements repositories.ProjectRepository as a
// configurable spy.
type SpyProjectRepository struct {
	Projects []entities.Project
	Err      error

	// spy: roots that were requested
	RequestedRoots []string
}

var _ repositories.ProjectRepository = (*SpyProjectRepository)(nil)

func (s *SpyProjectRepository) FindProjects(_ context.Context, root string) ([]entities.Project, error) {
	s.RequestedRoots = append(s.RequestedRoots, root)
	return s.Projects, s.Err
}

// SpySourceRepository implements repositories.SourceRepository as a
// configurable spy.
type SpySourceRepository struct {
	Files []entities.CandidateFile
	Err   error

	// spy: inputs received
	RequestedRoots      []string
	RequestedExtensions [][]string
}

var _ repositories.SourceRepository = (*SpySourceRepository)(nil)

func (s *SpySourceRepository) FindCandidates(
	_ context.Context,
	root string,
	extensions, _ []string,
) ([]entities.CandidateFile, error) {
	s.RequestedRoots = append(s.RequestedRoots, root)
	s.RequestedExtensions = append(s.RequestedExtensions, extensions)
	return s.Files, s.Err
}

// SpyManifestRepository implements repositories.ManifestRepository as a
// configurable spy.
type SpyManifestRepository struct {
	Manifests []repositories.Manifest
	Err       error

	// spy: number of lookups performed
	Calls int
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) FindManifests(_ context.Context, _ string) ([]repositories.Manifest, error) {
	s.Calls++
	return s.Manifests, s.Err
}

// SpyReportRepository implements repositories.ReportRepository as a spy.
type SpyReportRepository struct {
	Err error

	// spy: reports received
	Written      []*entities.Report
	DetailValues []bool
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) Write(report *entities.Report, detail bool) error {
	s.Written = append(s.Written, report)
	s.DetailValues = append(s.DetailValues, detail)
	return s.Err
}
