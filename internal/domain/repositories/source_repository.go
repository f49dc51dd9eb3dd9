package repositories

import (
	"context"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// SourceRepository abstracts the filesystem walk that collects candidate
// files for evidence scanning.
type SourceRepository interface {
	// FindCandidates returns every file under root whose extension is in the
	// allow-list, excluding ignored directories. Unreadable files are skipped
	// with a warning.
	FindCandidates(ctx context.Context, root string, extensions, ignoreDirs []string) ([]entities.CandidateFile, error)
}
