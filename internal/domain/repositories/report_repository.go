package repositories

import (
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// ReportRepository renders the final usage partition for the user.
type ReportRepository interface {
	// Write renders the report. When detail is true, per-package evidence
	// trails are included for the Used set.
	Write(report *entities.Report, detail bool) error
}
