// Package console renders the usage report for terminal consumption.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// ReportRepository writes the usage partition as plain text.
type ReportRepository struct {
	out io.Writer
}

// NewReportRepository creates a reporter writing to stdout.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{out: os.Stdout}
}

// NewReportRepositoryWithWriter creates a reporter writing to the given
// writer.
func NewReportRepositoryWithWriter(out io.Writer) *ReportRepository {
	return &ReportRepository{out: out}
}

// Write renders the report. When detail is true, the evidence trail of every
// used package is included.
func (it *ReportRepository) Write(report *entities.Report, detail bool) error {
	w := it.out

	if report.Scanned {
		fmt.Fprintf(w, "Scanned %d project(s), %d candidate file(s), %d runtime manifest(s)\n\n",
			report.ProjectCount, report.FileCount, report.ManifestCount)
	} else {
		fmt.Fprintf(w, "Scanned %d project(s), %d runtime manifest(s)\n\n",
			report.ProjectCount, report.ManifestCount)
	}

	for _, note := range report.Notes {
		fmt.Fprintf(w, "Note: %s\n", note)
	}
	if len(report.Notes) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Used packages (%d):\n", len(report.Used))
	for _, entry := range report.Used {
		fmt.Fprintf(w, "  %s\n", entry.ID)
		if detail {
			for _, ev := range entry.Evidence {
				it.writeEvidence(w, ev)
			}
		}
	}

	fmt.Fprintf(w, "\nPossibly unused packages (%d):\n", len(report.Unused))
	for _, entry := range report.Unused {
		fmt.Fprintf(w, "  %s\n", entry.ID)
		for _, ref := range entry.Declarations {
			if ref.Version != "" {
				fmt.Fprintf(w, "    declared in %s (version %s)\n", ref.Project, ref.Version)
			} else {
				fmt.Fprintf(w, "    declared in %s\n", ref.Project)
			}
		}
	}

	if len(report.Excluded) > 0 {
		fmt.Fprintf(w, "\nExcluded from analysis (%d): ", len(report.Excluded))
		for i, id := range report.Excluded {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, id)
		}
		fmt.Fprintln(w)
	}

	if len(report.Unused) > 0 {
		fmt.Fprintln(w, "\nResults are heuristic text-match evidence, not proof.")
		fmt.Fprintln(w, "Verify each package manually before removing it.")
	}

	return nil
}

func (it *ReportRepository) writeEvidence(w io.Writer, ev entities.Evidence) {
	switch {
	case ev.FilePath == "" && ev.Detail != "":
		fmt.Fprintf(w, "    %s: %s\n", ev.Rule, ev.Detail)
	case ev.Detail != "":
		fmt.Fprintf(w, "    %s: %q in %s\n", ev.Rule, ev.Detail, ev.FilePath)
	default:
		fmt.Fprintf(w, "    %s: %s\n", ev.Rule, ev.FilePath)
	}
}
