//go:build unit

package console_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/infrastructure/repositories/console"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("should render both partitions with declaring projects", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		reporter := console.NewReportRepositoryWithWriter(&buf)
		report := &entities.Report{
			Used: []entities.UsedEntry{{ID: "Vendor.Logging.Client"}},
			Unused: []entities.UnusedEntry{{
				ID: "Newtonsoft.Json",
				Declarations: []entities.PackageReference{
					{ID: "Newtonsoft.Json", Version: "13.0.1", Project: "Project1/Project1.csproj"},
				},
			}},
			ProjectCount: 1,
			FileCount:    3,
			Scanned:      true,
		}

		// when
		err := reporter.Write(report, false)

		// then
		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "Used packages (1):")
		assert.Contains(t, out, "Vendor.Logging.Client")
		assert.Contains(t, out, "Possibly unused packages (1):")
		assert.Contains(t, out, "Newtonsoft.Json")
		assert.Contains(t, out, "Project1/Project1.csproj")
		assert.Contains(t, out, "version 13.0.1")
	})

	t.Run("should include evidence trails only in detail mode", func(t *testing.T) {
		t.Parallel()

		// given
		report := &entities.Report{
			Used: []entities.UsedEntry{{
				ID: "Acme.Widgets",
				Evidence: []entities.Evidence{{
					PackageID: "Acme.Widgets",
					FilePath:  "Program.cs",
					Rule:      entities.RuleSubstring,
					Detail:    "Acme.Widgets",
				}},
			}},
		}

		var plain, detailed bytes.Buffer

		// when
		require.NoError(t, console.NewReportRepositoryWithWriter(&plain).Write(report, false))
		require.NoError(t, console.NewReportRepositoryWithWriter(&detailed).Write(report, true))

		// then
		assert.NotContains(t, plain.String(), "Program.cs")
		assert.Contains(t, detailed.String(), "Program.cs")
		assert.Contains(t, detailed.String(), entities.RuleSubstring)
	})

	t.Run("should print the heuristic disclaimer only when something is unused", func(t *testing.T) {
		t.Parallel()

		// given
		clean := &entities.Report{Used: []entities.UsedEntry{{ID: "Acme.Widgets"}}}
		dirty := &entities.Report{Unused: []entities.UnusedEntry{{ID: "Acme.Widgets"}}}

		var cleanOut, dirtyOut bytes.Buffer

		// when
		require.NoError(t, console.NewReportRepositoryWithWriter(&cleanOut).Write(clean, false))
		require.NoError(t, console.NewReportRepositoryWithWriter(&dirtyOut).Write(dirty, false))

		// then
		assert.NotContains(t, cleanOut.String(), "heuristic")
		assert.Contains(t, dirtyOut.String(), "heuristic")
	})

	t.Run("should surface informational notes", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		report := &entities.Report{Notes: []string{"no project files found; nothing to analyze"}}

		// when
		require.NoError(t, console.NewReportRepositoryWithWriter(&buf).Write(report, false))

		// then
		assert.Contains(t, buf.String(), "Note: no project files found")
	})

	t.Run("should omit the file counter when the source scan never ran", func(t *testing.T) {
		t.Parallel()

		// given
		var skipped, scanned bytes.Buffer
		preResolved := &entities.Report{
			Used:         []entities.UsedEntry{{ID: "xunit"}},
			ProjectCount: 1,
		}
		full := &entities.Report{
			Used:         []entities.UsedEntry{{ID: "Acme.Widgets"}},
			ProjectCount: 1,
			FileCount:    2,
			Scanned:      true,
		}

		// when
		require.NoError(t, console.NewReportRepositoryWithWriter(&skipped).Write(preResolved, false))
		require.NoError(t, console.NewReportRepositoryWithWriter(&scanned).Write(full, false))

		// then
		assert.NotContains(t, skipped.String(), "candidate file(s)")
		assert.Contains(t, skipped.String(), "Scanned 1 project(s), 0 runtime manifest(s)")
		assert.Contains(t, scanned.String(), "Scanned 1 project(s), 2 candidate file(s), 0 runtime manifest(s)")
	})

	t.Run("should list excluded packages", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		report := &entities.Report{Excluded: []string{"Foo.Bar", "Baz.Qux"}}

		// when
		require.NoError(t, console.NewReportRepositoryWithWriter(&buf).Write(report, false))

		// then
		assert.Contains(t, buf.String(), "Excluded from analysis (2): Foo.Bar, Baz.Qux")
	})
}
