package matching

import (
	"strings"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// CrossReference resolves still-unresolved packages against a runtime
// manifest. A manifest entry is a composite key ("Acme.Widgets/2.1.0"); its
// leading segment before the separator must exactly equal a package
// identifier. Returns one synthetic evidence record per newly resolved
// package, attributing the manifest file.
func CrossReference(manifestPath string, entries []string, unresolved map[string]bool) []entities.Evidence {
	var resolved []entities.Evidence
	for _, entry := range entries {
		id, _, _ := strings.Cut(entry, "/")
		if id == "" || !unresolved[id] {
			continue
		}
		resolved = append(resolved, entities.Evidence{
			PackageID: id,
			FilePath:  manifestPath,
			Rule:      entities.RuleRuntimeManifest,
			Detail:    entry,
		})
		delete(unresolved, id)
	}
	return resolved
}
