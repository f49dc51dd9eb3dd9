package entities

import "sort"

// UsedEntry is a package classified as used, with the evidence that proves it.
type UsedEntry struct {
	ID       string
	Evidence []Evidence
}

// UnusedEntry is a package with no usage evidence anywhere in the corpus,
// attributed to every project that declares it.
type UnusedEntry struct {
	ID           string
	Declarations []PackageReference // One per declaring project, versions kept distinct
}

// Report is the final usage partition: every registered, non-excluded package
// appears in exactly one of Used or Unused.
type Report struct {
	Used     []UsedEntry
	Unused   []UnusedEntry
	Excluded []string // Dropped by the caller's exclusion list, reported in neither set
	Notes    []string // Informational notes (empty corpus, skipped manifests, ...)

	ProjectCount  int
	FileCount     int
	ManifestCount int
	Scanned       bool // False when every package was resolved before the source scan ran
}

// SortStable orders both partitions by package identifier so repeated runs
// render identically.
func (r *Report) SortStable() {
	sort.Slice(r.Used, func(i, j int) bool { return r.Used[i].ID < r.Used[j].ID })
	sort.Slice(r.Unused, func(i, j int) bool { return r.Unused[i].ID < r.Unused[j].ID })
	sort.Strings(r.Excluded)
}
