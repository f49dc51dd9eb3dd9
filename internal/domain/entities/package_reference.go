package entities

// PackageReference represents a single NuGet package declaration found in a
// project file.
type PackageReference struct {
	ID      string // Package identifier (e.g. "Newtonsoft.Json")
	Version string // Declared version, informational only
	Project string // Path of the declaring project file
	DevOnly bool   // PrivateAssets="all" / developmentDependency marker
}

// Project represents a parsed MSBuild project (or packages.config) and the
// package references it declares.
type Project struct {
	Path       string
	References []PackageReference
}

// CandidateFile is a unit of scan input. Content is read once and immutable
// for the duration of a scan pass.
type CandidateFile struct {
	Path    string
	Content string
}
