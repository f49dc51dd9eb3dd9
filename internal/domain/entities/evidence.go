package entities

// Rule names attached to evidence records.
const (
	RuleAttributeUsage  = "attribute-usage"
	RuleImportStatement = "import-statement"
	RuleSubstring       = "substring"
	RuleToolFramework   = "categorical-exemption"
	RuleDevDependency   = "development-only-asset"
	RuleRuntimeManifest = "runtime-manifest"
)

// Evidence is a single piece of proof that a package is referenced somewhere
// in the corpus. Records are append-only and never mutated.
type Evidence struct {
	PackageID string
	FilePath  string // File (or manifest) that produced the match; empty for categorical exemptions
	Rule      string
	Detail    string // Optional free-text detail (matched token, manifest entry, ...)
}

// ExemptionKind classifies a package before any file is scanned.
type ExemptionKind int

const (
	// ExemptionNone means the package is subject to full evidence scanning.
	ExemptionNone ExemptionKind = iota
	// ExemptionUserExcluded means the package was excluded by the caller and
	// is dropped from the analysis entirely.
	ExemptionUserExcluded
	// ExemptionToolFramework means the package matches a known build/test tool
	// prefix and is treated as used without scanning.
	ExemptionToolFramework
)

// String returns a human-readable name for the exemption kind.
func (k ExemptionKind) String() string {
	switch k {
	case ExemptionUserExcluded:
		return "user-excluded"
	case ExemptionToolFramework:
		return "tool-framework"
	default:
		return "none"
	}
}
