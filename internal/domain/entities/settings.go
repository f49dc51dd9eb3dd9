package entities

// Settings is the merged runtime configuration for a single analysis run,
// built from the config file and CLI flag overrides.
type Settings struct {
	Exclude      []string // Package identifiers dropped from the analysis entirely
	ToolPrefixes []string // Extra tool/framework prefixes on top of the built-in list
	Extensions   []string // Candidate file extension allow-list
	IgnoreDirs   []string // Directory names excluded from all walking
	Workers      int      // Concurrent scan workers (0 = runtime default)
	Detail       bool     // Include per-package evidence detail in the report
	SkipManifest bool     // Skip runtime manifest cross-referencing
}
