package matching

import (
	"strings"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// builtinToolPrefixes lists well-known packages that operate through the
// build pipeline rather than source-level references: test SDKs and runners,
// mocking and assertion frameworks, coverage tooling, analyzers, and source
// link. Scanning for them is pointless; they are exempted by convention.
// Prefix matching is case-sensitive, like NuGet identifiers in practice.
var builtinToolPrefixes = []string{
	"Microsoft.NET.Test.Sdk",
	"Microsoft.TestPlatform",
	"Microsoft.CodeAnalysis",
	"Microsoft.CodeCoverage",
	"Microsoft.SourceLink",
	"MSTest",
	"NUnit",
	"xunit",
	"coverlet",
	"Moq",
	"NSubstitute",
	"FluentAssertions",
	"StyleCop.Analyzers",
	"SonarAnalyzer",
	"Roslynator",
	"ReportGenerator",
	"GitVersion",
	"Nerdbank.GitVersioning",
}

// BuiltinToolPrefixes returns a copy of the built-in tool prefix list.
func BuiltinToolPrefixes() []string {
	out := make([]string, len(builtinToolPrefixes))
	copy(out, builtinToolPrefixes)
	return out
}

// Classify decides, without scanning any file, whether a package identifier
// is categorically exempt from usage-evidence requirements. Exact match on
// the caller's exclusion list wins over tool-prefix matching; unmatched input
// yields ExemptionNone.
func Classify(id string, userExcludes []string, toolPrefixes []string) entities.ExemptionKind {
	for _, excluded := range userExcludes {
		if id == excluded {
			return entities.ExemptionUserExcluded
		}
	}
	for _, prefix := range toolPrefixes {
		if strings.HasPrefix(id, prefix) {
			return entities.ExemptionToolFramework
		}
	}
	return entities.ExemptionNone
}
