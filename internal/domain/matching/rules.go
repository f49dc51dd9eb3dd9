package matching

import (
	"strings"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

// Rule is one evidence-matching strategy. Rules are pure: absence of a match
// is a normal outcome, not an error.
type Rule interface {
	// Name returns the rule identifier recorded on produced evidence.
	Name() string

	// TryMatch scans the file for evidence of the token set's package.
	TryMatch(tokens *TokenSet, file entities.CandidateFile) (entities.Evidence, bool)
}

// DefaultRules returns the rule battery in fixed precedence order:
// attribute usage first (declarative-only consumption), then import
// statements (highest confidence), then the bare substring catch-all
// (highest recall, lowest confidence).
func DefaultRules() []Rule {
	return []Rule{
		attributeRule{},
		importRule{},
		substringRule{},
	}
}

// attributeRule matches the package's tokens inside an annotation-like
// bracketed construct, e.g. [MemoryDiagnoser] or <xunit.Fact>. Many packages
// are consumed purely through attributes, with no import statement at all.
type attributeRule struct{}

func (attributeRule) Name() string { return entities.RuleAttributeUsage }

func (attributeRule) TryMatch(tokens *TokenSet, file entities.CandidateFile) (entities.Evidence, bool) {
	loc := tokens.attributePattern.FindString(file.Content)
	if loc == "" {
		return entities.Evidence{}, false
	}
	return entities.Evidence{
		PackageID: tokens.PackageID,
		FilePath:  file.Path,
		Rule:      entities.RuleAttributeUsage,
		Detail:    strings.TrimSpace(loc),
	}, true
}

// importRule matches a using/Imports directive whose namespace path ends with
// one of the derived tokens.
type importRule struct{}

func (importRule) Name() string { return entities.RuleImportStatement }

func (importRule) TryMatch(tokens *TokenSet, file entities.CandidateFile) (entities.Evidence, bool) {
	loc := tokens.importPattern.FindString(file.Content)
	if loc == "" {
		return entities.Evidence{}, false
	}
	return entities.Evidence{
		PackageID: tokens.PackageID,
		FilePath:  file.Path,
		Rule:      entities.RuleImportStatement,
		Detail:    strings.TrimSpace(loc),
	}, true
}

// substringRule matches any derived token anywhere in the file text. It is
// the catch-all for reflection-based and string-keyed usage that no
// structural rule can see.
type substringRule struct{}

func (substringRule) Name() string { return entities.RuleSubstring }

func (substringRule) TryMatch(tokens *TokenSet, file entities.CandidateFile) (entities.Evidence, bool) {
	for _, tok := range tokens.Tokens {
		if strings.Contains(file.Content, tok) {
			return entities.Evidence{
				PackageID: tokens.PackageID,
				FilePath:  file.Path,
				Rule:      entities.RuleSubstring,
				Detail:    tok,
			}, true
		}
	}
	return entities.Evidence{}, false
}
