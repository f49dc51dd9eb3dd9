package matching

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
)

const tokenCacheSize = 512

// Matcher applies the rule battery to (package, file) pairs. Token sets are
// compiled once per package identifier and cached; identifiers repeat across
// projects and every file is scanned against the same identifiers. The cache
// locks internally, so a single Matcher is shared by all scan workers.
type Matcher struct {
	rules []Rule
	cache *lru.Cache[string, *TokenSet]
}

// NewMatcher creates a matcher with the default rule battery.
func NewMatcher() *Matcher {
	cache, err := lru.New[string, *TokenSet](tokenCacheSize)
	if err != nil {
		panic(err) // only fails on a non-positive size
	}
	return &Matcher{
		rules: DefaultRules(),
		cache: cache,
	}
}

// Match scans one file for evidence of one package, applying the rules in
// precedence order and returning on the first success.
func (m *Matcher) Match(packageID string, file entities.CandidateFile) (entities.Evidence, bool) {
	tokens := m.tokens(packageID)
	for _, rule := range m.rules {
		if ev, ok := rule.TryMatch(tokens, file); ok {
			return ev, true
		}
	}
	return entities.Evidence{}, false
}

func (m *Matcher) tokens(packageID string) *TokenSet {
	if ts, ok := m.cache.Get(packageID); ok {
		return ts
	}
	ts := DeriveTokens(packageID)
	m.cache.Add(packageID, ts)
	return ts
}
