// Package matching implements the usage-inference engine: token derivation
// from package identifiers, the ordered battery of evidence rules, the
// exemption classifier, and the runtime-manifest cross-referencer. Everything
// in this package is a pure text computation with no side effects.
package matching

import (
	"regexp"
	"strings"
)

// genericSegments are namespace segments too common to be meaningful on their
// own; matching them alone would flag unrelated code.
var genericSegments = map[string]bool{
	"Core":         true,
	"Common":       true,
	"Extensions":   true,
	"Utils":        true,
	"Abstractions": true,
	"Client":       true,
	"Shared":       true,
	"Base":         true,
}

// TokenSet holds the search tokens derived from one package identifier,
// together with the compiled patterns for the positional rules. Derivation is
// deliberately recall-biased: false positives are acceptable, missed
// intentional usage is not.
type TokenSet struct {
	PackageID string
	Tokens    []string // Ordered, most specific first

	attributePattern *regexp.Regexp
	importPattern    *regexp.Regexp
}

// DeriveTokens builds the token set for a dot-delimited package identifier.
func DeriveTokens(id string) *TokenSet {
	tokens := []string{id}
	seen := map[string]bool{id: true}

	add := func(tok string) {
		if tok != "" && !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}

	segments := strings.Split(id, ".")

	// "Vendor.Product.Sub.Feature" -> "Vendor.Product"
	if len(segments) >= 2 {
		add(segments[0] + "." + segments[1])
	}

	// "Vendor.Logging.Client" -> "Vendor.Logging"
	if stripped, ok := strings.CutSuffix(id, ".Client"); ok {
		add(stripped)
	}

	for _, seg := range segments {
		if len(seg) > 2 && !genericSegments[seg] {
			add(seg)
		}
	}

	// Packages following the *.Extensions.* convention are typically consumed
	// through extension-method calls on a builder, never through their own
	// namespace (e.g. services.AddMemoryCache()).
	if len(segments) >= 2 && containsSegment(segments, "Extensions") {
		last := segments[len(segments)-1]
		if len(last) > 2 && !genericSegments[last] {
			add("Add" + last)
			add("Use" + last)
		}
	}

	ts := &TokenSet{PackageID: id, Tokens: tokens}
	ts.compile()
	return ts
}

func containsSegment(segments []string, want string) bool {
	for _, seg := range segments {
		if seg == want {
			return true
		}
	}
	return false
}

// compile builds one alternation per positional rule covering every token.
func (ts *TokenSet) compile() {
	quoted := make([]string, len(ts.Tokens))
	for i, tok := range ts.Tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	alternation := strings.Join(quoted, "|")

	// [Foo], [Foo(...)], [Ns.FooAttribute], <Foo ...> and friends.
	ts.attributePattern = regexp.MustCompile(
		`[\[<](?:[A-Za-z_][\w.]*\.)?(?:` + alternation + `)(?:Attribute)?(?:[\s(,\]>/]|$)`,
	)

	// using Vendor.Product;  Imports Vendor.Product  @using Vendor.Product
	// The namespace path must END with a token; a mid-path hit is handled by
	// the substring rule instead.
	ts.importPattern = regexp.MustCompile(
		`(?m)^\s*(?:global\s+)?(?:using|Imports|@using)\s+(?:static\s+)?(?:[\w.]+\.)?(?:` +
			alternation + `)\s*;?\s*$`,
	)
}
