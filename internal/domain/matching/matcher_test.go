//go:build unit

package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/entities"
	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/matching"
)

func TestMatcherMatch(t *testing.T) {
	t.Parallel()

	t.Run("should match an attribute usage before anything else", func(t *testing.T) {
		t.Parallel()

		// given
		matcher := matching.NewMatcher()
		file := entities.CandidateFile{
			Path:    "Handlers/CacheHandler.cs",
			Content: "[Caching(Policy = \"sliding\")]\npublic class CacheHandler { }\n",
		}

		// when
		evidence, ok := matcher.Match("Acme.Caching", file)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RuleAttributeUsage, evidence.Rule)
		assert.Equal(t, "Acme.Caching", evidence.PackageID)
		assert.Equal(t, "Handlers/CacheHandler.cs", evidence.FilePath)
	})

	t.Run("should match an attribute with the Attribute suffix spelled out", func(t *testing.T) {
		t.Parallel()

		// given
		matcher := matching.NewMatcher()
		file := entities.CandidateFile{
			Path:    "Program.cs",
			Content: "[CachingAttribute]\nclass Program { }\n",
		}

		// when
		evidence, ok := matcher.Match("Acme.Caching", file)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RuleAttributeUsage, evidence.Rule)
	})

	t.Run("should match a namespace-qualified attribute", func(t *testing.T) {
		t.Parallel()

		// given
		matcher := matching.NewMatcher()
		file := entities.CandidateFile{
			Path:    "Program.cs",
			Content: "[Acme.Caching.Caching]\nclass Program { }\n",
		}

		// when
		evidence, ok := matcher.Match("Acme.Caching", file)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RuleAttributeUsage, evidence.Rule)
	})

	t.Run("should match an import whose namespace ends with a derived token", func(t *testing.T) {
		t.Parallel()

		// given
		matcher := matching.NewMatcher()
		file := entities.CandidateFile{
			Path:    "Services/Logger.cs",
			Content: "using System;\nusing Vendor.Logging;\n\nnamespace Services { }\n",
		}

		// when
		evidence, ok := matcher.Match("Vendor.Logging.Client", file)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RuleImportStatement, evidence.Rule)
		assert.Equal(t, "using Vendor.Logging;", evidence.Detail)
	})

	t.Run("should fall back to the substring rule for string-keyed usage", func(t *testing.T) {
		t.Parallel()

		// given
		matcher := matching.NewMatcher()
		file := entities.CandidateFile{
			Path:    "App.config",
			Content: "<add key=\"serializer\" value=\"Acme.Widgets.JsonSerializer\" />\n",
		}

		// when
		evidence, ok := matcher.Match("Acme.Widgets", file)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RuleSubstring, evidence.Rule)
		assert.Equal(t, "Acme.Widgets", evidence.Detail)
	})

	t.Run("should report no evidence when nothing references the package", func(t *testing.T) {
		t.Parallel()

		// given
		matcher := matching.NewMatcher()
		file := entities.CandidateFile{
			Path:    "Program.cs",
			Content: "using System;\n\nclass Program { static void Main() { } }\n",
		}

		// when
		_, ok := matcher.Match("Newtonsoft.Json", file)

		// then
		assert.False(t, ok)
	})

	t.Run("should not treat a mid-path namespace hit as an import match", func(t *testing.T) {
		t.Parallel()

		// given: "Vendor" appears mid-path, so only the substring rule applies
		matcher := matching.NewMatcher()
		file := entities.CandidateFile{
			Path:    "Program.cs",
			Content: "using Other.Vendor.Things;\n",
		}

		// when
		evidence, ok := matcher.Match("Vendor.Widgets", file)

		// then
		require.True(t, ok)
		assert.Equal(t, entities.RuleSubstring, evidence.Rule)
	})
}
