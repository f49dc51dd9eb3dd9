//go:build unit

package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luport-dev/Unused-NuGet-Packages-Detector/internal/domain/matching"
)

func TestDeriveTokens(t *testing.T) {
	t.Parallel()

	t.Run("should always include the literal identifier first", func(t *testing.T) {
		t.Parallel()

		// given
		id := "Newtonsoft.Json"

		// when
		tokens := matching.DeriveTokens(id)

		// then
		assert.Equal(t, "Newtonsoft.Json", tokens.Tokens[0])
	})

	t.Run("should derive the main namespace from the first two segments", func(t *testing.T) {
		t.Parallel()

		// given
		id := "Vendor.Product.Sub.Feature"

		// when
		tokens := matching.DeriveTokens(id)

		// then
		assert.Contains(t, tokens.Tokens, "Vendor.Product")
	})

	t.Run("should derive individual segments longer than two characters", func(t *testing.T) {
		t.Parallel()

		// given
		id := "Newtonsoft.Json"

		// when
		tokens := matching.DeriveTokens(id)

		// then
		assert.Contains(t, tokens.Tokens, "Newtonsoft")
		assert.Contains(t, tokens.Tokens, "Json")
	})

	t.Run("should skip short segments", func(t *testing.T) {
		t.Parallel()

		// given
		id := "AWSSDK.S3"

		// when
		tokens := matching.DeriveTokens(id)

		// then
		assert.Contains(t, tokens.Tokens, "AWSSDK")
		assert.NotContains(t, tokens.Tokens, "S3")
	})

	t.Run("should skip generic segments that would match unrelated code", func(t *testing.T) {
		t.Parallel()

		// given
		id := "Vendor.Core.Extensions.Utils"

		// when
		tokens := matching.DeriveTokens(id)

		// then
		assert.Contains(t, tokens.Tokens, "Vendor")
		assert.NotContains(t, tokens.Tokens, "Core")
		assert.NotContains(t, tokens.Tokens, "Extensions")
		assert.NotContains(t, tokens.Tokens, "Utils")
	})

	t.Run("should strip a conventional Client suffix", func(t *testing.T) {
		t.Parallel()

		// given
		id := "Vendor.Logging.Client"

		// when
		tokens := matching.DeriveTokens(id)

		// then
		assert.Contains(t, tokens.Tokens, "Vendor.Logging")
	})

	t.Run("should derive extension-method call tokens for Extensions packages", func(t *testing.T) {
		t.Parallel()

		// given
		id := "Microsoft.Extensions.Caching"

		// when
		tokens := matching.DeriveTokens(id)

		// then
		assert.Contains(t, tokens.Tokens, "AddCaching")
		assert.Contains(t, tokens.Tokens, "UseCaching")
	})

	t.Run("should not duplicate tokens", func(t *testing.T) {
		t.Parallel()

		// given
		id := "Serilog"

		// when
		tokens := matching.DeriveTokens(id)

		// then
		assert.Equal(t, []string{"Serilog"}, tokens.Tokens)
	})
}
