// ABOUTME: Tests for the deterministic offline embedding tier
// ABOUTME: Verifies determinism, range, and known hash values
package embedding

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringHash_KnownValues(t *testing.T) {
	tests := []struct {
		text string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*31 + 98},
		{"hello", 99162322},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stringHash(tt.text), "stringHash(%q)", tt.text)
	}
}

func TestStringHash_WrapsAt32Bits(t *testing.T) {
	// Long input overflows int32 many times; result must still be stable
	long := "The quick brown fox jumps over the lazy dog, repeatedly and at length."
	assert.Equal(t, stringHash(long), stringHash(long))
}

func TestStringHash_UsesUTF16Units(t *testing.T) {
	// U+1F600 is a surrogate pair: 0xD83D 0xDE00
	want := int32(0xD83D)*31 + int32(0xDE00)
	assert.Equal(t, want, stringHash("😀"))
}

func TestHashEmbedder_Deterministic(t *testing.T) {
	h := NewHashEmbedder(DefaultDimension)
	ctx := context.Background()

	for _, text := range []string{"", "hello", "Thank you, that was awesome!", "日本語のテキスト"} {
		a, err := h.Embed(ctx, text)
		require.NoError(t, err)
		b, err := h.Embed(ctx, text)
		require.NoError(t, err)
		assert.Equal(t, a, b, "embedding of %q should be deterministic", text)
	}
}

func TestHashEmbedder_ValuesAndShape(t *testing.T) {
	h := NewHashEmbedder(DefaultDimension)
	vec, err := h.Embed(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, vec, DefaultDimension)

	for i, v := range vec {
		assert.InDelta(t, math.Sin(97*float64(i+1))/2, v, 1e-12)
		assert.LessOrEqual(t, math.Abs(v), 0.5)
	}
}

func TestHashEmbedder_DistinctTexts(t *testing.T) {
	h := NewHashEmbedder(DefaultDimension)
	a, _ := h.Embed(context.Background(), "work meeting tomorrow")
	b, _ := h.Embed(context.Background(), "band practice tonight")
	assert.NotEqual(t, a, b)
}

func TestHashEmbedder_DefaultsDimension(t *testing.T) {
	assert.Equal(t, DefaultDimension, NewHashEmbedder(0).Dimension())
}
