package helix

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-dna/internal/sequence"
)

func TestGenerate_PointCount(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 10, 64} {
		seq := sequence.Sequence(strings.Repeat("A", n))
		h := Generate(seq)
		assert.Equal(t, n, h.Len(), "n=%d", n)
	}
}

func TestGenerate_Empty(t *testing.T) {
	h := Generate("")
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Pairs())
}

func TestGenerate_ZRamp(t *testing.T) {
	h := Generate("ATCGATCGATCGA")
	require.Equal(t, 13, h.Len())

	assert.Equal(t, 0.0, h.Points[0].Z)
	assert.Equal(t, 1.0, h.Points[h.Len()-1].Z)
	for i := 1; i < h.Len(); i++ {
		assert.GreaterOrEqual(t, h.Points[i].Z, h.Points[i-1].Z, "z decreased at %d", i)
	}
}

func TestGenerate_Coordinates(t *testing.T) {
	h := Generate("ATCGA")
	require.Equal(t, 5, h.Len())

	// t = 0, π, 2π, 3π, 4π
	wantY := []float64{1, -1, 1, -1, 1}
	for i, p := range h.Points {
		assert.InDelta(t, 0.0, p.X, 1e-9, "x[%d]", i)
		assert.InDelta(t, wantY[i], p.Y, 1e-9, "y[%d]", i)
		assert.InDelta(t, float64(i)/4, p.Z, 1e-12, "z[%d]", i)
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-9, "radius[%d]", i)
	}
}

func TestGenerate_SinglePoint(t *testing.T) {
	h := Generate("G")
	require.Equal(t, 1, h.Len())
	assert.Equal(t, Point{X: 0, Y: 1, Z: 0, Base: 'G'}, h.Points[0])
	assert.Empty(t, h.Pairs())
}

func TestGenerate_BasesPreserved(t *testing.T) {
	seq := sequence.Sequence("GATTACA")
	h := Generate(seq)
	for i, p := range h.Points {
		assert.Equal(t, seq[i], p.Base)
	}
}

func TestPairs(t *testing.T) {
	tests := []struct {
		name string
		seq  sequence.Sequence
		want []Pair
	}{
		{"even length", "ATCG", []Pair{{0, 1}, {2, 3}}},
		{"odd length leaves last unpaired", "ATCGA", []Pair{{0, 1}, {2, 3}}},
		{"two bases", "AT", []Pair{{0, 1}}},
		{"one base", "A", []Pair{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.seq).Pairs())
		})
	}
}

func TestByBase(t *testing.T) {
	groups := Generate("GATTACA").ByBase()

	assert.Equal(t, []int{1, 4, 6}, groups['A'])
	assert.Equal(t, []int{2, 3}, groups['T'])
	assert.Equal(t, []int{5}, groups['C'])
	assert.Equal(t, []int{0}, groups['G'])
}

func TestPalette(t *testing.T) {
	require.Len(t, Palette, 4)
	for _, b := range sequence.Bases {
		_, ok := Palette[b]
		assert.True(t, ok, "missing colour for %c", b)
	}
	assert.Equal(t, Palette['A'], ColorOf('A'))
	assert.NotEqual(t, ColorOf('A'), ColorOf('T'))
}
