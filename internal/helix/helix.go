// Package helix maps sequence positions onto a decorative double-helix curve.
//
// The geometry is illustrative only: two full turns of a unit-radius helix
// rising from z=0 to z=1, with consecutive positions paired by a rung.
package helix

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/inodb/vibe-dna/internal/sequence"
)

// Turns is the number of full revolutions the curve makes.
const Turns = 2

// Palette maps each base to its scatter colour.
var Palette = map[byte]drawing.Color{
	'A': {R: 0, G: 0, B: 255, A: 255},   // blue
	'T': {R: 255, G: 0, B: 0, A: 255},   // red
	'C': {R: 0, G: 128, B: 0, A: 255},   // green
	'G': {R: 255, G: 255, B: 0, A: 255}, // yellow
}

// Point is one base placed on the helix.
type Point struct {
	X, Y, Z float64
	Base    byte
}

// Pair is a rung between two point indices.
type Pair struct {
	I, J int
}

// Helix holds one point per base of the source sequence.
type Helix struct {
	Points []Point
}

// Generate places every base of seq on the helix. Angles are evenly spaced
// over [0, 4π] and heights over [0, 1], both inclusive of their endpoints.
func Generate(seq sequence.Sequence) Helix {
	n := seq.Len()
	ts := linspace(0, 2*Turns*math.Pi, n)
	zs := linspace(0, 1, n)

	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{
			X:    math.Sin(ts[i]),
			Y:    math.Cos(ts[i]),
			Z:    zs[i],
			Base: seq[i],
		}
	}
	return Helix{Points: points}
}

// Len returns the number of points.
func (h Helix) Len() int {
	return len(h.Points)
}

// Pairs returns the rungs (0,1), (2,3), ... An odd trailing point has no
// partner and is left out.
func (h Helix) Pairs() []Pair {
	pairs := make([]Pair, 0, len(h.Points)/2)
	for i := 0; i+1 < len(h.Points); i += 2 {
		pairs = append(pairs, Pair{I: i, J: i + 1})
	}
	return pairs
}

// ByBase groups point indices by base, preserving sequence order.
func (h Helix) ByBase() map[byte][]int {
	groups := make(map[byte][]int, len(Palette))
	for i, p := range h.Points {
		groups[p.Base] = append(groups[p.Base], i)
	}
	return groups
}

// ColorOf returns the palette colour for base. Unknown bases are drawn black.
func ColorOf(base byte) drawing.Color {
	if c, ok := Palette[base]; ok {
		return c
	}
	return drawing.ColorBlack
}

// linspace returns n values evenly spaced over [start, stop].
// A single value is start.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
