package render

import (
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/inodb/vibe-dna/internal/sequence"
)

// ProportionTitle is the title drawn above the nucleotide pie chart.
const ProportionTitle = "Nucleotide Proportions in the DNA Sequence"

// SliceColors maps each base to its pie slice colour.
var SliceColors = map[byte]drawing.Color{
	'A': drawing.ColorFromHex("1f77b4"),
	'T': drawing.ColorFromHex("ff7f0e"),
	'C': drawing.ColorFromHex("2ca02c"),
	'G': drawing.ColorFromHex("d62728"),
}

// SliceLabel returns the pie label for a base, e.g. "Adenine (A) 25.0%".
func SliceLabel(base byte, proportion float64) string {
	return fmt.Sprintf("%s (%c) %.1f%%", sequence.BaseNames[base], base, proportion*100)
}

// ProportionChart draws the four nucleotide proportions as a pie.
// Bases that do not occur get no slice.
func (r *Renderer) ProportionChart(p sequence.Proportions) (Image, error) {
	values := make([]chart.Value, 0, len(sequence.Bases))
	for _, base := range sequence.Bases {
		v := p.Get(base)
		if v <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: SliceLabel(base, v),
			Value: v,
			Style: chart.Style{
				FillColor:   SliceColors[base],
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	if len(values) == 0 {
		return Image{}, errors.New("render proportion chart: all proportions are zero")
	}

	// Square canvas so the pie is not squashed.
	side := min(r.width, r.height)

	graph := chart.PieChart{
		Title:  ProportionTitle,
		Width:  side,
		Height: side,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}

	return r.encode(NameNucleotides, ProportionTitle, &graph)
}
