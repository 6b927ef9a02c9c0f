package render

import (
	"errors"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/inodb/vibe-dna/internal/sequence"
)

// CodonTitle is the title drawn above the codon frequency chart.
const CodonTitle = "Codon Frequency"

var barColor = drawing.Color{R: 128, G: 0, B: 128, A: 255} // purple

const (
	minBarWidth = 4
	maxBarWidth = 50
	maxYTicks   = 10
)

// CodonChart draws one bar per distinct codon with height equal to its count.
// Bars appear in the order given; CodonFrequencies already sorts them.
func (r *Renderer) CodonChart(freqs []sequence.CodonCount) (Image, error) {
	if len(freqs) == 0 {
		return Image{}, errors.New("render codon chart: no codons")
	}

	maxCount := 0
	bars := make([]chart.Value, len(freqs))
	for i, f := range freqs {
		bars[i] = chart.Value{
			Label: f.Codon,
			Value: float64(f.Count),
			Style: chart.Style{
				FillColor:   barColor,
				StrokeColor: barColor,
			},
		}
		maxCount = max(maxCount, f.Count)
	}

	barWidth := r.barWidth(len(bars))

	graph := chart.BarChart{
		Title:  CodonTitle,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		BarWidth:   barWidth,
		BarSpacing: max(barWidth/2, 1),
		XAxis: chart.Style{
			TextRotationDegrees: 90,
		},
		YAxis: chart.YAxis{
			Name:  "Frequency",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
			Ticks: countTicks(maxCount),
		},
		Bars: bars,
	}

	return r.encode(NameCodons, CodonTitle, &graph)
}

// barWidth fits n bars and their spacing into the chart width.
func (r *Renderer) barWidth(n int) int {
	usable := r.width - 120
	w := usable * 2 / (3 * n)
	return min(max(w, minBarWidth), maxBarWidth)
}

// countTicks returns integer ticks from 0 to maxCount with at most
// maxYTicks+1 marks.
func countTicks(maxCount int) []chart.Tick {
	step := 1
	for maxCount/step > maxYTicks {
		step++
	}
	ticks := make([]chart.Tick, 0, maxCount/step+2)
	for v := 0; v <= maxCount; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	if last := ticks[len(ticks)-1]; int(last.Value) != maxCount {
		ticks = append(ticks, chart.Tick{Value: float64(maxCount), Label: strconv.Itoa(maxCount)})
	}
	return ticks
}
