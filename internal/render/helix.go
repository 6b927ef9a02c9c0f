package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/inodb/vibe-dna/internal/helix"
	"github.com/inodb/vibe-dna/internal/sequence"
)

// HelixTitle is the title drawn above the helix chart.
const HelixTitle = "3D DNA Double Helix"

const (
	helixDotWidth   = 6
	rungStrokeWidth = 1
	framePadding    = 0.05
)

// HelixChart draws h as a projected 3D scatter: one colour per base and a
// black rung between each paired position.
func (r *Renderer) HelixChart(h helix.Helix) (Image, error) {
	if h.Len() == 0 {
		return Image{}, errors.New("render helix chart: no points")
	}

	proj := newProjection(ViewElevation, ViewAzimuth)

	xs := make([]float64, h.Len())
	ys := make([]float64, h.Len())
	for i, p := range h.Points {
		xs[i], ys[i] = proj.project(p.X, p.Y, normalizeZ(p.Z))
	}

	series := []chart.Series{newRungSeries(h.Pairs(), xs, ys)}

	groups := h.ByBase()
	for _, base := range sequence.Bases {
		idx := groups[base]
		if len(idx) == 0 {
			continue
		}
		bx := make([]float64, len(idx))
		by := make([]float64, len(idx))
		for k, i := range idx {
			bx[k], by[k] = xs[i], ys[i]
		}
		color := helix.ColorOf(base)
		series = append(series, chart.ContinuousSeries{
			Name: string(base),
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: color,
				DotWidth:    helixDotWidth,
				DotColor:    color,
			},
			XValues: bx,
			YValues: by,
		})
	}

	minX, maxX, minY, maxY := proj.bounds()
	padX := (maxX - minX) * framePadding
	padY := (maxY - minY) * framePadding

	graph := chart.Chart{
		Title:  HelixTitle,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: minX - padX, Max: maxX + padX},
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: minY - padY, Max: maxY + padY},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return r.encode(NameHelix, HelixTitle, &graph)
}

// segment is a rung already projected to screen coordinates.
type segment struct {
	x0, y0, x1, y1 float64
}

// rungSeries draws the pairing rungs as independent line segments, which a
// ContinuousSeries cannot express without joining every point.
type rungSeries struct {
	name     string
	style    chart.Style
	segments []segment
}

func newRungSeries(pairs []helix.Pair, xs, ys []float64) rungSeries {
	segs := make([]segment, len(pairs))
	for k, p := range pairs {
		segs[k] = segment{x0: xs[p.I], y0: ys[p.I], x1: xs[p.J], y1: ys[p.J]}
	}
	return rungSeries{
		name: "pair",
		style: chart.Style{
			StrokeColor: drawing.ColorBlack,
			StrokeWidth: rungStrokeWidth,
		},
		segments: segs,
	}
}

func (rs rungSeries) GetName() string { return rs.name }

func (rs rungSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (rs rungSeries) GetStyle() chart.Style { return rs.style }

func (rs rungSeries) Validate() error {
	for i, s := range rs.segments {
		if math.IsNaN(s.x0) || math.IsNaN(s.y0) || math.IsNaN(s.x1) || math.IsNaN(s.y1) {
			return fmt.Errorf("rung %d has NaN coordinates", i)
		}
	}
	return nil
}

func (rs rungSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	if len(rs.segments) == 0 {
		return
	}
	r.SetStrokeColor(rs.style.StrokeColor)
	r.SetStrokeWidth(rs.style.StrokeWidth)
	for _, s := range rs.segments {
		r.MoveTo(canvasBox.Left+xrange.Translate(s.x0), canvasBox.Bottom-yrange.Translate(s.y0))
		r.LineTo(canvasBox.Left+xrange.Translate(s.x1), canvasBox.Bottom-yrange.Translate(s.y1))
	}
	r.Stroke()
}
