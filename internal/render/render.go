// Package render turns sequence statistics and helix geometry into
// self-contained PNG chart images.
//
// Every chart is built from scratch on each call and returned as an Image;
// nothing is drawn into shared state.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"
)

// Default chart dimensions in pixels.
const (
	DefaultWidth  = 1000
	DefaultHeight = 600
)

// Chart names, in the order the pipeline produces them.
const (
	NameHelix       = "helix"
	NameCodons      = "codons"
	NameNucleotides = "nucleotides"
)

// Image is a rendered chart.
type Image struct {
	Name  string
	Title string
	PNG   []byte
}

// Renderer builds charts at a fixed size.
type Renderer struct {
	width  int
	height int
	logger *zap.Logger
}

// NewRenderer creates a renderer producing images of the given size.
// Non-positive dimensions fall back to the defaults.
func NewRenderer(width, height int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Renderer{
		width:  width,
		height: height,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for debug messages.
func (r *Renderer) SetLogger(l *zap.Logger) {
	r.logger = l
}

// Size returns the configured width and height.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// pngRenderable is satisfied by chart.Chart, chart.BarChart and chart.PieChart.
type pngRenderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func (r *Renderer) encode(name, title string, c pngRenderable) (Image, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return Image{}, fmt.Errorf("render %s chart: %w", name, err)
	}
	r.logger.Debug("rendered chart",
		zap.String("chart", name),
		zap.Int("bytes", buf.Len()))
	return Image{Name: name, Title: title, PNG: buf.Bytes()}, nil
}
