// Package pipeline runs a submitted DNA sequence through validation,
// statistics and chart rendering, delivering results to a Display.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/inodb/vibe-dna/internal/helix"
	"github.com/inodb/vibe-dna/internal/render"
	"github.com/inodb/vibe-dna/internal/sequence"
)

// Display is the surface that shows pipeline output to the user.
type Display interface {
	// DisplayError shows a user-facing error message.
	DisplayError(message string)
	// RenderChart shows one chart. Charts arrive in pipeline order.
	RenderChart(img render.Image)
}

// ChartRenderer builds the three charts.
type ChartRenderer interface {
	HelixChart(h helix.Helix) (render.Image, error)
	CodonChart(freqs []sequence.CodonCount) (render.Image, error)
	ProportionChart(p sequence.Proportions) (render.Image, error)
}

// Result holds everything computed for one sequence.
type Result struct {
	Sequence    sequence.Sequence
	Helix       helix.Helix
	Codons      []string
	Frequencies []sequence.CodonCount
	Counts      sequence.NucleotideCounts
	Proportions sequence.Proportions
	Charts      []render.Image
}

// Pipeline validates a sequence and renders its charts.
type Pipeline struct {
	renderer ChartRenderer
	logger   *zap.Logger
}

// New creates a pipeline that renders with r.
func New(r ChartRenderer) *Pipeline {
	return &Pipeline{
		renderer: r,
		logger:   zap.NewNop(),
	}
}

// SetLogger sets the logger for info and warning messages.
func (p *Pipeline) SetLogger(l *zap.Logger) {
	p.logger = l
}

// Run processes input in a fixed order: validate, helix chart, codon
// extraction and chart, nucleotide proportions and pie chart. Each chart is
// handed to d as soon as it is rendered. Any failure is reported through
// d.DisplayError and stops the run; an invalid sequence produces no charts.
func (p *Pipeline) Run(ctx context.Context, input string, d Display) (*Result, error) {
	start := time.Now()

	seq, err := sequence.Validate(input)
	if err != nil {
		p.logger.Info("rejected sequence",
			zap.Int("length", len(input)),
			zap.Error(err))
		d.DisplayError(ErrorMessage(err))
		return nil, err
	}

	res := &Result{Sequence: seq}

	stages := []struct {
		name string
		run  func() (render.Image, error)
	}{
		{render.NameHelix, func() (render.Image, error) {
			res.Helix = helix.Generate(seq)
			return p.renderer.HelixChart(res.Helix)
		}},
		{render.NameCodons, func() (render.Image, error) {
			res.Codons = sequence.Codons(seq)
			res.Frequencies = sequence.CodonFrequencies(res.Codons)
			return p.renderer.CodonChart(res.Frequencies)
		}},
		{render.NameNucleotides, func() (render.Image, error) {
			res.Counts = sequence.CountNucleotides(seq)
			props, err := sequence.ComputeProportions(seq)
			if err != nil {
				return render.Image{}, err
			}
			res.Proportions = props
			return p.renderer.ProportionChart(props)
		}},
	}

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s stage: %w", stage.name, err)
		}
		img, err := stage.run()
		if err != nil {
			p.logger.Warn("pipeline stage failed",
				zap.String("stage", stage.name),
				zap.Error(err))
			d.DisplayError(ErrorMessage(err))
			return nil, fmt.Errorf("%s stage: %w", stage.name, err)
		}
		res.Charts = append(res.Charts, img)
		d.RenderChart(img)
	}

	p.logger.Info("processed sequence",
		zap.Int("length", seq.Len()),
		zap.Int("codons", len(res.Codons)),
		zap.Int("distinct_codons", len(res.Frequencies)),
		zap.Duration("elapsed", time.Since(start)))

	return res, nil
}
