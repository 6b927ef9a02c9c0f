package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/inodb/vibe-dna/internal/output"
	"github.com/inodb/vibe-dna/internal/pipeline"
	"github.com/inodb/vibe-dna/internal/render"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <sequence>",
		Short: "Print codon and nucleotide statistics for a sequence",
		Long: `Run a DNA sequence through the same pipeline as the web form and print the
codon frequency and nucleotide proportion tables as tab-delimited text.`,
		Example: `  vibe-dna analyze ATCGATCG`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// consoleDisplay reports pipeline errors on stderr and logs rendered charts.
type consoleDisplay struct {
	errOut io.Writer
	logger *zap.Logger
}

func (d *consoleDisplay) DisplayError(message string) {
	fmt.Fprintf(d.errOut, "%s\n", message)
}

func (d *consoleDisplay) RenderChart(img render.Image) {
	d.logger.Info("rendered chart",
		zap.String("chart", img.Name),
		zap.String("title", img.Title),
		zap.Int("bytes", len(img.PNG)))
}

func runAnalyze(ctx context.Context, input string, out, errOut io.Writer) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	renderer := render.NewRenderer(cfg.Charts.Width, cfg.Charts.Height)
	renderer.SetLogger(logger)

	p := pipeline.New(renderer)
	p.SetLogger(logger)

	res, err := p.Run(ctx, input, &consoleDisplay{errOut: errOut, logger: logger})
	if err != nil {
		return err
	}

	codonWriter := output.NewCodonTabWriter(out)
	if err := codonWriter.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, f := range res.Frequencies {
		if err := codonWriter.Write(f); err != nil {
			return fmt.Errorf("writing codon row: %w", err)
		}
	}
	if err := codonWriter.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	baseWriter := output.NewNucleotideTabWriter(out)
	if err := baseWriter.WriteHeader(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := baseWriter.Write(res.Counts, res.Proportions); err != nil {
		return fmt.Errorf("writing nucleotide rows: %w", err)
	}
	if err := baseWriter.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
