// Package output provides tab-delimited report writers for sequence statistics.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inodb/vibe-dna/internal/sequence"
)

// CodonTabWriter writes a codon frequency table in tab-delimited format.
type CodonTabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewCodonTabWriter creates a new codon table writer.
func NewCodonTabWriter(w io.Writer) *CodonTabWriter {
	return &CodonTabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Codon",
			"Count",
			"Amino_acid",
		},
	}
}

// WriteHeader writes the header line.
func (tw *CodonTabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single codon row.
func (tw *CodonTabWriter) Write(c sequence.CodonCount) error {
	// Ragged trailing codons have no translation
	aa := "-"
	if len(c.Codon) == sequence.CodonLength {
		aa = string(sequence.TranslateCodon(c.Codon))
	}

	values := []string{
		c.Codon,
		strconv.Itoa(c.Count),
		aa,
	}

	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (tw *CodonTabWriter) Flush() error {
	return tw.w.Flush()
}

// NucleotideTabWriter writes nucleotide counts and proportions in
// tab-delimited format, one row per base.
type NucleotideTabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewNucleotideTabWriter creates a new nucleotide table writer.
func NewNucleotideTabWriter(w io.Writer) *NucleotideTabWriter {
	return &NucleotideTabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Base",
			"Name",
			"Count",
			"Proportion",
		},
	}
}

// WriteHeader writes the header line.
func (tw *NucleotideTabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes one row per base in A, T, C, G order.
func (tw *NucleotideTabWriter) Write(counts sequence.NucleotideCounts, props sequence.Proportions) error {
	for _, base := range sequence.Bases {
		values := []string{
			string(base),
			sequence.BaseNames[base],
			strconv.Itoa(counts.Get(base)),
			fmt.Sprintf("%.4f", props.Get(base)),
		}
		if _, err := tw.w.WriteString(strings.Join(values, "\t") + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes any buffered data to the underlying writer.
func (tw *NucleotideTabWriter) Flush() error {
	return tw.w.Flush()
}
