package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-dna/internal/sequence"
)

func TestCodonTabWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewCodonTabWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())

	assert.Equal(t, "#Codon\tCount\tAmino_acid\n", buf.String())
}

func TestCodonTabWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewCodonTabWriter(&buf)

	freqs := sequence.CodonFrequencies(sequence.Codons("ATGATGTAACG"))
	for _, f := range freqs {
		require.NoError(t, w.Write(f))
	}
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "ATG\t2\tM", lines[0])
	assert.Equal(t, "CG\t1\t-", lines[1], "ragged codon has no amino acid")
	assert.Equal(t, "TAA\t1\t*", lines[2])
}

func TestCodonTabWriter_NothingBeforeFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewCodonTabWriter(&buf)

	require.NoError(t, w.Write(sequence.CodonCount{Codon: "GGT", Count: 4}))
	assert.Zero(t, buf.Len())

	require.NoError(t, w.Flush())
	assert.Equal(t, "GGT\t4\tG\n", buf.String())
}

func TestNucleotideTabWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewNucleotideTabWriter(&buf)

	seq := sequence.Sequence("ATCGATCG")
	props, err := sequence.ComputeProportions(seq)
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(sequence.CountNucleotides(seq), props))
	require.NoError(t, w.Flush())

	want := "#Base\tName\tCount\tProportion\n" +
		"A\tAdenine\t2\t0.2500\n" +
		"T\tThymine\t2\t0.2500\n" +
		"C\tCytosine\t2\t0.2500\n" +
		"G\tGuanine\t2\t0.2500\n"
	assert.Equal(t, want, buf.String())
}
