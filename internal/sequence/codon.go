package sequence

import (
	"sort"
	"strings"
)

// CodonLength is the stride used to split a sequence into codons.
const CodonLength = 3

// Standard genetic code: DNA codon to amino acid (single letter).
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// CodonCount is one row of a codon frequency table.
type CodonCount struct {
	Codon string
	Count int
}

// Codons splits seq into consecutive non-overlapping codons.
// The last codon is shorter than CodonLength when the sequence length is not
// a multiple of it; it is kept as-is.
func Codons(seq Sequence) []string {
	s := string(seq)
	codons := make([]string, 0, (len(s)+CodonLength-1)/CodonLength)
	for i := 0; i < len(s); i += CodonLength {
		end := min(i+CodonLength, len(s))
		codons = append(codons, s[i:end])
	}
	return codons
}

// CodonFrequencies counts occurrences of each distinct codon and returns them
// sorted lexicographically by codon.
func CodonFrequencies(codons []string) []CodonCount {
	counts := make(map[string]int, len(codons))
	for _, c := range codons {
		counts[c]++
	}

	freqs := make([]CodonCount, 0, len(counts))
	for c, n := range counts {
		freqs = append(freqs, CodonCount{Codon: c, Count: n})
	}
	sort.Slice(freqs, func(i, j int) bool {
		return freqs[i].Codon < freqs[j].Codon
	})
	return freqs
}

// TranslateCodon translates a DNA codon to its amino acid.
// Returns 'X' for unknown or incomplete codons and '*' for stop codons.
func TranslateCodon(codon string) byte {
	if len(codon) != CodonLength {
		return 'X'
	}
	if aa, ok := codonTable[codon]; ok {
		return aa
	}
	return 'X'
}

// Complement returns the complement of a single base.
func Complement(base byte) byte {
	switch base {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	default:
		return 'N'
	}
}

// ComplementStrand returns the base-by-base complement of seq, read in the
// same direction. This is the partner strand drawn by the helix pairs.
func ComplementStrand(seq Sequence) string {
	var b strings.Builder
	b.Grow(len(seq))
	for i := 0; i < len(seq); i++ {
		b.WriteByte(Complement(seq[i]))
	}
	return b.String()
}
