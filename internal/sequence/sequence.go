// Package sequence validates DNA sequences and computes codon and
// nucleotide statistics over them.
package sequence

import "fmt"

// Bases lists the accepted nucleotides in reporting order.
var Bases = [4]byte{'A', 'T', 'C', 'G'}

// BaseNames maps each nucleotide to its display name.
var BaseNames = map[byte]string{
	'A': "Adenine",
	'T': "Thymine",
	'C': "Cytosine",
	'G': "Guanine",
}

// Sequence is a validated DNA sequence over {A,T,C,G}.
// Only Validate produces a non-empty Sequence.
type Sequence string

// Len returns the number of bases.
func (s Sequence) Len() int {
	return len(s)
}

// InvalidSequenceError reports input that is empty or contains a character
// outside the A/T/C/G alphabet.
type InvalidSequenceError struct {
	Position int  // 0-based offset of the first bad character, -1 if not applicable
	Char     rune // offending character, 0 if not applicable
	Reason   string
}

func (e *InvalidSequenceError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid DNA sequence: %s", e.Reason)
	}
	return fmt.Sprintf("invalid DNA sequence: %s %q at position %d", e.Reason, e.Char, e.Position+1)
}

// Validate checks that raw is non-empty and consists only of the uppercase
// bases A, T, C and G.
func Validate(raw string) (Sequence, error) {
	if raw == "" {
		return "", &InvalidSequenceError{Position: -1, Reason: "sequence is empty"}
	}
	for i, r := range raw {
		if !IsBase(r) {
			return "", &InvalidSequenceError{Position: i, Char: r, Reason: "unexpected character"}
		}
	}
	return Sequence(raw), nil
}

// IsBase reports whether r is one of A, T, C or G.
func IsBase(r rune) bool {
	switch r {
	case 'A', 'T', 'C', 'G':
		return true
	}
	return false
}
