package sequence

// NucleotideCounts holds the number of occurrences of each base.
type NucleotideCounts struct {
	A, T, C, G int
}

// Total returns the sum of all four counts.
func (c NucleotideCounts) Total() int {
	return c.A + c.T + c.C + c.G
}

// Get returns the count for base, or 0 for anything outside the alphabet.
func (c NucleotideCounts) Get(base byte) int {
	switch base {
	case 'A':
		return c.A
	case 'T':
		return c.T
	case 'C':
		return c.C
	case 'G':
		return c.G
	}
	return 0
}

// Proportions holds the fraction of the sequence made up by each base.
type Proportions struct {
	A, T, C, G float64
}

// Get returns the proportion for base, or 0 for anything outside the alphabet.
func (p Proportions) Get(base byte) float64 {
	switch base {
	case 'A':
		return p.A
	case 'T':
		return p.T
	case 'C':
		return p.C
	case 'G':
		return p.G
	}
	return 0
}

// Sum returns the sum of the four proportions.
func (p Proportions) Sum() float64 {
	return p.A + p.T + p.C + p.G
}

// CountNucleotides tallies each base in seq.
func CountNucleotides(seq Sequence) NucleotideCounts {
	var c NucleotideCounts
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'C':
			c.C++
		case 'G':
			c.G++
		}
	}
	return c
}

// ComputeProportions divides each base count by the sequence length.
// An empty sequence yields an InvalidSequenceError rather than NaNs.
func ComputeProportions(seq Sequence) (Proportions, error) {
	n := len(seq)
	if n == 0 {
		return Proportions{}, &InvalidSequenceError{Position: -1, Reason: "cannot compute proportions of an empty sequence"}
	}
	c := CountNucleotides(seq)
	total := float64(n)
	return Proportions{
		A: float64(c.A) / total,
		T: float64(c.T) / total,
		C: float64(c.C) / total,
		G: float64(c.G) / total,
	}, nil
}
