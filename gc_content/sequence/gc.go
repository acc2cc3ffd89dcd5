package sequence

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

// ErrInvalidWeight is returned by NewWeightTable for keys that are not ASCII
// letters or weights outside [0, 1].
var ErrInvalidWeight = errors.New("invalid weight")

// WeightTable maps nucleotide codes to their fractional GC contribution.
// Lookups are case-insensitive. A table is never modified after construction.
type WeightTable struct {
	weights [utf8.RuneSelf]float64
	known   [utf8.RuneSelf]bool
}

// NewWeightTable builds a case-insensitive table from weights.
func NewWeightTable(weights map[rune]float64) (*WeightTable, error) {
	t := &WeightTable{}
	for r, w := range weights {
		if !isASCIILetter(r) {
			return nil, fmt.Errorf("%w: code %q is not an ASCII letter", ErrInvalidWeight, r)
		}
		if math.IsNaN(w) || w < 0 || w > 1 {
			return nil, fmt.Errorf("%w: code %q has weight %v outside [0, 1]", ErrInvalidWeight, r, w)
		}
		upper, lower := r&^0x20, r|0x20
		t.weights[upper], t.known[upper] = w, true
		t.weights[lower], t.known[lower] = w, true
	}
	return t, nil
}

// Weight returns the weight of r and whether r is in the table.
func (t *WeightTable) Weight(r rune) (float64, bool) {
	if r < 0 || r >= utf8.RuneSelf {
		return 0, false
	}
	return t.weights[r], t.known[r]
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// iupacWeights is the fraction of G/C per IUPAC nucleotide code.
var iupacWeights = map[rune]float64{
	'A': 0, 'T': 0, 'U': 0, 'W': 0,
	'G': 1, 'C': 1, 'S': 1,
	'N': 1.0 / 2, 'M': 1.0 / 2, 'R': 1.0 / 2, 'Y': 1.0 / 2, 'K': 1.0 / 2,
	'V': 2.0 / 3,
	'D': 1.0 / 3, 'B': 1.0 / 3, 'H': 1.0 / 3,
}

// IUPACWeights is the default weight table for IUPAC nucleotide codes.
var IUPACWeights = mustWeightTable(iupacWeights)

func mustWeightTable(weights map[rune]float64) *WeightTable {
	t, err := NewWeightTable(weights)
	if err != nil {
		panic(err)
	}
	return t
}

// Calculator computes GC content against a fixed weight table.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	table *WeightTable
}

// NewCalculator returns a Calculator using table, or IUPACWeights if table is nil.
func NewCalculator(table *WeightTable) *Calculator {
	if table == nil {
		table = IUPACWeights
	}
	return &Calculator{table: table}
}

// Compute returns the weighted GC fraction of seq. Characters missing from the
// table weigh 0 but still count toward the length. Empty input yields 0.
func (c *Calculator) Compute(seq string) float64 {
	var sum float64
	n := 0
	for _, r := range seq {
		w, _ := c.table.Weight(r)
		sum += w
		n++
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

var defaultCalculator = NewCalculator(IUPACWeights)

// CalculateGCContent calculates the GC content of a DNA sequence using the IUPAC weights.
func CalculateGCContent(seq string) float64 {
	return defaultCalculator.Compute(seq)
}
