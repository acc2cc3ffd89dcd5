package sequence

import "strings"

var complement = map[rune]rune{
	'A': 'T', 'T': 'A', 'U': 'A',
	'C': 'G', 'G': 'C',
	'R': 'Y', 'Y': 'R',
	'K': 'M', 'M': 'K',
	'S': 'S', 'W': 'W',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// IUPAC codes are complemented and case is kept; anything else becomes N.
func ReverseComplement(seq string) string {
	runes := []rune(seq)
	n := len(runes)
	var sb strings.Builder
	sb.Grow(n)
	for i := n - 1; i >= 0; i-- {
		base := runes[i]
		lower := base >= 'a' && base <= 'z'
		if lower {
			base -= 'a' - 'A'
		}
		compBase, ok := complement[base]
		if !ok {
			sb.WriteRune('N') // Default for unknown bases
			continue
		}
		if lower {
			compBase += 'a' - 'A'
		}
		sb.WriteRune(compBase)
	}
	return sb.String()
}
