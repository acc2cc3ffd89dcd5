package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, "", ReverseComplement(""))
	assert.Equal(t, "TGCA", ReverseComplement("TGCA"))
	assert.Equal(t, "AACCGGTT", ReverseComplement("AACCGGTT"))
	assert.Equal(t, "acGT", ReverseComplement("ACgt"))
	assert.Equal(t, "NRYKMSWVBHDN", ReverseComplement("NHDVBWSKMRYN"))
	assert.Equal(t, "AA", ReverseComplement("UU"))
	assert.Equal(t, "TNA", ReverseComplement("T?A"))
}

func TestReverseComplement_PreservesGCContent(t *testing.T) {
	// B and V swap under complement but carry different weights, so they are left out.
	seq := "CATGCAgtcatgTTtggtacTTGTTGNRYKMSWDH"
	assert.InDelta(t, CalculateGCContent(seq), CalculateGCContent(ReverseComplement(seq)), 1e-12)
}
