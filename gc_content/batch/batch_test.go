package batch

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"GC-Content/gc_content/common"
	"GC-Content/gc_content/config"
	"GC-Content/gc_content/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	records := []common.Record{
		{Name: "gc", Sequence: "GCGC"},
		{Name: "at", Sequence: "ATAT"},
		{Name: "golden", Sequence: "CATGCAgtcatgTTtggtacTTGTTGttactactTGCATGCTgtactgGA"},
		{Name: "empty", Sequence: ""},
	}

	reports, err := Analyze(context.Background(), records, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 4)

	assert.Equal(t, common.Report{Name: "gc", Length: 4, GC: 1.0, Class: common.ClassHigh}, reports[0])
	assert.Equal(t, common.Report{Name: "at", Length: 4, GC: 0.0, Class: common.ClassLow}, reports[1])
	assert.Equal(t, common.Report{Name: "golden", Length: 50, GC: 0.42, Class: common.ClassMedium}, reports[2])
	assert.Equal(t, common.Report{Name: "empty", Length: 0, GC: 0.0, Class: common.ClassLow}, reports[3])
}

func TestAnalyze_PreservesOrder(t *testing.T) {
	var records []common.Record
	for i := 0; i < 200; i++ {
		seq := strings.Repeat("G", i%7) + strings.Repeat("A", 7-i%7)
		records = append(records, common.Record{Name: fmt.Sprintf("r%d", i), Sequence: seq})
	}

	opts := DefaultOptions()
	opts.Workers = 8
	reports, err := Analyze(context.Background(), records, opts)
	require.NoError(t, err)
	require.Len(t, reports, len(records))
	for i, r := range reports {
		assert.Equal(t, records[i].Name, r.Name)
		assert.Equal(t, sequence.CalculateGCContent(records[i].Sequence), r.GC)
	}
}

func TestAnalyze_Windows(t *testing.T) {
	opts := DefaultOptions()
	opts.WindowSize = 4
	opts.WindowStep = 4

	reports, err := Analyze(context.Background(), []common.Record{{Name: "r", Sequence: "GGGGAAAA"}}, opts)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Windows, 2)
	assert.InDelta(t, 1.0, reports[0].Windows[0].GC, 1e-12)
	assert.InDelta(t, 0.0, reports[0].Windows[1].GC, 1e-12)
}

func TestAnalyze_InvalidWindowStep(t *testing.T) {
	opts := DefaultOptions()
	opts.WindowSize = 4
	opts.WindowStep = 0

	_, err := Analyze(context.Background(), []common.Record{{Name: "r", Sequence: "ACGT"}}, opts)
	assert.ErrorIs(t, err, sequence.ErrInvalidWindow)
}

func TestAnalyze_CustomCalculatorAndThresholds(t *testing.T) {
	table, err := sequence.NewWeightTable(map[rune]float64{'X': 1})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Calculator = sequence.NewCalculator(table)
	opts.Thresholds = config.Thresholds{Low: 0.2, High: 0.3}

	reports, err := Analyze(context.Background(), []common.Record{{Name: "x", Sequence: "XGGG"}}, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.25, reports[0].GC)
	assert.Equal(t, common.ClassMedium, reports[0].Class)
}

func TestAnalyze_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Analyze(ctx, []common.Record{{Name: "r", Sequence: "ACGT"}}, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
