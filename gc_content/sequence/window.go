package sequence

import (
	"errors"
	"fmt"

	"GC-Content/gc_content/common"
	"GC-Content/gc_content/config"
)

// ErrInvalidWindow is returned for non-positive window sizes or steps.
var ErrInvalidWindow = errors.New("invalid window")

// Windows computes the GC content of seq in windows of size characters
// advancing by step. Windows that would run past the end are truncated, and
// scanning stops at the first window reaching the end of seq.
func (c *Calculator) Windows(seq string, size, step int) ([]common.Window, error) {
	if size <= 0 || step <= 0 {
		return nil, fmt.Errorf("%w: size %d, step %d", ErrInvalidWindow, size, step)
	}

	// prefix[i] is the weight sum of the first i characters.
	prefix := []float64{0}
	for _, r := range seq {
		w, _ := c.table.Weight(r)
		prefix = append(prefix, prefix[len(prefix)-1]+w)
	}
	n := len(prefix) - 1

	var windows []common.Window
	for start := 0; start < n; start += step {
		end := min(start+size, n)
		windows = append(windows, common.Window{
			Start: start,
			End:   end,
			GC:    (prefix[end] - prefix[start]) / float64(end-start),
		})
		if end == n {
			break
		}
	}
	return windows, nil
}

// Windows computes a sliding-window GC profile using the IUPAC weights.
func Windows(seq string, size, step int) ([]common.Window, error) {
	return defaultCalculator.Windows(seq, size, step)
}

// Classify buckets a GC fraction using th.
func Classify(gc float64, th config.Thresholds) common.GCClass {
	if gc < th.Low {
		return common.ClassLow
	} else if gc < th.High {
		return common.ClassMedium
	}
	return common.ClassHigh
}
