// Package batch analyses many records concurrently on a bounded worker pool.
package batch

import (
	"context"
	"fmt"
	"unicode/utf8"

	"GC-Content/gc_content/common"
	"GC-Content/gc_content/config"
	"GC-Content/gc_content/logging"
	"GC-Content/gc_content/sequence"

	"github.com/alitto/pond/v2"
)

// Options controls a batch run.
type Options struct {
	Workers    int
	WindowSize int // 0 disables the sliding-window profile
	WindowStep int
	Thresholds config.Thresholds
	// Calculator defaults to the IUPAC weights when nil.
	Calculator *sequence.Calculator
}

// DefaultOptions returns the compiled-in batch options.
func DefaultOptions() Options {
	return Options{
		Workers:    config.DefaultWorkers,
		WindowSize: config.DefaultWindowSize,
		WindowStep: config.DefaultWindowStep,
		Thresholds: config.DefaultThresholds(),
	}
}

// Analyze computes a report for every record. Reports are returned in the
// order of records.
func Analyze(ctx context.Context, records []common.Record, opts Options) ([]common.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	calc := opts.Calculator
	if calc == nil {
		calc = sequence.NewCalculator(nil)
	}
	log := logging.GetLogger()

	pool := pond.NewPool(opts.Workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	reports := make([]common.Report, len(records))
	group := pool.NewGroup()
	for i, rec := range records {
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := analyzeRecord(calc, rec, opts)
			if err != nil {
				return fmt.Errorf("record %s: %w", rec.Name, err)
			}
			log.Debug("Analyzed record", "name", rec.Name, "length", report.Length, "gc", report.GC)
			reports[i] = report
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	return reports, nil
}

func analyzeRecord(calc *sequence.Calculator, rec common.Record, opts Options) (common.Report, error) {
	gc := calc.Compute(rec.Sequence)
	report := common.Report{
		Name:   rec.Name,
		Length: utf8.RuneCountInString(rec.Sequence),
		GC:     gc,
		Class:  sequence.Classify(gc, opts.Thresholds),
	}
	if opts.WindowSize > 0 {
		windows, err := calc.Windows(rec.Sequence, opts.WindowSize, opts.WindowStep)
		if err != nil {
			return common.Report{}, err
		}
		report.Windows = windows
	}
	return report, nil
}
