// Command gccontent reports the GC content of nucleotide sequences.
package main

import (
	"fmt"
	"os"
	"time"

	"GC-Content/gc_content/batch"
	"GC-Content/gc_content/common"
	"GC-Content/gc_content/config"
	"GC-Content/gc_content/io"
	"GC-Content/gc_content/logging"
	"GC-Content/gc_content/report"
	"GC-Content/gc_content/sequence"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "dev"

func main() {
	cmd, err := newRootCmd(afero.NewOsFs())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs) (*cobra.Command, error) {
	v := viper.New()
	var settings *config.Settings

	rootCmd := &cobra.Command{
		Use:           "gccontent",
		Short:         "gccontent reports the GC content of nucleotide sequences",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := config.Load(v)
			if err != nil {
				return err
			}
			settings = s
			logging.Init(logging.ToSlogLevel(s.LogLevel), cmd.ErrOrStderr(), s.LogFormat)
			return nil
		},
	}
	if err := config.BindFlags(rootCmd, v); err != nil {
		return nil, err
	}

	computeCmd := &cobra.Command{
		Use:   "compute SEQUENCE...",
		Short: "Print the GC content of each sequence given on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := make([]common.Record, len(args))
			for i, seq := range args {
				records[i] = common.Record{Name: fmt.Sprintf("seq%d", i+1), Sequence: seq}
			}
			return run(cmd, fs, records, settings, "")
		},
	}

	var outputFile string
	fileCmd := &cobra.Command{
		Use:   "file PATH...",
		Short: "Report the GC content of every record in sequence or FASTA files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.GetLogger()
			var records []common.Record
			for _, path := range args {
				recs, err := io.ReadRecords(fs, path)
				if err != nil {
					return err
				}
				log.Info("Read sequence file", "path", path, "records", len(recs))
				records = append(records, recs...)
			}
			return run(cmd, fs, records, settings, outputFile)
		},
	}
	fileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to this file instead of stdout")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gccontent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gccontent version %s\n", Version)
			return err
		},
	}

	rootCmd.AddCommand(computeCmd, fileCmd, versionCmd)
	return rootCmd, nil
}

func run(cmd *cobra.Command, fs afero.Fs, records []common.Record, s *config.Settings, outputFile string) error {
	log := logging.GetLogger()

	startTime := time.Now()
	reports, err := batch.Analyze(cmd.Context(), records, batch.Options{
		Workers:    s.Workers,
		WindowSize: s.WindowSize,
		WindowStep: s.WindowStep,
		Thresholds: s.Thresholds,
		Calculator: sequence.NewCalculator(sequence.IUPACWeights),
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	log.Info("Analysis complete", "records", len(reports), "duration", time.Since(startTime))

	if outputFile == "" {
		return report.Write(cmd.OutOrStdout(), reports, s.Format)
	}
	f, err := fs.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output file '%s': %w", outputFile, err)
	}
	if err := report.Write(f, reports, s.Format); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing output file '%s': %w", outputFile, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("Results written", "path", outputFile)
	return nil
}
