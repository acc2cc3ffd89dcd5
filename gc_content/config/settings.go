package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidSettings is returned when flags or environment values are out of range.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings is the runtime configuration of the gccontent command.
type Settings struct {
	LogLevel   string
	LogFormat  string
	Format     string
	Workers    int
	WindowSize int
	WindowStep int
	Thresholds Thresholds
}

// BindFlags registers the persistent flags of cmd and binds them to v.
// Every flag can also be set through a GCCONTENT_ prefixed environment variable.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := cmd.PersistentFlags()
	flags.String("log-level", DefaultLogLevel, "Set the log level (debug, info, warn, error). Env: GCCONTENT_LOG_LEVEL")
	flags.String("log-format", DefaultLogFormat, "Set the log format (text, json). Env: GCCONTENT_LOG_FORMAT")
	flags.String("format", DefaultFormat, "Report format (text, yaml). Env: GCCONTENT_FORMAT")
	flags.Int("workers", DefaultWorkers, "Number of records analysed concurrently. Env: GCCONTENT_WORKERS")
	flags.Int("window", DefaultWindowSize, "Sliding window size for the GC profile, 0 disables it. Env: GCCONTENT_WINDOW")
	flags.Int("step", DefaultWindowStep, "Sliding window step. Env: GCCONTENT_STEP")
	flags.Float64("low-gc", LowGCThreshold, "GC fraction below which a record is classified low. Env: GCCONTENT_LOW_GC")
	flags.Float64("high-gc", HighGCThreshold, "GC fraction at or above which a record is classified high. Env: GCCONTENT_HIGH_GC")

	for _, name := range []string{"log-level", "log-format", "format", "workers", "window", "step", "low-gc", "high-gc"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the bound values out of v and validates them.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		LogLevel:   v.GetString("log-level"),
		LogFormat:  v.GetString("log-format"),
		Format:     v.GetString("format"),
		Workers:    v.GetInt("workers"),
		WindowSize: v.GetInt("window"),
		WindowStep: v.GetInt("step"),
		Thresholds: Thresholds{
			Low:  v.GetFloat64("low-gc"),
			High: v.GetFloat64("high-gc"),
		},
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidSettings, s.Workers)
	}
	if s.WindowSize < 0 {
		return fmt.Errorf("%w: window must not be negative, got %d", ErrInvalidSettings, s.WindowSize)
	}
	if s.WindowSize > 0 && s.WindowStep < 1 {
		return fmt.Errorf("%w: step must be at least 1, got %d", ErrInvalidSettings, s.WindowStep)
	}
	th := s.Thresholds
	if th.Low < 0 || th.High > 1 || th.Low > th.High {
		return fmt.Errorf("%w: thresholds must satisfy 0 <= low-gc <= high-gc <= 1, got %.2f and %.2f", ErrInvalidSettings, th.Low, th.High)
	}
	return nil
}
