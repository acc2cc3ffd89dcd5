package config

// GC classification parameters
const (
	LowGCThreshold  = 0.40 // float64
	HighGCThreshold = 0.50 // float64
)

// Profile parameters. A window size of 0 disables the sliding-window profile.
const (
	DefaultWindowSize = 0
	DefaultWindowStep = 100
)

// Batch parameters
const (
	DefaultWorkers = 4
)

// Output parameters
const (
	DefaultFormat    = "text"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// EnvPrefix is prepended to every environment variable read by Settings.
const EnvPrefix = "GCCONTENT"

// Thresholds are the GC fractions separating low, medium and high content.
type Thresholds struct {
	Low  float64
	High float64
}

// DefaultThresholds returns the compiled-in classification thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: LowGCThreshold, High: HighGCThreshold}
}
