package common

// Record is a named nucleotide sequence read from an input file.
type Record struct {
	Name     string
	Sequence string
}

// GCClass buckets a GC fraction into low, medium or high.
type GCClass string

const (
	ClassLow    GCClass = "low"
	ClassMedium GCClass = "medium"
	ClassHigh   GCClass = "high"
)

// Window is the GC content of one slice of a sequence.
// Start is inclusive, End is exclusive, both in characters.
type Window struct {
	Start int     `yaml:"start"`
	End   int     `yaml:"end"`
	GC    float64 `yaml:"gc"`
}

// Report holds the analysis of a single record.
type Report struct {
	Name    string   `yaml:"name"`
	Length  int      `yaml:"length"`
	GC      float64  `yaml:"gc"`
	Class   GCClass  `yaml:"class"`
	Windows []Window `yaml:"windows,omitempty"`
}
