// Package report renders analysis results.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"GC-Content/gc_content/common"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for output formats other than text and yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// Write renders reports to w in the given format.
func Write(w io.Writer, reports []common.Report, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		_, err := io.WriteString(w, FormatText(reports))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FormatText renders one tab-separated line per report: name, length, GC
// content and class. Profile windows follow on indented lines as
// start, end (exclusive) and GC content.
func FormatText(reports []common.Report) string {
	var sb strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&sb, "%s\t%d\t%.4f\t%s\n", r.Name, r.Length, r.GC, r.Class)
		for _, win := range r.Windows {
			fmt.Fprintf(&sb, "  %d\t%d\t%.4f\n", win.Start, win.End, win.GC)
		}
	}
	return sb.String()
}
