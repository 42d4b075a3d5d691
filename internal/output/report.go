package output

import (
	"fmt"
	"io"
	"strings"
)

// GenerateReport writes r in format. Console output goes to w; every other format is
// written to a timestamped file in dir and the filename is reported on w. "all" writes
// every formatter whose report section is available.
func GenerateReport(w io.Writer, r *Report, format, dir string) error {
	if NormalizeFormatName(format) == "all" {
		for _, f := range builtInFormatters {
			if !sectionAvailable(f, r) {
				continue
			}
			if err := emit(w, f, r, dir); err != nil {
				return err
			}
		}
		return nil
	}

	f, err := GetFormatterByName(format)
	if err != nil {
		return err
	}
	return emit(w, f, r, dir)
}

func emit(w io.Writer, f Formatter, r *Report, dir string) error {
	if f.Name() == "console" && dir == "" {
		data, err := f.Format(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	if dir == "" {
		dir = "."
	}
	filename, err := WriteFormatted(f, r, dir)
	if err != nil {
		return fmt.Errorf("%s output: %w", f.Name(), err)
	}
	fmt.Fprintf(w, "Wrote %s\n", filename)
	return nil
}

func sectionAvailable(f Formatter, r *Report) bool {
	switch {
	case strings.HasPrefix(f.Name(), "montecarlo"):
		return r.MonteCarlo != nil
	case strings.HasPrefix(f.Name(), "sensitivity"):
		return r.Heatmap != nil
	case f.Name() == "chart":
		return r.Projection != nil && len(r.Projection.YearResults) >= 2
	default:
		return r.Projection != nil
	}
}
