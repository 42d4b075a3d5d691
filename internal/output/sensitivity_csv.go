package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// SensitivityCSV exports a sensitivity heatmap as a matrix: one row per Y value,
// one column per X value, cells holding the rounded outperformance.
type SensitivityCSV struct{}

func (s SensitivityCSV) Name() string      { return "sensitivity-csv" }
func (s SensitivityCSV) Extension() string { return "csv" }

func (s SensitivityCSV) Format(r *Report) ([]byte, error) {
	h := r.Heatmap
	if h == nil {
		return nil, fmt.Errorf("%w: sensitivity", ErrMissingSection)
	}

	matrix := make([][]string, len(h.YLabels))
	for y := range matrix {
		matrix[y] = make([]string, len(h.XLabels)+1)
		matrix[y][0] = h.YLabels[y]
	}
	for _, c := range h.Data {
		matrix[c.Y][c.X+1] = fmt.Sprintf("%.0f", c.Value)
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := append([]string{h.YName + " \\ " + h.XName}, h.XLabels...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(matrix); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
