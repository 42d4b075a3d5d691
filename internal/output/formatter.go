package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/rental-calculator/internal/domain"
)

var (
	// ErrUnsupportedFormat is returned for a format name with no registered formatter
	ErrUnsupportedFormat = errors.New("unsupported output format")
	// ErrMissingSection is returned when a formatter needs a report section that was not computed
	ErrMissingSection = errors.New("report section not available")
)

// Report bundles everything a formatter may render. Projection is always present;
// MonteCarlo and Heatmap are set only when those analyses were run.
type Report struct {
	Inputs     domain.Inputs              `json:"inputs"`
	Projection *domain.Output             `json:"projection"`
	MonteCarlo *domain.MonteCarloSummary  `json:"monte_carlo,omitempty"`
	Heatmap    *domain.SensitivityHeatmap `json:"sensitivity,omitempty"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(r *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension is the file extension used when the output is written to disk.
	Extension() string
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, r *Report, dir string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("rental_vs_index_%s_%s.%s", f.Name(), time.Now().Format("20060102_150405"), f.Extension())
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVDetailedExporter{},
	JSONFormatter{},
	MonteCarloCSV{},
	SensitivityCSV{},
	ChartFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) (Formatter, error) {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":            "console",
	"table":           "console",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"export":          "detailed-csv",
	"json-pretty":     "json",
	"mc-csv":          "montecarlo-csv",
	"csv-montecarlo":  "montecarlo-csv",
	"heatmap-csv":     "sensitivity-csv",
	"csv-sensitivity": "sensitivity-csv",
	"png":             "chart",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
