package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/rental-calculator/internal/domain"
)

var (
	// ErrUnknownPreset is returned when a preset name is not registered
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrUnsupportedConfigFormat is returned for a config file extension with no decoder
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// arvProbe detects whether a file sets the after-repair value explicitly
type arvProbe struct {
	Property struct {
		AfterRepairValue *float64 `yaml:"after_repair_value" toml:"after_repair_value" json:"after_repair_value"`
	} `yaml:"property" toml:"property" json:"property"`
}

// LoadFromFile loads inputs from a YAML, TOML or JSON file on top of the defaults
func (ip *InputParser) LoadFromFile(filename string) (*domain.Inputs, error) {
	return ip.LoadOver(filename, domain.DefaultInputs())
}

// LoadOver loads inputs from filename on top of base. Fields the file omits keep the
// base value. When the file changes the purchase price or repairs without setting the
// after-repair value, the ARV follows price plus repairs.
func (ip *InputParser) LoadOver(filename string, base domain.Inputs) (*domain.Inputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	in := base
	var probe arvProbe
	if err := decode(filename, data, &in); err != nil {
		return nil, err
	}
	if err := decode(filename, data, &probe); err != nil {
		return nil, err
	}

	priceChanged := in.Property.PurchasePrice != base.Property.PurchasePrice ||
		in.Property.RepairCosts != base.Property.RepairCosts
	if probe.Property.AfterRepairValue == nil && priceChanged {
		in.Property.AfterRepairValue = in.Property.PurchasePrice + in.Property.RepairCosts
	}

	if err := ip.ValidateInputs(in); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &in, nil
}

func decode(filename string, data []byte, v any) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	return nil
}

// ValidateInputs validates the loaded inputs against the field rules
func (ip *InputParser) ValidateInputs(in domain.Inputs) error {
	return ValidateInputs(in)
}

// ApplyPreset merges the named preset over base
func (ip *InputParser) ApplyPreset(name string, base domain.Inputs) (domain.Inputs, error) {
	p, found := domain.LookupPreset(domain.PresetName(strings.ToLower(name)))
	if !found {
		return base, fmt.Errorf("%w: %s (available: %s)", ErrUnknownPreset, name, strings.Join(domain.PresetNames(), ", "))
	}
	return p.Apply(base), nil
}

// CreateExampleConfiguration creates an example configuration for testing
func (ip *InputParser) CreateExampleConfiguration() *domain.Inputs {
	in := domain.DefaultInputs()
	return &in
}

// SaveConfiguration writes in to filename, encoded by the file's extension
func (ip *InputParser) SaveConfiguration(in domain.Inputs, filename string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(in)
	case ".toml":
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(in)
		data = []byte(b.String())
	case ".json":
		data, err = json.MarshalIndent(in, "", "  ")
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
