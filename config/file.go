package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/archery/logging"
	"gopkg.in/yaml.v3"
)

// FileConfig is the subset of configuration that can be overridden from a YAML file.
// Keys missing from the file keep their current values.
type FileConfig struct {
	Archer  ArcherConfig   `yaml:"archer"`
	Arrow   ArrowConfig    `yaml:"arrow"`
	Physics PhysicsConfig  `yaml:"physics"`
	Log     logging.Config `yaml:"log"`
}

// Current returns the live configuration as a FileConfig.
func Current() FileConfig {
	return FileConfig{
		Archer:  Archer,
		Arrow:   Arrow,
		Physics: Physics,
		Log:     Log,
	}
}

// Decode reads YAML overrides on top of base.
func Decode(r io.Reader, base FileConfig) (FileConfig, error) {
	fc := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("decode config: %w", err)
	}
	return fc, nil
}

// LoadFile reads YAML overrides from path on top of the current configuration.
func LoadFile(path string) (FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	fc, err := Decode(f, Current())
	if err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return fc, nil
}

// Apply installs fc as the live configuration.
func Apply(fc FileConfig) {
	Archer = fc.Archer
	Arrow = fc.Arrow
	Physics = fc.Physics
	Log = fc.Log
}

// Validate lists values that will be corrected at runtime.
func (fc FileConfig) Validate() []string {
	problems := fc.Archer.Settings().Problems()

	if fc.Arrow.Lifetime <= 0 {
		problems = append(problems, "arrow lifetime is not positive; arrows are removed immediately")
	}
	if fc.Arrow.MaxInFlight <= 0 {
		problems = append(problems, "arrow max_in_flight is not positive; no limit applied")
	}
	return problems
}
