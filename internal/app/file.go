package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config for YAML files. Pointer fields distinguish
// absent keys from zero values.
type FileConfig struct {
	Sim      *string `yaml:"sim"`
	Scale    *int    `yaml:"scale"`
	TPS      *int    `yaml:"tps"`
	Seed     *int64  `yaml:"seed"`
	Width    *uint   `yaml:"width"`
	Order    *uint   `yaml:"order"`
	LogLevel *string `yaml:"log_level"`
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fc, fmt.Errorf("%s: %w", path, err)
	}
	if fc.Width != nil && *fc.Width == 0 {
		return fc, fmt.Errorf("%s: width must be positive", path)
	}
	return fc, nil
}

// Apply overlays the values present in fc onto c.
func (c *Config) Apply(fc FileConfig) {
	if fc.Sim != nil {
		c.Sim = *fc.Sim
	}
	if fc.Scale != nil {
		c.Scale = *fc.Scale
	}
	if fc.TPS != nil {
		c.TPS = *fc.TPS
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Order != nil {
		c.Order = *fc.Order
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
}

// Parse binds c to fs, parses args and, when -config is set, applies the file
// underneath any flags given explicitly on the command line.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return c.Validate()
	}
	fc, err := LoadFile(c.File)
	if err != nil {
		return err
	}
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	c.Apply(fc)
	// Flags given on the command line win over the file.
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return err
		}
	}
	return c.Validate()
}

// Validate rejects configurations the drivers cannot run.
func (c *Config) Validate() error {
	if c.Width == 0 {
		return errors.New("width must be positive")
	}
	if c.Width > math.MaxUint32 {
		return fmt.Errorf("width %d does not fit in 32 bits", c.Width)
	}
	if c.Order > math.MaxUint32 {
		return fmt.Errorf("rule %d does not fit in 32 bits", c.Order)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}
