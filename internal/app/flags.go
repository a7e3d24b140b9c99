package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the drivers.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Width    uint
	Order    uint
	File     string
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "d1ca", Scale: 4, TPS: 30, Seed: 42, Width: 160, Order: 20, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial row")
	fs.UintVar(&c.Width, "w", c.Width, "number of cells in the row")
	fs.UintVar(&c.Order, "rule", c.Order, "rule number; bit s gives the next state for neighbourhood sum s")
	fs.StringVar(&c.File, "config", c.File, "optional YAML file overriding the defaults")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level (debug, info, warn, error)")
}

// SimOptions converts the configuration into the string map consumed by
// simulation factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    strconv.FormatUint(uint64(c.Width), 10),
		"rule": strconv.FormatUint(uint64(c.Order), 10),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
