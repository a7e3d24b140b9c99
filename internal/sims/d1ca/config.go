package d1ca

import "strconv"

// Config holds parameters for the automaton.
type Config struct {
	Width uint32
	Order uint32
	Seed  int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Order: 20, Seed: 42}
}

// FromMap populates a Config from a string map. Unparseable or out of range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Width = uint32(parsed)
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Order = uint32(parsed)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
