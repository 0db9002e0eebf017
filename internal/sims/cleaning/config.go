package cleaning

import "strconv"

// Params holds the tunable simulation parameters.
type Params struct {
	Agents       int
	DirtyPercent int
	MaxSteps     int
}

// Config controls the cleaning simulation dimensions and parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  10,
		Height: 10,
		Seed:   1337,
		Params: Params{
			Agents:       5,
			DirtyPercent: 100,
			MaxSteps:     200,
		},
	}
}

// Validate reports the first invalid construction parameter, if any.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return &InvalidConfigError{Field: "width", Value: c.Width, Reason: "must be positive"}
	case c.Height <= 0:
		return &InvalidConfigError{Field: "height", Value: c.Height, Reason: "must be positive"}
	case c.Params.Agents <= 0:
		return &InvalidConfigError{Field: "n", Value: c.Params.Agents, Reason: "must be positive"}
	case c.Params.DirtyPercent < 0 || c.Params.DirtyPercent > 100:
		return &InvalidConfigError{Field: "dirty_percent", Value: c.Params.DirtyPercent, Reason: "must be in [0,100]"}
	case c.Params.MaxSteps <= 0:
		return &InvalidConfigError{Field: "max_steps", Value: c.Params.MaxSteps, Reason: "must be positive"}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall outside their range keep the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed != 0 {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Agents = parsed
		}
	}
	if v, ok := cfg["dirty_percent"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.Params.DirtyPercent = parsed
		}
	}
	if v, ok := cfg["max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.MaxSteps = parsed
		}
	}
	return c
}
