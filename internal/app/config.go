package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width        int
	Height       int
	Agents       int
	DirtyPercent int
	MaxSteps     int
}

// NewConfig returns a Config populated with the standard cleaning scenario.
func NewConfig() *Config {
	return &Config{
		Sim:          "cleaning",
		Scale:        48,
		TPS:          8,
		Width:        10,
		Height:       10,
		Agents:       5,
		DirtyPercent: 100,
		MaxSteps:     200,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the sim default)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.IntVar(&c.Agents, "n", c.Agents, "number of cleaning robots")
	fs.IntVar(&c.DirtyPercent, "dirty", c.DirtyPercent, "initial dirty percentage")
	fs.IntVar(&c.MaxSteps, "steps", c.MaxSteps, "step budget per run")
}

// SimOptions encodes the simulation parameters as a factory option map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":             strconv.Itoa(c.Width),
		"h":             strconv.Itoa(c.Height),
		"n":             strconv.Itoa(c.Agents),
		"dirty_percent": strconv.Itoa(c.DirtyPercent),
		"max_steps":     strconv.Itoa(c.MaxSteps),
		"seed":          strconv.FormatInt(c.Seed, 10),
	}
}
