package cleaning

import "testing"

func TestFromMapParsesKnownKeys(t *testing.T) {
	c := FromMap(map[string]string{
		"w":             "20",
		"h":             "15",
		"seed":          "7",
		"n":             "3",
		"dirty_percent": "40",
		"max_steps":     "500",
	})
	if c.Width != 20 || c.Height != 15 {
		t.Fatalf("dimensions %dx%d, expected 20x15", c.Width, c.Height)
	}
	if c.Seed != 7 {
		t.Fatalf("seed %d, expected 7", c.Seed)
	}
	if c.Params.Agents != 3 || c.Params.DirtyPercent != 40 || c.Params.MaxSteps != 500 {
		t.Fatalf("params %+v", c.Params)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("FromMap produced invalid config: %v", err)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":             "nope",
		"h":             "-4",
		"n":             "0",
		"dirty_percent": "140",
		"max_steps":     "",
		"seed":          "0",
	})
	if c != def {
		t.Fatalf("invalid values leaked into config: %+v", c)
	}
}

func TestFromMapNilUsesDefaults(t *testing.T) {
	if c := FromMap(nil); c != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", c)
	}
}
