package cleaning

import "fmt"

// InvalidConfigError reports a construction parameter outside its allowed
// range. The simulation is never constructed when one is returned.
type InvalidConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("cleaning: invalid config: %s=%d %s", e.Field, e.Value, e.Reason)
}

// OutOfRangeError reports a coordinate lookup outside the grid bounds. It
// indicates a defect in the caller; no in-run condition produces it.
type OutOfRangeError struct {
	X, Y int
	W, H int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cleaning: cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.W, e.H)
}
