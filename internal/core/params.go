package core

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Params []Parameter
}

// ParameterControl describes an adjustable integer parameter that should be
// exposed on the HUD.
type ParameterControl struct {
	Key   string
	Label string

	Step int
	Min  int
	Max  int
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
