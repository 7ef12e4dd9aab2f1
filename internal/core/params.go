package core

// ParamDesc describes one tunable effect parameter. Names are unique within
// a single effect's parameter list, not globally. Value always stays inside
// [Min, Max]; Step is the increment applied by one up/down adjustment.
type ParamDesc struct {
	Name  string
	Min   float64
	Max   float64
	Value float64
	Step  float64
}
