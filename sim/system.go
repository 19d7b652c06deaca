package sim

// System bundles everything one simulation run needs: the initial state,
// the integer day range, and the two per-day rates. It is not mutated
// during a run; sweep drivers build a fresh System per parameter point.
type System struct {
	Init  State   // initial compartment fractions (day T0)
	T0    int     // first day of the run
	TEnd  int     // last day of the run (inclusive)
	Beta  float64 // contact/infection rate per day
	Gamma float64 // recovery rate per day
}

// NewSystem constructs a System. No validation happens here: negative
// rates or TEnd <= T0 are carried through and produce whatever the
// arithmetic produces (TEnd <= T0 degenerates to a single-entry run).
func NewSystem(init State, t0, tEnd int, beta, gamma float64) *System {
	return &System{
		Init:  init,
		T0:    t0,
		TEnd:  tEnd,
		Beta:  beta,
		Gamma: gamma,
	}
}
