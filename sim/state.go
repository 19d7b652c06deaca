package sim

// State holds the three SIR compartments as fractions of a closed population.
// A well-formed State sums to 1; the update rule only moves mass between
// compartments, so the sum is invariant over a run.
type State struct {
	S float64 // susceptible fraction
	I float64 // infected fraction
	R float64 // recovered fraction
}

// NewState builds a State directly from fractions.
func NewState(s, i, r float64) State {
	return State{S: s, I: i, R: r}
}

// NewStateFromCounts normalizes raw population counts into fractions,
// e.g. NewStateFromCounts(89, 1, 0) for one sick student in a class of 90.
func NewStateFromCounts(susceptible, infected, recovered float64) State {
	total := susceptible + infected + recovered
	return State{
		S: susceptible / total,
		I: infected / total,
		R: recovered / total,
	}
}

// Total returns the compartment sum. 1 for a well-formed State.
func (st State) Total() float64 {
	return st.S + st.I + st.R
}

// Immunize moves fraction from S to R, modeling a one-time vaccination of
// that share of the population before the run starts. The compartment sum
// is unchanged. Fractions larger than S are not rejected; the arithmetic
// stands, matching the rest of the core.
func (st State) Immunize(fraction float64) State {
	return State{
		S: st.S - fraction,
		I: st.I,
		R: st.R + fraction,
	}
}
