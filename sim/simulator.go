// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time and produces the
// daily trajectory for one System. One Simulator per run; sweeps build a
// fresh one per parameter point.
type Simulator struct {
	System *System
	// Clock is the current simulation day, advanced once per step.
	Clock int
	// Series is the trajectory produced by Run, nil until Run returns.
	Series *TimeSeries

	warnedNegative bool
}

// NewSimulator creates a Simulator positioned at the System's start day.
func NewSimulator(system *System) *Simulator {
	return &Simulator{
		System: system,
		Clock:  system.T0,
	}
}

// Step applies the forward-Euler SIR update with a unit (one day) time step:
//
//	newInfections = beta * I * S
//	newRecoveries = gamma * I
//
// Mass moves S -> I -> R; the compartment sum is preserved. For large beta
// the scheme can push S or I negative. That is a known limitation of
// forward Euler and is deliberately not clamped here.
func Step(st State, beta, gamma float64) State {
	newInfections := beta * st.I * st.S
	newRecoveries := gamma * st.I
	return State{
		S: st.S - newInfections,
		I: st.I + newInfections - newRecoveries,
		R: st.R + newRecoveries,
	}
}

// Run advances the System from T0 to TEnd one day at a time and returns
// the full trajectory. The entry at T0 is the initial state; each later
// entry is computed from its predecessor, so exactly TEnd-T0 updates run,
// strictly in sequence. TEnd <= T0 yields a single-entry series.
func (sim *Simulator) Run() *TimeSeries {
	system := sim.System
	series := newTimeSeries(system.T0, system.TEnd-system.T0+1)

	st := system.Init
	series.append(st)
	sim.Clock = system.T0

	for t := system.T0; t < system.TEnd; t++ {
		st = Step(st, system.Beta, system.Gamma)
		sim.Clock = t + 1
		series.append(st)
		logrus.Debugf("[day %04d] S=%.6f I=%.6f R=%.6f", sim.Clock, st.S, st.I, st.R)

		if !sim.warnedNegative && (st.S < 0 || st.I < 0) {
			logrus.Warnf("[day %04d] compartment went negative (S=%.6f I=%.6f); forward-Euler step too large for beta=%.4f",
				sim.Clock, st.S, st.I, system.Beta)
			sim.warnedNegative = true
		}
	}

	sim.Series = series
	logrus.Debugf("[day %04d] Simulation ended", sim.Clock)
	return series
}

// RunSystem is a convenience wrapper for one-shot runs.
func RunSystem(system *System) *TimeSeries {
	return NewSimulator(system).Run()
}
