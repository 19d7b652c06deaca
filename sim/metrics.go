package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Metrics aggregates statistics about one simulation run for final
// reporting. Useful for comparing intervention scenarios and debugging
// parameter choices.
type Metrics struct {
	TotalInfected float64 // cumulative fraction that left the susceptible pool
	PeakInfected  float64 // largest infected fraction on any day
	PeakDay       int     // day the infected fraction peaked
	FinalState    State   // compartments at TEnd
	Days          int     // number of days in the trajectory
}

// TotalInfected is the scalar summary used throughout the sweep drivers:
// the susceptible fraction at the first day minus the susceptible fraction
// at the last, i.e. the share of the population that got infected at some
// point during the run.
func TotalInfected(series *TimeSeries) float64 {
	return series.First().S - series.Last().S
}

// Summarize computes run metrics from a finished trajectory.
func Summarize(series *TimeSeries) *Metrics {
	infected := series.Infected()
	peakIdx := floats.MaxIdx(infected)
	return &Metrics{
		TotalInfected: TotalInfected(series),
		PeakInfected:  infected[peakIdx],
		PeakDay:       series.T0() + peakIdx,
		FinalState:    series.Last(),
		Days:          series.Len(),
	}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Days simulated  : %d\n", m.Days)
	fmt.Printf("Total infected  : %.4f\n", m.TotalInfected)
	fmt.Printf("Peak infected   : %.4f (day %d)\n", m.PeakInfected, m.PeakDay)
	fmt.Printf("Final state     : S=%.4f I=%.4f R=%.4f\n",
		m.FinalState.S, m.FinalState.I, m.FinalState.R)
}
