package sim

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// TimeSeries is the daily trajectory of one run: one State per integer day
// from T0 to TEnd inclusive. Entries are appended in time order as the
// simulation advances and never rewritten afterwards.
type TimeSeries struct {
	t0     int
	states []State
}

func newTimeSeries(t0, capacity int) *TimeSeries {
	if capacity < 1 {
		capacity = 1
	}
	return &TimeSeries{
		t0:     t0,
		states: make([]State, 0, capacity),
	}
}

func (ts *TimeSeries) append(st State) {
	ts.states = append(ts.states, st)
}

// Len returns the number of days in the trajectory.
func (ts *TimeSeries) Len() int {
	return len(ts.states)
}

// T0 returns the first day of the trajectory.
func (ts *TimeSeries) T0() int {
	return ts.t0
}

// TEnd returns the last day of the trajectory.
func (ts *TimeSeries) TEnd() int {
	return ts.t0 + len(ts.states) - 1
}

// At returns the State for an absolute day in [T0, TEnd].
func (ts *TimeSeries) At(day int) State {
	return ts.states[day-ts.t0]
}

// First returns the State at T0.
func (ts *TimeSeries) First() State {
	return ts.states[0]
}

// Last returns the State at TEnd.
func (ts *TimeSeries) Last() State {
	return ts.states[len(ts.states)-1]
}

// Susceptible returns the per-day susceptible column, in day order.
// Reporting layers consume these columns as plain numeric tables.
func (ts *TimeSeries) Susceptible() []float64 {
	col := make([]float64, len(ts.states))
	for idx, st := range ts.states {
		col[idx] = st.S
	}
	return col
}

// Infected returns the per-day infected column, in day order.
func (ts *TimeSeries) Infected() []float64 {
	col := make([]float64, len(ts.states))
	for idx, st := range ts.states {
		col[idx] = st.I
	}
	return col
}

// Recovered returns the per-day recovered column, in day order.
func (ts *TimeSeries) Recovered() []float64 {
	col := make([]float64, len(ts.states))
	for idx, st := range ts.states {
		col[idx] = st.R
	}
	return col
}

// ExportCSV writes the trajectory as day,susceptible,infected,recovered
// rows to path, overwriting any existing file.
func (ts *TimeSeries) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"day", "susceptible", "infected", "recovered"}); err != nil {
		return err
	}
	for idx, st := range ts.states {
		record := []string{
			strconv.Itoa(ts.t0 + idx),
			fmt.Sprintf("%.9f", st.S),
			fmt.Sprintf("%.9f", st.I),
			fmt.Sprintf("%.9f", st.R),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
