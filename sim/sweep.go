package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SystemFactory builds an independent System for one sweep value. The
// factory owns all parameter construction, including any pre-simulation
// transform (immunization, spending-reduced beta), so no sweep iteration
// reads shared mutable state.
type SystemFactory func(value float64) *System

// PairFactory builds an independent System for one (row, col) value pair
// in a 2-D sweep.
type PairFactory func(rowValue, colValue float64) *System

// SweepResult is an ordered 1-D sweep outcome: the actual parameter values
// used, in the order swept, and one total-infected summary per value.
type SweepResult struct {
	Values    []float64
	Summaries []float64
}

// Len returns the number of sweep points.
func (sr *SweepResult) Len() int {
	return len(sr.Values)
}

// SweepOne runs one simulation per value, in input order, and records the
// total infected fraction for each. An empty input yields an empty result.
func SweepOne(values []float64, factory SystemFactory) *SweepResult {
	result := &SweepResult{
		Values:    make([]float64, 0, len(values)),
		Summaries: make([]float64, 0, len(values)),
	}
	for _, v := range values {
		series := RunSystem(factory(v))
		result.Values = append(result.Values, v)
		result.Summaries = append(result.Summaries, TotalInfected(series))
	}
	return result
}

// SweepTable is a 2-D sweep outcome with rows indexed by RowValues and
// columns by ColValues. Cell (i, j) is the total infected fraction for the
// System built from (RowValues[i], ColValues[j]).
type SweepTable struct {
	RowValues []float64
	ColValues []float64
	// Cells is nil when either value range is empty.
	Cells *mat.Dense
}

// SweepTwo runs the full cross of rowValues and colValues, one column at a
// time: for each column value the inner loop is equivalent to SweepOne
// over rowValues with the column value fixed.
func SweepTwo(rowValues, colValues []float64, factory PairFactory) *SweepTable {
	table := &SweepTable{
		RowValues: append([]float64(nil), rowValues...),
		ColValues: append([]float64(nil), colValues...),
	}
	if len(rowValues) == 0 || len(colValues) == 0 {
		return table
	}
	table.Cells = mat.NewDense(len(rowValues), len(colValues), nil)

	for j, colValue := range colValues {
		column := SweepOne(rowValues, func(rowValue float64) *System {
			return factory(rowValue, colValue)
		})
		for i, summary := range column.Summaries {
			table.Cells.Set(i, j, summary)
		}
	}
	return table
}

// Span returns n evenly spaced values from lo to hi inclusive, the usual
// way to build a sweep range. n <= 0 yields an empty range and n == 1
// yields just lo.
func Span(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
