package sim

import (
	"testing"

	"github.com/epidemic-sim/epidemic-sim/sim/internal/testutil"
)

func immunizeFactory(base *System) SystemFactory {
	return func(fraction float64) *System {
		return NewSystem(base.Init.Immunize(fraction), base.T0, base.TEnd, base.Beta, base.Gamma)
	}
}

func TestSweepOne_EmptyInputYieldsEmptyResult(t *testing.T) {
	result := SweepOne(nil, immunizeFactory(classroomSystem()))
	if result.Len() != 0 {
		t.Errorf("result length = %d, want 0", result.Len())
	}
}

func TestSweepOne_PreservesInputOrder(t *testing.T) {
	values := []float64{0.3, 0.1, 0.2}
	result := SweepOne(values, immunizeFactory(classroomSystem()))

	if result.Len() != len(values) {
		t.Fatalf("result length = %d, want %d", result.Len(), len(values))
	}
	for i, v := range values {
		if result.Values[i] != v {
			t.Errorf("result.Values[%d] = %v, want %v (input order must be preserved)", i, result.Values[i], v)
		}
	}
}

func TestSweepOne_MoreImmunizationMeansFewerInfections(t *testing.T) {
	values := Span(0, 0.8, 9)
	result := SweepOne(values, immunizeFactory(classroomSystem()))

	for i := 1; i < result.Len(); i++ {
		if result.Summaries[i] > result.Summaries[i-1]+1e-9 {
			t.Errorf("total infected rose from %v to %v as immunized fraction rose from %v to %v",
				result.Summaries[i-1], result.Summaries[i], result.Values[i-1], result.Values[i])
		}
	}
}

func TestSweepTwo_TableShape(t *testing.T) {
	base := classroomSystem()
	rows := Span(0, 0.4, 3)
	cols := Span(0.25, 1.0, 4)
	table := SweepTwo(rows, cols, func(fraction, betaScale float64) *System {
		return NewSystem(base.Init.Immunize(fraction), base.T0, base.TEnd, base.Beta*betaScale, base.Gamma)
	})

	r, c := table.Cells.Dims()
	if r != 3 || c != 4 {
		t.Errorf("table dims = %dx%d, want 3x4", r, c)
	}
	if len(table.RowValues) != 3 || len(table.ColValues) != 4 {
		t.Errorf("axis lengths = %d, %d, want 3, 4", len(table.RowValues), len(table.ColValues))
	}
}

func TestSweepTwo_CellsMatchColumnwiseSweepOne(t *testing.T) {
	base := classroomSystem()
	rows := []float64{0, 0.2}
	cols := []float64{0.5, 0.75, 1.0}
	factory := func(fraction, betaScale float64) *System {
		return NewSystem(base.Init.Immunize(fraction), base.T0, base.TEnd, base.Beta*betaScale, base.Gamma)
	}
	table := SweepTwo(rows, cols, factory)

	for j, betaScale := range cols {
		column := SweepOne(rows, func(fraction float64) *System {
			return factory(fraction, betaScale)
		})
		for i := range rows {
			if got, want := table.Cells.At(i, j), column.Summaries[i]; got != want {
				t.Errorf("cell (%d, %d) = %v, want SweepOne value %v", i, j, got, want)
			}
		}
	}
}

func TestSweepTwo_EmptyAxisYieldsNilCells(t *testing.T) {
	table := SweepTwo(nil, []float64{1, 2}, func(a, b float64) *System {
		t.Fatal("factory must not be called for an empty axis")
		return nil
	})
	if table.Cells != nil {
		t.Errorf("Cells = %v, want nil for an empty axis", table.Cells)
	}
}

func TestSpan_EndpointsAndSpacing(t *testing.T) {
	values := Span(0, 1, 11)
	if len(values) != 11 {
		t.Fatalf("len = %d, want 11", len(values))
	}
	testutil.AssertWithinAbs(t, "first value", 0, values[0], 1e-12)
	testutil.AssertWithinAbs(t, "last value", 1, values[10], 1e-12)
	testutil.AssertWithinAbs(t, "midpoint", 0.5, values[5], 1e-12)
}
