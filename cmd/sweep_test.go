package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	sim "github.com/epidemic-sim/epidemic-sim/sim"
)

func testBaseSystem() *sim.System {
	return sim.NewSystem(sim.NewStateFromCounts(89, 1, 0), 0, 98, 1.0/3.0, 0.25)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestWriteSweepCSV_HeaderAndRowPerPoint(t *testing.T) {
	base := testBaseSystem()
	values := sim.Span(0, 0.5, 6)
	result := sim.SweepOne(values, func(fraction float64) *sim.System {
		return sim.NewSystem(base.Init.Immunize(fraction), base.T0, base.TEnd, base.Beta, base.Gamma)
	})

	path := filepath.Join(t.TempDir(), "sweep.csv")
	if err := writeSweepCSV(path, "immunized_fraction", result); err != nil {
		t.Fatal(err)
	}

	records := readCSV(t, path)
	if len(records) != 7 {
		t.Fatalf("CSV has %d rows, want header + 6 points", len(records))
	}
	if records[0][0] != "immunized_fraction" || records[0][1] != "total_infected" {
		t.Errorf("unexpected header: %v", records[0])
	}
}

func TestWriteTableCSV_ShapeMatchesTable(t *testing.T) {
	base := testBaseSystem()
	params := sim.NewLogisticParams(0.01, 500, 0.2)
	rows := sim.Span(0, 0.4, 3)
	cols := sim.Span(0, 1200, 4)
	table := sim.SweepTwo(rows, cols, func(fraction, amount float64) *sim.System {
		return sim.NewSystem(base.Init.Immunize(fraction), base.T0, base.TEnd,
			params.ReduceBeta(base.Beta, amount), base.Gamma)
	})

	path := filepath.Join(t.TempDir(), "table.csv")
	if err := writeTableCSV(path, table); err != nil {
		t.Fatal(err)
	}

	records := readCSV(t, path)
	if len(records) != len(rows)+1 {
		t.Fatalf("CSV has %d rows, want %d", len(records), len(rows)+1)
	}
	for i, record := range records {
		if len(record) != len(cols)+1 {
			t.Fatalf("row %d has %d columns, want %d", i, len(record), len(cols)+1)
		}
	}
}

func TestBuildBaseSystem_FlagDefaultsAreClassroom(t *testing.T) {
	system, err := buildBaseSystem()
	if err != nil {
		t.Fatal(err)
	}
	want := testBaseSystem()
	if system.T0 != want.T0 || system.TEnd != want.TEnd ||
		system.Beta != want.Beta || system.Gamma != want.Gamma ||
		system.Init != want.Init {
		t.Errorf("default system = %+v, want %+v", system, want)
	}
}
