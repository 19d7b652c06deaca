package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestTimeSeries_ColumnsMatchEntries(t *testing.T) {
	series := NewSimulator(classroomSystem()).Run()
	infected := series.Infected()

	if len(infected) != series.Len() {
		t.Fatalf("infected column length = %d, want %d", len(infected), series.Len())
	}
	for day := series.T0(); day <= series.TEnd(); day++ {
		if infected[day-series.T0()] != series.At(day).I {
			t.Fatalf("day %d: column value %v != entry %v", day, infected[day-series.T0()], series.At(day).I)
		}
	}
}

func TestExportCSV_WritesHeaderAndOneRowPerDay(t *testing.T) {
	series := NewSimulator(classroomSystem()).Run()
	path := filepath.Join(t.TempDir(), "trajectory.csv")

	if err := series.ExportCSV(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != series.Len()+1 {
		t.Fatalf("CSV has %d rows, want %d (header + one per day)", len(records), series.Len()+1)
	}
	if records[0][0] != "day" || records[0][1] != "susceptible" {
		t.Errorf("unexpected header: %v", records[0])
	}
	firstDay, err := strconv.Atoi(records[1][0])
	if err != nil || firstDay != series.T0() {
		t.Errorf("first data row day = %q, want %d", records[1][0], series.T0())
	}
}
