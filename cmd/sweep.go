package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/epidemic-sim/epidemic-sim/sim"
)

var (
	// CLI flags for the sweep command
	sweepMode     string  // immunize, spending, or both
	fractionMin   float64 // Lowest immunized fraction in the range
	fractionMax   float64 // Highest immunized fraction in the range
	fractionSteps int     // Number of immunized fractions to evaluate
	spendingMin   float64 // Lowest campaign spending in the range
	spendingMax   float64 // Highest campaign spending in the range
	spendingSteps int     // Number of spending amounts to evaluate
	sweepOutput   string  // Sweep result CSV output path
)

// sweepCmd explores intervention parameter ranges and reports the total
// infected fraction per configuration.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep intervention parameters and report total infected",
	Run: func(cmd *cobra.Command, args []string) {
		base, err := buildBaseSystem()
		if err != nil {
			logrus.Fatalf("unable to build system: %v", err)
		}
		params := sim.NewLogisticParams(logisticB, logisticM, logisticK)

		switch sweepMode {
		case "immunize":
			values := sim.Span(fractionMin, fractionMax, fractionSteps)
			logrus.Infof("Sweeping immunized fraction over %d points in [%.3f, %.3f]",
				len(values), fractionMin, fractionMax)
			result := sim.SweepOne(values, func(fraction float64) *sim.System {
				return sim.NewSystem(base.Init.Immunize(fraction), base.T0, base.TEnd, base.Beta, base.Gamma)
			})
			err = writeSweepCSV(sweepOutput, "immunized_fraction", result)

		case "spending":
			values := sim.Span(spendingMin, spendingMax, spendingSteps)
			logrus.Infof("Sweeping campaign spending over %d points in [%.0f, %.0f]",
				len(values), spendingMin, spendingMax)
			result := sim.SweepOne(values, func(amount float64) *sim.System {
				return sim.NewSystem(base.Init, base.T0, base.TEnd, params.ReduceBeta(base.Beta, amount), base.Gamma)
			})
			err = writeSweepCSV(sweepOutput, "spending", result)

		case "both":
			rows := sim.Span(fractionMin, fractionMax, fractionSteps)
			cols := sim.Span(spendingMin, spendingMax, spendingSteps)
			logrus.Infof("Sweeping %d immunized fractions x %d spending amounts", len(rows), len(cols))
			table := sim.SweepTwo(rows, cols, func(fraction, amount float64) *sim.System {
				return sim.NewSystem(base.Init.Immunize(fraction), base.T0, base.TEnd,
					params.ReduceBeta(base.Beta, amount), base.Gamma)
			})
			err = writeTableCSV(sweepOutput, table)

		default:
			logrus.Fatalf("unknown sweep mode %q (want immunize, spending, or both)", sweepMode)
		}

		if err != nil {
			logrus.Fatalf("unable to write sweep CSV: %v", err)
		}
		logrus.Infof("Wrote sweep results to %s", sweepOutput)
	},
}

// writeSweepCSV writes a 1-D sweep as paramName,total_infected rows.
func writeSweepCSV(outPath, paramName string, result *sim.SweepResult) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{paramName, "total_infected"}); err != nil {
		return err
	}
	for i, v := range result.Values {
		record := []string{
			fmt.Sprintf("%.6f", v),
			fmt.Sprintf("%.6f", result.Summaries[i]),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeTableCSV writes a 2-D sweep with spending amounts as column headers
// and one row per immunized fraction.
func writeTableCSV(outPath string, table *sim.SweepTable) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := make([]string, 0, len(table.ColValues)+1)
	header = append(header, "immunized_fraction")
	for _, c := range table.ColValues {
		header = append(header, fmt.Sprintf("%.6f", c))
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range table.RowValues {
		record := make([]string, 0, len(table.ColValues)+1)
		record = append(record, fmt.Sprintf("%.6f", r))
		for j := range table.ColValues {
			record = append(record, fmt.Sprintf("%.6f", table.Cells.At(i, j)))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func init() {
	addSystemFlags(sweepCmd)
	addLogisticFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepMode, "mode", "immunize", "Sweep mode: immunize, spending, or both")
	sweepCmd.Flags().Float64Var(&fractionMin, "fraction-min", 0, "Lowest immunized fraction")
	sweepCmd.Flags().Float64Var(&fractionMax, "fraction-max", 1, "Highest immunized fraction")
	sweepCmd.Flags().IntVar(&fractionSteps, "fraction-steps", 11, "Number of immunized fractions to evaluate")
	sweepCmd.Flags().Float64Var(&spendingMin, "spending-min", 0, "Lowest campaign spending")
	sweepCmd.Flags().Float64Var(&spendingMax, "spending-max", 1200, "Highest campaign spending")
	sweepCmd.Flags().IntVar(&spendingSteps, "spending-steps", 13, "Number of spending amounts to evaluate")
	sweepCmd.Flags().StringVar(&sweepOutput, "output", "sweep.csv", "Sweep result CSV output path")

	rootCmd.AddCommand(sweepCmd)
}
