package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/epidemic-sim/epidemic-sim/sim"
)

var (
	// CLI flags shared by run and sweep
	logLevel     string  // Log verbosity level
	susceptible  float64 // Initial susceptible population count
	infected     float64 // Initial infected population count
	recovered    float64 // Initial recovered population count
	beta         float64 // Contact rate per day
	gamma        float64 // Recovery rate per day
	startDay     int     // First day of the simulation
	endDay       int     // Last day of the simulation (inclusive)
	scenarioFile string  // YAML file with named scenario presets
	scenarioName string  // Preset scenario name within the file

	// CLI flags for interventions
	immunizeFraction float64 // Fraction of the population vaccinated before the run
	spending         float64 // Prevention campaign spending
	logisticB        float64 // Logistic steepness
	logisticM        float64 // Logistic midpoint (spending amount of half effect)
	logisticK        float64 // Logistic upper asymptote (max beta reduction)

	outputPath string // Trajectory CSV output path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "epidemic-sim",
	Short: "Discrete-time SIR epidemic simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single SIR simulation",
	Run: func(cmd *cobra.Command, args []string) {
		system, err := buildBaseSystem()
		if err != nil {
			logrus.Fatalf("unable to build system: %v", err)
		}
		system = applyInterventions(system)

		logrus.Infof("Starting simulation with beta=%.4f, gamma=%.4f, days %d..%d",
			system.Beta, system.Gamma, system.T0, system.TEnd)

		series := sim.NewSimulator(system).Run()
		sim.Summarize(series).Print()

		if outputPath != "" {
			if err := series.ExportCSV(outputPath); err != nil {
				logrus.Fatalf("unable to write trajectory CSV: %v", err)
			}
			logrus.Infof("Wrote trajectory to %s", outputPath)
		}
	},
}

// buildBaseSystem resolves the System from a preset scenario if one was
// requested, otherwise from the individual flags.
func buildBaseSystem() (*sim.System, error) {
	if scenarioName != "" {
		return GetScenario(scenarioFile, scenarioName)
	}
	init := sim.NewStateFromCounts(susceptible, infected, recovered)
	return sim.NewSystem(init, startDay, endDay, beta, gamma), nil
}

// applyInterventions folds the immunization and spending flags into a new
// System; the base System is left untouched.
func applyInterventions(system *sim.System) *sim.System {
	init := system.Init
	if immunizeFraction > 0 {
		init = init.Immunize(immunizeFraction)
	}
	effectiveBeta := system.Beta
	if spending > 0 {
		params := sim.NewLogisticParams(logisticB, logisticM, logisticK)
		effectiveBeta = params.ReduceBeta(system.Beta, spending)
	}
	return sim.NewSystem(init, system.T0, system.TEnd, effectiveBeta, system.Gamma)
}

// addSystemFlags registers the flags that define the base System; both
// run and sweep take them.
func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&susceptible, "susceptible", 89, "Initial susceptible population count")
	cmd.Flags().Float64Var(&infected, "infected", 1, "Initial infected population count")
	cmd.Flags().Float64Var(&recovered, "recovered", 0, "Initial recovered population count")
	cmd.Flags().Float64Var(&beta, "beta", 1.0/3.0, "Contact rate per day")
	cmd.Flags().Float64Var(&gamma, "gamma", 0.25, "Recovery rate per day")
	cmd.Flags().IntVar(&startDay, "t0", 0, "First day of the simulation")
	cmd.Flags().IntVar(&endDay, "t-end", 98, "Last day of the simulation (inclusive)")
	cmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file with named scenario presets")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "Preset scenario name (overrides the population and rate flags)")
}

// addLogisticFlags registers the spending-effect curve parameters.
func addLogisticFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&logisticB, "logistic-b", 0.01, "Spending curve steepness")
	cmd.Flags().Float64Var(&logisticM, "logistic-m", 500, "Spending amount at which half the max reduction is reached")
	cmd.Flags().Float64Var(&logisticK, "logistic-k", 0.2, "Maximum fractional reduction of beta")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addSystemFlags(runCmd)
	addLogisticFlags(runCmd)
	runCmd.Flags().Float64Var(&immunizeFraction, "immunize", 0, "Fraction of the population vaccinated before the run")
	runCmd.Flags().Float64Var(&spending, "spending", 0, "Prevention campaign spending (reduces beta via the logistic curve)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Write the day,S,I,R trajectory to this CSV file")

	rootCmd.AddCommand(runCmd)
}
