package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/epidemic-sim/epidemic-sim/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

type Scenario struct {
	Susceptible float64 `yaml:"susceptible"`
	Infected    float64 `yaml:"infected"`
	Recovered   float64 `yaml:"recovered"`
	Beta        float64 `yaml:"beta"`
	Gamma       float64 `yaml:"gamma"`
	T0          int     `yaml:"t0"`
	TEnd        int     `yaml:"t_end"`
}

// GetScenario loads the named preset from a YAML scenario file and builds
// the corresponding System. The population fields are raw counts and are
// normalized to fractions here.
func GetScenario(scenarioFilePath string, name string) (*sim.System, error) {
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		return nil, err
	}

	var cfg ScenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	scenario, ok := cfg.Scenarios[name]
	if !ok {
		return nil, fmt.Errorf("scenario %q not found in %s", name, scenarioFilePath)
	}
	logrus.Infof("Using preset scenario %v", name)

	init := sim.NewStateFromCounts(scenario.Susceptible, scenario.Infected, scenario.Recovered)
	return sim.NewSystem(init, scenario.T0, scenario.TEnd, scenario.Beta, scenario.Gamma), nil
}
