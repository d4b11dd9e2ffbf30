package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk description of one simulation: region parameters
// plus run controls. CLI flags override Samples and Seed when set explicitly.
type Scenario struct {
	Florida RegionParams `yaml:"florida"`
	Gulf    RegionParams `yaml:"gulf"`
	Samples int64        `yaml:"samples"` // simulated years (0 = DefaultSamples)
	Seed    int64        `yaml:"seed"`
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Samples == 0 {
		sc.Samples = DefaultSamples
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the scenario's parameters and sample count.
func (sc *Scenario) Validate() error {
	if err := (ParameterSet{Florida: sc.Florida, Gulf: sc.Gulf}).Validate(); err != nil {
		return err
	}
	if sc.Samples < 1 {
		return fmt.Errorf("%w: number of Monte Carlo samples %d, should be a positive number", ErrInvalidParameter, sc.Samples)
	}
	return nil
}

// ParameterSet returns the scenario's validated parameter set.
func (sc *Scenario) ParameterSet() (ParameterSet, error) {
	return NewParameterSet(sc.Florida, sc.Gulf)
}
