package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter reports a simulation parameter outside its valid domain.
// Parameter sets are validated at construction and the invariant is re-asserted
// when samplers are built, so a bad parameter can never silently produce a
// partial or clamped result.
var ErrInvalidParameter = errors.New("invalid parameter")

// RegionParams holds the loss-model parameters for one landfall region.
// A region's annual event count is Poisson(LandfallRate) and each event's
// economic loss is exp(Normal(LossLocation, LossScale)), i.e. LogNormal.
type RegionParams struct {
	LandfallRate float64 `yaml:"landfall_rate"` // expected landfall events per year (Poisson mean, > 0)
	LossLocation float64 `yaml:"mean"`          // location of ln(loss): mean of the underlying Normal
	LossScale    float64 `yaml:"stddev"`        // scale of ln(loss): stddev of the underlying Normal (> 0)
}

// Validate checks the RegionParams invariants.
func (p RegionParams) Validate() error {
	if !(p.LandfallRate > 0) || math.IsInf(p.LandfallRate, 0) {
		return fmt.Errorf("%w: landfall rate %v, should be a positive number", ErrInvalidParameter, p.LandfallRate)
	}
	if math.IsNaN(p.LossLocation) || math.IsInf(p.LossLocation, 0) {
		return fmt.Errorf("%w: loss location %v, should be a finite number", ErrInvalidParameter, p.LossLocation)
	}
	if !(p.LossScale > 0) || math.IsInf(p.LossScale, 0) {
		return fmt.Errorf("%w: loss scale %v, should be a positive number", ErrInvalidParameter, p.LossScale)
	}
	return nil
}

// ParameterSet is the full, immutable input of one engine invocation. It is
// shared read-only across all workers; nothing mutates it after construction.
type ParameterSet struct {
	Florida RegionParams `yaml:"florida"`
	Gulf    RegionParams `yaml:"gulf"`
}

// NewParameterSet builds a validated ParameterSet.
func NewParameterSet(florida, gulf RegionParams) (ParameterSet, error) {
	ps := ParameterSet{Florida: florida, Gulf: gulf}
	if err := ps.Validate(); err != nil {
		return ParameterSet{}, err
	}
	return ps, nil
}

// Validate checks both regions' invariants.
func (ps ParameterSet) Validate() error {
	if err := ps.Florida.Validate(); err != nil {
		return fmt.Errorf("florida: %w", err)
	}
	if err := ps.Gulf.Validate(); err != nil {
		return fmt.Errorf("gulf: %w", err)
	}
	return nil
}
