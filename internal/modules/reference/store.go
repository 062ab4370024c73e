// Package reference holds the static tables the policy engine reads: lever
// parameters, the historical temperature series, the business-as-usual
// projection, baseline constants and fiscal/climate thresholds.
//
// The tables are compiled into the binary and decoded once by Load. A Store
// is never mutated after Load returns; every accessor hands out copies, so a
// single Store can be shared by any number of goroutines.
package reference

import (
	_ "embed"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

//go:embed reference.yaml
var embeddedTables []byte

const capTolerance = 1e-9

type document struct {
	Baseline   Baseline `yaml:"baseline"`
	Thresholds struct {
		Bankruptcy     float64 `yaml:"bankruptcy"`
		Sustainability float64 `yaml:"sustainability"`
	} `yaml:"thresholds"`
	Trend struct {
		RampYears int `yaml:"ramp_years"`
	} `yaml:"trend"`
	Levers     []PolicyLever `yaml:"levers"`
	Historical []YearPoint   `yaml:"historical"`
	BAU        []YearPoint   `yaml:"bau"`
}

// Store is the read-only reference data set.
type Store struct {
	levers                  [LeverCount]PolicyLever
	historical              []YearPoint
	bau                     []YearPoint
	baseline                Baseline
	bankruptcyThreshold     float64
	sustainabilityThreshold float64
	rampYears               int
}

// Load decodes and validates the compiled-in reference tables.
func Load() (*Store, error) {
	return Parse(embeddedTables)
}

// Parse decodes and validates reference tables from YAML.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode reference tables: %w", err)
	}

	s := &Store{
		historical:              append([]YearPoint(nil), doc.Historical...),
		bau:                     append([]YearPoint(nil), doc.BAU...),
		baseline:                doc.Baseline,
		bankruptcyThreshold:     doc.Thresholds.Bankruptcy,
		sustainabilityThreshold: doc.Thresholds.Sustainability,
		rampYears:               doc.Trend.RampYears,
	}

	seen := make(map[Lever]bool, LeverCount)
	for _, pl := range doc.Levers {
		i := pl.ID.index()
		if i < 0 {
			return nil, fmt.Errorf("unknown lever %q in reference tables", pl.ID)
		}
		if seen[pl.ID] {
			return nil, fmt.Errorf("lever %q defined more than once", pl.ID)
		}
		if err := validateLever(pl); err != nil {
			return nil, err
		}
		seen[pl.ID] = true
		s.levers[i] = pl
	}
	for _, id := range allLevers {
		if !seen[id] {
			return nil, fmt.Errorf("lever %q missing from reference tables", id)
		}
	}

	if err := s.validateSeries(); err != nil {
		return nil, err
	}

	return s, nil
}

func validateLever(pl PolicyLever) error {
	if pl.TemperatureImpactPerUnit > 0 {
		return fmt.Errorf("lever %q: temperature_impact_per_unit must be <= 0", pl.ID)
	}
	if pl.MaxImpact > 0 {
		return fmt.Errorf("lever %q: max_impact must be <= 0", pl.ID)
	}
	// A cap the linear model can never reach at full implementation is dead
	// configuration.
	if math.Abs(pl.TemperatureImpactPerUnit*100) < math.Abs(pl.MaxImpact)-capTolerance {
		return fmt.Errorf("lever %q: max_impact %.4f unreachable at level 100", pl.ID, pl.MaxImpact)
	}
	if pl.Label == "" {
		return fmt.Errorf("lever %q: label is required", pl.ID)
	}
	return nil
}

func (s *Store) validateSeries() error {
	if len(s.bau) == 0 {
		return errors.New("BAU projection is empty")
	}
	if s.bankruptcyThreshold <= 0 {
		return errors.New("bankruptcy threshold must be positive")
	}
	if s.sustainabilityThreshold <= 0 {
		return errors.New("sustainability threshold must be positive")
	}
	if s.rampYears <= 0 {
		return errors.New("trend ramp_years must be positive")
	}
	for i := 1; i < len(s.bau); i++ {
		if s.bau[i].Year <= s.bau[i-1].Year {
			return fmt.Errorf("BAU projection not in ascending year order at %d", s.bau[i].Year)
		}
	}
	for i := 1; i < len(s.historical); i++ {
		if s.historical[i].Year <= s.historical[i-1].Year {
			return fmt.Errorf("historical series not in ascending year order at %d", s.historical[i].Year)
		}
	}
	return nil
}

// Tables returns a copy of the compiled-in reference YAML.
func Tables() []byte {
	return append([]byte(nil), embeddedTables...)
}

// Levers returns every lever record in canonical order.
func (s *Store) Levers() []PolicyLever {
	out := s.levers
	return out[:]
}

// Lever returns the record for a lever.
func (s *Store) Lever(id Lever) (PolicyLever, bool) {
	i := id.index()
	if i < 0 {
		return PolicyLever{}, false
	}
	return s.levers[i], true
}

// Historical returns the full historical series.
func (s *Store) Historical() []YearPoint {
	return append([]YearPoint(nil), s.historical...)
}

// BAU returns the business-as-usual projection.
func (s *Store) BAU() []YearPoint {
	return append([]YearPoint(nil), s.bau...)
}

// Timeline returns the historical series followed by the BAU projection.
func (s *Store) Timeline() []YearPoint {
	out := make([]YearPoint, 0, len(s.historical)+len(s.bau))
	out = append(out, s.historical...)
	return append(out, s.bau...)
}

// Baseline returns the baseline-year constants.
func (s *Store) Baseline() Baseline {
	return s.baseline
}

// BaselineLevels returns the all-zero starting policy levels.
func (s *Store) BaselineLevels() Levels {
	return Levels{}
}

// BankruptcyThreshold is the national debt ($B) above which the state collapses.
func (s *Store) BankruptcyThreshold() float64 {
	return s.bankruptcyThreshold
}

// SustainabilityThreshold is the anomaly (°C) considered critical.
func (s *Store) SustainabilityThreshold() float64 {
	return s.sustainabilityThreshold
}

// TrendRampYears is how many years after the baseline year policies take to
// reach full effect.
func (s *Store) TrendRampYears() int {
	return s.rampYears
}
