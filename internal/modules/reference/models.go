package reference

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Lever identifies one of the eight climate policy levers.
type Lever string

// The lever set is closed; order here is the canonical order used in every
// response.
const (
	EVAdoption         Lever = "ev_adoption"
	RenewableEnergy    Lever = "renewable_energy"
	CarbonTax          Lever = "carbon_tax"
	Reforestation      Lever = "reforestation"
	PublicTransport    Lever = "public_transport"
	IndustrialControls Lever = "industrial_controls"
	GreenBuildings     Lever = "green_buildings"
	WasteManagement    Lever = "waste_management"
)

// LeverCount is the number of policy levers.
const LeverCount = 8

var allLevers = [LeverCount]Lever{
	EVAdoption,
	RenewableEnergy,
	CarbonTax,
	Reforestation,
	PublicTransport,
	IndustrialControls,
	GreenBuildings,
	WasteManagement,
}

// AllLevers returns the levers in canonical order.
func AllLevers() []Lever {
	out := allLevers
	return out[:]
}

// ParseLever resolves a lever identifier.
func ParseLever(s string) (Lever, bool) {
	for _, l := range allLevers {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

func (l Lever) index() int {
	for i, candidate := range allLevers {
		if candidate == l {
			return i
		}
	}
	return -1
}

// PolicyLever holds the immutable parameters of a lever.
type PolicyLever struct {
	ID                       Lever   `yaml:"id" json:"id"`
	CostPerUnit              float64 `yaml:"cost_per_unit" json:"cost_per_unit"`                             // $B per point, negative = revenue
	TemperatureImpactPerUnit float64 `yaml:"temperature_impact_per_unit" json:"temperature_impact_per_unit"` // °C per point, <= 0
	MaxImpact                float64 `yaml:"max_impact" json:"max_impact"`                                   // most negative attainable °C
	Label                    string  `yaml:"label" json:"label"`
	Description              string  `yaml:"description" json:"description"`
}

// YearPoint is a temperature anomaly for a single year.
type YearPoint struct {
	Year    int     `yaml:"year" json:"year"`
	Anomaly float64 `yaml:"anomaly" json:"anomaly"`
}

// Baseline describes the starting state of the simulation.
type Baseline struct {
	Year               int     `yaml:"year"`
	TemperatureAnomaly float64 `yaml:"temperature_anomaly"`
	NationalDebt       float64 `yaml:"national_debt"`
}

// Levels is a sanitized level (0-100) per lever, indexed in canonical order.
// It serializes as a JSON object with keys in canonical order.
type Levels [LeverCount]int

// Get returns the level of a lever, 0 for unknown levers.
func (l Levels) Get(id Lever) int {
	i := id.index()
	if i < 0 {
		return 0
	}
	return l[i]
}

// Set assigns the level of a lever; unknown levers are ignored.
func (l *Levels) Set(id Lever, level int) {
	if i := id.index(); i >= 0 {
		l[i] = level
	}
}

// Map returns the levels keyed by lever identifier.
func (l Levels) Map() map[string]int {
	out := make(map[string]int, LeverCount)
	for i, id := range allLevers {
		out[string(id)] = l[i]
	}
	return out
}

// MarshalJSON writes the levels as an object in canonical lever order.
func (l Levels) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range allLevers {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(id))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(l[i]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads levels from an object keyed by lever identifier.
// Unknown keys are ignored and absent levers are zero.
func (l *Levels) UnmarshalJSON(data []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = Levels{}
	for key, level := range raw {
		if id, ok := ParseLever(key); ok {
			l.Set(id, level)
		}
	}
	return nil
}
