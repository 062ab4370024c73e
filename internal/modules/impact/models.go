package impact

import "github.com/npcc/npcc/internal/modules/reference"

// WarningBankruptcy is the warning attached to results whose debt exceeds
// the bankruptcy threshold.
const WarningBankruptcy = "ECONOMIC COLLAPSE IMMINENT"

// PolicyImpact is the cost and temperature contribution of one active lever.
type PolicyImpact struct {
	Policy               string  `json:"policy"`
	Level                int     `json:"level"`
	Cost                 float64 `json:"cost"`
	CostFormatted        string  `json:"cost_formatted"`
	TemperatureImpact    float64 `json:"temperature_impact"`
	TemperatureFormatted string  `json:"temperature_formatted"`
	Description          string  `json:"description"`
}

// TrendPoint is one year of the mitigated temperature projection.
type TrendPoint struct {
	Year              int     `json:"year"`
	Anomaly           float64 `json:"anomaly"`
	AnomalyFormatted  string  `json:"anomaly_formatted"`
	BAUAnomaly        float64 `json:"bau_anomaly"`
	MitigationApplied float64 `json:"mitigation_applied"`
}

// TreemapEntry is a lever's share of positive fiscal cost.
type TreemapEntry struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Formatted  string  `json:"formatted"`
	Percentage float64 `json:"percentage"`
}

// EfficiencyEntry scores a lever's mitigation per $B.
type EfficiencyEntry struct {
	Policy         string  `json:"policy"`
	Efficiency     float64 `json:"efficiency"`
	Interpretation string  `json:"interpretation"`
}

// CalculationResult is the full projection for one set of policy levels.
type CalculationResult struct {
	TotalCost                      float64           `json:"total_cost"`
	TotalCostFormatted             string            `json:"total_cost_formatted"`
	TemperatureMitigation          float64           `json:"temperature_mitigation"`
	TemperatureMitigationFormatted string            `json:"temperature_mitigation_formatted"`
	NationalDebt                   float64           `json:"national_debt"`
	NationalDebtFormatted          string            `json:"national_debt_formatted"`
	BankruptcyFlag                 bool              `json:"bankruptcy_flag"`
	PolicyBreakdown                []PolicyImpact    `json:"policy_breakdown"`
	TrendLine                      []TrendPoint      `json:"trend_line"`
	FiscalTreemap                  []TreemapEntry    `json:"fiscal_treemap"`
	EfficiencyIndex                []EfficiencyEntry `json:"efficiency_index"`
	PoliciesApplied                reference.Levels  `json:"policies_applied"`
	WarningMessage                 *string           `json:"warning_message"`
}

// YearAnomaly is a formatted point of a fixed temperature series.
type YearAnomaly struct {
	Year             int     `json:"year"`
	Anomaly          float64 `json:"anomaly"`
	AnomalyFormatted string  `json:"anomaly_formatted"`
}

// BaselineState is the starting dashboard state.
type BaselineState struct {
	Year                  int              `json:"year"`
	TemperatureAnomaly    float64          `json:"temperature_anomaly"`
	TemperatureFormatted  string           `json:"temperature_formatted"`
	NationalDebt          float64          `json:"national_debt"`
	NationalDebtFormatted string           `json:"national_debt_formatted"`
	Policies              reference.Levels `json:"policies"`
	BAUProjection         []YearAnomaly    `json:"bau_projection"`
	HistoricalData        []YearAnomaly    `json:"historical_data"`
}
