// Package impact implements the policy impact model: a deterministic linear
// mapping from lever levels to fiscal cost and temperature mitigation, with
// per-lever saturation, a ramped mitigation trend and derived breakdowns.
package impact

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/modules/reference"
	"github.com/npcc/npcc/pkg/formulas"
)

// Calculator computes policy impacts against a reference data set.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	ref *reference.Store
	log zerolog.Logger
}

// NewCalculator creates a new impact calculator
func NewCalculator(ref *reference.Store, log zerolog.Logger) *Calculator {
	return &Calculator{
		ref: ref,
		log: log.With().Str("service", "impact").Logger(),
	}
}

// Sanitize clamps raw slider inputs into levels. Unknown keys are ignored and
// absent levers default to 0.
func (c *Calculator) Sanitize(inputs map[string]interface{}) reference.Levels {
	var levels reference.Levels
	for _, id := range reference.AllLevers() {
		levels.Set(id, formulas.ClampLevel(inputs[string(id)]))
	}
	return levels
}

// Calculate projects the fiscal and climate impact of raw slider inputs.
func (c *Calculator) Calculate(inputs map[string]interface{}) *CalculationResult {
	return c.CalculateLevels(c.Sanitize(inputs))
}

// CalculateLevels projects the fiscal and climate impact of sanitized levels.
func (c *Calculator) CalculateLevels(levels reference.Levels) *CalculationResult {
	var (
		totalCost       float64
		totalMitigation float64
		breakdown       = []PolicyImpact{}
		treemap         = []TreemapEntry{}
		efficiency      = []EfficiencyEntry{}
	)

	for _, pl := range c.ref.Levers() {
		level := levels.Get(pl.ID)
		if level == 0 {
			continue
		}

		cost := pl.CostPerUnit * float64(level)
		tempImpact := math.Max(pl.TemperatureImpactPerUnit*float64(level), pl.MaxImpact)

		totalCost += cost
		totalMitigation += tempImpact

		breakdown = append(breakdown, PolicyImpact{
			Policy:               pl.Label,
			Level:                level,
			Cost:                 formulas.Round(cost, 2),
			CostFormatted:        formulas.FormatCurrency(cost),
			TemperatureImpact:    formulas.Round(tempImpact, 3),
			TemperatureFormatted: formulas.FormatTemperature(tempImpact, 3),
			Description:          pl.Description,
		})

		// Revenue-generating levers count toward totals but not the treemap
		if cost > 0 {
			treemap = append(treemap, TreemapEntry{
				Name:      pl.Label,
				Value:     formulas.Round(cost, 2),
				Formatted: formulas.FormatCurrency(cost),
			})
		}

		score := formulas.Efficiency(tempImpact, cost)
		efficiency = append(efficiency, EfficiencyEntry{
			Policy:         pl.Label,
			Efficiency:     score,
			Interpretation: formulas.EfficiencyTier(score),
		})
	}

	applyTreemapShares(treemap)

	nationalDebt := totalCost
	bankrupt := nationalDebt > c.ref.BankruptcyThreshold()

	result := &CalculationResult{
		TotalCost:                      formulas.Round(totalCost, 2),
		TotalCostFormatted:             formulas.FormatCurrency(totalCost),
		TemperatureMitigation:          formulas.Round(totalMitigation, 3),
		TemperatureMitigationFormatted: formulas.FormatTemperature(totalMitigation, 3),
		NationalDebt:                   formulas.Round(nationalDebt, 2),
		NationalDebtFormatted:          formulas.FormatCurrency(nationalDebt),
		BankruptcyFlag:                 bankrupt,
		PolicyBreakdown:                breakdown,
		TrendLine:                      c.trendLine(totalMitigation),
		FiscalTreemap:                  treemap,
		EfficiencyIndex:                efficiency,
		PoliciesApplied:                levels,
	}
	if bankrupt {
		warning := WarningBankruptcy
		result.WarningMessage = &warning
	}

	c.log.Debug().
		Float64("total_cost", result.TotalCost).
		Float64("mitigation", result.TemperatureMitigation).
		Bool("bankrupt", bankrupt).
		Int("active_levers", len(breakdown)).
		Msg("Calculated policy impact")

	return result
}

// applyTreemapShares sets each entry's share of the summed rounded values.
func applyTreemapShares(entries []TreemapEntry) {
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}

	total := formulas.Sum(values)
	if total <= 0 {
		return
	}
	for i := range entries {
		entries[i].Percentage = formulas.Round(entries[i].Value/total*100, 1)
	}
}

// trendLine applies the total mitigation to the BAU projection, ramping in
// linearly from the baseline year to full strength after the ramp period.
func (c *Calculator) trendLine(totalMitigation float64) []TrendPoint {
	startYear := c.ref.Baseline().Year
	ramp := float64(c.ref.TrendRampYears())

	bau := c.ref.BAU()
	trend := make([]TrendPoint, 0, len(bau))
	for _, point := range bau {
		factor := math.Min(1.0, float64(point.Year-startYear)/ramp)
		applied := totalMitigation * factor
		adjusted := point.Anomaly + applied

		trend = append(trend, TrendPoint{
			Year:              point.Year,
			Anomaly:           formulas.Round(adjusted, 3),
			AnomalyFormatted:  formulas.FormatTemperature(adjusted, 2),
			BAUAnomaly:        formulas.Round(point.Anomaly, 3),
			MitigationApplied: formulas.Round(applied, 3),
		})
	}
	return trend
}

// BaselineState returns the starting dashboard state: the baseline year,
// the BAU projection and the historical series before the baseline year.
func (c *Calculator) BaselineState() *BaselineState {
	baseline := c.ref.Baseline()

	bau := c.ref.BAU()
	projection := make([]YearAnomaly, 0, len(bau))
	for _, p := range bau {
		projection = append(projection, formatPoint(p))
	}

	history := []YearAnomaly{}
	for _, p := range c.ref.Timeline() {
		if p.Year < baseline.Year {
			history = append(history, formatPoint(p))
		}
	}

	return &BaselineState{
		Year:                  baseline.Year,
		TemperatureAnomaly:    baseline.TemperatureAnomaly,
		TemperatureFormatted:  formulas.FormatTemperature(baseline.TemperatureAnomaly, 2),
		NationalDebt:          baseline.NationalDebt,
		NationalDebtFormatted: formulas.FormatCurrency(baseline.NationalDebt),
		Policies:              c.ref.BaselineLevels(),
		BAUProjection:         projection,
		HistoricalData:        history,
	}
}

func formatPoint(p reference.YearPoint) YearAnomaly {
	return YearAnomaly{
		Year:             p.Year,
		Anomaly:          p.Anomaly,
		AnomalyFormatted: formulas.FormatTemperature(p.Anomaly, 2),
	}
}
