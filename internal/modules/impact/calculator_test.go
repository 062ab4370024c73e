package impact

import (
	"encoding/json"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npcc/npcc/internal/modules/reference"
	"github.com/npcc/npcc/pkg/formulas"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	store, err := reference.Load()
	require.NoError(t, err)
	return NewCalculator(store, zerolog.New(nil).Level(zerolog.Disabled))
}

func TestCalculate_AllZero(t *testing.T) {
	calc := newTestCalculator(t)

	result := calc.Calculate(map[string]interface{}{})

	assert.Equal(t, 0.0, result.TotalCost)
	assert.Equal(t, 0.0, result.TemperatureMitigation)
	assert.Equal(t, "+0.000°C", result.TemperatureMitigationFormatted)
	assert.False(t, result.BankruptcyFlag)
	assert.Nil(t, result.WarningMessage)
	assert.Empty(t, result.PolicyBreakdown)
	assert.Empty(t, result.FiscalTreemap)
	assert.Empty(t, result.EfficiencyIndex)
	assert.Equal(t, reference.Levels{}, result.PoliciesApplied)

	bau := calc.ref.BAU()
	require.Len(t, result.TrendLine, len(bau))
	for i, point := range result.TrendLine {
		assert.Equal(t, bau[i].Year, point.Year)
		assert.Equal(t, bau[i].Anomaly, point.Anomaly)
		assert.Equal(t, bau[i].Anomaly, point.BAUAnomaly)
		assert.Equal(t, 0.0, point.MitigationApplied)
	}
}

func TestCalculate_EmptyListsSerializeAsArrays(t *testing.T) {
	calc := newTestCalculator(t)

	data, err := json.Marshal(calc.Calculate(nil))
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, `{"total_cost":0,"total_cost_formatted":"$0.00M","temperature_mitigation":0,`), s)
	assert.Contains(t, s, `"policy_breakdown":[]`)
	assert.Contains(t, s, `"fiscal_treemap":[]`)
	assert.Contains(t, s, `"efficiency_index":[]`)
	assert.Contains(t, s, `"warning_message":null`)
	assert.Contains(t, s, `"policies_applied":{"ev_adoption":0,`)
}

func TestCalculate_RenewableEnergyAtFull(t *testing.T) {
	calc := newTestCalculator(t)

	result := calc.Calculate(map[string]interface{}{"renewable_energy": 100})

	assert.Equal(t, 250.0, result.TotalCost)
	assert.Equal(t, "$250.00B", result.TotalCostFormatted)
	assert.Equal(t, -0.12, result.TemperatureMitigation)
	assert.Equal(t, "-0.120°C", result.TemperatureMitigationFormatted)
	assert.Equal(t, 250.0, result.NationalDebt)
	assert.Equal(t, "$250.00B", result.NationalDebtFormatted)

	require.Len(t, result.PolicyBreakdown, 1)
	entry := result.PolicyBreakdown[0]
	assert.Equal(t, "Renewable Energy Expansion", entry.Policy)
	assert.Equal(t, 100, entry.Level)
	assert.Equal(t, 250.0, entry.Cost)
	assert.Equal(t, "$250.00B", entry.CostFormatted)
	assert.Equal(t, -0.12, entry.TemperatureImpact)
	assert.Equal(t, "-0.120°C", entry.TemperatureFormatted)
	assert.Equal(t, "Solar, wind, hydro infrastructure and grid upgrades", entry.Description)

	require.Len(t, result.FiscalTreemap, 1)
	assert.Equal(t, TreemapEntry{Name: "Renewable Energy Expansion", Value: 250, Formatted: "$250.00B", Percentage: 100}, result.FiscalTreemap[0])

	require.Len(t, result.EfficiencyIndex, 1)
	assert.Equal(t, 0.48, result.EfficiencyIndex[0].Efficiency)
	assert.Equal(t, formulas.TierModerate, result.EfficiencyIndex[0].Interpretation)

	byYear := make(map[int]TrendPoint)
	for _, p := range result.TrendLine {
		byYear[p.Year] = p
	}
	assert.Equal(t, 0.0, byYear[2026].MitigationApplied)
	assert.Equal(t, -0.053, byYear[2030].MitigationApplied)
	assert.Equal(t, -0.12, byYear[2035].MitigationApplied)
	assert.Equal(t, 1.57, byYear[2035].Anomaly)
	assert.Equal(t, "+1.57°C", byYear[2035].AnomalyFormatted)
	assert.Equal(t, 1.69, byYear[2035].BAUAnomaly)
	assert.Equal(t, -0.12, byYear[2050].MitigationApplied)
	assert.Equal(t, 2.4, byYear[2050].Anomaly)
}

func TestCalculate_CarbonTaxIsRevenue(t *testing.T) {
	calc := newTestCalculator(t)

	result := calc.Calculate(map[string]interface{}{"carbon_tax": 50})

	assert.Equal(t, -40.0, result.TotalCost)
	assert.Equal(t, "-$40.00B", result.TotalCostFormatted)
	assert.Equal(t, -0.075, result.TemperatureMitigation)
	assert.False(t, result.BankruptcyFlag)

	require.Len(t, result.PolicyBreakdown, 1)
	assert.Equal(t, -40.0, result.PolicyBreakdown[0].Cost)
	assert.Equal(t, "-$40.00B", result.PolicyBreakdown[0].CostFormatted)

	assert.Empty(t, result.FiscalTreemap, "revenue levers never enter the treemap")

	require.Len(t, result.EfficiencyIndex, 1)
	assert.InDelta(t, 75.0, result.EfficiencyIndex[0].Efficiency, 1e-9)
	assert.Equal(t, formulas.TierExcellent, result.EfficiencyIndex[0].Interpretation)
}

func TestCalculate_MixedPolicies(t *testing.T) {
	calc := newTestCalculator(t)

	result := calc.Calculate(map[string]interface{}{
		"ev_adoption":      60,
		"renewable_energy": 40,
		"carbon_tax":       50,
	})

	assert.Equal(t, 132.0, result.TotalCost)
	assert.Equal(t, "$132.00B", result.TotalCostFormatted)
	assert.Equal(t, -0.171, result.TemperatureMitigation)

	// Breakdown follows canonical lever order
	require.Len(t, result.PolicyBreakdown, 3)
	assert.Equal(t, "EV Adoption Incentives", result.PolicyBreakdown[0].Policy)
	assert.Equal(t, "Renewable Energy Expansion", result.PolicyBreakdown[1].Policy)
	assert.Equal(t, "Carbon Tax Implementation", result.PolicyBreakdown[2].Policy)

	require.Len(t, result.FiscalTreemap, 2)
	assert.Equal(t, 41.9, result.FiscalTreemap[0].Percentage)
	assert.Equal(t, 58.1, result.FiscalTreemap[1].Percentage)

	assert.Len(t, result.EfficiencyIndex, 3)
}

func TestCalculate_ZeroLevelsAreOmitted(t *testing.T) {
	calc := newTestCalculator(t)

	result := calc.Calculate(map[string]interface{}{
		"ev_adoption":   0,
		"reforestation": 10,
	})

	require.Len(t, result.PolicyBreakdown, 1)
	assert.Equal(t, "Reforestation Programs", result.PolicyBreakdown[0].Policy)
	assert.Len(t, result.FiscalTreemap, 1)
	assert.Len(t, result.EfficiencyIndex, 1)
}

func TestCalculate_SanitizesInputs(t *testing.T) {
	calc := newTestCalculator(t)

	result := calc.Calculate(map[string]interface{}{
		"ev_adoption":         "75",
		"renewable_energy":    150,
		"carbon_tax":          -5,
		"reforestation":       "abc",
		"public_transport":    33.9,
		"industrial_controls": nil,
		"nuclear":             100,
	})

	applied := result.PoliciesApplied
	assert.Equal(t, 75, applied.Get(reference.EVAdoption))
	assert.Equal(t, 100, applied.Get(reference.RenewableEnergy))
	assert.Equal(t, 0, applied.Get(reference.CarbonTax))
	assert.Equal(t, 0, applied.Get(reference.Reforestation))
	assert.Equal(t, 33, applied.Get(reference.PublicTransport))
	assert.Equal(t, 0, applied.Get(reference.IndustrialControls))
	assert.Equal(t, 0, applied.Get(reference.GreenBuildings))

	for _, id := range reference.AllLevers() {
		level := applied.Get(id)
		assert.GreaterOrEqual(t, level, 0)
		assert.LessOrEqual(t, level, 100)
	}
	assert.Len(t, result.PolicyBreakdown, 3)
}

func TestCalculate_SaturationAtFullLevel(t *testing.T) {
	calc := newTestCalculator(t)

	for _, pl := range calc.ref.Levers() {
		t.Run(string(pl.ID), func(t *testing.T) {
			result := calc.Calculate(map[string]interface{}{string(pl.ID): 100})

			require.Len(t, result.PolicyBreakdown, 1)
			impact := result.PolicyBreakdown[0].TemperatureImpact
			assert.LessOrEqual(t, math.Abs(impact), math.Abs(pl.MaxImpact)+1e-9)
			assert.LessOrEqual(t, math.Abs(result.TemperatureMitigation), math.Abs(pl.MaxImpact)+1e-9)
		})
	}
}

func TestCalculate_CapEngagesWhenLinearExceedsIt(t *testing.T) {
	yaml := strings.Replace(string(reference.Tables()), "temperature_impact_per_unit: -0.0012", "temperature_impact_per_unit: -0.002", 1)
	calc := calculatorFromYAML(t, yaml)

	result := calc.Calculate(map[string]interface{}{"renewable_energy": 100})
	assert.Equal(t, -0.12, result.TemperatureMitigation, "linear -0.2 must saturate at the -0.12 cap")

	result = calc.Calculate(map[string]interface{}{"renewable_energy": 50})
	assert.Equal(t, -0.1, result.TemperatureMitigation, "below the cap the linear model applies")
}

func TestCalculate_TreemapPercentagesSumTo100(t *testing.T) {
	calc := newTestCalculator(t)

	inputs := map[string]interface{}{}
	for i, id := range reference.AllLevers() {
		inputs[string(id)] = 17 + i*11
	}
	result := calc.Calculate(inputs)

	require.NotEmpty(t, result.FiscalTreemap)
	var sum float64
	for _, entry := range result.FiscalTreemap {
		assert.Greater(t, entry.Value, 0.0)
		sum += entry.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.2)
	assert.Len(t, result.FiscalTreemap, reference.LeverCount-1, "carbon tax is excluded")
}

func TestCalculate_Idempotent(t *testing.T) {
	calc := newTestCalculator(t)
	inputs := map[string]interface{}{
		"ev_adoption":      42,
		"carbon_tax":       "90",
		"green_buildings":  12.5,
		"waste_management": 100,
	}

	first, err := json.Marshal(calc.Calculate(inputs))
	require.NoError(t, err)
	second, err := json.Marshal(calc.Calculate(inputs))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_ConcurrentCallers(t *testing.T) {
	calc := newTestCalculator(t)
	inputs := map[string]interface{}{"renewable_energy": 80, "public_transport": 30}

	expected, err := json.Marshal(calc.Calculate(inputs))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]byte, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = json.Marshal(calc.Calculate(inputs))
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}

func TestCalculate_BankruptcyThreshold(t *testing.T) {
	atThreshold := calculatorFromYAML(t, strings.Replace(string(reference.Tables()), "cost_per_unit: 2.5", "cost_per_unit: 10", 1))
	result := atThreshold.Calculate(map[string]interface{}{"renewable_energy": 100})
	assert.Equal(t, 1000.0, result.NationalDebt)
	assert.Equal(t, "$1.00T", result.NationalDebtFormatted)
	assert.False(t, result.BankruptcyFlag)
	assert.Nil(t, result.WarningMessage)

	above := calculatorFromYAML(t, strings.Replace(string(reference.Tables()), "cost_per_unit: 2.5", "cost_per_unit: 10.0001", 1))
	result = above.Calculate(map[string]interface{}{"renewable_energy": 100})
	assert.Equal(t, 1000.01, result.NationalDebt)
	assert.True(t, result.BankruptcyFlag)
	require.NotNil(t, result.WarningMessage)
	assert.Equal(t, WarningBankruptcy, *result.WarningMessage)
}

func TestBaselineState(t *testing.T) {
	calc := newTestCalculator(t)

	state := calc.BaselineState()

	assert.Equal(t, 2026, state.Year)
	assert.Equal(t, 1.2, state.TemperatureAnomaly)
	assert.Equal(t, "+1.20°C", state.TemperatureFormatted)
	assert.Equal(t, 0.0, state.NationalDebt)
	assert.Equal(t, "$0.00M", state.NationalDebtFormatted)
	assert.Equal(t, reference.Levels{}, state.Policies)

	require.Len(t, state.BAUProjection, 25)
	assert.Equal(t, YearAnomaly{Year: 2026, Anomaly: 1.2, AnomalyFormatted: "+1.20°C"}, state.BAUProjection[0])
	assert.Equal(t, YearAnomaly{Year: 2050, Anomaly: 2.52, AnomalyFormatted: "+2.52°C"}, state.BAUProjection[24])

	require.Len(t, state.HistoricalData, 26)
	for _, p := range state.HistoricalData {
		assert.Less(t, p.Year, 2026)
	}
	assert.Equal(t, YearAnomaly{Year: 2000, Anomaly: 0.62, AnomalyFormatted: "+0.62°C"}, state.HistoricalData[0])

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"year":2026,"temperature_anomaly":1.2,"temperature_formatted":"+1.20°C","national_debt":0,`))
}

func calculatorFromYAML(t *testing.T, doc string) *Calculator {
	t.Helper()
	store, err := reference.Parse([]byte(doc))
	require.NoError(t, err)
	return NewCalculator(store, zerolog.New(nil).Level(zerolog.Disabled))
}
