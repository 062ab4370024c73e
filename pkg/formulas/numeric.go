// Package formulas provides the numeric helpers shared by the policy engine:
// slider sanitization, rounding, display formatting, efficiency scoring and
// small statistics over temperature series.
package formulas

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinLevel and MaxLevel bound every policy slider.
	MinLevel = 0
	MaxLevel = 100
)

// Efficiency tiers, highest first.
const (
	TierExcellent = "Excellent"
	TierGood      = "Good"
	TierModerate  = "Moderate"
	TierPoor      = "Poor"
)

// ClampLevel coerces a raw slider value into an integer level in [0,100].
//
// Numbers, numeric strings and booleans (true = 1) are accepted; anything
// else, including NaN and infinities, coerces to 0. Fractions truncate toward
// zero before clamping.
func ClampLevel(raw interface{}) int {
	f, ok := toFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return MinLevel
	}

	level := math.Trunc(f)
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return int(level)
}

// ParseNumber coerces a raw JSON value to a finite float using the same rules
// as ClampLevel, without truncating or clamping.
func ParseNumber(raw interface{}) (float64, bool) {
	f, ok := toFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Round rounds value to precision decimal digits, halves away from zero.
// Negative zero is normalized to zero so it never serializes as "-0".
func Round(value float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	r := math.Round(value*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// FormatCurrency renders a value in $ billions using T, B or M units.
// Negative values put the sign before the dollar: "-$40.00B".
func FormatCurrency(value float64) string {
	abs := math.Abs(value)

	var formatted string
	switch {
	case abs >= 1000:
		formatted = fmt.Sprintf("$%.2fT", abs/1000)
	case abs >= 1:
		formatted = fmt.Sprintf("$%.2fB", abs)
	default:
		formatted = fmt.Sprintf("$%.2fM", abs*1000)
	}

	if value < 0 {
		formatted = "-" + formatted
	}
	return formatted
}

// FormatTemperature renders an anomaly with an explicit "+" for non-negative
// values, e.g. "+1.20°C" or "-0.120°C".
func FormatTemperature(value float64, decimals int) string {
	if value == 0 {
		value = 0 // drop negative zero
	}
	sign := ""
	if value >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.*f°C", sign, decimals, value)
}

// FormatPercentage renders a 0-100 value as "45.5%".
func FormatPercentage(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}

// Efficiency scores temperature mitigation per $B spent, scaled by 1000.
// Free or revenue-generating policies (cost <= 0) score |tempImpact| x 1000.
func Efficiency(tempImpact, cost float64) float64 {
	if cost <= 0 {
		return math.Abs(tempImpact) * 1000
	}
	return Round(math.Abs(tempImpact)/cost*1000, 2)
}

// EfficiencyTier classifies an efficiency score.
func EfficiencyTier(score float64) string {
	switch {
	case score >= 1.0:
		return TierExcellent
	case score >= 0.5:
		return TierGood
	case score >= 0.2:
		return TierModerate
	default:
		return TierPoor
	}
}
