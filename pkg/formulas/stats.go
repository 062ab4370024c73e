package formulas

import (
	"github.com/markcheno/go-talib"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum adds a slice of values
func Sum(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return floats.Sum(data)
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// LinearTrend fits y = intercept + slope*x by least squares.
// Returns zeros when fewer than two points are supplied or lengths differ.
func LinearTrend(x, y []float64) (intercept, slope float64) {
	if len(x) < 2 || len(x) != len(y) {
		return 0, 0
	}
	return stat.LinearRegression(x, y, nil, false)
}

// SimpleMovingAverage returns the trailing SMA of data over period.
// The result is aligned with data[period-1:], so it has len(data)-period+1
// entries; nil if there is not enough data.
func SimpleMovingAverage(data []float64, period int) []float64 {
	if period <= 0 || len(data) < period {
		return nil
	}
	if period == 1 {
		out := make([]float64, len(data))
		copy(out, data)
		return out
	}

	sma := talib.Sma(data, period)
	return sma[period-1:]
}
