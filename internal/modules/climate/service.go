// Package climate derives climate indicators from the reference series:
// the observed warming rate, a smoothed history and when projections cross
// the sustainability threshold.
package climate

import (
	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/modules/impact"
	"github.com/npcc/npcc/internal/modules/reference"
	"github.com/npcc/npcc/pkg/formulas"
)

// Service computes climate summaries and policy outlooks.
type Service struct {
	ref *reference.Store
	log zerolog.Logger
}

// NewService creates a new climate service
func NewService(ref *reference.Store, log zerolog.Logger) *Service {
	return &Service{
		ref: ref,
		log: log.With().Str("service", "climate").Logger(),
	}
}

// Summary reports the historical warming rate, the smoothed record and the
// first business-as-usual year at or above the sustainability threshold.
func (s *Service) Summary() *Summary {
	history := s.ref.Historical()

	years := make([]float64, len(history))
	anomalies := make([]float64, len(history))
	for i, p := range history {
		years[i] = float64(p.Year)
		anomalies[i] = p.Anomaly
	}

	_, slope := formulas.LinearTrend(years, anomalies)
	perDecade := slope * 10

	smoothed := []SmoothedPoint{}
	for i, avg := range formulas.SimpleMovingAverage(anomalies, SmoothingWindow) {
		smoothed = append(smoothed, SmoothedPoint{
			Year:    history[i+SmoothingWindow-1].Year,
			Anomaly: formulas.Round(avg, 3),
		})
	}

	summary := &Summary{
		WarmingRatePerDecade:    formulas.Round(perDecade, 3),
		WarmingRateFormatted:    formulas.FormatTemperature(perDecade, 2) + " per decade",
		SustainabilityThreshold: s.ref.SustainabilityThreshold(),
		BAUCrossingYear:         firstCrossing(s.ref.BAU(), s.ref.SustainabilityThreshold()),
		SmoothingWindow:         SmoothingWindow,
		SmoothedHistory:         smoothed,
	}
	if n := len(history); n > 0 {
		latest := history[n-1]
		summary.LatestYear = latest.Year
		summary.LatestAnomaly = latest.Anomaly
		summary.LatestAnomalyFormatted = formulas.FormatTemperature(latest.Anomaly, 2)
	}

	return summary
}

// Outlook compares the mitigated trend of a calculation with the
// business-as-usual projection.
func (s *Service) Outlook(result *impact.CalculationResult) *Outlook {
	threshold := s.ref.SustainabilityThreshold()

	mitigated := make([]reference.YearPoint, 0, len(result.TrendLine))
	bau := make([]reference.YearPoint, 0, len(result.TrendLine))
	for _, p := range result.TrendLine {
		mitigated = append(mitigated, reference.YearPoint{Year: p.Year, Anomaly: p.Anomaly})
		bau = append(bau, reference.YearPoint{Year: p.Year, Anomaly: p.BAUAnomaly})
	}

	outlook := &Outlook{
		SustainabilityThreshold: threshold,
		CrossingYear:            firstCrossing(mitigated, threshold),
		BAUCrossingYear:         firstCrossing(bau, threshold),
	}
	outlook.AvoidsThreshold = outlook.CrossingYear == nil

	if n := len(result.TrendLine); n > 0 {
		last := result.TrendLine[n-1]
		outlook.FinalYear = last.Year
		outlook.FinalAnomaly = last.Anomaly
		outlook.FinalAnomalyFormatted = last.AnomalyFormatted
		outlook.FinalBAUAnomaly = last.BAUAnomaly
		outlook.FinalBAUFormatted = formulas.FormatTemperature(last.BAUAnomaly, 2)

		if outlook.BAUCrossingYear != nil {
			crossing := last.Year + 1
			if outlook.CrossingYear != nil {
				crossing = *outlook.CrossingYear
			}
			outlook.YearsGained = crossing - *outlook.BAUCrossingYear
		}
	}

	s.log.Debug().
		Bool("avoids_threshold", outlook.AvoidsThreshold).
		Int("years_gained", outlook.YearsGained).
		Msg("Computed climate outlook")

	return outlook
}

// firstCrossing returns the first year whose anomaly is at or above threshold.
func firstCrossing(series []reference.YearPoint, threshold float64) *int {
	for _, p := range series {
		if p.Anomaly >= threshold {
			year := p.Year
			return &year
		}
	}
	return nil
}
