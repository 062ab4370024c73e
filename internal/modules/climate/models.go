package climate

// SmoothingWindow is the number of years averaged in the smoothed history.
const SmoothingWindow = 5

// SmoothedPoint is a trailing moving average ending at Year.
type SmoothedPoint struct {
	Year    int     `json:"year"`
	Anomaly float64 `json:"anomaly"`
}

// Summary describes the observed warming record against the sustainability
// threshold.
type Summary struct {
	WarmingRatePerDecade    float64         `json:"warming_rate_per_decade"`
	WarmingRateFormatted    string          `json:"warming_rate_formatted"`
	LatestYear              int             `json:"latest_year"`
	LatestAnomaly           float64         `json:"latest_anomaly"`
	LatestAnomalyFormatted  string          `json:"latest_anomaly_formatted"`
	SustainabilityThreshold float64         `json:"sustainability_threshold"`
	BAUCrossingYear         *int            `json:"bau_crossing_year"`
	SmoothingWindow         int             `json:"smoothing_window"`
	SmoothedHistory         []SmoothedPoint `json:"smoothed_history"`
}

// Outlook compares a mitigated trend with business-as-usual.
type Outlook struct {
	SustainabilityThreshold float64 `json:"sustainability_threshold"`
	CrossingYear            *int    `json:"crossing_year"`
	BAUCrossingYear         *int    `json:"bau_crossing_year"`
	// YearsGained is a lower bound when the mitigated trend never crosses.
	YearsGained           int     `json:"years_gained"`
	AvoidsThreshold       bool    `json:"avoids_threshold"`
	FinalYear             int     `json:"final_year"`
	FinalAnomaly          float64 `json:"final_anomaly"`
	FinalAnomalyFormatted string  `json:"final_anomaly_formatted"`
	FinalBAUAnomaly       float64 `json:"final_bau_anomaly"`
	FinalBAUFormatted     string  `json:"final_bau_formatted"`
}
