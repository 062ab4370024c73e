package narrative

import (
	"context"
	"errors"

	"github.com/npcc/npcc/internal/modules/reference"
)

var (
	// ErrGeneratorUnavailable is returned when no text generator is configured.
	ErrGeneratorUnavailable = errors.New("headline generator not configured")
	// ErrEmptyHeadline is returned when the generated text is empty after cleanup.
	ErrEmptyHeadline = errors.New("generated headline is empty")
)

// TextGenerator produces text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// HeadlineRequest holds sanitized levels and the optional projection context.
// Nil context values are derived from the impact calculator.
type HeadlineRequest struct {
	Levels            reference.Levels
	TemperatureChange *float64
	FiscalCost        *float64
}

// PolicySummary echoes the inputs the headline was written for.
type PolicySummary struct {
	Policies          reference.Levels `json:"policies"`
	TemperatureImpact float64          `json:"temperature_impact"`
	FiscalCost        float64          `json:"fiscal_cost"`
}

// HeadlineResult is a generated press headline.
type HeadlineResult struct {
	RequestID     string        `json:"request_id"`
	Headline      string        `json:"headline"`
	PolicySummary PolicySummary `json:"policy_summary"`
}
