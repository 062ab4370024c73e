// Package narrative generates press-style headlines describing a policy mix.
package narrative

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/modules/impact"
	"github.com/npcc/npcc/internal/modules/reference"
	"github.com/npcc/npcc/pkg/formulas"
)

// Service writes headlines through a TextGenerator.
type Service struct {
	ref        *reference.Store
	calculator *impact.Calculator
	generator  TextGenerator
	log        zerolog.Logger
}

// NewService creates a new narrative service. generator may be nil, in which
// case Headline returns ErrGeneratorUnavailable.
func NewService(ref *reference.Store, calculator *impact.Calculator, generator TextGenerator, log zerolog.Logger) *Service {
	return &Service{
		ref:        ref,
		calculator: calculator,
		generator:  generator,
		log:        log.With().Str("service", "narrative").Logger(),
	}
}

// Available reports whether a generator is configured.
func (s *Service) Available() bool {
	return s.generator != nil
}

// ParseRequest builds a request from a raw JSON object.
func (s *Service) ParseRequest(inputs map[string]interface{}) HeadlineRequest {
	req := HeadlineRequest{Levels: s.calculator.Sanitize(inputs)}
	if v, ok := formulas.ParseNumber(inputs["temperature_change"]); ok {
		req.TemperatureChange = &v
	}
	if v, ok := formulas.ParseNumber(inputs["fiscal_cost"]); ok {
		req.FiscalCost = &v
	}
	return req
}

// Headline generates a headline for the request.
func (s *Service) Headline(ctx context.Context, req HeadlineRequest) (*HeadlineResult, error) {
	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}

	temperature, cost := s.projection(req)
	prompt := BuildPrompt(s.ref.Levers(), req.Levels, temperature, cost)

	requestID := uuid.New().String()
	s.log.Debug().Str("request_id", requestID).Msg("Generating headline")

	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate headline: %w", err)
	}

	headline := CleanHeadline(text)
	if headline == "" {
		return nil, ErrEmptyHeadline
	}

	s.log.Info().
		Str("request_id", requestID).
		Str("headline", headline).
		Msg("Generated headline")

	return &HeadlineResult{
		RequestID: requestID,
		Headline:  headline,
		PolicySummary: PolicySummary{
			Policies:          req.Levels,
			TemperatureImpact: temperature,
			FiscalCost:        cost,
		},
	}, nil
}

// projection returns the supplied projection context, filling gaps from the
// calculator.
func (s *Service) projection(req HeadlineRequest) (temperature, cost float64) {
	if req.TemperatureChange != nil && req.FiscalCost != nil {
		return *req.TemperatureChange, *req.FiscalCost
	}

	result := s.calculator.CalculateLevels(req.Levels)
	temperature, cost = result.TemperatureMitigation, result.TotalCost
	if req.TemperatureChange != nil {
		temperature = *req.TemperatureChange
	}
	if req.FiscalCost != nil {
		cost = *req.FiscalCost
	}
	return temperature, cost
}
