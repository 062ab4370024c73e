// Package imagery renders before/after city images for a policy mix.
package imagery

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/npcc/npcc/internal/modules/impact"
	"github.com/npcc/npcc/internal/modules/reference"
)

// Service produces image comparisons through an ImageRenderer.
type Service struct {
	calculator *impact.Calculator
	renderer   ImageRenderer
	log        zerolog.Logger
}

// NewService creates a new imagery service. renderer may be nil, in which
// case comparisons return ErrRendererUnavailable.
func NewService(calculator *impact.Calculator, renderer ImageRenderer, log zerolog.Logger) *Service {
	return &Service{
		calculator: calculator,
		renderer:   renderer,
		log:        log.With().Str("service", "imagery").Logger(),
	}
}

// Available reports whether a renderer is configured.
func (s *Service) Available() bool {
	return s.renderer != nil
}

// ParseCompareRequest builds a comparison request from a raw JSON object of
// the form {policies, city_description, style, baseline_image}.
func (s *Service) ParseCompareRequest(inputs map[string]interface{}) CompareRequest {
	policies, _ := inputs["policies"].(map[string]interface{})
	city, _ := inputs["city_description"].(string)
	style, _ := inputs["style"].(string)
	baseline, _ := inputs["baseline_image"].(string)

	return CompareRequest{
		Levels:          s.calculator.Sanitize(policies),
		CityDescription: city,
		Style:           Style(style),
		BaselineImage:   baseline,
	}
}

// Compare renders the baseline (unless supplied) and impact images for the
// request. Both renders run concurrently.
func (s *Service) Compare(ctx context.Context, req CompareRequest) (*Comparison, error) {
	if s.renderer == nil {
		return nil, ErrRendererUnavailable
	}

	city := strings.TrimSpace(req.CityDescription)
	if city == "" {
		city = DefaultCityDescription
	}
	style := req.Style
	if style == "" {
		style = StylePhotorealistic
	}

	result := s.calculator.CalculateLevels(req.Levels)

	comparison := &Comparison{
		Description: Describe(req.Levels, result),
		Metadata: Metadata{
			RequestID:             uuid.New().String(),
			Style:                 style,
			ImpactPrompt:          ImpactPrompt(city, req.Levels, result.TemperatureMitigation, style),
			ImpactNegativePrompt:  NegativePrompt(false),
			TemperatureMitigation: result.TemperatureMitigationFormatted,
			TotalCost:             result.TotalCostFormatted,
		},
	}
	meta := &comparison.Metadata

	var baseline []byte
	if req.BaselineImage != "" {
		data, mimeType, err := decodeImage(req.BaselineImage)
		if err != nil {
			return nil, err
		}
		baseline = data
		meta.BaselinePrompt = "User provided"
		meta.BaselineMIMEType = mimeType
	} else {
		meta.BaselinePrompt = BaselinePrompt(city, style)
		meta.BaselineNegativePrompt = NegativePrompt(true)
	}

	log := s.log.With().Str("request_id", meta.RequestID).Logger()
	log.Info().
		Str("style", string(style)).
		Bool("user_baseline", baseline != nil).
		Msg("Rendering comparison")

	var impactImage []byte
	g, gctx := errgroup.WithContext(ctx)
	if baseline == nil {
		g.Go(func() error {
			data, mimeType, err := s.renderer.RenderImage(gctx, renderPrompt(meta.BaselinePrompt, meta.BaselineNegativePrompt))
			if err != nil {
				return fmt.Errorf("render baseline image: %w", err)
			}
			baseline, meta.BaselineMIMEType = data, mimeType
			return nil
		})
	}
	g.Go(func() error {
		data, mimeType, err := s.renderer.RenderImage(gctx, renderPrompt(meta.ImpactPrompt, meta.ImpactNegativePrompt))
		if err != nil {
			return fmt.Errorf("render impact image: %w", err)
		}
		impactImage, meta.ImpactMIMEType = data, mimeType
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparison.BaselineImage = base64.StdEncoding.EncodeToString(baseline)
	comparison.ImpactImage = base64.StdEncoding.EncodeToString(impactImage)

	log.Debug().
		Int("baseline_bytes", len(baseline)).
		Int("impact_bytes", len(impactImage)).
		Msg("Rendered comparison")

	return comparison, nil
}

// Quick renders a photorealistic comparison for a predefined scenario.
func (s *Service) Quick(ctx context.Context, levels reference.Levels, scenario Scenario) (*Comparison, error) {
	return s.Compare(ctx, CompareRequest{
		Levels:          levels,
		CityDescription: ScenarioDescription(scenario),
		Style:           StylePhotorealistic,
	})
}

// decodeImage decodes a base64 image, optionally given as a data URL.
func decodeImage(encoded string) ([]byte, string, error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, "data:") {
		if i := strings.Index(encoded, ","); i >= 0 {
			encoded = encoded[i+1:]
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(data) == 0 {
		return nil, "", ErrInvalidBaselineImage
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, "", ErrInvalidBaselineImage
	}
	return data, mimeType, nil
}
