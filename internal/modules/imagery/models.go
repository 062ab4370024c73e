package imagery

import (
	"context"
	"errors"

	"github.com/npcc/npcc/internal/modules/reference"
)

var (
	// ErrRendererUnavailable is returned when image rendering is disabled.
	ErrRendererUnavailable = errors.New("image renderer not configured")
	// ErrInvalidBaselineImage is returned for a supplied baseline that is not
	// a base64 encoded image.
	ErrInvalidBaselineImage = errors.New("baseline image must be a base64 encoded image")
)

// ImageRenderer renders a text prompt into an encoded image.
type ImageRenderer interface {
	RenderImage(ctx context.Context, prompt string) ([]byte, string, error)
}

// Style selects the visual treatment of rendered images.
type Style string

// Supported styles. Anything other than photorealistic renders as artistic.
const (
	StylePhotorealistic Style = "photorealistic"
	StyleArtistic       Style = "artistic"
)

// DefaultCityDescription is used when a comparison names no city.
const DefaultCityDescription = "modern urban cityscape"

// CompareRequest asks for a before/after comparison of a policy mix.
type CompareRequest struct {
	Levels          reference.Levels
	CityDescription string
	Style           Style
	// BaselineImage is an optional base64 image used instead of rendering one.
	BaselineImage string
}

// Metadata records how a comparison was produced.
type Metadata struct {
	RequestID              string `json:"request_id"`
	Style                  Style  `json:"style"`
	BaselinePrompt         string `json:"baseline_prompt"`
	ImpactPrompt           string `json:"impact_prompt"`
	BaselineNegativePrompt string `json:"baseline_negative_prompt,omitempty"`
	ImpactNegativePrompt   string `json:"impact_negative_prompt"`
	BaselineMIMEType       string `json:"baseline_mime_type"`
	ImpactMIMEType         string `json:"impact_mime_type"`
	TemperatureMitigation  string `json:"temperature_mitigation"`
	TotalCost              string `json:"total_cost"`
}

// Comparison is a pair of base64 images with a description of the change.
type Comparison struct {
	BaselineImage string   `json:"baseline_image"`
	ImpactImage   string   `json:"impact_image"`
	Description   string   `json:"description"`
	Metadata      Metadata `json:"metadata"`
}
