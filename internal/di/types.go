package di

import (
	"github.com/npcc/npcc/internal/clients/gemini"
	"github.com/npcc/npcc/internal/modules/climate"
	"github.com/npcc/npcc/internal/modules/imagery"
	"github.com/npcc/npcc/internal/modules/impact"
	"github.com/npcc/npcc/internal/modules/narrative"
	"github.com/npcc/npcc/internal/modules/reference"
)

// Container holds every wired dependency.
type Container struct {
	// Reference tables, loaded once and shared read-only
	Reference *reference.Store

	// Clients - External API integrations
	Gemini *gemini.Client // nil when no API key is configured

	// Services - Business logic layer
	Calculator *impact.Calculator
	Climate    *climate.Service
	Narrative  *narrative.Service
	Imagery    *imagery.Service
}
