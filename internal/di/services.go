package di

import (
	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/modules/climate"
	"github.com/npcc/npcc/internal/modules/imagery"
	"github.com/npcc/npcc/internal/modules/impact"
	"github.com/npcc/npcc/internal/modules/narrative"
	"github.com/npcc/npcc/internal/modules/reference"
)

// NewContainer builds the service layer over a reference store.
// generator and renderer may be nil to disable headlines and imagery.
func NewContainer(ref *reference.Store, generator narrative.TextGenerator, renderer imagery.ImageRenderer, log zerolog.Logger) *Container {
	calculator := impact.NewCalculator(ref, log)

	return &Container{
		Reference:  ref,
		Calculator: calculator,
		Climate:    climate.NewService(ref, log),
		Narrative:  narrative.NewService(ref, calculator, generator, log),
		Imagery:    imagery.NewService(calculator, renderer, log),
	}
}
