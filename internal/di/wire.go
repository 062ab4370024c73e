// Package di provides dependency injection wiring and initialization.
package di

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/clients/gemini"
	"github.com/npcc/npcc/internal/config"
	"github.com/npcc/npcc/internal/modules/imagery"
	"github.com/npcc/npcc/internal/modules/narrative"
	"github.com/npcc/npcc/internal/modules/reference"
)

// Wire initializes all dependencies and returns a fully configured container
// Order of operations:
// 1. Load reference tables
// 2. Initialize clients
// 3. Initialize services
func Wire(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Container, error) {
	// Step 1: Load reference tables
	ref, err := reference.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference tables: %w", err)
	}

	// Step 2: Initialize clients
	var (
		client    *gemini.Client
		generator narrative.TextGenerator
		renderer  imagery.ImageRenderer
	)
	if cfg.GenerationConfigured() {
		client, err = gemini.NewClient(ctx, gemini.Config{
			APIKey:     cfg.GeminiAPIKey,
			TextModel:  cfg.TextModel,
			ImageModel: cfg.ImageModel,
			Timeout:    cfg.GenerationTimeout,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
		}

		// Assigned only when set so the interfaces stay nil otherwise
		generator = client
		if cfg.ImageryEnabled {
			renderer = client
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set - headline and imagery generation disabled")
	}
	if cfg.ImageryEnabled && renderer == nil {
		log.Warn().Msg("IMAGERY_ENABLED is set but no renderer is available")
	}

	// Step 3: Initialize services
	container := NewContainer(ref, generator, renderer, log)
	container.Gemini = client

	log.Info().
		Bool("generation", container.Narrative.Available()).
		Bool("imagery", container.Imagery.Available()).
		Msg("Dependency injection wiring completed successfully")

	return container, nil
}
