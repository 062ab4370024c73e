// Package gemini wraps the Google GenAI SDK for headline text generation and
// Imagen rendering.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/npcc/npcc/internal/utils"
)

// ErrEmptyResponse is returned when the model answers without usable content.
var ErrEmptyResponse = errors.New("empty response from model")

// Config configures the Gemini client.
type Config struct {
	APIKey     string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
}

// Client calls Gemini text and Imagen image models.
type Client struct {
	client     *genai.Client
	textModel  string
	imageModel string
	timeout    time.Duration
	log        zerolog.Logger
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.TextModel == "" {
		cfg.TextModel = "gemini-2.0-flash"
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = "imagen-3.0-generate-002"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Client{
		client:     client,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		timeout:    cfg.Timeout,
		log:        log.With().Str("client", "gemini").Logger(),
	}, nil
}

// GenerateText returns the model's text answer to prompt.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stop := utils.OperationTimer("gemini.generate_text", c.timeout/2, c.log)
	resp, err := c.client.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", c.textModel, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	c.log.Debug().
		Str("model", c.textModel).
		Dur("duration", stop()).
		Int("chars", len(text)).
		Msg("Generated text")

	return text, nil
}

// RenderImage renders prompt with the image model and returns the encoded
// image and its MIME type.
func (c *Client) RenderImage(ctx context.Context, prompt string) ([]byte, string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stop := utils.OperationTimer("gemini.render_image", c.timeout/2, c.log)
	resp, err := c.client.Models.GenerateImages(ctx, c.imageModel, prompt, nil)
	if err != nil {
		return nil, "", fmt.Errorf("generate images with %s: %w", c.imageModel, err)
	}

	data, mimeType, err := firstImage(resp)
	if err != nil {
		return nil, "", err
	}

	c.log.Debug().
		Str("model", c.imageModel).
		Dur("duration", stop()).
		Int("bytes", len(data)).
		Msg("Rendered image")

	return data, mimeType, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func firstImage(resp *genai.GenerateImagesResponse) ([]byte, string, error) {
	if resp == nil {
		return nil, "", ErrEmptyResponse
	}
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		mimeType := generated.Image.MIMEType
		if mimeType == "" {
			mimeType = "image/png"
		}
		return generated.Image.ImageBytes, mimeType, nil
	}
	return nil, "", ErrEmptyResponse
}
