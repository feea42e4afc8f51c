// Package ai isolates the generative-text backend behind a narrow interface
// so the rest of the service (and its tests) never depend on a live network.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator produces a text completion for a prompt in one synchronous call.
type Generator interface {
	Generate(ctx context.Context, prompt, systemInstruction string, maxTokens int32, temperature float32) (string, error)
}

const defaultModel = "gemini-2.0-flash"

// GeminiGenerator implements Generator against the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		model:  model,
	}, nil
}

// NewGeminiFromEnv creates a generator from GEMINI_API_KEY and GEMINI_MODEL.
// It returns (nil, nil) when no key is configured; callers treat a nil
// generator as fallback mode rather than an error.
func NewGeminiFromEnv(ctx context.Context) (*GeminiGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil
	}
	return NewGeminiGenerator(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
}

// Generate issues a single generation call. No retries are performed; retry
// policy belongs to the caller.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt, systemInstruction string, maxTokens int32, temperature float32) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(temperature)
	model.SetMaxOutputTokens(maxTokens)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
	}

	return builder.String(), nil
}

// Close releases the underlying client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
