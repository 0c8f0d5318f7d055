package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-forge/internal/config"
	"github.com/phrazzld/catalog-forge/internal/generation"
	"google.golang.org/genai"
)

// GeminiGenerator implements the generation.TextGenerator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// NewGeminiGenerator creates a new instance of GeminiGenerator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - config: LLM configuration containing API key and model name
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, config config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if config.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger,
		config: config,
		client: client,
		model:  config.ModelName,
	}, nil
}

// Generate sends the prompt to the Gemini API and returns the raw text of the
// first candidate. The schema hint is passed as a system instruction and the
// response MIME type is pinned to JSON so the model emits machine-parseable
// output. One call is one attempt; callers own the retry policy.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, schemaHint string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if schemaHint != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(schemaHint, genai.RoleUser)
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call error", "error", err)
		return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API response invalid", "error", err)
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"response_length", len(text))

	return text, nil
}

// extractText pulls the raw text out of a GenerateContentResponse, mapping
// envelope-level problems onto the generation error taxonomy.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("%w: no text parts in response", generation.ErrInvalidResponse)
	}

	return text, nil
}
