package generation

import "context"

// TextGenerator defines the interface for producing raw text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type TextGenerator interface {
	// Generate sends the prompt to the underlying model and returns its raw
	// text output. The schema hint describes the structured format the model
	// is asked to produce; implementations pass it to the backend in whatever
	// form the backend supports (system instruction, response schema, etc.).
	//
	// A failed call returns an error wrapping ErrTransientFailure for
	// transport-level problems or ErrContentBlocked when the backend refused
	// to answer. The raw text is returned as-is, without any cleanup.
	Generate(ctx context.Context, prompt string, schemaHint string) (string, error)
}
