package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-forge/internal/domain"
	"github.com/phrazzld/catalog-forge/internal/generation"
)

// ProductGenerator produces one accepted ProductRecord per combination, or
// reports exhaustion after MaxAttempts rejected attempts. It drives the text
// generation service, the structured response parser and the title tracker.
type ProductGenerator struct {
	textgen     generation.TextGenerator
	tracker     *TitleTracker
	logger      *slog.Logger
	shopType    string
	maxAttempts int
}

// NewProductGenerator creates a ProductGenerator with the provided
// dependencies. maxAttempts is the per-combination retry budget and must be
// positive.
func NewProductGenerator(
	textgen generation.TextGenerator,
	tracker *TitleTracker,
	logger *slog.Logger,
	shopType string,
	maxAttempts int,
) (*ProductGenerator, error) {
	if textgen == nil {
		return nil, errors.New("text generator cannot be nil")
	}

	if tracker == nil {
		return nil, errors.New("title tracker cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if maxAttempts < 1 {
		return nil, fmt.Errorf("%w: max attempts must be positive, got %d",
			generation.ErrInvalidConfig, maxAttempts)
	}

	return &ProductGenerator{
		textgen:     textgen,
		tracker:     tracker,
		logger:      logger,
		shopType:    shopType,
		maxAttempts: maxAttempts,
	}, nil
}

// Generate runs the bounded retry loop for one combination.
//
// The vendor's exclusion list is captured once, before the first attempt, and
// held fixed: no record is accepted mid-attempt, so there is nothing to
// refresh. Each attempt calls the text generation service, parses the raw
// response and applies the acceptance test: the parse must succeed and the
// title must not duplicate an accepted title for this vendor. Transport
// failures, parse failures and duplicates all consume one attempt from the
// same budget.
//
// On acceptance the title is recorded with the tracker before the record is
// returned. After maxAttempts consecutive rejections Generate returns an
// error wrapping ErrAttemptsExhausted; the combination is dropped, never
// requeued.
func (g *ProductGenerator) Generate(ctx context.Context, combo domain.Combination) (*domain.ProductRecord, error) {
	exclusions := g.tracker.ExclusionsFor(combo.Vendor)

	prompt, err := buildProductPrompt(g.shopType, combo, exclusions)
	if err != nil {
		return nil, err
	}

	logger := g.logger.With(
		"vendor", combo.Vendor,
		"category", combo.Category,
	)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		raw, err := g.textgen.Generate(ctx, prompt, generation.ProductSchemaHint)
		if err != nil {
			logger.WarnContext(ctx, "attempt rejected: text generation failed",
				"attempt", attempt,
				"max_attempts", g.maxAttempts,
				"error", err)
			continue
		}

		parsed, err := generation.ParseProduct(raw)
		if err != nil {
			logger.WarnContext(ctx, "attempt rejected: unparsable response",
				"attempt", attempt,
				"max_attempts", g.maxAttempts,
				"error", err,
				"raw_response", raw)
			continue
		}

		if g.tracker.IsDuplicate(combo.Vendor, parsed.Title) {
			logger.WarnContext(ctx, "attempt rejected: duplicate title",
				"attempt", attempt,
				"max_attempts", g.maxAttempts,
				"title", parsed.Title,
				"error", ErrDuplicateTitle)
			continue
		}

		record, err := domain.NewProductRecord(combo, parsed.Title, parsed.Description, parsed.Price)
		if err != nil {
			logger.WarnContext(ctx, "attempt rejected: invalid record",
				"attempt", attempt,
				"max_attempts", g.maxAttempts,
				"error", err,
				"raw_response", raw)
			continue
		}

		g.tracker.Record(combo.Vendor, record.Title)

		logger.DebugContext(ctx, "product accepted",
			"attempt", attempt,
			"title", record.Title)

		return record, nil
	}

	return nil, fmt.Errorf("%w: no acceptable product after %d attempts for vendor %q category %q",
		ErrAttemptsExhausted, g.maxAttempts, combo.Vendor, combo.Category)
}
