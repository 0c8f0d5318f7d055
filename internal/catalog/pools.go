package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-forge/internal/domain"
	"github.com/phrazzld/catalog-forge/internal/generation"
)

// PoolGenerator obtains the fixed vendor and category name pools for a run
// from the text generation service. Pool generation uses the same bounded
// retry policy as product generation, but exhaustion here is fatal to the
// run: without pools there is nothing to sample.
type PoolGenerator struct {
	textgen     generation.TextGenerator
	logger      *slog.Logger
	shopType    string
	maxAttempts int
}

// NewPoolGenerator creates a PoolGenerator with the provided dependencies.
func NewPoolGenerator(
	textgen generation.TextGenerator,
	logger *slog.Logger,
	shopType string,
	maxAttempts int,
) (*PoolGenerator, error) {
	if textgen == nil {
		return nil, errors.New("text generator cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if maxAttempts < 1 {
		return nil, fmt.Errorf("%w: max attempts must be positive, got %d",
			generation.ErrInvalidConfig, maxAttempts)
	}

	return &PoolGenerator{
		textgen:     textgen,
		logger:      logger,
		shopType:    shopType,
		maxAttempts: maxAttempts,
	}, nil
}

// GenerateVendors produces the run's vendor pool of the given size.
func (p *PoolGenerator) GenerateVendors(ctx context.Context, count int) ([]string, error) {
	return p.generatePool(ctx, "vendor names", count)
}

// GenerateCategories produces the run's category pool of the given size.
func (p *PoolGenerator) GenerateCategories(ctx context.Context, count int) ([]string, error) {
	return p.generatePool(ctx, "product categories", count)
}

// generatePool asks the model for count names of the given kind and validates
// the result against the pool name format contract. A response is rejected as
// a whole when it is unparsable, contains an invalid name, or does not yield
// count distinct valid names; rejections consume attempts from the shared
// budget.
func (p *PoolGenerator) generatePool(ctx context.Context, kind string, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("pool size must be positive, got %d", count)
	}

	prompt, err := buildPoolPrompt(p.shopType, kind, count)
	if err != nil {
		return nil, err
	}

	logger := p.logger.With("pool_kind", kind, "pool_size", count)

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		raw, err := p.textgen.Generate(ctx, prompt, generation.NameListSchemaHint)
		if err != nil {
			logger.WarnContext(ctx, "pool attempt rejected: text generation failed",
				"attempt", attempt,
				"max_attempts", p.maxAttempts,
				"error", err)
			continue
		}

		names, err := generation.ParseNameList(raw)
		if err != nil {
			logger.WarnContext(ctx, "pool attempt rejected: unparsable response",
				"attempt", attempt,
				"max_attempts", p.maxAttempts,
				"error", err,
				"raw_response", raw)
			continue
		}

		pool, err := validatePool(names, count)
		if err != nil {
			logger.WarnContext(ctx, "pool attempt rejected: invalid pool",
				"attempt", attempt,
				"max_attempts", p.maxAttempts,
				"error", err,
				"raw_response", raw)
			continue
		}

		logger.DebugContext(ctx, "pool accepted", "attempt", attempt)
		return pool, nil
	}

	return nil, fmt.Errorf("%w: no valid %s pool after %d attempts",
		ErrAttemptsExhausted, kind, p.maxAttempts)
}

// validatePool checks every name against the format contract, drops exact
// duplicates, and requires at least count distinct names. The first count
// names are returned in model order.
func validatePool(names []string, count int) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	pool := make([]string, 0, count)

	for _, name := range names {
		if err := domain.ValidatePoolName(name); err != nil {
			return nil, fmt.Errorf("%w: %q", err, name)
		}

		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		pool = append(pool, name)
		if len(pool) == count {
			return pool, nil
		}
	}

	return nil, fmt.Errorf("%w: got %d distinct names, need %d",
		generation.ErrInvalidResponse, len(pool), count)
}
