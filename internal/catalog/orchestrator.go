package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/catalog-forge/internal/domain"
)

// BatchSummary reports how a batch run went. Produced plus Exhausted always
// equals Requested.
type BatchSummary struct {
	Requested int
	Produced  int
	Exhausted int
}

// Orchestrator processes a combination sequence strictly in order, one
// combination in flight at a time, accumulating accepted records in
// production order.
type Orchestrator struct {
	generator *ProductGenerator
	logger    *slog.Logger
}

// NewOrchestrator creates an Orchestrator around the given product generator.
func NewOrchestrator(generator *ProductGenerator, logger *slog.Logger) (*Orchestrator, error) {
	if generator == nil {
		return nil, errors.New("product generator cannot be nil")
	}

	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Orchestrator{
		generator: generator,
		logger:    logger,
	}, nil
}

// Run invokes the product generator for each combination in sequence order.
// Exhausted combinations are dropped: they are not requeued, retried later,
// or substituted, so the output length is the input length minus the
// exhausted count. The returned records are handed to export unchanged.
func (o *Orchestrator) Run(ctx context.Context, combos []domain.Combination) ([]domain.ProductRecord, BatchSummary) {
	summary := BatchSummary{Requested: len(combos)}
	records := make([]domain.ProductRecord, 0, len(combos))

	for i, combo := range combos {
		record, err := o.generator.Generate(ctx, combo)
		if err != nil {
			summary.Exhausted++
			o.logger.WarnContext(ctx, "combination dropped",
				"position", i,
				"vendor", combo.Vendor,
				"category", combo.Category,
				"exhausted", errors.Is(err, ErrAttemptsExhausted),
				"error", err)
			continue
		}

		records = append(records, *record)
		summary.Produced++
	}

	o.logger.InfoContext(ctx, "batch complete",
		"requested", summary.Requested,
		"produced", summary.Produced,
		"exhausted", summary.Exhausted)

	return records, summary
}
