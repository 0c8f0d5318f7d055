// Package main implements the entry point for the catalog-forge generator,
// which builds a synthetic product catalog by repeatedly querying an LLM and
// exports the accepted records as CSV and XLSX files.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/catalog-forge/internal/catalog"
	"github.com/phrazzld/catalog-forge/internal/config"
	"github.com/phrazzld/catalog-forge/internal/export"
	"github.com/phrazzld/catalog-forge/internal/platform/gemini"
	"github.com/phrazzld/catalog-forge/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("catalog generation failed: %v", err)
	}
}

// run loads configuration, wires the components together and executes one
// catalog generation batch end to end.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	runID := uuid.New().String()
	appLogger, err := logger.Setup(cfg.Run, runID)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("starting catalog generation",
		"shop_type", cfg.Shop.Type,
		"vendors", cfg.Batch.Vendors,
		"categories", cfg.Batch.Categories,
		"products", cfg.Batch.Products,
		"max_attempts", cfg.Batch.MaxAttempts,
		"model", cfg.LLM.ModelName)

	textgen, err := gemini.NewGeminiGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create text generator: %w", err)
	}

	// The vendor and category pools are themselves model output, produced
	// once per run.
	pools, err := catalog.NewPoolGenerator(textgen, appLogger, cfg.Shop.Type, cfg.Batch.MaxAttempts)
	if err != nil {
		return fmt.Errorf("failed to create pool generator: %w", err)
	}

	vendors, err := pools.GenerateVendors(ctx, cfg.Batch.Vendors)
	if err != nil {
		return fmt.Errorf("failed to generate vendor pool: %w", err)
	}

	categories, err := pools.GenerateCategories(ctx, cfg.Batch.Categories)
	if err != nil {
		return fmt.Errorf("failed to generate category pool: %w", err)
	}

	sampler := catalog.NewSampler(rand.NewSource(time.Now().UnixNano()))
	combos, err := sampler.Sample(vendors, categories, cfg.Batch.Products)
	if err != nil {
		return fmt.Errorf("failed to sample combinations: %w", err)
	}

	tracker := catalog.NewTitleTracker()
	generator, err := catalog.NewProductGenerator(textgen, tracker, appLogger, cfg.Shop.Type, cfg.Batch.MaxAttempts)
	if err != nil {
		return fmt.Errorf("failed to create product generator: %w", err)
	}

	orchestrator, err := catalog.NewOrchestrator(generator, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	records, summary := orchestrator.Run(ctx, combos)

	if err := export.NewCSVExporter().Export(cfg.Output.CSVPath, records); err != nil {
		return fmt.Errorf("failed to export CSV: %w", err)
	}

	if err := export.NewXLSXExporter().Export(cfg.Output.XLSXPath, records); err != nil {
		return fmt.Errorf("failed to export XLSX: %w", err)
	}

	appLogger.Info("catalog generation finished",
		"requested", summary.Requested,
		"produced", summary.Produced,
		"exhausted", summary.Exhausted,
		"csv_path", cfg.Output.CSVPath,
		"xlsx_path", cfg.Output.XLSXPath)

	return nil
}
