package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		// Restore original environment
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default values
// when only the required fields are provided.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		// Set required fields without defaults
		"CATFORGE_SHOP_TYPE":          "second-hand furniture store",
		"CATFORGE_LLM_GEMINI_API_KEY": "test-api-key",
		// Explicitly unset the ones we want to test defaults for
		"CATFORGE_RUN_LOG_LEVEL":      "",
		"CATFORGE_BATCH_VENDORS":      "",
		"CATFORGE_BATCH_MAX_ATTEMPTS": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "info", cfg.Run.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Batch.Vendors, "Default vendor count should be 10")
	assert.Equal(t, 10, cfg.Batch.Categories, "Default category count should be 10")
	assert.Equal(t, 50, cfg.Batch.Products, "Default product count should be 50")
	assert.Equal(t, 10, cfg.Batch.MaxAttempts, "Default max attempts should be 10")
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName, "Default model name should be set")
	assert.Equal(t, "products.csv", cfg.Output.CSVPath, "Default CSV path should be set")
	assert.Equal(t, "products.xlsx", cfg.Output.XLSXPath, "Default XLSX path should be set")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"CATFORGE_RUN_LOG_LEVEL":      "debug",
		"CATFORGE_SHOP_TYPE":          "vintage camera shop",
		"CATFORGE_BATCH_VENDORS":      "3",
		"CATFORGE_BATCH_CATEGORIES":   "4",
		"CATFORGE_BATCH_PRODUCTS":     "25",
		"CATFORGE_BATCH_MAX_ATTEMPTS": "5",
		"CATFORGE_LLM_GEMINI_API_KEY": "test-api-key",
		"CATFORGE_LLM_MODEL_NAME":     "gemini-2.5-pro",
		"CATFORGE_OUTPUT_CSV_PATH":    "out/catalog.csv",
		"CATFORGE_OUTPUT_XLSX_PATH":   "out/catalog.xlsx",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, "debug", cfg.Run.LogLevel)
	assert.Equal(t, "vintage camera shop", cfg.Shop.Type)
	assert.Equal(t, 3, cfg.Batch.Vendors)
	assert.Equal(t, 4, cfg.Batch.Categories)
	assert.Equal(t, 25, cfg.Batch.Products)
	assert.Equal(t, 5, cfg.Batch.MaxAttempts)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, "out/catalog.csv", cfg.Output.CSVPath)
	assert.Equal(t, "out/catalog.xlsx", cfg.Output.XLSXPath)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Missing shop type and API key",
			envVars: map[string]string{
				"CATFORGE_SHOP_TYPE":          "",
				"CATFORGE_LLM_GEMINI_API_KEY": "",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Zero product count",
			envVars: map[string]string{
				"CATFORGE_SHOP_TYPE":          "gift shop",
				"CATFORGE_LLM_GEMINI_API_KEY": "test-api-key",
				"CATFORGE_BATCH_PRODUCTS":     "0",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Negative max attempts",
			envVars: map[string]string{
				"CATFORGE_SHOP_TYPE":          "gift shop",
				"CATFORGE_LLM_GEMINI_API_KEY": "test-api-key",
				"CATFORGE_BATCH_MAX_ATTEMPTS": "-1",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"CATFORGE_SHOP_TYPE":          "gift shop",
				"CATFORGE_LLM_GEMINI_API_KEY": "test-api-key",
				"CATFORGE_RUN_LOG_LEVEL":      "loud",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), tc.errorSubstring, "Error message should contain expected substring")
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
