package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Run    RunConfig    `mapstructure:"run"    validate:"required"`
	Shop   ShopConfig   `mapstructure:"shop"   validate:"required"`
	Batch  BatchConfig  `mapstructure:"batch"  validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Output OutputConfig `mapstructure:"output" validate:"required"`
}

// RunConfig contains run-wide settings.
type RunConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// ShopConfig describes the fictional shop the catalog is generated for.
type ShopConfig struct {
	// Type is a free-form shop description used only in prompt text,
	// e.g. "second-hand furniture store".
	Type string `mapstructure:"type" validate:"required"`
}

// BatchConfig contains the sizing knobs for a single catalog run.
type BatchConfig struct {
	Vendors     int `mapstructure:"vendors"      validate:"required,gt=0"`
	Categories  int `mapstructure:"categories"   validate:"required,gt=0"`
	Products    int `mapstructure:"products"     validate:"required,gt=0"`
	MaxAttempts int `mapstructure:"max_attempts" validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
}

// OutputConfig contains the export destinations. Both files carry the same
// rows in different serializations.
type OutputConfig struct {
	CSVPath  string `mapstructure:"csv_path"  validate:"required"`
	XLSXPath string `mapstructure:"xlsx_path" validate:"required"`
}
