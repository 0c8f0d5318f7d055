package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files and use
// the CATFORGE_ prefix with underscores for nesting, e.g. CATFORGE_SHOP_TYPE
// or CATFORGE_BATCH_MAX_ATTEMPTS.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CATFORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// An on-disk config file is optional; environment variables alone are
	// enough to run.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every known key with viper so AutomaticEnv picks the
// corresponding environment variables up during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("run.log_level", "info")

	v.SetDefault("shop.type", "")

	v.SetDefault("batch.vendors", 10)
	v.SetDefault("batch.categories", 10)
	v.SetDefault("batch.products", 50)
	v.SetDefault("batch.max_attempts", 10)

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")

	v.SetDefault("output.csv_path", "products.csv")
	v.SetDefault("output.xlsx_path", "products.xlsx")
}
