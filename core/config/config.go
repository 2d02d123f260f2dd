package config

import (
	"reflect"
	"strings"

	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/source"
	"catalog-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Source holds configuration for the external catalog API client.
	Source source.Config `mapstructure:"source"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Sync holds configuration for the reconciliation pipeline.
	Sync SyncConfig `mapstructure:"sync"`
	// Updater holds configuration for the bulk update executor.
	Updater UpdaterConfig `mapstructure:"updater"`
	// Storage holds configuration for run-report archival (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
}

// SyncConfig holds configuration for the reconciliation run. It mirrors the
// catalog feature's own config type; the mapping happens at the command
// layer so core packages never depend on feature packages.
type SyncConfig struct {
	// WriteMode selects how records are written (insert or upsert).
	WriteMode string `mapstructure:"write_mode" default:"upsert"`
	// ProgressEvery controls how often the record loop logs progress.
	ProgressEvery int `mapstructure:"progress_every" default:"50"`
}

// UpdaterConfig holds configuration for the bulk update executor, mapped to
// the updater feature's config at the command layer.
type UpdaterConfig struct {
	// MaxConcurrent is the size of the worker pool.
	MaxConcurrent int `mapstructure:"max_concurrent" default:"10"`
	// RateLimitDelayMs is the minimum spacing between completed units of
	// work across all workers, in milliseconds.
	RateLimitDelayMs int `mapstructure:"rate_limit_delay_ms" default:"100"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SOURCE_PAGE_SIZE -> source.page_size)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
