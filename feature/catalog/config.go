package catalog

// Config holds configuration for the reconciliation run.
type Config struct {
	// WriteMode selects how records are written (insert or upsert).
	// Upsert enables stale-record eviction.
	WriteMode string `mapstructure:"write_mode" default:"upsert"`
	// ProgressEvery controls how often the record loop logs progress.
	ProgressEvery int `mapstructure:"progress_every" default:"50"`
}
