package updater

// Config holds configuration for the bulk update executor.
type Config struct {
	// MaxConcurrent is the size of the worker pool.
	MaxConcurrent int `mapstructure:"max_concurrent" default:"10"`
	// RateLimitDelayMs is the minimum spacing between completed units of
	// work across all workers, in milliseconds. Zero disables throttling.
	RateLimitDelayMs int `mapstructure:"rate_limit_delay_ms" default:"100"`
}
