package source

// Config holds configuration for the catalog source API.
type Config struct {
	// BaseURL is the root URL of the source API.
	BaseURL string `mapstructure:"base_url" default:"https://dummyjson.com"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PageSize is the number of records requested per page.
	PageSize int `mapstructure:"page_size" default:"30"`
	// PageDelayMs is the fixed delay between page requests in milliseconds.
	PageDelayMs int `mapstructure:"page_delay_ms" default:"100"`
	// MaxRetries is the number of retries for retryable responses.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryDelayMs is the base backoff delay in milliseconds; it doubles
	// on every retry attempt.
	RetryDelayMs int `mapstructure:"retry_delay_ms" default:"1000"`
}
