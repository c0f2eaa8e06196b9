package config

import "time"

// Default configuration constants
const (
	// Timeout defaults
	DefaultGenerationTimeout  = 300 * time.Second
	DefaultTranslationTimeout = 60 * time.Second

	// Retry defaults
	DefaultRetries      = 2
	DefaultRetryDelayMs = 1000

	// Network defaults
	DefaultHTTPPort = "8080"
)
