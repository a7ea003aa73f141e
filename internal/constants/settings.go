package constants

import "time"

const (
	// Default Settings Values
	DefaultTimezone = "Local" // Use system local timezone by default
	DefaultTheme    = "moon-night"

	// Gateway defaults
	DefaultModel          = "gemini-2.5-flash"
	DefaultGeminiBaseURL  = "https://generativelanguage.googleapis.com"
	AnalyzeTemperature    = 0.5
	SuggestTemperature    = 0.7
	GatewayRequestsPerSec = 1.0
	GatewayBurst          = 2

	// Gateway HTTP client idle timeout; per-call deadlines come from the caller's context.
	GatewayIdleConnTimeout = 90 * time.Second

	// Environment variables
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvLegacyAPIKey = "API_KEY"
	EnvFileName     = ".env"
)
