// Package constants defines shared defaults and environment variable names
// used throughout the scrollrouter packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the config loader.
const (
	LogLevelEnvVar = "SCROLLROUTER_LOG_LEVEL"
	LogPathEnvVar  = "SCROLLROUTER_LOG_PATH"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default scroll tuning. Distances are in viewport units (pixels for a browser
// or SDL window, rows for a terminal).
const (
	DefaultThrottleInterval         = 60 * time.Millisecond // Minimum spacing between evaluations
	DefaultMinScrollDelta   float64 = 100                   // Movement required before re-evaluating
	DefaultActivationOffset float64 = 90                    // Height of the fixed top navigation bar
	DefaultUpwardLead       float64 = 30                    // Extra margin applied when scrolling up
)

// DefaultScrollStep is the distance moved by one wheel notch in the platform adapters.
const DefaultScrollStep float64 = 40
