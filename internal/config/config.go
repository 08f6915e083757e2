// Package config resolves runtime defaults from the environment. Values are
// read once at startup; a .env file, if present, is loaded by the command
// entrypoint before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"

	"hypotest/domain/stats"
)

// Config holds the defaults applied when the caller does not choose
// explicitly.
type Config struct {
	// Alpha is the significance level used in interpretations.
	Alpha float64
	// Tail selects one- or two-tailed p-value reporting.
	Tail stats.Tail
}

// Default returns the configuration used when no environment overrides are
// set: alpha 0.05, two-tailed.
func Default() Config {
	return Config{Alpha: 0.05, Tail: stats.TwoTailed}
}

// Load reads configuration from HYPOTEST_ALPHA and HYPOTEST_TAIL, falling
// back to defaults for unset variables.
func Load() (Config, error) {
	cfg := Default()

	if raw := os.Getenv("HYPOTEST_ALPHA"); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse HYPOTEST_ALPHA: %w", err)
		}
		if alpha <= 0 || alpha >= 1 {
			return Config{}, fmt.Errorf("HYPOTEST_ALPHA must be in (0, 1), got %g", alpha)
		}
		cfg.Alpha = alpha
	}

	if raw := os.Getenv("HYPOTEST_TAIL"); raw != "" {
		tail, err := stats.ParseTail(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse HYPOTEST_TAIL: %w", err)
		}
		cfg.Tail = tail
	}

	return cfg, nil
}
