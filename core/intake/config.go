package intake

import "time"

// Config holds configuration for the input coordinator.
type Config struct {
	// DebounceMS is the auto-commit debounce window in milliseconds.
	DebounceMS int `mapstructure:"debounce_ms" default:"500"`
	// Mode is the initial entry mode (manual or auto).
	Mode string `mapstructure:"mode" default:"auto"`
}

// Debounce returns the configured debounce window, falling back to the
// 500ms default when unset.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}
