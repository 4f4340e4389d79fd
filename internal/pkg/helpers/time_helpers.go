package helpers

import (
	"time"

	"github.com/yigit/registrar/internal/pkg/logger"
)

// ParseDuration parses a configured TTL such as "15m" or "720h". Empty,
// malformed and non-positive values give fallback.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err == nil && d > 0 {
		return d
	}
	event := logger.Warn().Str("value", value).Dur("fallback", fallback)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg("Invalid duration, using fallback")
	return fallback
}
