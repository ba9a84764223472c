// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to w at the named level
// ("debug", "info", "warn", "error"; empty means "info").
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if s := strings.TrimSpace(level); s != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
		}
		lvl = parsed
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Nop is the logger used when the caller does not supply one.
func Nop() zerolog.Logger { return zerolog.Nop() }

// Component tags every event from l with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Warnf emits a warning unless quiet is set.
func Warnf(l zerolog.Logger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	l.Warn().Msgf(format, a...)
}
