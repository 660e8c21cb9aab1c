// Package logging constructs the application logger.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New builds a console logger at the given level. Unknown or empty levels
// fall back to info.
func New(out io.Writer, level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: out}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}
