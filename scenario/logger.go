package scenario

import (
	"io"

	"github.com/rs/zerolog"
)

const logTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// NewLogger returns a human-readable console logger writing to w at the given
// level. Pass the result to WithLogger.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: logTimeFormat, NoColor: true}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
