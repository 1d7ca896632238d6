package ctxlog

import (
	"github.com/rs/zerolog"
)

// Op tags the logger with the operation it serves.
func Op(logger zerolog.Logger, op string) zerolog.Logger {
	return logger.With().Str("op", op).Logger()
}

// Board tags the logger with the pasteboard store it addresses.
func Board(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("board", name).Logger()
}
