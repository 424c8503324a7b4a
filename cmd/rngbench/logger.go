package main

import (
	"io"

	"github.com/rs/zerolog"
)

func newConsoleLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = "15:04:05.000"
	})).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

func newJSONLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}
