package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New собирает логгер приложения; при w == nil пишет в stdout
func New(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
