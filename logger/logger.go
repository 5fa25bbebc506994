package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controla nível e formato do log.
type Config struct {
	Level  string
	Format string // "json" ou "console"
}

var global = New(Config{Level: "info", Format: "console"})

// New monta um logger zerolog com o nível e formato pedidos.
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stdout

	if cfg.Format == "console" || cfg.Format == "" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// Setup troca o logger global do processo.
func Setup(cfg Config) {
	global = New(cfg)
}

// L devolve o logger global.
func L() zerolog.Logger {
	return global
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
