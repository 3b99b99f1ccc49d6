package logger

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	Info  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Warn  *log.Logger

	base zerolog.Logger
)

// levelWriter forwards lines written by a stdlib logger to zerolog at a fixed level.
type levelWriter struct {
	level zerolog.Level
}

func (w levelWriter) Write(p []byte) (int, error) {
	base.WithLevel(w.level).Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func init() {
	Init(false, false)
}

// Init configures the shared sink. It must be called before any goroutine logs.
func Init(verbose, jsonOutput bool) {
	initWithWriter(os.Stdout, verbose, jsonOutput)
}

func initWithWriter(out io.Writer, verbose, jsonOutput bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if !jsonOutput {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	base = zerolog.New(out).Level(level).With().Timestamp().Logger()

	logFlags := log.Lshortfile

	Info = log.New(levelWriter{zerolog.InfoLevel}, "", logFlags)
	Error = log.New(levelWriter{zerolog.ErrorLevel}, "", logFlags)
	Debug = log.New(levelWriter{zerolog.DebugLevel}, "", logFlags)
	Warn = log.New(levelWriter{zerolog.WarnLevel}, "", logFlags)
}

// WithComponent returns a structured logger tagged with a component field.
func WithComponent(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
