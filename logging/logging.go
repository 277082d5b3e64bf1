package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu        sync.RWMutex
	logger    = zerolog.Nop()
	debugMode bool
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled so the terminal UI stays clean.
// If filename is set, structured logs at debug level are appended to that file.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		setLogger(zerolog.Nop(), false)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	setLogger(New(f, zerolog.DebugLevel), true)

	cleanup = func() {
		setLogger(zerolog.Nop(), false)
		f.Close()
	}
	return cleanup, nil
}

// New builds a timestamped logger writing to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "wrwatch").Logger()
}

// SetOutput points the package logger at w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	setLogger(New(w, zerolog.DebugLevel), true)
}

func setLogger(l zerolog.Logger, debug bool) {
	mu.Lock()
	defer mu.Unlock()
	zerolog.TimeFieldFormat = time.RFC3339
	logger = l
	debugMode = debug
}

// Logger returns the current package logger.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

// IsDebugMode reports whether a debug log file is active.
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debugMode
}

func Debug(msg string) { Logger().Debug().Msg(msg) }

func Debugf(format string, args ...any) { Logger().Debug().Msgf(format, args...) }

func Infof(format string, args ...any) { Logger().Info().Msgf(format, args...) }

func Warnf(format string, args ...any) { Logger().Warn().Msgf(format, args...) }

func Errorf(format string, args ...any) { Logger().Error().Msgf(format, args...) }
