// Package log provides the slog-based application logger. The engine
// packages are pure and never log; the interactive demo owns the
// terminal, so its logs go to a rotating file instead of stderr.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialization. Values can also come from the
// environment: ORTHODRAG_LOG_LEVEL=debug|info|warn|error and
// ORTHODRAG_LOG_FILE=<path> (enables rotating file logging).
type Options struct {
	Level string
	File  string // optional rotated log file; empty logs to stderr
}

var (
	mu     sync.RWMutex
	logger *slog.Logger
)

// L returns the default logger, initializing from the environment on
// first use.
func L() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Init configures the default logger.
func Init(opts Options) {
	var w io.Writer = os.Stderr
	if opts.File != "" {
		w = &lj.Logger{
			Filename:   opts.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
		}
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(opts.Level)}))

	mu.Lock()
	logger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// FromEnv reads Options from the environment.
func FromEnv() Options {
	return Options{
		Level: os.Getenv("ORTHODRAG_LOG_LEVEL"),
		File:  os.Getenv("ORTHODRAG_LOG_FILE"),
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
