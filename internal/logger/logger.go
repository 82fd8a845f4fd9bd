package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once
)

// Get returns the global logger instance, initializing it once
func Get() *slog.Logger {
	once.Do(func() {
		defaultLogger = initLogger()
	})
	return defaultLogger
}

// Discard returns a logger that drops everything. Tests hand it to components.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LogDir returns the directory holding fdc.log.
func LogDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "fdc"), nil
}

// initLogger writes to fdc.log in the user cache directory, rotated by lumberjack.
// If the directory cannot be created the logger discards all output.
func initLogger() *slog.Logger {
	dir, err := LogDir()
	if err != nil {
		return Discard()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Discard()
	}

	logWriter := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "fdc.log"),
		MaxSize:    1, // megabytes
		MaxBackups: 0,
		MaxAge:     0,
		Compress:   false,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return slog.New(handler)
}
