// Package log is the debug log of the application. Entries are JSON lines
// produced by zap. Until a file is configured they are buffered in memory
// and flushed once SetFile succeeds.
package log

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugLogger handles debug logging to file and/or buffering.
// It implements io.Writer so zap can use it as a sink.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	globalDebugLogger = &DebugLogger{}
	level             = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logger            = newLogger(globalDebugLogger)
	sugar             = logger.Sugar()
)

func newLogger(w zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), w, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// Write implements io.Writer.
// It writes to the file if set, otherwise appends to the buffer.
func (l *DebugLogger) Write(p []byte) (n int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.discard {
		return len(p), nil
	}

	if l.file != nil {
		return l.file.Write(p)
	}

	// p may be reused by the caller.
	l.buffer = append(l.buffer, p...)
	return len(p), nil
}

// Sync implements zapcore.WriteSyncer.
func (l *DebugLogger) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	return l.file.Sync()
}

// SetFile sets the debug log file path. Creates the file if it doesn't exist.
// If path is empty, discards all buffered logs and future logs.
func SetFile(path string) error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if globalDebugLogger.file != nil {
		_ = globalDebugLogger.file.Close()
		globalDebugLogger.file = nil
	}

	if path == "" {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		globalDebugLogger.discard = true
		globalDebugLogger.buffer = nil
		return err
	}

	globalDebugLogger.file = f
	globalDebugLogger.discard = false

	if len(globalDebugLogger.buffer) > 0 {
		_, _ = f.Write(globalDebugLogger.buffer)
		_ = f.Sync()
		globalDebugLogger.buffer = nil
	}

	return nil
}

// SetLevel changes the minimum level written. Accepted names are debug,
// info, warn and error.
func SetLevel(name string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.SetLevel(l)
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	sugar.Debugf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	sugar.Debugln(v...)
}

// Debug writes a structured debug entry.
func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }

// Info writes a structured info entry.
func Info(msg string, fields ...zap.Field) { logger.Info(msg, fields...) }

// Warn writes a structured warning.
func Warn(msg string, fields ...zap.Field) { logger.Warn(msg, fields...) }

// Error writes a structured error entry.
func Error(msg string, fields ...zap.Field) { logger.Error(msg, fields...) }

// Close flushes pending entries and closes the debug log file if open.
func Close() error {
	_ = logger.Sync()

	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if globalDebugLogger.file == nil {
		return nil
	}

	err := globalDebugLogger.file.Close()
	globalDebugLogger.file = nil
	return err
}
