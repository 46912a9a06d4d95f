package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vane-tools/vanectl/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// sink is the file shared by a logger and its components.
type sink struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
	enabled  bool
}

// Logger writes leveled lines to a file. It is safe for concurrent use.
// Loggers returned by With share the parent's file and settings.
type Logger struct {
	out       *sink
	component string
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
)

// Init opens logPath and installs it as the package-level logger,
// closing any logger installed before.
func Init(logPath string, minLevel Level) error {
	l, err := New(logPath, minLevel)
	if err != nil {
		return err
	}
	if prev := SetDefault(l); prev != nil {
		_ = prev.Close()
	}
	return nil
}

// SetDefault replaces the package-level logger and returns the previous one.
func SetDefault(l *Logger) *Logger {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	prev := defaultLogger
	defaultLogger = l
	return prev
}

// New creates a logger appending to logPath.
func New(logPath string, minLevel Level) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Tighten permissions on a file left by an older version.
	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, fmt.Errorf("chmod existing log file: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{out: &sink{file: file, minLevel: minLevel, enabled: true}}, nil
}

// With returns a logger that tags every line with component.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	if l.component != "" {
		component = l.component + "." + component
	}
	return &Logger{out: l.out, component: component}
}

// Close closes the underlying file. Components share it, so closing any
// of them closes all.
func (l *Logger) Close() error {
	if l == nil || l.out == nil || l.out.file == nil {
		return nil
	}
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	if l.out.file == nil {
		return nil
	}
	err := l.out.file.Close()
	l.out.file = nil
	return err
}

// SetEnabled turns logging on or off.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil || l.out == nil {
		return
	}
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.enabled = enabled
}

// SetLevel changes the minimum level written.
func (l *Logger) SetLevel(level Level) {
	if l == nil || l.out == nil {
		return
	}
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.minLevel = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || l.out == nil {
		return
	}

	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	if !l.out.enabled || level < l.out.minLevel || l.out.file == nil {
		return
	}

	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	var line string
	if l.component != "" {
		line = fmt.Sprintf("[%s] %s: [%s] %s\n", timestamp, level, l.component, message)
	} else {
		line = fmt.Sprintf("[%s] %s: %s\n", timestamp, level, message)
	}

	if _, err := l.out.file.WriteString(line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Writer returns an io.Writer that logs each write at level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "%s", string(p))
	return len(p), nil
}

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// Debug logs to the package-level logger.
func Debug(format string, args ...any) { current().Debug(format, args...) }

// Info logs to the package-level logger.
func Info(format string, args ...any) { current().Info(format, args...) }

// Warn logs to the package-level logger.
func Warn(format string, args ...any) { current().Warn(format, args...) }

// Error logs to the package-level logger.
func Error(format string, args ...any) { current().Error(format, args...) }

// Close closes the package-level logger.
func Close() error {
	return current().Close()
}

// GetLogger returns the package-level logger, or nil before Init.
func GetLogger() *Logger {
	return current()
}

// Component returns a domain.Logger for component backed by the
// package-level logger, or a NopLogger when none is installed.
func Component(component string) domain.Logger {
	l := current()
	if l == nil {
		return NopLogger{}
	}
	return l.With(component)
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
