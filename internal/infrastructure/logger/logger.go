package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

const (
	EnvDebug     = "DNSFILTERS_DEBUG"
	EnvLogFormat = "DNSFILTERS_LOG_FORMAT"
)

type Logger struct {
	*slog.Logger
}

var (
	defaultLogger *Logger
	mu            sync.RWMutex
)

type Config struct {
	Level     slog.Level
	Format    string
	Output    io.Writer
	AddSource bool
}

func DefaultConfig() *Config {
	return &Config{
		Level:     slog.LevelWarn,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: false,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies DNSFILTERS_DEBUG and
// DNSFILTERS_LOG_FORMAT.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	if os.Getenv(EnvDebug) != "" {
		cfg.Level = slog.LevelDebug
		cfg.AddSource = true
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Format = format
	}
	return cfg
}

// Init replaces the process-wide logger. The CLI calls it again once flags
// are parsed.
func Init(cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	mu.Lock()
	defaultLogger = &Logger{slog.New(handler)}
	mu.Unlock()
}

func L() *Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l == nil {
		Init(DefaultConfig())
		return L()
	}
	return l
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

func Debug(msg string, args ...any) { L().Debug(msg, args...) }
func Info(msg string, args ...any)  { L().Info(msg, args...) }
func Warn(msg string, args ...any)  { L().Warn(msg, args...) }
func Error(msg string, args ...any) { L().Error(msg, args...) }
