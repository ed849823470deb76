package logging

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

// Options selects the handler the process-wide logger is built from.
type Options struct {
	Level string
	JSON  bool
}

var (
	def atomic.Value
	out io.Writer = os.Stderr
)

func init() {
	def.Store(slog.New(newHandler(Options{})))
}

// Configure replaces the process-wide logger. Safe to call at any time;
// loggers already handed out by L keep their old handler.
func Configure(opts Options) {
	def.Store(slog.New(newHandler(opts)))
}

// L returns the current process-wide logger.
func L() *slog.Logger {
	l, _ := def.Load().(*slog.Logger)
	return l
}

// InitFromEnv configures logging from PIXMILL_LOG_LEVEL and
// PIXMILL_LOG_JSON before the config file has been read.
func InitFromEnv() {
	opts := Options{Level: os.Getenv("PIXMILL_LOG_LEVEL")}
	if b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv("PIXMILL_LOG_JSON"))); err == nil {
		opts.JSON = b
	}
	Configure(opts)
}

func newHandler(opts Options) slog.Handler {
	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	if opts.JSON {
		return slog.NewJSONHandler(out, hopts)
	}
	return slog.NewTextHandler(out, hopts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
