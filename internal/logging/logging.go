// Package logging configures log/slog for dnamectl and the management API.
//
// The name engine itself never logs. Callers attach names to records with
// Name, which renders the presentation form lazily.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jroosing/dnsname/internal/dname"
)

// Config mirrors the logging section of the configuration file.
type Config struct {
	Level            string
	Structured       bool
	StructuredFormat string
	IncludePID       bool
	ExtraFields      map[string]string
}

// Configure builds a logger writing to stderr and installs it as the slog
// default.
func Configure(cfg Config) *slog.Logger {
	logger := New(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w without touching the slog default.
func New(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Structured && strings.EqualFold(cfg.StructuredFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// key=value output, structured or not
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := make([]slog.Attr, 0, len(cfg.ExtraFields)+1)
	for k, v := range cfg.ExtraFields {
		attrs = append(attrs, slog.String(k, v))
	}
	if cfg.IncludePID {
		attrs = append(attrs, slog.Int("pid", os.Getpid()))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	return slog.New(handler)
}

// Name returns an attribute holding the presentation form of n.
func Name(key string, n dname.Name) slog.Attr {
	return slog.Any(key, nameValue{n})
}

// nameValue defers formatting until a handler actually emits the record.
type nameValue struct{ n dname.Name }

func (v nameValue) LogValue() slog.Value {
	if s, ok := v.n.(interface{ String() string }); ok {
		return slog.StringValue(s.String())
	}
	return slog.StringValue(string(dname.Bytes(v.n)))
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
