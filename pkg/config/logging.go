// 19 Oct 2026

package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cloudeng.io/logging/ctxlog"
)

// ParseLevel turns debug, info, warn or error into a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("%w: log_level %q", ErrConfig, s)
	}
	return l, nil
}

// Logging returns ctx carrying a logger that writes to w as cfg says.
func (cfg Config) Logging(ctx context.Context, w io.Writer) context.Context {
	lvl, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.LogFormat == "json" {
		return ctxlog.NewJSONLogger(ctx, w, opts)
	}
	return ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(w, opts)))
}
