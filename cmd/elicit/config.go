package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/joeshaw/envdecode"

	"github.com/promptwire/elicit/internal/logctx"
)

// config is assembled in two passes: the optional TOML file first, then
// ELICIT_* environment variables override it.
type config struct {
	LogLevel         string `toml:"log_level" env:"ELICIT_LOG_LEVEL"`
	Seed             uint64 `toml:"seed" env:"ELICIT_SEED"`
	MaxContinuations int    `toml:"max_continuations" env:"ELICIT_MAX_CONTINUATIONS"`
}

func (c *config) load(path string) error {
	c.LogLevel = "info"
	c.Seed = 1
	c.MaxContinuations = 3

	if path != "" {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := envdecode.Decode(c); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return fmt.Errorf("decode environment: %w", err)
	}
	return nil
}

func setupLogging(cfg *config) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	base := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(logctx.Handler{Handler: base}))
	return nil
}

// sessionContext tags ctx with a fresh session id so every record the
// run emits carries it.
func sessionContext(ctx context.Context, source string) context.Context {
	return logctx.WithSession(ctx, &logctx.SessionData{
		SessionID: uuid.NewString(),
		Source:    source,
	})
}
