package app

import (
	"log/slog"

	"eldview.openfreight.org/internal/render"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the runtime configuration, the structured logger, and the
// resolved render style shared by every request.
type Application struct {
	Config Config
	Logger *slog.Logger
	Style  render.Style
}

// Config holds all the configuration settings for our Application.
// These are read from command-line flags when the Application starts: the
// network port to listen on, the name of the current operating environment
// (development, staging, production, etc.), the accepted API keys, the
// optional style overlay file, and the per-key request rate limit.
type Config struct {
	Port      int
	Env       string
	ApiKeys   []string
	StylePath string
	RateLimit int
}
