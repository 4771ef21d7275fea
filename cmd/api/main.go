package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"eldview.openfreight.org/internal/app"
	"eldview.openfreight.org/internal/logging"
	"eldview.openfreight.org/internal/render"
	"eldview.openfreight.org/internal/restapi"
)

func main() {
	var cfg app.Config
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.StringVar(&cfg.StylePath, "style-config", "", "Optional YAML style overlay file")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key (negative disables limiting)")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	style, err := render.LoadStyle(cfg.StylePath)
	if err != nil {
		logging.LogError(logger, "failed to load style configuration", err,
			slog.String("path", cfg.StylePath))
		os.Exit(1)
	}
	logging.LogOperation(logger, "style_config_loaded",
		slog.String("path", cfg.StylePath),
		slog.Int("status_colors", len(style.StatusColors)))

	application := &app.Application{
		Config: cfg,
		Logger: logger,
		Style:  style,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
