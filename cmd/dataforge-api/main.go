package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/mmrzaf/dataforge/internal/api"
	"github.com/mmrzaf/dataforge/internal/app"
	"github.com/mmrzaf/dataforge/internal/columns"
	"github.com/mmrzaf/dataforge/internal/config"
	"github.com/mmrzaf/dataforge/internal/infra/repos/presets"
	"github.com/mmrzaf/dataforge/internal/logging"
	"github.com/mmrzaf/dataforge/internal/web"
)

func main() {
	cfg := config.Load()

	bindAddr := flag.String("bind", cfg.BindAddr, "Bind address")
	presetsDir := flag.String("presets-dir", cfg.PresetsDir, "Presets directory")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	maxRecords := flag.Int("max-records", cfg.MaxRecords, "Record count ceiling")
	defaultRecords := flag.Int("default-records", cfg.DefaultRecords, "Record count fallback")
	workers := flag.Int("workers", cfg.Workers, "Generation workers (0 = number of CPUs)")
	flag.Parse()

	logger := logging.NewLogger(*logLevel).WithComponent("api_main")

	registry := columns.DefaultRegistry()
	presetRepo := presets.NewFileRepository(*presetsDir)
	service := app.NewGenerateService(registry, presetRepo, logger.WithComponent("generate"), *maxRecords, *defaultRecords, *workers)

	handler := api.NewHandler(service)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /", web.IndexHandler)
	mux.HandleFunc("POST /generate", handler.GenerateForm)

	mux.HandleFunc("POST /api/v1/generate", handler.Generate)
	mux.HandleFunc("GET /api/v1/columns", handler.ListColumns)
	mux.HandleFunc("GET /api/v1/formats", handler.ListFormats)
	mux.HandleFunc("GET /api/v1/presets", handler.ListPresets)
	mux.HandleFunc("GET /api/v1/presets/{id}", handler.GetPreset)

	logger.Infow("startup.listening", map[string]any{"bind": *bindAddr})
	if err := http.ListenAndServe(*bindAddr, loggingMiddleware(logger.WithComponent("http"), mux)); err != nil {
		logger.Errorw("startup.failed", map[string]any{"error": err.Error(), "stage": "listen"})
		os.Exit(1)
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		fields := map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"duration_ms": time.Since(started).Milliseconds(),
			"remote":      r.RemoteAddr,
		}
		if sw.status >= 500 {
			logger.Errorw("request.completed", fields)
			return
		}
		if sw.status >= 400 {
			logger.Warnw("request.completed", fields)
			return
		}
		logger.Infow("request.completed", fields)
	})
}
