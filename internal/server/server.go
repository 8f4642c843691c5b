// Package server exposes the replacement analysis over HTTP. It is
// stateless: every request constructs fresh parameters and returns an
// independent result set.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/optimach/optimach/internal/config"
	"github.com/optimach/optimach/internal/replacement"
	"github.com/optimach/optimach/pkg/constants"
	"github.com/optimach/optimach/pkg/output"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

type analyzeResponse struct {
	Strategies     []replacement.StrategyResult `json:"strategies"`
	Recommended    replacement.StrategyResult   `json:"recommended"`
	Recommendation string                       `json:"recommendation"`
	MaxKeepYears   int                          `json:"maxKeepYears"`
	Warnings       []string                     `json:"warnings,omitempty"`
	Duration       string                       `json:"duration"`
}

// NewHandler constructs the HTTP handler that serves the analysis API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/api/analyze", h.handleAnalyze)
	r.Get("/api/version", h.handleVersion)
	r.Get("/", h.handleIndex)

	return r
}

// handleAnalyze accepts the analysis configuration either as a multipart
// upload under the "file" field or directly in the request body. The body may
// be YAML or JSON; both go through the same decoder.
func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	configBytes, err := h.readConfigBytes(w, r)
	if err != nil {
		return // readConfigBytes already responded
	}

	conf, err := config.LoadConfigurationBytes(configBytes)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := conf.Parameters()
	warnings := conf.ValidateConfiguration()

	analysis, err := replacement.Evaluate(h.logger, params)
	if err != nil {
		var confErr *replacement.ConfigurationError
		if errors.As(err, &confErr) {
			h.respondError(w, http.StatusBadRequest, confErr.Error())
			return
		}
		h.logger.Error("analysis failed",
			zap.String("op", "server.handleAnalyze"),
			zap.Error(err),
		)
		h.respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	h.writeJSON(w, http.StatusOK, analyzeResponse{
		Strategies:     analysis.Ranked,
		Recommended:    analysis.Recommended,
		Recommendation: output.Recommendation(analysis, params.InterestRate),
		MaxKeepYears:   analysis.MaxKeepYears,
		Warnings:       warnings,
		Duration:       time.Since(start).String(),
	})
}

func (h *handler) readConfigBytes(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.respondError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
				return nil, err
			}
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err))
			return nil, err
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "missing configuration file")
			return nil, err
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				h.logger.Warn("failed to close uploaded file",
					zap.String("op", "server.readConfigBytes"),
					zap.Error(closeErr),
				)
			}
		}()

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, file); err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err))
			return nil, err
		}
		return buf.Bytes(), nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize))
			return nil, err
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request body: %v", err))
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.respondError(w, http.StatusBadRequest, "empty configuration")
		return nil, fmt.Errorf("empty configuration")
	}
	return body, nil
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>OptiMach</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>OptiMach Replacement Analyzer API</h1>
<p>POST a YAML or JSON configuration to <code>/api/analyze</code> to rank keep-then-replace strategies by present worth cost.</p>
</body>
</html>`))
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
