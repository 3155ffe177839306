package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pagesift/pagesift/internal/fetcher"
	"github.com/pagesift/pagesift/internal/logger"
	"github.com/pagesift/pagesift/internal/version"
	"github.com/pagesift/pagesift/pkg/convert"
)

type extractResponse struct {
	URL     string `json:"url"`
	Content string `json:"content"`
	Format  string `json:"format"`
	Type    string `json:"type"`
	Success bool   `json:"success"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	targetURL := q.Get("url")
	if targetURL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "missing required query parameter: url"})
		return
	}

	format := convert.Format(q.Get("output_format"))
	if format == "" {
		format = convert.DefaultFormat
	}

	result, err := s.pipeline.Extract(r.Context(), targetURL, format)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, fetcher.ErrFetch) {
			status = http.StatusBadRequest
		}
		logger.Error("extraction failed", "url", targetURL, "status", status, "error", err)
		writeJSON(w, status, errorResponse{Detail: err.Error()})
		return
	}

	logger.Info("extraction served",
		"url", targetURL,
		"format", result.Format,
		"type", result.Type,
		"fetch_ms", result.FetchDuration.Milliseconds(),
		"extract_ms", result.ExtractDuration.Milliseconds(),
	)

	writeJSON(w, http.StatusOK, extractResponse{
		URL:     result.URL,
		Content: result.Content,
		Format:  string(result.Format),
		Type:    result.Type.String(),
		Success: true,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, version.Get())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("response write error", "error", err)
	}
}
