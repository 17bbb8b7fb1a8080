// Package server exposes the converter over a small JSON API. It adds no
// semantics of its own: every endpoint is a thin wrapper around one
// conversion entry point.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pathu11/fingerspell/internal/convert"
	"github.com/pathu11/fingerspell/internal/sign"
)

// Server serves the conversion API and, optionally, the raw video files.
type Server struct {
	conv      *convert.Converter
	videosDir string
	log       *slog.Logger
}

// New creates a server. videosDir may be empty to disable video serving.
func New(conv *convert.Converter, videosDir string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{conv: conv, videosDir: videosDir, log: log}
}

type convertRequest struct {
	Word string `json:"word"`
}

type numberRequest struct {
	Number    string `json:"number"`
	Composite bool   `json:"composite,omitempty"`
}

type batchRequest struct {
	Words []string `json:"words"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/convert", s.handleConvert)
	mux.HandleFunc("POST /api/convert-number", s.handleConvertNumber)
	mux.HandleFunc("POST /api/batch-convert", s.handleBatchConvert)
	mux.HandleFunc("GET /api/statistics", s.handleStatistics)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if s.videosDir != "" {
		mux.Handle("GET /videos/", http.StripPrefix("/videos/",
			http.FileServer(http.Dir(s.videosDir))))
	}
	return mux
}

// ListenAndServe runs the API. Conversions are bounded by input length, so
// the only timeout policy lives here at the request boundary.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
	s.log.Info("listening", "addr", addr)
	return srv.ListenAndServe()
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result := s.conv.ConvertWord(req.Word)
	s.log.Info("convert", "input", req.Word,
		"signs", result.Summary.Signs, "missing", result.Summary.VideosMissing)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleConvertNumber(w http.ResponseWriter, r *http.Request) {
	var req numberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Number == "" {
		s.writeError(w, http.StatusBadRequest, "number is required")
		return
	}
	var result sign.ConversionResult
	if req.Composite {
		result = s.conv.ConvertNumberComposite(req.Number)
	} else {
		result = s.conv.ConvertNumber(req.Number)
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleBatchConvert(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	results := s.conv.ConvertBatch(req.Words)
	s.writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.conv.Statistics())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
