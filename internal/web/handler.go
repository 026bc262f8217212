package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"minigrep/internal/app"
	"minigrep/internal/config"
)

type SearchHandler struct {
	logger       *zap.Logger
	maxBodyBytes int64
}

func NewSearchHandler(cfg *config.Config, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		logger:       logger,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// Search handles POST /search?query=...&ignore_case=true.
// The request body is the text to search; the response is
// {"result": [...matching lines]}.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	rq := r.URL.Query()
	if !rq.Has("query") {
		h.logger.Warn("query not provided")
		writeError(w, "query not provided", http.StatusBadRequest)
		return
	}

	ignoreCase := false
	if v := rq.Get("ignore_case"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("invalid ignore_case", zap.Error(err))
			writeError(w, "invalid ignore_case", http.StatusBadRequest)
			return
		}
		ignoreCase = parsed
	}

	cfg := app.SearchConfig{
		Query:         rq.Get("query"),
		Source:        app.StdinSource(),
		CaseSensitive: !ignoreCase,
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	lines, err := app.Input(cfg.Source, body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Warn("body read failed", zap.Error(err))
		writeError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	results := app.Search(cfg, lines)
	h.logger.Info("search served",
		zap.Int("lines", len(lines)),
		zap.Int("matches", len(results)),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
	)
	writeJson(w, results)
}

func (h *SearchHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJson(w, "ok")
}

func writeJson(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{"result": payload}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
