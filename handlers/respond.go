package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

const (
	noStore       = "no-store"
	publicHourly  = "public, max-age=3600"
	seedHeader    = "X-Dashboard-Seed"
	maxBodyBytes  = 1 << 16
	seedParameter = "seed"
)

var errBadSeed = errors.New("seed must be an unsigned 64-bit integer")

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, cacheControl string, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if cacheControl != "" {
		w.Header().Set("Cache-Control", cacheControl)
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("encoding response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, noStore, ErrorResponse{Error: msg, Code: status})
}

// decodeBody reads an optional JSON body into v. An empty body leaves v
// untouched.
func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func selectionFrom(r *http.Request) models.FilterSelection {
	q := r.URL.Query()
	return models.FilterSelection{
		Partner: q.Get("partner"),
		State:   q.Get("state"),
		Period:  q.Get("period"),
	}
}

// requestSeed picks the seed for a request: the query parameter, then the
// configured seed, then a fresh one. It echoes the choice in a header.
func (h *Handler) requestSeed(w http.ResponseWriter, r *http.Request) (uint64, error) {
	seed, err := h.seedFor(r.URL.Query().Get(seedParameter))
	if err != nil {
		return 0, err
	}
	w.Header().Set(seedHeader, strconv.FormatUint(seed, 10))
	return seed, nil
}

func (h *Handler) seedFor(raw string) (uint64, error) {
	if raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return 0, errBadSeed
		}
		return seed, nil
	}
	if h.hasSeed {
		return h.seed, nil
	}
	return utils.NewSeed(), nil
}
