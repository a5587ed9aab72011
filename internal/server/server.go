// Package server exposes the trip combination optimizer over HTTP. Callers
// supply already-materialized candidate lists as JSON; the server runs the
// pure search and returns the ranked results. No retrieval happens here.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cmalloy/trip-finder/internal/optimizer"
	"github.com/cmalloy/trip-finder/internal/trip"
	"github.com/cmalloy/trip-finder/pkg/constants"
	"github.com/cmalloy/trip-finder/pkg/output"
	"github.com/cmalloy/trip-finder/pkg/validation"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the search API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	if version == "" {
		version = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: version}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Post("/api/search/segments", h.handleSegmentSearch)
	r.Post("/api/search/roundtrips", h.handleRoundTripSearch)
	r.Get("/api/version", h.handleVersion)

	return r
}

// searchConstraints mirrors optimizer.Constraints with optional fields so that
// omitted values fall back to the defaults while explicit zeros are honored.
type searchConstraints struct {
	MinStopover1Days *int `json:"min_stopover1_days"`
	MinStopover2Days *int `json:"min_stopover2_days"`
}

func (c searchConstraints) resolve() optimizer.Constraints {
	resolved := optimizer.DefaultConstraints()
	if c.MinStopover1Days != nil {
		resolved.MinStopover1Days = *c.MinStopover1Days
	}
	if c.MinStopover2Days != nil {
		resolved.MinStopover2Days = *c.MinStopover2Days
	}
	return resolved
}

type segmentSearchRequest struct {
	Constraints searchConstraints `json:"constraints"`
	TopN        *int              `json:"top_n"`
	Segments    [][]trip.Segment  `json:"segments"`
}

type roundTripSearchRequest struct {
	Constraints searchConstraints      `json:"constraints"`
	TopN        *int                   `json:"top_n"`
	RoundTrip1  []trip.RoundTripOption `json:"roundtrip1"`
	RoundTrip2  []trip.RoundTripOption `json:"roundtrip2"`
}

type segmentSearchResponse struct {
	RunID    string                          `json:"run_id"`
	Results  []output.SegmentItineraryResult `json:"results"`
	Duration string                          `json:"duration"`
}

type roundTripSearchResponse struct {
	RunID    string                            `json:"run_id"`
	Results  []output.RoundTripItineraryResult `json:"results"`
	Duration string                            `json:"duration"`
}

func resolveTopN(topN *int) int {
	if topN == nil {
		return constants.DefaultTopN
	}
	return *topN
}

func (h *handler) handleSegmentSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := "server.handleSegmentSearch"

	var req segmentSearchRequest
	if !h.decodeRequest(w, r, &req, op) {
		return
	}

	constraints := req.Constraints.resolve()
	if err := validation.ValidateStayThresholds(constraints.MinStopover1Days, constraints.MinStopover2Days); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	opt := optimizer.NewSegmentOptimizer(constraints, h.logger)
	results, err := opt.FindBestCombinations(req.Segments, resolveTopN(req.TopN))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	rows, err := output.BuildSegmentResults(results)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	runID := uuid.NewString()
	elapsed := time.Since(start)
	h.logger.Info("segment search complete",
		zap.String("op", op),
		zap.String("run_id", runID),
		zap.Int("results", len(rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, segmentSearchResponse{
		RunID:    runID,
		Results:  rows,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleRoundTripSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := "server.handleRoundTripSearch"

	var req roundTripSearchRequest
	if !h.decodeRequest(w, r, &req, op) {
		return
	}

	constraints := req.Constraints.resolve()
	if err := validation.ValidateStayThresholds(constraints.MinStopover1Days, constraints.MinStopover2Days); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	opt := optimizer.NewRoundTripOptimizer(constraints, h.logger)
	results, err := opt.FindBestCombinations(req.RoundTrip1, req.RoundTrip2, resolveTopN(req.TopN))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	rows, err := output.BuildRoundTripResults(results)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	runID := uuid.NewString()
	elapsed := time.Since(start)
	h.logger.Info("round trip search complete",
		zap.String("op", op),
		zap.String("run_id", runID),
		zap.Int("results", len(rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, roundTripSearchResponse{
		RunID:    runID,
		Results:  rows,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, out interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("search request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
