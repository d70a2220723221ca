package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/spacetimeops/relativity/engine"
	"github.com/spacetimeops/relativity/observe"
	"github.com/spacetimeops/relativity/physics"
)

// Calculator is the execution surface the handler drives; both the raw
// engine and its observe-wrapped form satisfy it.
type Calculator interface {
	Calculate(ctx context.Context, req engine.Request) (physics.Result, error)
}

// Options tunes the handler.
type Options struct {
	// MaxConcurrent bounds in-flight calculations; 0 means unbounded.
	// Saturation returns 503. This is hosting-layer policy: the engine
	// itself never queues, retries, or times out.
	MaxConcurrent int64

	// Logger receives boundary-level events. Nil means no logging.
	Logger observe.Logger
}

// Handler serves the calculation endpoint.
type Handler struct {
	calc    Calculator
	limiter *semaphore.Weighted
	logger  observe.Logger
}

// NewHandler creates a Handler over the given calculator.
func NewHandler(calc Calculator, opts Options) *Handler {
	h := &Handler{calc: calc, logger: opts.Logger}
	if h.logger == nil {
		h.logger = observe.NopLogger()
	}
	if opts.MaxConcurrent > 0 {
		h.limiter = semaphore.NewWeighted(opts.MaxConcurrent)
	}
	return h
}

// successResponse is the 200 body.
type successResponse struct {
	Results         physics.Result `json:"results"`
	CalculationTime float64        `json:"calculation_time"`
}

// errorResponse covers 4xx and 5xx bodies; ErrorType and CalculationTime
// are only populated for server errors.
type errorResponse struct {
	Error           string   `json:"error"`
	ErrorType       string   `json:"error_type,omitempty"`
	CalculationTime *float64 `json:"calculation_time,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodPost:
		// fall through
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
		return
	}

	start := time.Now()

	var req engine.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	if req.Type == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required field \"type\""})
		return
	}
	if req.Inputs == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required field \"inputs\""})
		return
	}

	if h.limiter != nil && !h.limiter.TryAcquire(1) {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "server busy"})
		return
	}
	if h.limiter != nil {
		defer h.limiter.Release(1)
	}

	result, err := h.calc.Calculate(r.Context(), req)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		typed := engine.Classify(err)
		status := typed.Kind.HTTPStatus()

		resp := errorResponse{Error: typed.Message}
		if status >= http.StatusInternalServerError {
			resp.ErrorType = typed.Kind.String()
			resp.CalculationTime = &elapsed
			h.logger.Error(r.Context(), "calculation failed at boundary",
				observe.Field{Key: "calc.type", Value: req.Type},
				observe.Field{Key: "error", Value: typed.Message},
				observe.Field{Key: "error_type", Value: typed.Kind.String()},
			)
		}
		writeJSON(w, status, resp)
		return
	}

	w.Header().Set("Cache-Control", "max-age=3600")
	writeJSON(w, http.StatusOK, successResponse{
		Results:         result,
		CalculationTime: elapsed,
	})
}

func setCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
