package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/rabigarip/priceright/internal/pricing"
	"github.com/rabigarip/priceright/internal/ratelimit"
	"github.com/rabigarip/priceright/internal/util/jsonutil"
)

// User-facing failure messages. Deliberately generic: diagnostic detail is
// logged server-side and never leaks to the client.
const (
	msgMethodNotAllowed = "Method not allowed"
	msgRateLimited      = "Too many requests. Please wait a moment and try again."
	msgNotConfigured    = "Server not configured. Please try again later."
	msgMissingFields    = "Missing required fields."
	msgUpstreamFailed   = "AI analysis failed. Please try again."
	msgInvalidResult    = "Invalid analysis result. Please try again."
	msgAnalysisFailed   = "Pricing analysis failed. Please try again."
)

// AnalyzeHandler serves POST /api/analyze. Failure ordering is fixed:
// method check, admission gate, credential check, validation, then the
// pipeline — a malformed request from an over-quota client sees 429,
// not 400.
type AnalyzeHandler struct {
	gate   *ratelimit.Window
	svc    *pricing.Service
	apiKey string
}

func NewAnalyzeHandler(gate *ratelimit.Window, svc *pricing.Service, apiKey string) *AnalyzeHandler {
	return &AnalyzeHandler{gate: gate, svc: svc, apiKey: apiKey}
}

func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	// Admission is decided before any other work is done.
	if dec := h.gate.Allow(ratelimit.ClientKey(r)); !dec.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
		writeError(w, http.StatusTooManyRequests, msgRateLimited)
		return
	}

	if h.apiKey == "" {
		writeError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	// A body that does not decode is treated like an empty questionnaire
	// and falls through to the bulk validation rejection.
	var in pricing.Input
	_ = json.NewDecoder(r.Body).Decode(&in)

	report, err := h.svc.Analyze(r.Context(), in)
	switch {
	case errors.Is(err, pricing.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, pricing.ErrUpstream):
		writeError(w, http.StatusInternalServerError, msgUpstreamFailed)
	case errors.Is(err, pricing.ErrInvalidResult):
		writeError(w, http.StatusInternalServerError, msgInvalidResult)
	case err != nil:
		writeError(w, http.StatusInternalServerError, msgAnalysisFailed)
	default:
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(report); err != nil {
			log.Printf("analyze: write response: %v", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	body, err := jsonutil.MarshalNoEscape(map[string]string{"error": msg})
	if err != nil {
		http.Error(w, msg, status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
