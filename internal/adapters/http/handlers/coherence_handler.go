package handlers

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/goalkeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/coherence"
	"github.com/jsamuelsen11/goalkeeper/internal/platform/telemetry"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// CoherenceHandler handles HTTP requests for coherence checks.
type CoherenceHandler struct {
	svc     ports.CoherenceService
	metrics *telemetry.Metrics
}

// NewCoherenceHandler creates a new CoherenceHandler. Metrics may be nil
// when telemetry is disabled.
func NewCoherenceHandler(svc ports.CoherenceService, metrics *telemetry.Metrics) *CoherenceHandler {
	return &CoherenceHandler{svc: svc, metrics: metrics}
}

// Check handles POST /api/v1/coherence/check. An invalid verdict is a
// successful check and returns 200; error statuses are reserved for checks
// that could not complete (unknown domain, malformed payload, module failure).
func (h *CoherenceHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	start := time.Now()
	verdict, err := h.svc.Check(r.Context(), req.Domain, req.Payload)
	h.recordCheck(r, req.Domain, time.Since(start), verdict, err)

	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToVerdictResponse(verdict))
}

// recordCheck emits the coherence check counter and duration histogram,
// tagged with the target domain and the outcome (valid, invalid, or error).
func (h *CoherenceHandler) recordCheck(r *http.Request, domain string, elapsed time.Duration, verdict *coherence.Verdict, err error) {
	if h.metrics == nil {
		return
	}

	outcome := "valid"
	switch {
	case err != nil:
		outcome = "error"
	case !verdict.Valid:
		outcome = "invalid"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDomain.String(domain),
		telemetry.AttrVerdict.String(outcome),
	)

	ctx := r.Context()
	h.metrics.CoherenceCheckTotal.Add(ctx, 1, attrs)
	h.metrics.CoherenceCheckDuration.Record(ctx, elapsed.Seconds(), attrs)
}
