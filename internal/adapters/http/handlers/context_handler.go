package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/goalkeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// ContextHandler handles HTTP requests for the planning context snapshot.
type ContextHandler struct {
	svc ports.ContextService
}

// NewContextHandler creates a new ContextHandler with the given service port.
func NewContextHandler(svc ports.ContextService) *ContextHandler {
	return &ContextHandler{svc: svc}
}

// GetContext handles GET /api/v1/context. The snapshot is recomputed on
// every call and never mutates core state.
func (h *ContextHandler) GetContext(w http.ResponseWriter, r *http.Request) {
	ctx, err := h.svc.Context(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContextResponse(ctx))
}
