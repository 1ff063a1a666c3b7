package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/goalkeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// ModuleHandler handles HTTP requests for domain module registration.
type ModuleHandler struct {
	svc ports.ModuleService
}

// NewModuleHandler creates a new ModuleHandler with the given service port.
func NewModuleHandler(svc ports.ModuleService) *ModuleHandler {
	return &ModuleHandler{svc: svc}
}

// RegisterModule handles POST /api/v1/modules.
func (h *ModuleHandler) RegisterModule(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterModuleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	spec := ports.ModuleSpec{
		Name:                  req.Name,
		Domain:                req.Domain,
		BaseURL:               req.BaseURL,
		CrossDomainInterested: req.CrossDomainInterested,
	}

	reg, err := h.svc.Register(r.Context(), spec)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToModuleResponse(reg))
}

// ListModules handles GET /api/v1/modules.
func (h *ModuleHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToModuleListResponse(h.svc.List(r.Context())))
}

// UnregisterModule handles DELETE /api/v1/modules/{name}.
func (h *ModuleHandler) UnregisterModule(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Unregister(r.Context(), chi.URLParam(r, "name")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
