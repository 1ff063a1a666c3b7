// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/goalkeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// GoalHandler handles HTTP requests for goal CRUD and domain-scoped
// constraint listings.
type GoalHandler struct {
	svc ports.GoalService
}

// NewGoalHandler creates a new GoalHandler with the given service port.
func NewGoalHandler(svc ports.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

// CreateGoal handles POST /api/v1/goals. Creating a goal also derives its
// constraints, so the response carries both.
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, constraints, err := h.svc.AddGoal(r.Context(), req.ToGoal())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToGoalWithConstraintsResponse(created, constraints))
}

// ListGoals handles GET /api/v1/goals with optional domain and timeframe
// query filters.
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	filter, err := goalFilterFromQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	goals, err := h.svc.ListGoals(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGoalListResponse(goals))
}

// GetGoal handles GET /api/v1/goals/{id}.
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.GetGoal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGoalResponse(g))
}

// UpdateGoal handles PATCH /api/v1/goals/{id}. Updating a goal re-derives
// its constraints, so the response carries the fresh set.
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGoalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, constraints, err := h.svc.UpdateGoal(r.Context(), chi.URLParam(r, "id"), req.ToUpdate())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToGoalWithConstraintsResponse(updated, constraints))
}

// DeleteGoal handles DELETE /api/v1/goals/{id}.
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGoal(r.Context(), chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListConstraints handles GET /api/v1/constraints. The domain query
// parameter is required: constraints only make sense scoped to a domain.
func (h *GoalHandler) ListConstraints(w http.ResponseWriter, r *http.Request) {
	dom := strings.TrimSpace(r.URL.Query().Get("domain"))
	if dom == "" {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"domain": "query parameter is required"},
		})
		return
	}

	constraints, err := h.svc.ListConstraints(r.Context(), dom)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToConstraintListResponse(constraints))
}

// goalFilterFromQuery builds a goal.Filter from the request's query
// parameters. An unrecognized timeframe value is a validation error rather
// than an empty result set.
func goalFilterFromQuery(r *http.Request) (goal.Filter, error) {
	f := goal.Filter{
		Domain: strings.TrimSpace(r.URL.Query().Get("domain")),
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("timeframe")); raw != "" {
		tf := goal.Timeframe(raw)
		if !tf.IsValid() {
			return goal.Filter{}, &domain.ValidationError{
				Fields: map[string]string{"timeframe": "must be one of long, medium, short, task"},
			}
		}
		f.Timeframe = tf
	}

	return f, nil
}
