// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/goalkeeper/internal/domain/coherence"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// GoalResponse represents a single goal in HTTP responses.
type GoalResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Timeframe   string         `json:"timeframe"`
	Domains     []string       `json:"domains"`
	ParentID    *string        `json:"parent_id,omitempty"`
	Description string         `json:"description,omitempty"`
	Hints       map[string]any `json:"hints,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// ToGoalResponse converts a domain Goal entity to an HTTP response DTO.
func ToGoalResponse(g *goal.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Timeframe:   g.Timeframe.String(),
		Domains:     g.Domains,
		ParentID:    g.ParentID,
		Description: g.Description,
		Hints:       g.Hints,
		CreatedAt:   g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   g.UpdatedAt.Format(time.RFC3339),
	}
}

// GoalWithConstraintsResponse pairs a stored goal with its current derived
// constraint set. Returned from create and update, where derivation runs.
type GoalWithConstraintsResponse struct {
	Goal        GoalResponse         `json:"goal"`
	Constraints []ConstraintResponse `json:"constraints"`
}

// ToGoalWithConstraintsResponse converts a goal and its constraints to an
// HTTP response DTO.
func ToGoalWithConstraintsResponse(g *goal.Goal, cs []constraint.Constraint) GoalWithConstraintsResponse {
	return GoalWithConstraintsResponse{
		Goal:        ToGoalResponse(g),
		Constraints: toConstraintResponses(cs),
	}
}

// GoalListResponse represents a list of goals in HTTP responses.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
	Count int            `json:"count"`
}

// ToGoalListResponse converts a slice of domain Goal entities to an HTTP
// list response DTO.
func ToGoalListResponse(goals []goal.Goal) GoalListResponse {
	items := make([]GoalResponse, len(goals))
	for i := range goals {
		items[i] = ToGoalResponse(&goals[i])
	}
	return GoalListResponse{
		Goals: items,
		Count: len(items),
	}
}

// ConstraintResponse represents a single derived constraint in HTTP responses.
type ConstraintResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Domain    string         `json:"domain"`
	GoalID    string         `json:"goal_id"`
	Payload   map[string]any `json:"payload"`
	CreatedAt string         `json:"created_at"`
}

// ToConstraintResponse converts a domain Constraint entity to an HTTP
// response DTO.
func ToConstraintResponse(c *constraint.Constraint) ConstraintResponse {
	return ConstraintResponse{
		ID:        c.ID,
		Type:      c.Type,
		Domain:    c.Domain,
		GoalID:    c.GoalID,
		Payload:   c.Payload,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

// ConstraintListResponse represents a list of constraints in HTTP responses.
type ConstraintListResponse struct {
	Constraints []ConstraintResponse `json:"constraints"`
	Count       int                  `json:"count"`
}

// ToConstraintListResponse converts a slice of domain Constraint entities to
// an HTTP list response DTO.
func ToConstraintListResponse(cs []constraint.Constraint) ConstraintListResponse {
	return ConstraintListResponse{
		Constraints: toConstraintResponses(cs),
		Count:       len(cs),
	}
}

func toConstraintResponses(cs []constraint.Constraint) []ConstraintResponse {
	items := make([]ConstraintResponse, len(cs))
	for i := range cs {
		items[i] = ToConstraintResponse(&cs[i])
	}
	return items
}

// VerdictResponse represents a coherence check outcome. An invalid verdict
// is an ordinary 200 response; errors are reserved for checks that could not
// complete.
type VerdictResponse struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// ToVerdictResponse converts a coherence Verdict to an HTTP response DTO.
// Issues are never null in the response body.
func ToVerdictResponse(v *coherence.Verdict) VerdictResponse {
	issues := v.Issues
	if issues == nil {
		issues = []string{}
	}
	return VerdictResponse{
		Valid:  v.Valid,
		Issues: issues,
	}
}

// ContextResponse represents the planning context snapshot.
type ContextResponse struct {
	Goals               []GoalResponse                  `json:"goals"`
	ConstraintsByDomain map[string][]ConstraintResponse `json:"constraints_by_domain"`
}

// ToContextResponse converts a coherence Context snapshot to an HTTP
// response DTO.
func ToContextResponse(c *coherence.Context) ContextResponse {
	goals := make([]GoalResponse, len(c.Goals))
	for i := range c.Goals {
		goals[i] = ToGoalResponse(&c.Goals[i])
	}

	byDomain := make(map[string][]ConstraintResponse, len(c.ConstraintsByDomain))
	for dom, cs := range c.ConstraintsByDomain {
		byDomain[dom] = toConstraintResponses(cs)
	}

	return ContextResponse{
		Goals:               goals,
		ConstraintsByDomain: byDomain,
	}
}

// ModuleResponse represents a single module registration in HTTP responses.
type ModuleResponse struct {
	Name                  string `json:"name"`
	Domain                string `json:"domain"`
	CrossDomainInterested bool   `json:"cross_domain_interested"`
}

// ToModuleResponse converts a ports.Registration to an HTTP response DTO.
func ToModuleResponse(reg ports.Registration) ModuleResponse {
	return ModuleResponse{
		Name:                  reg.Name,
		Domain:                reg.Domain,
		CrossDomainInterested: reg.CrossDomainInterested,
	}
}

// ModuleListResponse represents a list of module registrations in HTTP
// responses.
type ModuleListResponse struct {
	Modules []ModuleResponse `json:"modules"`
	Count   int              `json:"count"`
}

// ToModuleListResponse converts a slice of registrations to an HTTP list
// response DTO.
func ToModuleListResponse(regs []ports.Registration) ModuleListResponse {
	items := make([]ModuleResponse, len(regs))
	for i, reg := range regs {
		items[i] = ToModuleResponse(reg)
	}
	return ModuleListResponse{
		Modules: items,
		Count:   len(items),
	}
}
