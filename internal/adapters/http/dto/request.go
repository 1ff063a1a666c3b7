package dto

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// CreateGoalRequest represents the JSON body for creating a new goal.
type CreateGoalRequest struct {
	Title       string         `json:"title"`
	Timeframe   string         `json:"timeframe"`
	Domains     []string       `json:"domains,omitempty"`
	ParentID    *string        `json:"parent_id,omitempty"`
	Description string         `json:"description,omitempty"`
	Hints       map[string]any `json:"hints,omitempty"`
}

// Validate checks that required fields are present and enumerations are
// recognized. Returns a *domain.ValidationError if any checks fail.
func (r *CreateGoalRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if !goal.Timeframe(r.Timeframe).IsValid() {
		fields["timeframe"] = fmt.Sprintf("must be one of long, medium, short, task; got %q", r.Timeframe)
	}
	if r.ParentID != nil && strings.TrimSpace(*r.ParentID) == "" {
		fields["parent_id"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToGoal converts the request to a domain Goal entity. Domains are
// normalized by the goal itself during service-side validation.
func (r *CreateGoalRequest) ToGoal() *goal.Goal {
	return &goal.Goal{
		Title:       r.Title,
		Timeframe:   goal.Timeframe(r.Timeframe),
		Domains:     r.Domains,
		ParentID:    r.ParentID,
		Description: r.Description,
		Hints:       r.Hints,
	}
}

// UpdateGoalRequest represents the JSON body for updating an existing goal.
// All fields are optional; absent fields are left unchanged. An explicitly
// empty domains list or hints object clears the set. The parent link is
// immutable and has no update field.
type UpdateGoalRequest struct {
	Description *string        `json:"description,omitempty"`
	Timeframe   *string        `json:"timeframe,omitempty"`
	Domains     []string       `json:"domains,omitempty"`
	Hints       map[string]any `json:"hints,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateGoalRequest) Validate() error {
	fields := make(map[string]string)

	if r.Timeframe != nil && !goal.Timeframe(*r.Timeframe).IsValid() {
		fields["timeframe"] = fmt.Sprintf("must be one of long, medium, short, task; got %q", *r.Timeframe)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToUpdate converts the request to a domain goal.Update.
func (r *UpdateGoalRequest) ToUpdate() goal.Update {
	upd := goal.Update{
		Description: r.Description,
		Domains:     r.Domains,
		Hints:       r.Hints,
	}
	if r.Timeframe != nil {
		tf := goal.Timeframe(*r.Timeframe)
		upd.Timeframe = &tf
	}
	return upd
}

// CheckRequest represents the JSON body for a coherence check.
type CheckRequest struct {
	Domain  string         `json:"domain"`
	Payload map[string]any `json:"payload"`
}

// Validate checks that the target domain is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CheckRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Domain) == "" {
		fields["domain"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RegisterModuleRequest represents the JSON body for registering a remote
// domain module.
type RegisterModuleRequest struct {
	Name                  string `json:"name"`
	Domain                string `json:"domain"`
	BaseURL               string `json:"base_url"`
	CrossDomainInterested bool   `json:"cross_domain_interested"`
}

// Validate checks that required fields are present and the base URL is an
// absolute http(s) URL. Returns a *domain.ValidationError if any checks fail.
func (r *RegisterModuleRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if strings.TrimSpace(r.Domain) == "" {
		fields["domain"] = msgRequired
	}
	if strings.TrimSpace(r.BaseURL) == "" {
		fields["base_url"] = msgRequired
	} else if u, err := url.Parse(r.BaseURL); err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		fields["base_url"] = fmt.Sprintf("must be an absolute http(s) URL, got %q", r.BaseURL)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
