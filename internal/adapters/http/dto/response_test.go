package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/goalkeeper/internal/adapters/http/dto"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/coherence"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validGoal() goal.Goal {
	return goal.Goal{
		ID:          "goal-1",
		Title:       "Save for vacation",
		Timeframe:   goal.TimeframeMedium,
		Domains:     []string{"calendar", "finance"},
		Description: "Three weeks in autumn",
		Hints:       map[string]any{"budget_max": 2000.0},
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validConstraint() constraint.Constraint {
	return constraint.Constraint{
		ID:        "con-1",
		Type:      constraint.TypeBudgetMax,
		Domain:    "finance",
		GoalID:    "goal-1",
		Payload:   map[string]any{"limit": 2000.0},
		CreatedAt: testTime,
	}
}

func TestToGoalResponse(t *testing.T) {
	t.Parallel()

	g := validGoal()
	got := dto.ToGoalResponse(&g)

	if got.ID != "goal-1" {
		t.Errorf("ID = %q, want goal-1", got.ID)
	}
	if got.Title != g.Title {
		t.Errorf("Title = %q, want %q", got.Title, g.Title)
	}
	if got.Timeframe != "medium" {
		t.Errorf("Timeframe = %q, want medium", got.Timeframe)
	}
	if len(got.Domains) != 2 {
		t.Errorf("len(Domains) = %d, want 2", len(got.Domains))
	}
	if got.ParentID != nil {
		t.Errorf("ParentID = %v, want nil", got.ParentID)
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", got.CreatedAt)
	}
	if got.UpdatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("UpdatedAt = %q, want RFC3339", got.UpdatedAt)
	}
}

func TestToGoalResponse_ParentID(t *testing.T) {
	t.Parallel()

	g := validGoal()
	parent := "goal-0"
	g.ParentID = &parent

	got := dto.ToGoalResponse(&g)

	if got.ParentID == nil || *got.ParentID != "goal-0" {
		t.Errorf("ParentID = %v, want goal-0", got.ParentID)
	}
}

func TestToGoalWithConstraintsResponse(t *testing.T) {
	t.Parallel()

	g := validGoal()
	got := dto.ToGoalWithConstraintsResponse(&g, []constraint.Constraint{validConstraint()})

	if got.Goal.ID != "goal-1" {
		t.Errorf("Goal.ID = %q, want goal-1", got.Goal.ID)
	}
	if len(got.Constraints) != 1 {
		t.Fatalf("len(Constraints) = %d, want 1", len(got.Constraints))
	}
	if got.Constraints[0].Type != constraint.TypeBudgetMax {
		t.Errorf("Constraints[0].Type = %q, want budget_max", got.Constraints[0].Type)
	}
}

func TestToGoalWithConstraintsResponse_EmptyConstraintsNotNull(t *testing.T) {
	t.Parallel()

	g := validGoal()
	got := dto.ToGoalWithConstraintsResponse(&g, nil)

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded["constraints"]) != "[]" {
		t.Errorf("constraints = %s, want []", decoded["constraints"])
	}
}

func TestToGoalListResponse(t *testing.T) {
	t.Parallel()

	g1 := validGoal()
	g2 := validGoal()
	g2.ID = "goal-2"

	got := dto.ToGoalListResponse([]goal.Goal{g1, g2})

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if len(got.Goals) != 2 {
		t.Fatalf("len(Goals) = %d, want 2", len(got.Goals))
	}
	if got.Goals[1].ID != "goal-2" {
		t.Errorf("Goals[1].ID = %q, want goal-2", got.Goals[1].ID)
	}
}

func TestToGoalListResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToGoalListResponse(nil)

	if got.Count != 0 {
		t.Errorf("Count = %d, want 0", got.Count)
	}

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded["goals"]) != "[]" {
		t.Errorf("goals = %s, want []", decoded["goals"])
	}
}

func TestToConstraintResponse(t *testing.T) {
	t.Parallel()

	c := validConstraint()
	got := dto.ToConstraintResponse(&c)

	if got.ID != "con-1" {
		t.Errorf("ID = %q, want con-1", got.ID)
	}
	if got.Type != constraint.TypeBudgetMax {
		t.Errorf("Type = %q, want budget_max", got.Type)
	}
	if got.Domain != "finance" {
		t.Errorf("Domain = %q, want finance", got.Domain)
	}
	if got.GoalID != "goal-1" {
		t.Errorf("GoalID = %q, want goal-1", got.GoalID)
	}
	if got.Payload["limit"] != 2000.0 {
		t.Errorf("Payload[limit] = %v, want 2000.0", got.Payload["limit"])
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", got.CreatedAt)
	}
}

func TestToConstraintListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToConstraintListResponse([]constraint.Constraint{validConstraint()})

	if got.Count != 1 {
		t.Errorf("Count = %d, want 1", got.Count)
	}
	if len(got.Constraints) != 1 {
		t.Fatalf("len(Constraints) = %d, want 1", len(got.Constraints))
	}
}

func TestToVerdictResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verdict    coherence.Verdict
		wantValid  bool
		wantIssues int
	}{
		{
			name:      "valid verdict",
			verdict:   coherence.Verdict{Valid: true},
			wantValid: true,
		},
		{
			name: "invalid verdict carries issues",
			verdict: coherence.Verdict{
				Valid:  false,
				Issues: []string{"constraint budget_max: limit exceeded (goal goal-1)"},
			},
			wantIssues: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := dto.ToVerdictResponse(&tt.verdict)

			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if len(got.Issues) != tt.wantIssues {
				t.Errorf("len(Issues) = %d, want %d", len(got.Issues), tt.wantIssues)
			}
		})
	}
}

func TestToVerdictResponse_IssuesNeverNull(t *testing.T) {
	t.Parallel()

	got := dto.ToVerdictResponse(&coherence.Verdict{Valid: true})

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded["issues"]) != "[]" {
		t.Errorf("issues = %s, want []", decoded["issues"])
	}
}

func TestToContextResponse(t *testing.T) {
	t.Parallel()

	ctx := coherence.Context{
		Goals: []goal.Goal{validGoal()},
		ConstraintsByDomain: map[string][]constraint.Constraint{
			"finance": {validConstraint()},
		},
	}

	got := dto.ToContextResponse(&ctx)

	if len(got.Goals) != 1 {
		t.Fatalf("len(Goals) = %d, want 1", len(got.Goals))
	}
	if got.Goals[0].ID != "goal-1" {
		t.Errorf("Goals[0].ID = %q, want goal-1", got.Goals[0].ID)
	}
	finance, ok := got.ConstraintsByDomain["finance"]
	if !ok {
		t.Fatalf("ConstraintsByDomain missing finance: %v", got.ConstraintsByDomain)
	}
	if len(finance) != 1 || finance[0].ID != "con-1" {
		t.Errorf("finance constraints = %v, want [con-1]", finance)
	}
}

func TestToModuleResponse(t *testing.T) {
	t.Parallel()

	reg := ports.Registration{
		Name:                  "finance-module",
		Domain:                "finance",
		CrossDomainInterested: true,
	}

	got := dto.ToModuleResponse(reg)

	if got.Name != "finance-module" {
		t.Errorf("Name = %q, want finance-module", got.Name)
	}
	if got.Domain != "finance" {
		t.Errorf("Domain = %q, want finance", got.Domain)
	}
	if !got.CrossDomainInterested {
		t.Error("CrossDomainInterested = false, want true")
	}
}

func TestToModuleListResponse(t *testing.T) {
	t.Parallel()

	regs := []ports.Registration{
		{Name: "finance-module", Domain: "finance"},
		{Name: "calendar-module", Domain: "calendar", CrossDomainInterested: true},
	}

	got := dto.ToModuleListResponse(regs)

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if len(got.Modules) != 2 {
		t.Fatalf("len(Modules) = %d, want 2", len(got.Modules))
	}
	if got.Modules[0].Name != "finance-module" {
		t.Errorf("Modules[0].Name = %q, want finance-module", got.Modules[0].Name)
	}
	if got.Modules[1].Name != "calendar-module" {
		t.Errorf("Modules[1].Name = %q, want calendar-module", got.Modules[1].Name)
	}
}
