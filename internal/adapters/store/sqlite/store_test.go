package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jsamuelsen11/goalkeeper/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "goals.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newGoal(title string, tf goal.Timeframe, domains ...string) *goal.Goal {
	return &goal.Goal{Title: title, Timeframe: tf, Domains: domains}
}

func budget(dom string, limit float64) constraint.Constraint {
	return constraint.Constraint{
		Type:    constraint.TypeBudgetMax,
		Domain:  dom,
		Payload: map[string]any{"limit": limit},
	}
}

func mustAdd(t *testing.T, s *sqlite.Store, g *goal.Goal, cs ...constraint.Constraint) *goal.Goal {
	t.Helper()
	stored, _, err := s.AddGoal(context.Background(), g, cs)
	if err != nil {
		t.Fatalf("AddGoal(%q) error = %v", g.Title, err)
	}
	return stored
}

// --- AddGoal ---

func TestStore_AddGoal(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and timestamps and stamps constraints", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		stored, cs, err := s.AddGoal(context.Background(),
			newGoal("Reduce expenses", goal.TimeframeMedium, "finance"),
			[]constraint.Constraint{budget("finance", 150)})
		if err != nil {
			t.Fatalf("AddGoal() error = %v", err)
		}
		if stored.ID == "" {
			t.Error("AddGoal() left ID empty")
		}
		if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
			t.Error("AddGoal() left timestamps zero")
		}
		if len(cs) != 1 {
			t.Fatalf("AddGoal() constraints = %d, want 1", len(cs))
		}
		if cs[0].ID == "" || cs[0].GoalID != stored.ID || cs[0].CreatedAt.IsZero() {
			t.Errorf("AddGoal() constraint = %+v, want stamped with id, goal id, created_at", cs[0])
		}
	})

	t.Run("accepts an existing parent", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		parent := mustAdd(t, s, newGoal("Financial health", goal.TimeframeLong, "finance"))

		child := newGoal("Reduce expenses", goal.TimeframeMedium, "finance")
		child.ParentID = &parent.ID

		stored := mustAdd(t, s, child)
		if stored.ParentID == nil || *stored.ParentID != parent.ID {
			t.Errorf("AddGoal() ParentID = %v, want %q", stored.ParentID, parent.ID)
		}
	})

	t.Run("rejects an unresolved parent", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		bad := newGoal("Orphan", goal.TimeframeShort, "tasks")
		missing := "does-not-exist"
		bad.ParentID = &missing

		_, _, err := s.AddGoal(context.Background(), bad, nil)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("AddGoal() error = %v, want ErrValidation", err)
		}
	})
}

// --- GetGoal / ListGoals ---

func TestStore_GetGoal(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		in := newGoal("Reduce expenses", goal.TimeframeMedium, "finance", "tasks")
		in.Description = "cut discretionary spending"
		in.Hints = map[string]any{"budget_max": 150.0}
		stored := mustAdd(t, s, in)

		got, err := s.GetGoal(context.Background(), stored.ID)
		if err != nil {
			t.Fatalf("GetGoal() error = %v", err)
		}
		if got.Title != in.Title || got.Description != in.Description {
			t.Errorf("GetGoal() = %+v, want title/description round-tripped", got)
		}
		if !reflect.DeepEqual(got.Domains, []string{"finance", "tasks"}) {
			t.Errorf("GetGoal().Domains = %v, want [finance tasks]", got.Domains)
		}
		if got.Hints["budget_max"] != 150.0 {
			t.Errorf("GetGoal().Hints = %v, want budget_max 150", got.Hints)
		}
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		_, err := s.GetGoal(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetGoal() error = %v, want ErrNotFound", err)
		}
	})
}

func TestStore_ListGoals(t *testing.T) {
	t.Parallel()

	t.Run("returns goals in creation order", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)
		mustAdd(t, s, newGoal("first", goal.TimeframeLong, "finance"))
		mustAdd(t, s, newGoal("second", goal.TimeframeTask, "tasks"))
		mustAdd(t, s, newGoal("third", goal.TimeframeShort, "calendar"))

		got, err := s.ListGoals(context.Background(), goal.Filter{})
		if err != nil {
			t.Fatalf("ListGoals() error = %v", err)
		}
		titles := make([]string, len(got))
		for i, g := range got {
			titles[i] = g.Title
		}
		want := []string{"first", "second", "third"}
		if !reflect.DeepEqual(titles, want) {
			t.Errorf("ListGoals() order = %v, want %v", titles, want)
		}
	})

	t.Run("filters by domain and timeframe", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)
		mustAdd(t, s, newGoal("fin long", goal.TimeframeLong, "finance"))
		mustAdd(t, s, newGoal("fin short", goal.TimeframeShort, "finance"))
		mustAdd(t, s, newGoal("cal short", goal.TimeframeShort, "calendar"))

		both, err := s.ListGoals(context.Background(), goal.Filter{Domain: "finance", Timeframe: goal.TimeframeShort})
		if err != nil {
			t.Fatalf("ListGoals() error = %v", err)
		}
		if len(both) != 1 || both[0].Title != "fin short" {
			t.Errorf("ListGoals(domain+timeframe) = %+v, want fin short only", both)
		}
	})
}

// --- UpdateGoal ---

func TestStore_UpdateGoal(t *testing.T) {
	t.Parallel()

	t.Run("replaces mutable fields and swaps constraints", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)
		stored, origCs, err := s.AddGoal(context.Background(),
			newGoal("Reduce expenses", goal.TimeframeMedium, "finance"),
			[]constraint.Constraint{budget("finance", 150)})
		if err != nil {
			t.Fatalf("AddGoal() error = %v", err)
		}

		updated := *stored
		updated.Description = "tightened"
		got, gotCs, err := s.UpdateGoal(context.Background(), &updated,
			[]constraint.Constraint{budget("finance", 90)})
		if err != nil {
			t.Fatalf("UpdateGoal() error = %v", err)
		}
		if got.Description != "tightened" {
			t.Errorf("UpdateGoal().Description = %q, want tightened", got.Description)
		}
		if len(gotCs) != 1 || gotCs[0].Payload["limit"] != float64(90) {
			t.Fatalf("UpdateGoal() constraints = %+v, want replaced set", gotCs)
		}
		if gotCs[0].ID == origCs[0].ID {
			t.Error("UpdateGoal() reused the replaced constraint's id")
		}

		cs, err := s.ConstraintsForDomain(context.Background(), "finance")
		if err != nil {
			t.Fatalf("ConstraintsForDomain() error = %v", err)
		}
		if len(cs) != 1 || cs[0].Payload["limit"] != float64(90) {
			t.Errorf("ConstraintsForDomain() = %+v, want only the new constraint", cs)
		}
	})

	t.Run("preserves the parent link", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)
		parent := mustAdd(t, s, newGoal("parent", goal.TimeframeLong, "finance"))
		child := newGoal("child", goal.TimeframeShort, "finance")
		child.ParentID = &parent.ID
		storedChild := mustAdd(t, s, child)

		tampered := *storedChild
		other := "someone-else"
		tampered.ParentID = &other

		got, _, err := s.UpdateGoal(context.Background(), &tampered, nil)
		if err != nil {
			t.Fatalf("UpdateGoal() error = %v", err)
		}
		if got.ParentID == nil || *got.ParentID != parent.ID {
			t.Errorf("UpdateGoal().ParentID = %v, want preserved %q", got.ParentID, parent.ID)
		}
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		ghost := newGoal("ghost", goal.TimeframeTask, "tasks")
		ghost.ID = "missing"

		_, _, err := s.UpdateGoal(context.Background(), ghost, nil)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("UpdateGoal() error = %v, want ErrNotFound", err)
		}
	})
}

// --- RemoveGoal ---

func TestStore_RemoveGoal(t *testing.T) {
	t.Parallel()

	t.Run("re-parents children to the deleted goal's parent", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		root := mustAdd(t, s, newGoal("root", goal.TimeframeLong, "finance"))
		mid := newGoal("mid", goal.TimeframeMedium, "finance")
		mid.ParentID = &root.ID
		storedMid := mustAdd(t, s, mid)
		leaf := newGoal("leaf", goal.TimeframeShort, "finance")
		leaf.ParentID = &storedMid.ID
		storedLeaf := mustAdd(t, s, leaf)

		if err := s.RemoveGoal(context.Background(), storedMid.ID); err != nil {
			t.Fatalf("RemoveGoal() error = %v", err)
		}

		got, err := s.GetGoal(context.Background(), storedLeaf.ID)
		if err != nil {
			t.Fatalf("GetGoal() error = %v", err)
		}
		if got.ParentID == nil || *got.ParentID != root.ID {
			t.Errorf("leaf.ParentID = %v, want re-parented to %q", got.ParentID, root.ID)
		}
	})

	t.Run("children of a deleted root become roots", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		root := mustAdd(t, s, newGoal("root", goal.TimeframeLong, "finance"))
		child := newGoal("child", goal.TimeframeShort, "finance")
		child.ParentID = &root.ID
		storedChild := mustAdd(t, s, child)

		if err := s.RemoveGoal(context.Background(), root.ID); err != nil {
			t.Fatalf("RemoveGoal() error = %v", err)
		}

		got, err := s.GetGoal(context.Background(), storedChild.ID)
		if err != nil {
			t.Fatalf("GetGoal() error = %v", err)
		}
		if got.ParentID != nil {
			t.Errorf("child.ParentID = %q, want nil after root deletion", *got.ParentID)
		}
	})

	t.Run("cascades constraint removal", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		keep := mustAdd(t, s, newGoal("keep", goal.TimeframeShort, "finance"), budget("finance", 100))
		drop := mustAdd(t, s, newGoal("drop", goal.TimeframeTask, "finance"), budget("finance", 50))

		if err := s.RemoveGoal(context.Background(), drop.ID); err != nil {
			t.Fatalf("RemoveGoal() error = %v", err)
		}

		cs, err := s.ConstraintsForDomain(context.Background(), "finance")
		if err != nil {
			t.Fatalf("ConstraintsForDomain() error = %v", err)
		}
		if len(cs) != 1 || cs[0].GoalID != keep.ID {
			t.Errorf("ConstraintsForDomain() = %+v, want only the surviving goal's constraint", cs)
		}
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		t.Parallel()
		s := openStore(t)

		err := s.RemoveGoal(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("RemoveGoal() error = %v, want ErrNotFound", err)
		}
	})
}

// --- ConstraintsForDomain ---

func TestStore_ConstraintsForDomain_Ordering(t *testing.T) {
	t.Parallel()
	s := openStore(t)

	// Creation order deliberately disagrees with binding order.
	mustAdd(t, s, newGoal("long-term", goal.TimeframeLong, "finance"), budget("finance", 1))
	mustAdd(t, s, newGoal("today", goal.TimeframeTask, "finance"), budget("finance", 2))
	mustAdd(t, s, newGoal("this month", goal.TimeframeShort, "finance"),
		budget("finance", 3), budget("finance", 4))

	cs, err := s.ConstraintsForDomain(context.Background(), "finance")
	if err != nil {
		t.Fatalf("ConstraintsForDomain() error = %v", err)
	}

	limits := make([]float64, len(cs))
	for i, c := range cs {
		limits[i], _ = c.Payload["limit"].(float64)
	}
	// task first, then short (both constraints, derivation order), then long.
	want := []float64{2, 3, 4, 1}
	if !reflect.DeepEqual(limits, want) {
		t.Errorf("ConstraintsForDomain() order = %v, want %v", limits, want)
	}
}

// --- Snapshot ---

func TestStore_Snapshot_Idempotent(t *testing.T) {
	t.Parallel()
	s := openStore(t)
	mustAdd(t, s, newGoal("A", goal.TimeframeShort, "finance"), budget("finance", 100))
	mustAdd(t, s, newGoal("B", goal.TimeframeTask, "calendar"))

	g1, c1, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	g2, c2, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if !reflect.DeepEqual(g1, g2) || !reflect.DeepEqual(c1, c2) {
		t.Error("Snapshot() results differ between calls with no mutations")
	}
}

// --- persistence ---

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "goals.db")
	s, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	stored := mustAdd(t, s, newGoal("durable", goal.TimeframeLong, "finance"), budget("finance", 100))
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open() after close error = %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.GetGoal(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("GetGoal() after reopen error = %v", err)
	}
	if got.Title != "durable" {
		t.Errorf("GetGoal().Title = %q, want durable", got.Title)
	}

	cs, err := reopened.ConstraintsForDomain(context.Background(), "finance")
	if err != nil {
		t.Fatalf("ConstraintsForDomain() after reopen error = %v", err)
	}
	if len(cs) != 1 || cs[0].GoalID != stored.ID {
		t.Errorf("ConstraintsForDomain() after reopen = %+v, want the stored constraint", cs)
	}
}
