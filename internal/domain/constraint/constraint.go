// Package constraint defines the Constraint entity and the predicate
// evaluation that turns constraints into coherence-check violations.
//
// A constraint is a concrete, domain-scoped rule derived from exactly one
// goal. The Type set is open: the four types below have built-in predicate
// semantics, and unrecognized types are rejected at derivation time.
package constraint

import "time"

// Known constraint types. Type is a plain string in the data model, but only
// these carry evaluation semantics.
const (
	TypeBudgetMax  = "budget_max"
	TypeTimeWindow = "time_window"
	TypePreference = "preference"
	TypeEnergy     = "energy"
)

// Constraint is a concrete rule derived from a goal, scoped to one domain.
// GoalID records ownership: every constraint is traceable to exactly one
// goal, and deleting that goal deletes its constraints.
type Constraint struct {
	ID        string
	Type      string
	Domain    string
	GoalID    string
	Payload   map[string]any
	CreatedAt time.Time
}

// Energy levels form an ordinal scale for the energy constraint type.
var energyRank = map[string]int{
	"low":    0,
	"medium": 1,
	"high":   2,
}

// EnergyRank returns the ordinal rank of an energy level and whether the
// level is recognized.
func EnergyRank(level string) (int, bool) {
	r, ok := energyRank[level]
	return r, ok
}
