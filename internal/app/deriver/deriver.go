// Package deriver turns goals into concrete constraints.
//
// The mapping policy is declarative: a rule table binds each goal-hint key
// to the constraint type and domain it derives (e.g. a budget_max hint on a
// finance goal derives a budget_max constraint scoped to finance). The table
// ships with defaults for the four built-in constraint types and is
// overridable through configuration.
package deriver

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
)

// Rule binds a goal-hint key to the constraint it derives. The rule's domain
// must be present on any goal carrying the hint, which is what upholds the
// invariant that a goal's domains cover its constraints' domains.
type Rule struct {
	Hint   string
	Type   string
	Domain string
}

// Deriver maps goals to constraints according to its rule table. It is
// immutable after construction and safe for concurrent use.
type Deriver struct {
	rules map[string]Rule
}

// DefaultRules returns the built-in rule table covering the four known
// constraint types.
func DefaultRules() []Rule {
	return []Rule{
		{Hint: "budget_max", Type: constraint.TypeBudgetMax, Domain: "finance"},
		{Hint: "time_window", Type: constraint.TypeTimeWindow, Domain: "calendar"},
		{Hint: "preference", Type: constraint.TypePreference, Domain: "tasks"},
		{Hint: "energy", Type: constraint.TypeEnergy, Domain: "tasks"},
	}
}

// New builds a Deriver from a rule table. Rules must carry a hint, a
// recognized constraint type, and a domain; hint keys must be unique.
// An empty table is valid — goals then simply derive no constraints and
// every hint is rejected as unknown.
func New(rules []Rule) (*Deriver, error) {
	table := make(map[string]Rule, len(rules))
	for i, r := range rules {
		r.Hint = strings.TrimSpace(r.Hint)
		r.Type = strings.TrimSpace(r.Type)
		r.Domain = strings.ToLower(strings.TrimSpace(r.Domain))

		if r.Hint == "" || r.Type == "" || r.Domain == "" {
			return nil, fmt.Errorf("derivation rule %d: hint, type, and domain are all required", i)
		}
		if !knownType(r.Type) {
			return nil, fmt.Errorf("derivation rule %q: unrecognized constraint type %q", r.Hint, r.Type)
		}
		if _, dup := table[r.Hint]; dup {
			return nil, fmt.Errorf("derivation rule %q: hint declared twice", r.Hint)
		}
		table[r.Hint] = r
	}
	return &Deriver{rules: table}, nil
}

// Derive maps a goal's hints to constraints, processed in sorted hint-key
// order so the derived set is deterministic. Unknown hints, hints whose rule
// targets a domain the goal does not carry, and unparseable hint values are
// configuration or caller errors: Derive fails with a *domain.ValidationError
// collecting every offending hint rather than silently skipping any.
//
// Returned constraints carry Type, Domain, and Payload only; the store stamps
// IDs, ownership, and timestamps when the goal is persisted.
func (d *Deriver) Derive(g *goal.Goal) ([]constraint.Constraint, error) {
	if len(g.Hints) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(g.Hints))
	for k := range g.Hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make(map[string]string)
	out := make([]constraint.Constraint, 0, len(keys))
	for _, key := range keys {
		rule, ok := d.rules[key]
		if !ok {
			fields[key] = "no derivation rule for this hint"
			continue
		}
		if !g.HasDomain(rule.Domain) {
			fields[key] = fmt.Sprintf("requires domain %q on the goal", rule.Domain)
			continue
		}

		payload, err := parseHint(rule.Type, g.Hints[key])
		if err != nil {
			fields[key] = err.Error()
			continue
		}

		out = append(out, constraint.Constraint{
			Type:    rule.Type,
			Domain:  rule.Domain,
			Payload: payload,
		})
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return out, nil
}

func knownType(t string) bool {
	switch t {
	case constraint.TypeBudgetMax, constraint.TypeTimeWindow, constraint.TypePreference, constraint.TypeEnergy:
		return true
	default:
		return false
	}
}

// parseHint converts a hint value into the payload shape of the target
// constraint type.
func parseHint(typ string, value any) (map[string]any, error) {
	switch typ {
	case constraint.TypeBudgetMax:
		limit, ok := hintFloat(value)
		if !ok {
			return nil, fmt.Errorf("must be a number, got %T", value)
		}
		return map[string]any{"limit": limit}, nil

	case constraint.TypeTimeWindow:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a HH:MM-HH:MM string, got %T", value)
		}
		start, end, ok := strings.Cut(s, "-")
		start, end = strings.TrimSpace(start), strings.TrimSpace(end)
		if !ok || !validClock(start) || !validClock(end) {
			return nil, fmt.Errorf("must be HH:MM-HH:MM, got %q", s)
		}
		return map[string]any{
			"start": start,
			"end":   end,
		}, nil

	case constraint.TypePreference:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be a field=value string, got %T", value)
		}
		field, val, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(field) == "" || strings.TrimSpace(val) == "" {
			return nil, fmt.Errorf("must be field=value, got %q", s)
		}
		return map[string]any{
			"field": strings.TrimSpace(field),
			"value": strings.TrimSpace(val),
		}, nil

	case constraint.TypeEnergy:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("must be one of low, medium, high; got %T", value)
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if _, ok := constraint.EnergyRank(s); !ok {
			return nil, fmt.Errorf("must be one of low, medium, high; got %q", s)
		}
		return map[string]any{"max": s}, nil

	default:
		return nil, fmt.Errorf("unsupported constraint type %q", typ)
	}
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func hintFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
