package constraint

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
)

// Action payload keys that trigger each constraint type. A constraint whose
// trigger key is absent from the payload is not applicable to the action and
// produces no violation.
const (
	keyCost   = "cost"
	keyTime   = "time"
	keyEnergy = "energy"
)

// clockLayout parses "HH:MM" wall-clock values in payloads and windows.
const clockLayout = "15:04"

// Evaluate applies c's predicate to an action payload. The returned string is
// the human-readable violation text, non-empty only when violated is true.
//
// Error cases are kept apart from violations: a payload value of the wrong
// type is the caller's bug and yields a *domain.ValidationError; a malformed
// constraint payload or an unrecognized type cannot originate from a caller
// (derivation rejects both) and wraps domain.ErrSystem.
func Evaluate(c *Constraint, payload map[string]any) (string, bool, error) {
	switch c.Type {
	case TypeBudgetMax:
		return evalBudgetMax(c, payload)
	case TypeTimeWindow:
		return evalTimeWindow(c, payload)
	case TypePreference:
		return evalPreference(c, payload)
	case TypeEnergy:
		return evalEnergy(c, payload)
	default:
		return "", false, fmt.Errorf("%w: constraint %s has unrecognized type %q", domain.ErrSystem, c.ID, c.Type)
	}
}

func evalBudgetMax(c *Constraint, payload map[string]any) (string, bool, error) {
	raw, ok := payload[keyCost]
	if !ok {
		return "", false, nil
	}
	cost, ok := toFloat(raw)
	if !ok {
		return "", false, &domain.ValidationError{Fields: map[string]string{keyCost: "must be a number"}}
	}

	limit, err := payloadFloat(c, "limit")
	if err != nil {
		return "", false, err
	}

	if cost > limit {
		return fmt.Sprintf("cost %.2f exceeds limit %.2f", cost, limit), true, nil
	}
	return "", false, nil
}

func evalTimeWindow(c *Constraint, payload map[string]any) (string, bool, error) {
	raw, ok := payload[keyTime]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, &domain.ValidationError{Fields: map[string]string{keyTime: "must be a HH:MM string"}}
	}
	at, err := time.Parse(clockLayout, s)
	if err != nil {
		return "", false, &domain.ValidationError{Fields: map[string]string{keyTime: fmt.Sprintf("must be HH:MM, got %q", s)}}
	}

	startStr, err := payloadString(c, "start")
	if err != nil {
		return "", false, err
	}
	endStr, err := payloadString(c, "end")
	if err != nil {
		return "", false, err
	}
	start, err := time.Parse(clockLayout, startStr)
	if err != nil {
		return "", false, fmt.Errorf("%w: constraint %s has malformed window start %q", domain.ErrSystem, c.ID, startStr)
	}
	end, err := time.Parse(clockLayout, endStr)
	if err != nil {
		return "", false, fmt.Errorf("%w: constraint %s has malformed window end %q", domain.ErrSystem, c.ID, endStr)
	}

	if !inWindow(minuteOfDay(at), minuteOfDay(start), minuteOfDay(end)) {
		return fmt.Sprintf("time %s outside window %s-%s", s, startStr, endStr), true, nil
	}
	return "", false, nil
}

func evalPreference(c *Constraint, payload map[string]any) (string, bool, error) {
	field, err := payloadString(c, "field")
	if err != nil {
		return "", false, err
	}
	want, err := payloadString(c, "value")
	if err != nil {
		return "", false, err
	}

	raw, ok := payload[field]
	if !ok {
		return "", false, nil
	}
	got, ok := raw.(string)
	if !ok {
		return "", false, &domain.ValidationError{Fields: map[string]string{field: "must be a string"}}
	}

	if got != want {
		return fmt.Sprintf("%s %q conflicts with preferred %q", field, got, want), true, nil
	}
	return "", false, nil
}

func evalEnergy(c *Constraint, payload map[string]any) (string, bool, error) {
	raw, ok := payload[keyEnergy]
	if !ok {
		return "", false, nil
	}
	got, ok := raw.(string)
	if !ok {
		return "", false, &domain.ValidationError{Fields: map[string]string{keyEnergy: "must be one of low, medium, high"}}
	}
	gotRank, ok := EnergyRank(got)
	if !ok {
		return "", false, &domain.ValidationError{Fields: map[string]string{keyEnergy: fmt.Sprintf("must be one of low, medium, high; got %q", got)}}
	}

	maxLevel, err := payloadString(c, "max")
	if err != nil {
		return "", false, err
	}
	maxRank, ok := EnergyRank(maxLevel)
	if !ok {
		return "", false, fmt.Errorf("%w: constraint %s has unrecognized energy level %q", domain.ErrSystem, c.ID, maxLevel)
	}

	if gotRank > maxRank {
		return fmt.Sprintf("energy %s exceeds maximum %s", got, maxLevel), true, nil
	}
	return "", false, nil
}

// inWindow reports whether minute t lies inside [start, end]. A window whose
// start is after its end wraps midnight (e.g. 22:00-06:00).
func inWindow(t, start, end int) bool {
	if start <= end {
		return t >= start && t <= end
	}
	return t >= start || t <= end
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// payloadFloat extracts a required numeric field from the constraint's own
// payload. Absence or a non-numeric value means the stored constraint is
// malformed, which is a system fault, not a caller error.
func payloadFloat(c *Constraint, key string) (float64, error) {
	raw, ok := c.Payload[key]
	if !ok {
		return 0, fmt.Errorf("%w: constraint %s payload missing %q", domain.ErrSystem, c.ID, key)
	}
	f, ok := toFloat(raw)
	if !ok {
		return 0, fmt.Errorf("%w: constraint %s payload field %q is not numeric", domain.ErrSystem, c.ID, key)
	}
	return f, nil
}

// payloadString extracts a required string field from the constraint's own
// payload.
func payloadString(c *Constraint, key string) (string, error) {
	raw, ok := c.Payload[key]
	if !ok {
		return "", fmt.Errorf("%w: constraint %s payload missing %q", domain.ErrSystem, c.ID, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: constraint %s payload field %q is not a string", domain.ErrSystem, c.ID, key)
	}
	return s, nil
}

// toFloat widens the numeric types that reach payloads either from JSON
// decoding (float64) or from in-process callers (int variants).
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
