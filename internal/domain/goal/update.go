package goal

// Update describes a partial mutation of a goal's mutable fields. Nil fields
// are left unchanged; a non-nil empty Domains or Hints clears the set.
// ParentID is immutable after creation — hierarchy only changes through
// deletion's re-parenting — which is what keeps the tree acyclic.
type Update struct {
	Description *string
	Timeframe   *Timeframe
	Domains     []string
	Hints       map[string]any
}

// IsZero reports whether the update would change nothing.
func (u Update) IsZero() bool {
	return u.Description == nil && u.Timeframe == nil && u.Domains == nil && u.Hints == nil
}

// Apply merges the update into g. Domains are normalized after merging so
// the set invariant holds for the updated goal.
func (g *Goal) Apply(u Update) {
	if u.Description != nil {
		g.Description = *u.Description
	}
	if u.Timeframe != nil {
		g.Timeframe = *u.Timeframe
	}
	if u.Domains != nil {
		g.Domains = u.Domains
		g.NormalizeDomains()
	}
	if u.Hints != nil {
		g.Hints = u.Hints
	}
}
