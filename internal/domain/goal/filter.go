package goal

// Filter holds optional filter criteria for listing goals.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Domain    string
	Timeframe Timeframe
}

// Matches reports whether g satisfies every set criterion.
func (f Filter) Matches(g *Goal) bool {
	if f.Domain != "" && !g.HasDomain(f.Domain) {
		return false
	}
	if f.Timeframe != "" && g.Timeframe != f.Timeframe {
		return false
	}
	return true
}
