// Package goal defines the Goal entity: a hierarchical objective with a
// planning timeframe, a set of affected domains, and derivation hints from
// which concrete constraints are computed.
package goal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
)

// Goal represents a personal or organizational objective. Goals form a tree
// via ParentID (a weak reference by ID, never an embedded pointer): deleting
// a goal re-parents its children to the deleted goal's parent, so no child
// is ever left with a dangling reference.
type Goal struct {
	ID          string
	Title       string
	Timeframe   Timeframe
	Domains     []string
	ParentID    *string
	Description string
	Hints       map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Goal entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
//
// Parent existence is not checked here — that requires store access and is
// enforced by the goal store inside its write lock.
func (g *Goal) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(g.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !g.Timeframe.IsValid() {
		fields["timeframe"] = fmt.Sprintf("must be one of long, medium, short, task; got %q", g.Timeframe)
	}
	for _, d := range g.Domains {
		if strings.TrimSpace(d) == "" {
			fields["domains"] = "must not contain empty entries"
			break
		}
	}
	if g.ParentID != nil && strings.TrimSpace(*g.ParentID) == "" {
		fields["parent_id"] = "must not be blank when present"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// NormalizeDomains canonicalizes the goal's domain set: entries are trimmed,
// lowercased, deduplicated, and sorted. Callers should normalize before
// validation so that set semantics hold regardless of input order.
func (g *Goal) NormalizeDomains() {
	g.Domains = NormalizeDomains(g.Domains)
}

// HasDomain reports whether the goal's domain set contains d.
// Assumes the set has been normalized.
func (g *Goal) HasDomain(d string) bool {
	d = strings.ToLower(strings.TrimSpace(d))
	for _, have := range g.Domains {
		if have == d {
			return true
		}
	}
	return false
}

// NormalizeDomains returns a canonical copy of a domain name list: trimmed,
// lowercased, deduplicated, sorted. Empty entries are preserved (and rejected
// later by Validate) so that malformed input surfaces as a field error rather
// than vanishing silently.
func NormalizeDomains(in []string) []string {
	if len(in) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, d := range in {
		d = strings.ToLower(strings.TrimSpace(d))
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
