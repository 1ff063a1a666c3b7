// Package coherence defines the value types produced by coherence checks:
// the per-module Report, the aggregated Verdict, and the planning Context
// snapshot. All three are ephemeral — constructed per call, never persisted.
package coherence

import (
	"fmt"

	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
)

// Report is what a single domain module returns for a proposed action.
// Valid=false with issues is an ordinary answer, not an error; a module that
// cannot answer at all returns an error alongside, never a Report.
type Report struct {
	Valid  bool
	Issues []string
}

// Verdict is the outcome of a full coherence check. Issues preserve discovery
// order: the acting domain's own issues first, then constraint violations,
// then cross-domain issues, each in evaluation order within its step.
type Verdict struct {
	Valid  bool
	Issues []string
}

// Issue prefixes by check step. Cross-domain issues additionally carry the
// reporting module's name.
const (
	domainIssuePrefix      = "domain"
	constraintIssuePrefix  = "constraint"
	crossDomainIssuePrefix = "cross-domain"
)

// DomainIssue formats an issue reported by the acting domain's own module.
func DomainIssue(text string) string {
	return fmt.Sprintf("%s: %s", domainIssuePrefix, text)
}

// ConstraintIssue formats a constraint violation, traceable to the owning
// goal through the constraint's GoalID.
func ConstraintIssue(c *constraint.Constraint, violation string) string {
	return fmt.Sprintf("%s %s: %s (goal %s)", constraintIssuePrefix, c.Type, violation, c.GoalID)
}

// CrossDomainIssue formats an issue surfaced by a cross-domain-interested
// module, tagged with that module's name.
func CrossDomainIssue(module, text string) string {
	return fmt.Sprintf("%s [%s]: %s", crossDomainIssuePrefix, module, text)
}

// Context is a read-only snapshot of all goals and their derived constraints
// grouped by domain, assembled for planning consumers. It is recomputed on
// every call; two snapshots taken with no interleaved mutation are
// structurally equal.
type Context struct {
	Goals               []goal.Goal
	ConstraintsByDomain map[string][]constraint.Constraint
}
