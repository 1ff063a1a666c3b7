// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/goal, domain/constraint,
// domain/coherence). This root package holds sentinel errors and validation
// types shared across all entities.
package domain

// MsgRequired is the field-level message for missing required values.
const MsgRequired = "is required"
