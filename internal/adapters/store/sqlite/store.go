// Package sqlite provides a GoalStore backed by an embedded SQLite database
// using the pure-Go modernc driver, so deployments stay cgo-free. Goals and
// constraints live in two tables migrated by goose at open time; every
// multi-row mutation runs inside one transaction, which is what gives the
// cascade and re-parenting rules their atomicity.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/goalkeeper/internal/domain"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/constraint"
	"github.com/jsamuelsen11/goalkeeper/internal/domain/goal"
	"github.com/jsamuelsen11/goalkeeper/internal/ports"
)

// Compile-time check that Store implements ports.GoalStore.
var _ ports.GoalStore = (*Store)(nil)

// Store is the SQLite-backed GoalStore implementation.
//
// The pool is capped at a single connection: SQLite allows one writer at a
// time anyway, and a single connection makes the session PRAGMAs apply to
// every statement the store runs.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating the file and any missing parent
// directories, and runs pending migrations. Use ":memory:" for throwaway
// state in tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name identifies the store for health reporting.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck pings the database. Together with Name, this lets Store
// satisfy the ports.HealthChecker interface.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// AddGoal persists a goal and its derived constraints in one transaction.
func (s *Store) AddGoal(ctx context.Context, g *goal.Goal, cs []constraint.Constraint) (*goal.Goal, []constraint.Constraint, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if g.ParentID != nil {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM goals WHERE id = ?`, *g.ParentID).Scan(&n); err != nil {
			return nil, nil, fmt.Errorf("checking parent: %w", err)
		}
		if n == 0 {
			return nil, nil, &domain.ValidationError{Fields: map[string]string{
				"parent_id": fmt.Sprintf("does not reference an existing goal: %q", *g.ParentID),
			}}
		}
	}

	now := time.Now().UTC()
	stored := *g
	stored.ID = uuid.NewString()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	domains, err := json.Marshal(stored.Domains)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding domains: %w", err)
	}
	hints, err := json.Marshal(stored.Hints)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding hints: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO goals (id, title, timeframe, domains, parent_id, description, hints, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, stored.Title, string(stored.Timeframe), string(domains),
		stored.ParentID, stored.Description, string(hints), stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("inserting goal: %w", err)
	}

	owned, err := insertConstraints(ctx, tx, cs, stored.ID, now)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &stored, owned, nil
}

// GetGoal returns a goal by ID.
func (s *Store) GetGoal(ctx context.Context, id string) (*goal.Goal, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, timeframe, domains, parent_id, description, hints, created_at, updated_at
		 FROM goals WHERE id = ?`, id)

	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching goal: %w", err)
	}
	return g, nil
}

// ListGoals returns goals in creation order, filtered by f. Filtering happens
// in process because the domain set is a JSON column; goal sets stay small.
func (s *Store) ListGoals(ctx context.Context, f goal.Filter) ([]goal.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, timeframe, domains, parent_id, description, hints, created_at, updated_at
		 FROM goals ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	out := make([]goal.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		if f.Matches(g) {
			out = append(out, *g)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return out, nil
}

// UpdateGoal replaces the goal's mutable fields and swaps its constraint set
// in one transaction. The parent link and creation time are read back from
// the stored row, never taken from the caller.
func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal, cs []constraint.Constraint) (*goal.Goal, []constraint.Constraint, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var createdAt time.Time
	var parentID sql.NullString
	err = tx.QueryRowContext(ctx, `SELECT created_at, parent_id FROM goals WHERE id = ?`, g.ID).
		Scan(&createdAt, &parentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("goal %q: %w", g.ID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("fetching goal for update: %w", err)
	}

	now := time.Now().UTC()
	stored := *g
	stored.CreatedAt = createdAt
	stored.UpdatedAt = now
	stored.ParentID = nil
	if parentID.Valid {
		stored.ParentID = &parentID.String
	}

	domains, err := json.Marshal(stored.Domains)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding domains: %w", err)
	}
	hints, err := json.Marshal(stored.Hints)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding hints: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE goals SET title = ?, timeframe = ?, domains = ?, description = ?, hints = ?, updated_at = ?
		 WHERE id = ?`,
		stored.Title, string(stored.Timeframe), string(domains), stored.Description, string(hints),
		stored.UpdatedAt, stored.ID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("updating goal: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM constraints WHERE goal_id = ?`, stored.ID); err != nil {
		return nil, nil, fmt.Errorf("clearing constraints: %w", err)
	}
	owned, err := insertConstraints(ctx, tx, cs, stored.ID, now)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing transaction: %w", err)
	}

	return &stored, owned, nil
}

// RemoveGoal deletes a goal in one transaction: children are re-pointed to
// the deleted goal's parent first, then the row is deleted and its
// constraints go with it through the foreign key cascade.
func (s *Store) RemoveGoal(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var parentID sql.NullString
	err = tx.QueryRowContext(ctx, `SELECT parent_id FROM goals WHERE id = ?`, id).Scan(&parentID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("goal %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("fetching goal for removal: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE goals SET parent_id = ? WHERE parent_id = ?`, parentID, id); err != nil {
		return fmt.Errorf("re-parenting children: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ConstraintsForDomain returns the domain's constraints ordered by the owning
// goal's timeframe rank, then goal creation order, then derivation order.
func (s *Store) ConstraintsForDomain(ctx context.Context, dom string) ([]constraint.Constraint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.type, c.domain, c.goal_id, c.payload, c.created_at
		FROM constraints c
		JOIN goals g ON g.id = c.goal_id
		WHERE c.domain = ?
		ORDER BY CASE g.timeframe
			WHEN 'task' THEN 0
			WHEN 'short' THEN 1
			WHEN 'medium' THEN 2
			WHEN 'long' THEN 3
			ELSE 4 END,
			g.seq, c.seq`, dom)
	if err != nil {
		return nil, fmt.Errorf("listing constraints: %w", err)
	}
	defer rows.Close()

	return collectConstraints(rows)
}

// Snapshot returns all goals and all constraints from a single transaction,
// so the two result sets always describe the same state.
func (s *Store) Snapshot(ctx context.Context) ([]goal.Goal, []constraint.Constraint, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, title, timeframe, domains, parent_id, description, hints, created_at, updated_at
		 FROM goals ORDER BY seq`)
	if err != nil {
		return nil, nil, fmt.Errorf("listing goals: %w", err)
	}
	goals := make([]goal.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("scanning goal: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, nil, fmt.Errorf("iterating goals: %w", err)
	}
	rows.Close()

	crows, err := tx.QueryContext(ctx, `
		SELECT c.id, c.type, c.domain, c.goal_id, c.payload, c.created_at
		FROM constraints c
		JOIN goals g ON g.id = c.goal_id
		ORDER BY CASE g.timeframe
			WHEN 'task' THEN 0
			WHEN 'short' THEN 1
			WHEN 'medium' THEN 2
			WHEN 'long' THEN 3
			ELSE 4 END,
			g.seq, c.seq`)
	if err != nil {
		return nil, nil, fmt.Errorf("listing constraints: %w", err)
	}
	defer crows.Close()

	cs, err := collectConstraints(crows)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing transaction: %w", err)
	}
	return goals, cs, nil
}

// insertConstraints stamps and inserts the derived constraint set for a goal.
func insertConstraints(ctx context.Context, tx *sql.Tx, cs []constraint.Constraint, goalID string, now time.Time) ([]constraint.Constraint, error) {
	owned := make([]constraint.Constraint, 0, len(cs))
	for _, c := range cs {
		c.ID = uuid.NewString()
		c.GoalID = goalID
		c.CreatedAt = now

		payload, err := json.Marshal(c.Payload)
		if err != nil {
			return nil, fmt.Errorf("encoding constraint payload: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO constraints (id, type, domain, goal_id, payload, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Type, c.Domain, c.GoalID, string(payload), c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting constraint: %w", err)
		}
		owned = append(owned, c)
	}
	return owned, nil
}

// rowScanner lets scanGoal work over both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (*goal.Goal, error) {
	var g goal.Goal
	var timeframe, domains, hints string
	var parentID sql.NullString

	err := row.Scan(&g.ID, &g.Title, &timeframe, &domains, &parentID,
		&g.Description, &hints, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}

	g.Timeframe = goal.Timeframe(timeframe)
	if parentID.Valid {
		g.ParentID = &parentID.String
	}
	if err := json.Unmarshal([]byte(domains), &g.Domains); err != nil {
		return nil, fmt.Errorf("decoding domains: %w", err)
	}
	if err := json.Unmarshal([]byte(hints), &g.Hints); err != nil {
		return nil, fmt.Errorf("decoding hints: %w", err)
	}
	return &g, nil
}

func collectConstraints(rows *sql.Rows) ([]constraint.Constraint, error) {
	out := make([]constraint.Constraint, 0)
	for rows.Next() {
		var c constraint.Constraint
		var payload string
		if err := rows.Scan(&c.ID, &c.Type, &c.Domain, &c.GoalID, &payload, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning constraint: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &c.Payload); err != nil {
			return nil, fmt.Errorf("decoding constraint payload: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating constraints: %w", err)
	}
	return out, nil
}
