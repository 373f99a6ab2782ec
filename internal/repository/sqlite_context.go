package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ethos/internal/codec"
	"github.com/alexanderramin/ethos/internal/domain"
)

// SQLiteContextRepo implements ContextRepo using a SQLite database.
// Contexts are stored as encoded JSON documents keyed by name.
type SQLiteContextRepo struct {
	db *sql.DB
}

// NewSQLiteContextRepo creates a new SQLiteContextRepo.
func NewSQLiteContextRepo(db *sql.DB) *SQLiteContextRepo {
	return &SQLiteContextRepo{db: db}
}

func (r *SQLiteContextRepo) Save(ctx context.Context, name string, mc *domain.MoralContext) error {
	if name == "" {
		return fmt.Errorf("saving context: name is required")
	}
	document, err := codec.Encode(mc)
	if err != nil {
		return fmt.Errorf("saving context %q: %w", name, err)
	}
	now := nowUTC()
	query := `INSERT INTO contexts (name, action_description, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			action_description = excluded.action_description,
			document = excluded.document,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query, name, mc.ActionDescription, string(document), now, now)
	if err != nil {
		return fmt.Errorf("saving context %q: %w", name, err)
	}
	return nil
}

func (r *SQLiteContextRepo) Get(ctx context.Context, name string) (*StoredContext, error) {
	query := `SELECT name, document, created_at, updated_at FROM contexts WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)

	var stored StoredContext
	var document, createdAt, updatedAt string
	if err := row.Scan(&stored.Name, &document, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("context %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("loading context %q: %w", name, err)
	}

	mc, err := codec.Decode([]byte(document))
	if err != nil {
		return nil, fmt.Errorf("loading context %q: %w", name, err)
	}
	stored.Context = mc
	stored.CreatedAt = parseStoredTime(createdAt)
	stored.UpdatedAt = parseStoredTime(updatedAt)
	return &stored, nil
}

func (r *SQLiteContextRepo) Exists(ctx context.Context, name string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM contexts WHERE name = ?`
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return false, fmt.Errorf("checking context %q: %w", name, err)
	}
	return count > 0, nil
}

func (r *SQLiteContextRepo) List(ctx context.Context) ([]ContextSummary, error) {
	query := `SELECT name, action_description, updated_at FROM contexts ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contexts: %w", err)
	}
	defer rows.Close()

	var summaries []ContextSummary
	for rows.Next() {
		var s ContextSummary
		var updatedAt string
		if err := rows.Scan(&s.Name, &s.ActionDescription, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning context row: %w", err)
		}
		s.UpdatedAt = parseStoredTime(updatedAt)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contexts: %w", err)
	}
	return summaries, nil
}

func (r *SQLiteContextRepo) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contexts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting context %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting context %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("context %q: %w", name, ErrNotFound)
	}
	return nil
}

// parseStoredTime parses an RFC3339 timestamp column; a malformed value
// yields the zero time rather than failing the read.
func parseStoredTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
