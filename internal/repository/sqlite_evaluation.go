package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/ethos/internal/contract"
)

// SQLiteEvaluationRepo implements EvaluationRepo using a SQLite database.
// Each row is one full cross-framework report, stored as a JSON document.
type SQLiteEvaluationRepo struct {
	db *sql.DB
}

// NewSQLiteEvaluationRepo creates a new SQLiteEvaluationRepo.
func NewSQLiteEvaluationRepo(db *sql.DB) *SQLiteEvaluationRepo {
	return &SQLiteEvaluationRepo{db: db}
}

func (r *SQLiteEvaluationRepo) Record(ctx context.Context, report *contract.Report) error {
	if report.ID == "" {
		return fmt.Errorf("recording evaluation: report ID is required")
	}
	document, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("recording evaluation %q: %w", report.ID, err)
	}
	query := `INSERT INTO evaluations (id, context_name, action, ran_at, report)
		VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		report.ID,
		nullableString(report.ContextName),
		report.Action,
		report.RanAt.UTC().Format(time.RFC3339),
		string(document),
	)
	if err != nil {
		return fmt.Errorf("recording evaluation %q: %w", report.ID, err)
	}
	return nil
}

func (r *SQLiteEvaluationRepo) ListRecent(ctx context.Context, limit int) ([]*contract.Report, error) {
	query := `SELECT report FROM evaluations ORDER BY ran_at DESC, id LIMIT ?`
	return r.queryReports(ctx, query, effectiveLimit(limit))
}

func (r *SQLiteEvaluationRepo) ListByContext(ctx context.Context, contextName string, limit int) ([]*contract.Report, error) {
	query := `SELECT report FROM evaluations WHERE context_name = ? ORDER BY ran_at DESC, id LIMIT ?`
	return r.queryReports(ctx, query, contextName, effectiveLimit(limit))
}

func (r *SQLiteEvaluationRepo) queryReports(ctx context.Context, query string, args ...any) ([]*contract.Report, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing evaluations: %w", err)
	}
	defer rows.Close()

	var reports []*contract.Report
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("scanning evaluation row: %w", err)
		}
		var report contract.Report
		if err := json.Unmarshal([]byte(document), &report); err != nil {
			return nil, fmt.Errorf("decoding evaluation report: %w", err)
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evaluations: %w", err)
	}
	return reports, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func effectiveLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	return limit
}
