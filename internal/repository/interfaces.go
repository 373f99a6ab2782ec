package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/ethos/internal/contract"
	"github.com/alexanderramin/ethos/internal/domain"
)

// ErrNotFound is returned when a named context or evaluation record does
// not exist.
var ErrNotFound = errors.New("not found")

// StoredContext pairs a persisted context with its store metadata.
type StoredContext struct {
	Name      string
	Context   *domain.MoralContext
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContextSummary is the listing view of a stored context.
type ContextSummary struct {
	Name              string
	ActionDescription string
	UpdatedAt         time.Time
}

type ContextRepo interface {
	// Save upserts the context under the given name.
	Save(ctx context.Context, name string, mc *domain.MoralContext) error
	Get(ctx context.Context, name string) (*StoredContext, error)
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]ContextSummary, error)
	Delete(ctx context.Context, name string) error
}

type EvaluationRepo interface {
	Record(ctx context.Context, report *contract.Report) error
	ListRecent(ctx context.Context, limit int) ([]*contract.Report, error)
	ListByContext(ctx context.Context, contextName string, limit int) ([]*contract.Report, error)
}
