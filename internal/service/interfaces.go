package service

import (
	"context"

	"github.com/alexanderramin/ethos/internal/contract"
	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/alexanderramin/ethos/internal/repository"
)

type ContextService interface {
	// SaveContext validates and upserts a context under the given name.
	SaveContext(ctx context.Context, name string, mc *domain.MoralContext) error
	LoadContext(ctx context.Context, name string) (*domain.MoralContext, error)
	ContextExists(ctx context.Context, name string) (bool, error)
	ListContexts(ctx context.Context) ([]repository.ContextSummary, error)
	DeleteContext(ctx context.Context, name string) error
	// ImportFile reads a context document from a JSON file and stores it.
	ImportFile(ctx context.Context, path, name string) error
	// ExportFile writes the named context's document to a JSON file.
	ExportFile(ctx context.Context, name, path string) error
}

type EvaluationService interface {
	// EvaluateContext loads the named context and runs every framework
	// against it. The run is recorded in the evaluation history.
	EvaluateContext(ctx context.Context, name string) (*contract.Report, error)
	// EvaluateInline evaluates a context that is not in the store. The run
	// is not recorded.
	EvaluateInline(ctx context.Context, action string, mc *domain.MoralContext) (*contract.Report, error)
	History(ctx context.Context, contextName string, limit int) ([]*contract.Report, error)
}
