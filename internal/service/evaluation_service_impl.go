package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/ethos/internal/contract"
	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/alexanderramin/ethos/internal/engine"
	"github.com/alexanderramin/ethos/internal/repository"
	"github.com/google/uuid"
)

type evaluationService struct {
	runner      *engine.Runner
	contexts    repository.ContextRepo
	evaluations repository.EvaluationRepo
	observer    UseCaseObserver
}

func NewEvaluationService(
	runner *engine.Runner,
	contexts repository.ContextRepo,
	evaluations repository.EvaluationRepo,
	observer UseCaseObserver,
) EvaluationService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &evaluationService{
		runner:      runner,
		contexts:    contexts,
		evaluations: evaluations,
		observer:    observer,
	}
}

func (s *evaluationService) EvaluateContext(ctx context.Context, name string) (report *contract.Report, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "evaluation.run", start, err, map[string]any{"context": name})
	}()

	stored, err := s.contexts.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	results, err := s.runner.Run(name, stored.Context)
	if err != nil {
		return nil, err
	}

	report = &contract.Report{
		ID:          uuid.New().String(),
		Action:      name,
		ContextName: name,
		Description: stored.Context.ActionDescription,
		RanAt:       time.Now().UTC(),
		Results:     results,
	}
	if err := s.evaluations.Record(ctx, report); err != nil {
		return nil, fmt.Errorf("recording evaluation of %q: %w", name, err)
	}
	return report, nil
}

func (s *evaluationService) EvaluateInline(ctx context.Context, action string, mc *domain.MoralContext) (report *contract.Report, err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "evaluation.inline", start, err, map[string]any{"action": action})
	}()

	if mc == nil {
		return nil, fmt.Errorf("evaluating %q: nil context", action)
	}
	if err := mc.Validate(); err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", action, err)
	}

	results, err := s.runner.Run(action, mc)
	if err != nil {
		return nil, err
	}
	return &contract.Report{
		Action:      action,
		Description: mc.ActionDescription,
		RanAt:       time.Now().UTC(),
		Results:     results,
	}, nil
}

func (s *evaluationService) History(ctx context.Context, contextName string, limit int) ([]*contract.Report, error) {
	if contextName != "" {
		return s.evaluations.ListByContext(ctx, contextName, limit)
	}
	return s.evaluations.ListRecent(ctx, limit)
}
