package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/ethos/internal/codec"
	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/alexanderramin/ethos/internal/repository"
)

type contextService struct {
	contexts repository.ContextRepo
	observer UseCaseObserver
}

func NewContextService(contexts repository.ContextRepo, observer UseCaseObserver) ContextService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &contextService{contexts: contexts, observer: observer}
}

func (s *contextService) SaveContext(ctx context.Context, name string, mc *domain.MoralContext) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "context.save", start, err, map[string]any{"name": name})
	}()

	if mc == nil {
		return fmt.Errorf("saving context %q: nil context", name)
	}
	if err := mc.Validate(); err != nil {
		return fmt.Errorf("saving context %q: %w", name, err)
	}
	return s.contexts.Save(ctx, name, mc)
}

func (s *contextService) LoadContext(ctx context.Context, name string) (*domain.MoralContext, error) {
	stored, err := s.contexts.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return stored.Context, nil
}

func (s *contextService) ContextExists(ctx context.Context, name string) (bool, error) {
	return s.contexts.Exists(ctx, name)
}

func (s *contextService) ListContexts(ctx context.Context) ([]repository.ContextSummary, error) {
	return s.contexts.List(ctx)
}

func (s *contextService) DeleteContext(ctx context.Context, name string) error {
	return s.contexts.Delete(ctx, name)
}

func (s *contextService) ImportFile(ctx context.Context, path, name string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "context.import", start, err, map[string]any{"name": name, "path": path})
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("importing context from %s: %w", path, err)
	}
	mc, err := codec.Decode(data)
	if err != nil {
		return fmt.Errorf("importing context from %s: %w", path, err)
	}
	return s.contexts.Save(ctx, name, mc)
}

func (s *contextService) ExportFile(ctx context.Context, name, path string) (err error) {
	start := time.Now()
	defer func() {
		observe(ctx, s.observer, "context.export", start, err, map[string]any{"name": name, "path": path})
	}()

	stored, err := s.contexts.Get(ctx, name)
	if err != nil {
		return err
	}
	data, err := codec.Encode(stored.Context)
	if err != nil {
		return fmt.Errorf("exporting context %q: %w", name, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("exporting context %q: %w", name, err)
	}
	return nil
}
