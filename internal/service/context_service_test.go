package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/alexanderramin/ethos/internal/repository"
	"github.com/alexanderramin/ethos/internal/testutil"
)

// recordingObserver collects events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	var names []string
	for _, e := range o.events {
		names = append(names, e.Name)
	}
	return names
}

func newContextService(t *testing.T, observer UseCaseObserver) ContextService {
	t.Helper()
	repo := repository.NewSQLiteContextRepo(testutil.NewTestDB(t))
	return NewContextService(repo, observer)
}

func TestContextService_SaveAndLoad(t *testing.T) {
	svc := newContextService(t, nil)
	ctx := context.Background()
	mc := testutil.BenignContext()

	require.NoError(t, svc.SaveContext(ctx, "benign", mc))

	loaded, err := svc.LoadContext(ctx, "benign")
	require.NoError(t, err)
	assert.Equal(t, mc, loaded)

	exists, err := svc.ContextExists(ctx, "benign")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestContextService_SaveRejectsNil(t *testing.T) {
	svc := newContextService(t, nil)
	assert.Error(t, svc.SaveContext(context.Background(), "x", nil))
}

func TestContextService_SaveRejectsInvalid(t *testing.T) {
	svc := newContextService(t, nil)
	mc := testutil.BenignContext()
	mc.Agent.Virtues = []domain.Virtue{"PUNCTUALITY"}
	err := svc.SaveContext(context.Background(), "x", mc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUNCTUALITY")
}

func TestContextService_LoadMissing(t *testing.T) {
	svc := newContextService(t, nil)
	_, err := svc.LoadContext(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContextService_ListAndDelete(t *testing.T) {
	svc := newContextService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.SaveContext(ctx, "one", testutil.BenignContext()))
	require.NoError(t, svc.SaveContext(ctx, "two", testutil.BreachContext()))

	summaries, err := svc.ListContexts(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	require.NoError(t, svc.DeleteContext(ctx, "one"))
	summaries, err = svc.ListContexts(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestContextService_ExportImportRoundTrip(t *testing.T) {
	svc := newContextService(t, nil)
	ctx := context.Background()
	mc := testutil.BreachContext()
	path := filepath.Join(t.TempDir(), "breach.json")

	require.NoError(t, svc.SaveContext(ctx, "breach", mc))
	require.NoError(t, svc.ExportFile(ctx, "breach", path))
	require.NoError(t, svc.ImportFile(ctx, path, "copy"))

	loaded, err := svc.LoadContext(ctx, "copy")
	require.NoError(t, err)
	assert.Equal(t, mc, loaded)
}

func TestContextService_ImportRejectsBadDocument(t *testing.T) {
	svc := newContextService(t, nil)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"consequences":{"time_horizon":"DECADE"}}`), 0644))

	err := svc.ImportFile(context.Background(), path, "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DECADE")
}

func TestContextService_ImportMissingFile(t *testing.T) {
	svc := newContextService(t, nil)
	err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"), "x")
	assert.Error(t, err)
}

func TestContextService_ObserverSeesUseCases(t *testing.T) {
	observer := &recordingObserver{}
	svc := newContextService(t, observer)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, svc.SaveContext(ctx, "case", testutil.BenignContext()))
	require.NoError(t, svc.ExportFile(ctx, "case", path))
	require.NoError(t, svc.ImportFile(ctx, path, "case2"))

	assert.Equal(t, []string{"context.save", "context.export", "context.import"}, observer.names())
	for _, e := range observer.events {
		assert.True(t, e.Success, e.Name)
	}
}
