package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/alexanderramin/ethos/internal/engine"
	"github.com/alexanderramin/ethos/internal/repository"
	"github.com/alexanderramin/ethos/internal/testutil"
)

func newEvaluationFixture(t *testing.T) (ContextService, EvaluationService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	contexts := repository.NewSQLiteContextRepo(database)
	evaluations := repository.NewSQLiteEvaluationRepo(database)
	ctxSvc := NewContextService(contexts, nil)
	evalSvc := NewEvaluationService(engine.NewRunner(), contexts, evaluations, nil)
	return ctxSvc, evalSvc, database
}

func TestEvaluateContext(t *testing.T) {
	ctxSvc, evalSvc, _ := newEvaluationFixture(t)
	ctx := context.Background()
	mc := testutil.BreachContext()

	require.NoError(t, ctxSvc.SaveContext(ctx, "breach", mc))

	report, err := evalSvc.EvaluateContext(ctx, "breach")
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "breach", report.ContextName)
	assert.Equal(t, mc.ActionDescription, report.Description)
	assert.Len(t, report.Results, 8)
	assert.False(t, report.RanAt.IsZero())
}

func TestEvaluateContext_Missing(t *testing.T) {
	_, evalSvc, _ := newEvaluationFixture(t)
	_, err := evalSvc.EvaluateContext(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEvaluateContext_RecordsHistory(t *testing.T) {
	ctxSvc, evalSvc, _ := newEvaluationFixture(t)
	ctx := context.Background()

	require.NoError(t, ctxSvc.SaveContext(ctx, "case", testutil.BenignContext()))

	first, err := evalSvc.EvaluateContext(ctx, "case")
	require.NoError(t, err)
	second, err := evalSvc.EvaluateContext(ctx, "case")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	history, err := evalSvc.History(ctx, "case", 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	all, err := evalSvc.History(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEvaluateInline(t *testing.T) {
	_, evalSvc, _ := newEvaluationFixture(t)
	ctx := context.Background()

	report, err := evalSvc.EvaluateInline(ctx, "one-off", testutil.BreachContext())
	require.NoError(t, err)
	assert.Empty(t, report.ID)
	assert.Equal(t, "one-off", report.Action)
	assert.Len(t, report.Results, 8)

	// Inline runs leave no trace in the history.
	history, err := evalSvc.History(ctx, "", 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestEvaluateInline_RejectsInvalid(t *testing.T) {
	_, evalSvc, _ := newEvaluationFixture(t)
	ctx := context.Background()

	_, err := evalSvc.EvaluateInline(ctx, "x", nil)
	assert.Error(t, err)

	mc := testutil.BenignContext()
	mc.Consequences.TimeHorizon = domain.TimeHorizon("ETERNAL")
	_, err = evalSvc.EvaluateInline(ctx, "x", mc)
	assert.Error(t, err)
}
