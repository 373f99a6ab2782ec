package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ethos/internal/domain"
	"github.com/alexanderramin/ethos/internal/testutil"
)

func newContextRepo(t *testing.T) *SQLiteContextRepo {
	t.Helper()
	return NewSQLiteContextRepo(testutil.NewTestDB(t))
}

func TestContextRepo_SaveAndGet(t *testing.T) {
	repo := newContextRepo(t)
	ctx := context.Background()
	mc := testutil.BreachContext()

	require.NoError(t, repo.Save(ctx, "breach", mc))

	stored, err := repo.Get(ctx, "breach")
	require.NoError(t, err)
	assert.Equal(t, "breach", stored.Name)
	assert.Equal(t, mc, stored.Context)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestContextRepo_SaveRequiresName(t *testing.T) {
	repo := newContextRepo(t)
	err := repo.Save(context.Background(), "", testutil.BenignContext())
	assert.Error(t, err)
}

func TestContextRepo_SaveUpserts(t *testing.T) {
	repo := newContextRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "case", testutil.BenignContext()))
	require.NoError(t, repo.Save(ctx, "case", testutil.BreachContext()))

	stored, err := repo.Get(ctx, "case")
	require.NoError(t, err)
	assert.Equal(t, testutil.BreachContext(), stored.Context)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestContextRepo_GetMissing(t *testing.T) {
	repo := newContextRepo(t)
	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContextRepo_Exists(t *testing.T) {
	repo := newContextRepo(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "case")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Save(ctx, "case", testutil.BenignContext()))

	exists, err = repo.Exists(ctx, "case")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestContextRepo_ListSortedByName(t *testing.T) {
	repo := newContextRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "zebra", testutil.BenignContext()))
	require.NoError(t, repo.Save(ctx, "aardvark", testutil.BreachContext()))

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "aardvark", summaries[0].Name)
	assert.Equal(t, "zebra", summaries[1].Name)
	assert.Equal(t, testutil.BreachContext().ActionDescription, summaries[0].ActionDescription)
}

func TestContextRepo_Delete(t *testing.T) {
	repo := newContextRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "case", testutil.BenignContext()))
	require.NoError(t, repo.Delete(ctx, "case"))

	_, err := repo.Get(ctx, "case")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "case"), ErrNotFound)
}

func TestContextRepo_RoundTripsDefaults(t *testing.T) {
	// A context built purely from defaults survives storage unchanged.
	repo := newContextRepo(t)
	ctx := context.Background()

	mc, err := domain.NewMoralContext("", nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, "defaults", mc))

	stored, err := repo.Get(ctx, "defaults")
	require.NoError(t, err)
	assert.Equal(t, mc, stored.Context)
}
