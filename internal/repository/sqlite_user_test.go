package repository_test

import (
	"context"
	"testing"

	"github.com/flowtik/flowtik/internal/repository"
	"github.com/flowtik/flowtik/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserRepo(db)
	ctx := context.Background()

	user := testutil.NewTestUser("ana")
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Name)
	assert.Equal(t, user.Email, got.Email)
}

func TestUserRepo_GetMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserRepo(db)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestUser("a", testutil.WithEmail("same@example.test"))))
	err := repo.Create(ctx, testutil.NewTestUser("b", testutil.WithEmail("same@example.test")))
	assert.Error(t, err)
}

func TestUserRepo_ListAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteUserRepo(db)
	ctx := context.Background()

	first := testutil.NewTestUser("first")
	second := testutil.NewTestUser("second")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Name)

	require.NoError(t, repo.Delete(ctx, first.ID))
	users, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
