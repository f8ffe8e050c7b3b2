package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/internal/domains/user/model"
	"flightdesk/internal/domains/user/repository"
	"flightdesk/shared/password"
)

func newTestRepo(t *testing.T) repository.User {
	t.Helper()

	conn, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return repository.New(conn, otel.NewNoop())
}

func TestUserRepository_LookupByLoginDigest(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	digest := password.Digest("anna")

	require.NoError(t, repo.Insert(ctx, model.User{
		UserName: "Anna",
		Login:    digest,
		Password: "bcrypt-hash",
	}))

	got, err := repo.Get(ctx, repository.LoginFilter(digest))
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.UserName)
	assert.Equal(t, int64(1), got.UserID)

	missing, err := repo.Get(ctx, repository.LoginFilter(password.Digest("nobody")))
	require.NoError(t, err)
	assert.Empty(t, missing.Login)
}

func TestUserRepository_Exist(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	digest := password.Digest("anna")

	exists, err := repo.Exist(ctx, repository.LoginFilter(digest))
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Insert(ctx, model.User{UserName: "Anna", Login: digest, Password: "hash"}))

	exists, err = repo.Exist(ctx, repository.LoginFilter(digest))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_LoginUnique(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	digest := password.Digest("anna")

	require.NoError(t, repo.Insert(ctx, model.User{UserName: "Anna", Login: digest, Password: "hash"}))

	err := repo.Insert(ctx, model.User{UserName: "Impostor", Login: digest, Password: "hash"})
	assert.Error(t, err)
}
