package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/internal/domains/aircraft/model"
	"flightdesk/internal/domains/aircraft/repository"
	"flightdesk/shared"
	gDto "flightdesk/shared/dto"
)

func newTestRepo(t *testing.T) repository.Aircraft {
	t.Helper()

	conn, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return repository.New(conn, otel.NewNoop())
}

func TestAircraftRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	aircraft := model.Aircraft{
		Model:           "Airbus A320neo",
		Capacity:        180,
		LastMaintenance: "2026-07-14",
		Status:          "in service",
	}

	require.NoError(t, repo.Insert(ctx, aircraft))

	fleet, err := repo.GetAll(ctx, gDto.ListParams{}, shared.FilterAll())
	require.NoError(t, err)
	require.Len(t, fleet, 1)
	assert.Equal(t, aircraft, fleet[0])
}

// The table carries no primary key, so identical rows are allowed to pile up.
func TestAircraftRepository_DuplicateRowsAllowed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	aircraft := model.Aircraft{
		Model:           "Sukhoi Superjet 100",
		Capacity:        98,
		LastMaintenance: "2026-08-21",
		Status:          "maintenance",
	}

	require.NoError(t, repo.Insert(ctx, aircraft))
	require.NoError(t, repo.Insert(ctx, aircraft))

	count, err := repo.Count(ctx, shared.FilterAll())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
