package repository_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/internal/domains/flight/model"
	"flightdesk/internal/domains/flight/repository"
	"flightdesk/shared"
	gDto "flightdesk/shared/dto"
)

func newTestRepo(t *testing.T) repository.Flight {
	t.Helper()

	conn, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return repository.New(conn, otel.NewNoop())
}

func testFlight(number, date string) model.Flight {
	return model.Flight{
		FlightNumber:     number,
		DepartureAirport: "SVO",
		DepartureCity:    "Moscow",
		DepartureDate:    date,
		DepartureTime:    "08:15",
		ArrivalAirport:   "LED",
		ArrivalCity:      "Saint Petersburg",
		ArrivalDate:      date,
		ArrivalTime:      "09:45",
		AvailableSeats:   250,
	}
}

func TestFlightRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	flight := testFlight("SU100", "2026-09-01")
	require.NoError(t, repo.Insert(ctx, flight))

	key := model.Key{FlightNumber: "SU100", DepartureDate: "2026-09-01"}

	got, err := repo.Get(ctx, repository.KeyFilter(key))
	require.NoError(t, err)
	assert.Equal(t, flight, got)
}

func TestFlightRepository_CompoundKey(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Same number on two dates lives as two independent rows.
	require.NoError(t, repo.Insert(ctx, testFlight("SU100", "2026-09-01")))
	require.NoError(t, repo.Insert(ctx, testFlight("SU100", "2026-09-02")))

	// The pair as a whole must stay unique.
	assert.Error(t, repo.Insert(ctx, testFlight("SU100", "2026-09-01")))

	key := model.Key{FlightNumber: "SU100", DepartureDate: "2026-09-01"}
	require.NoError(t, repo.Delete(ctx, repository.KeyFilter(key)))

	count, err := repo.Count(ctx, shared.FilterAll())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	survivor, err := repo.Get(ctx, repository.KeyFilter(model.Key{FlightNumber: "SU100", DepartureDate: "2026-09-02"}))
	require.NoError(t, err)
	assert.Equal(t, "2026-09-02", survivor.DepartureDate)
}

func TestFlightRepository_DeleteAbsentKeyIsNoOp(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	key := model.Key{FlightNumber: "SU999", DepartureDate: "2026-09-01"}

	assert.NoError(t, repo.Delete(ctx, repository.KeyFilter(key)))
}

func TestFlightRepository_SortedListings(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Every sortable column carries distinct values so ordering is total.
	rows := []model.Flight{
		testFlight("SU300", "2026-09-01"),
		testFlight("SU100", "2026-09-01"),
		testFlight("SU200", "2026-09-01"),
	}
	rows[0].DepartureCity = "Omsk"
	rows[0].DepartureTime = "21:00"
	rows[0].ArrivalCity = "Sochi"
	rows[0].ArrivalTime = "23:10"
	rows[0].AvailableSeats = 12
	rows[2].DepartureCity = "Kazan"
	rows[2].DepartureTime = "05:30"
	rows[2].ArrivalCity = "Irkutsk"
	rows[2].ArrivalTime = "11:05"
	rows[2].AvailableSeats = 301

	for _, row := range rows {
		require.NoError(t, repo.Insert(ctx, row))
	}

	for _, column := range repository.SortColumns {
		asc, err := repo.GetAll(ctx, gDto.Sorted(column, true), shared.FilterAll())
		require.NoError(t, err)

		desc, err := repo.GetAll(ctx, gDto.Sorted(column, false), shared.FilterAll())
		require.NoError(t, err)

		require.Len(t, asc, len(rows))
		slices.Reverse(desc)
		assert.Equal(t, asc, desc, "ascending and descending order disagree on %s", column)
	}
}

func TestFlightRepository_TimetableFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	outbound := testFlight("SU100", "2026-09-01")

	inbound := testFlight("SU355", "2026-09-01")
	inbound.DepartureAirport = "OVB"
	inbound.DepartureCity = "Novosibirsk"
	inbound.ArrivalAirport = "SVO"
	inbound.ArrivalCity = "Moscow"

	require.NoError(t, repo.Insert(ctx, outbound))
	require.NoError(t, repo.Insert(ctx, inbound))

	departures, err := repo.GetAll(ctx, gDto.ListParams{}, repository.DepartureFilter("SVO"))
	require.NoError(t, err)
	require.Len(t, departures, 1)
	assert.Equal(t, "SU100", departures[0].FlightNumber)

	arrivals, err := repo.GetAll(ctx, gDto.ListParams{}, repository.ArrivalFilter("SVO"))
	require.NoError(t, err)
	require.Len(t, arrivals, 1)
	assert.Equal(t, "SU355", arrivals[0].FlightNumber)
}

func TestFlightRepository_DistinctArrivals(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := testFlight("SU100", "2026-09-01")
	second := testFlight("SU100", "2026-09-02")
	third := testFlight("SU210", "2026-09-01")
	third.ArrivalCity = "Sochi"

	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))
	require.NoError(t, repo.Insert(ctx, third))

	cities, err := repo.Distinct(ctx, model.FieldArrivalCity)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Saint Petersburg", "Sochi"}, cities)
}

func TestFlightRepository_UpdateSeats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testFlight("SU100", "2026-09-01")))
	require.NoError(t, repo.Insert(ctx, testFlight("SU210", "2026-09-01")))

	key := model.Key{FlightNumber: "SU100", DepartureDate: "2026-09-01"}
	fields := map[string]any{model.FieldAvailableSeats: 0}

	require.NoError(t, repo.Update(ctx, fields, repository.KeyFilter(key)))

	drained, err := repo.Get(ctx, repository.KeyFilter(key))
	require.NoError(t, err)
	assert.Equal(t, 0, drained.AvailableSeats)

	untouched, err := repo.Get(ctx, repository.KeyFilter(model.Key{FlightNumber: "SU210", DepartureDate: "2026-09-01"}))
	require.NoError(t, err)
	assert.Equal(t, 250, untouched.AvailableSeats)

	// Unfiltered update resets every row, the wipe flow relies on this.
	require.NoError(t, repo.Update(ctx, map[string]any{model.FieldAvailableSeats: 250}, shared.FilterAll()))

	refilled, err := repo.Get(ctx, repository.KeyFilter(key))
	require.NoError(t, err)
	assert.Equal(t, 250, refilled.AvailableSeats)
}

func TestFlightRepository_GetAllNeverNil(t *testing.T) {
	repo := newTestRepo(t)

	flights, err := repo.GetAll(context.Background(), gDto.ListParams{}, shared.FilterAll())

	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
}
