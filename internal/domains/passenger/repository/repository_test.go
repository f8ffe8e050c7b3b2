package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	flightModel "flightdesk/internal/domains/flight/model"
	flightRepository "flightdesk/internal/domains/flight/repository"
	"flightdesk/internal/domains/passenger/model"
	"flightdesk/internal/domains/passenger/repository"
	"flightdesk/shared"
	gDto "flightdesk/shared/dto"
)

func newTestConn(t *testing.T) *sqlite.Connection {
	t.Helper()

	conn, err := sqlite.Open(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func testPassenger(name, passport, flightNumber string) model.Passenger {
	return model.Passenger{
		FirstName:      name,
		LastName:       "Petrova",
		DateOfBirth:    "1990-04-12",
		PassportNumber: passport,
		ContactPhone:   "+7 915 000-00-00",
		FlightNumber:   flightNumber,
	}
}

func TestPassengerRepository_AutoincrementID(t *testing.T) {
	repo := repository.New(newTestConn(t), otel.NewNoop())
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testPassenger("Anna", "4509123456", "SU100")))
	require.NoError(t, repo.Insert(ctx, testPassenger("Boris", "4509654321", "SU100")))

	passengers, err := repo.GetAll(ctx, gDto.ListParams{}, shared.FilterAll())
	require.NoError(t, err)
	require.Len(t, passengers, 2)

	assert.Equal(t, int64(1), passengers[0].ID)
	assert.Equal(t, int64(2), passengers[1].ID)
}

func TestPassengerRepository_FlightFilter(t *testing.T) {
	repo := repository.New(newTestConn(t), otel.NewNoop())
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testPassenger("Anna", "4509123456", "SU100")))
	require.NoError(t, repo.Insert(ctx, testPassenger("Boris", "4509654321", "SU210")))

	booked, err := repo.GetAll(ctx, gDto.ListParams{}, repository.FlightFilter("SU100"))
	require.NoError(t, err)
	require.Len(t, booked, 1)
	assert.Equal(t, "Anna", booked[0].FirstName)
}

// The flight reference is soft: deleting the flight leaves its passenger
// records untouched.
func TestPassengerRepository_SurvivesFlightDeletion(t *testing.T) {
	conn := newTestConn(t)
	ctx := context.Background()

	flights := flightRepository.New(conn, otel.NewNoop())
	passengers := repository.New(conn, otel.NewNoop())

	require.NoError(t, flights.Insert(ctx, flightModel.Flight{
		FlightNumber:     "SU100",
		DepartureAirport: "SVO",
		DepartureCity:    "Moscow",
		DepartureDate:    "2026-09-01",
		DepartureTime:    "08:15",
		ArrivalAirport:   "LED",
		ArrivalCity:      "Saint Petersburg",
		ArrivalDate:      "2026-09-01",
		ArrivalTime:      "09:45",
		AvailableSeats:   250,
	}))
	require.NoError(t, passengers.Insert(ctx, testPassenger("Anna", "4509123456", "SU100")))

	key := flightModel.Key{FlightNumber: "SU100", DepartureDate: "2026-09-01"}
	require.NoError(t, flights.Delete(ctx, flightRepository.KeyFilter(key)))

	remaining, err := passengers.GetAll(ctx, gDto.ListParams{}, repository.FlightFilter("SU100"))
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestPassengerRepository_DeleteAll(t *testing.T) {
	repo := repository.New(newTestConn(t), otel.NewNoop())
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, testPassenger("Anna", "4509123456", "SU100")))
	require.NoError(t, repo.Insert(ctx, testPassenger("Boris", "4509654321", "SU210")))

	require.NoError(t, repo.DeleteAll(ctx))

	count, err := repo.Count(ctx, shared.FilterAll())
	require.NoError(t, err)
	assert.Zero(t, count)
}
