package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/internal/domains/passenger/model"
	"flightdesk/shared"
	gDto "flightdesk/shared/dto"
	gRepo "flightdesk/shared/repository"
)

const schema = `CREATE TABLE IF NOT EXISTS Passengers (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name      TEXT NOT NULL,
	last_name       TEXT NOT NULL,
	date_of_birth   TEXT NOT NULL,
	passport_number TEXT NOT NULL,
	contact_phone   TEXT NOT NULL,
	flight_number   TEXT NOT NULL
)`

type Passenger interface {
	Insert(ctx context.Context, model model.Passenger) error
	GetAll(ctx context.Context, params gDto.ListParams, filter gDto.FilterGroup) ([]model.Passenger, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	DeleteAll(ctx context.Context) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Passenger]
	conn *sqlite.Connection
	otel otel.Otel
}

func New(conn *sqlite.Connection, otel otel.Otel) Passenger {
	repo := &repositoryImpl{
		Repository: gRepo.NewRepository[model.Passenger](model.EntityName, model.TableName, conn, otel),
		conn:       conn,
		otel:       otel,
	}

	if err := repo.EnsureSchema(context.Background(), schema); err != nil {
		log.Error().Err(err).Msg("failed to ensure Passengers schema")
	}

	return repo
}

// FlightFilter matches the passengers registered on a flight number.
func FlightFilter(flightNumber string) gDto.FilterGroup {
	return shared.FilterEq(model.FieldFlightNumber, flightNumber, "")
}
