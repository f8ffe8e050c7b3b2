package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/internal/domains/flight/model"
	"flightdesk/shared"
	gDto "flightdesk/shared/dto"
	gRepo "flightdesk/shared/repository"
)

// schema matches the seed database layout; the compound primary key encodes
// the (number, date) identity that flight-number-only matching gets wrong.
const schema = `CREATE TABLE IF NOT EXISTS Flights (
	flight_number      TEXT NOT NULL,
	airport_dep_id     TEXT NOT NULL,
	departure_from     TEXT NOT NULL,
	departure_date     TEXT NOT NULL,
	departure_time     TEXT NOT NULL,
	airport_arrival_id TEXT NOT NULL,
	arrival            TEXT NOT NULL,
	arrival_date       TEXT NOT NULL,
	arrival_time       TEXT NOT NULL,
	available_seats    INTEGER NOT NULL,
	PRIMARY KEY (flight_number, departure_date)
)`

// SortColumns are the only columns SortedBy orders on.
var SortColumns = []string{
	model.FieldFlightNumber,
	model.FieldDepartureCity,
	model.FieldDepartureTime,
	model.FieldArrivalCity,
	model.FieldArrivalTime,
	model.FieldAvailableSeats,
}

type Flight interface {
	Insert(ctx context.Context, model model.Flight) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Flight, error)
	GetAll(ctx context.Context, params gDto.ListParams, filter gDto.FilterGroup) ([]model.Flight, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteAll(ctx context.Context) error
	Distinct(ctx context.Context, column string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Flight]
	conn *sqlite.Connection
	otel otel.Otel
}

func New(conn *sqlite.Connection, otel otel.Otel) Flight {
	repo := &repositoryImpl{
		Repository: gRepo.NewRepository[model.Flight](model.EntityName, model.TableName, conn, otel),
		conn:       conn,
		otel:       otel,
	}

	// Schema failures are logged, not surfaced; the table staying unusable
	// makes every later operation fail on its own.
	if err := repo.EnsureSchema(context.Background(), schema); err != nil {
		log.Error().Err(err).Msg("failed to ensure Flights schema")
	}

	return repo
}

// KeyFilter builds the compound (flight_number, departure_date) predicate.
func KeyFilter(key model.Key) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFlightNumber,
				Value:    key.FlightNumber,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldDepartureDate,
				Value:    key.DepartureDate,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}
}

// DepartureFilter matches flights leaving from an airport code.
func DepartureFilter(airport string) gDto.FilterGroup {
	return shared.FilterEq(model.FieldDepartureAirport, airport, "")
}

// ArrivalFilter matches flights landing at an airport code.
func ArrivalFilter(airport string) gDto.FilterGroup {
	return shared.FilterEq(model.FieldArrivalAirport, airport, "")
}
