package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"flightdesk/infras/otel"
	"flightdesk/internal/domains/flight/model"
	"flightdesk/internal/domains/flight/model/dto"
	"flightdesk/internal/domains/flight/repository"
	"flightdesk/shared"
	"flightdesk/shared/constant"
	gDto "flightdesk/shared/dto"
	"flightdesk/shared/failure"
	"flightdesk/shared/validator"
)

type Flight interface {
	Add(ctx context.Context, req dto.CreateFlightRequest) error
	List(ctx context.Context) ([]dto.FlightResponse, error)
	ListSorted(ctx context.Context, column string, ascending bool) ([]dto.FlightResponse, error)
	ListByDeparture(ctx context.Context, airport string) ([]dto.FlightResponse, error)
	ListByArrival(ctx context.Context, airport string) ([]dto.FlightResponse, error)
	Get(ctx context.Context, key model.Key) (dto.FlightResponse, error)
	Update(ctx context.Context, req dto.UpdateFlightRequest, key model.Key) error
	Delete(ctx context.Context, key model.Key) error
	UpdateSeats(ctx context.Context, key model.Key, seats int) error
	ResetAllSeats(ctx context.Context, seats int) error
	ArrivalCities(ctx context.Context) ([]string, error)
	Wipe(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.Flight
	otel otel.Otel
}

func New(repo repository.Flight, otel otel.Otel) Flight {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.CreateFlightRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	key := model.Key{FlightNumber: req.FlightNumber, DepartureDate: req.DepartureDate}

	exists, err := s.repo.Exist(ctx, repository.KeyFilter(key))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight exists")

		return fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if exists {
		return failure.Conflict("flight already scheduled for this date") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Str("flight", req.FlightNumber).Msg("failed to add flight")

		return fmt.Errorf("failed to add flight: %w", err)
	}

	return nil
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.ListParams{}, shared.FilterAll())
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights")

		return res, fmt.Errorf("failed to get flights: %w", err)
	}

	return dto.FromModels(models), nil
}

// ListSorted orders by one of the six supported columns. An unrecognized
// column name is not an error: the unsorted listing is returned instead,
// matching what the table views expect when a header has no sort mapping.
func (s *serviceImpl) ListSorted(ctx context.Context, column string, ascending bool) (res []dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.ListSorted")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !slices.Contains(repository.SortColumns, column) {
		log.Debug().Str("column", column).Msg("unsupported sort column, returning unsorted flights")

		return s.List(ctx)
	}

	models, err := s.repo.GetAll(ctx, gDto.Sorted(column, ascending), shared.FilterAll())
	if err != nil {
		log.Error().Err(err).Str("column", column).Msg("failed to get sorted flights")

		return res, fmt.Errorf("failed to get sorted flights: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) ListByDeparture(ctx context.Context, airport string) (res []dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.ListByDeparture")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.ListParams{}, repository.DepartureFilter(airport))
	if err != nil {
		log.Error().Err(err).Str("airport", airport).Msg("failed to get departures")

		return res, fmt.Errorf("failed to get departures: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) ListByArrival(ctx context.Context, airport string) (res []dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.ListByArrival")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.ListParams{}, repository.ArrivalFilter(airport))
	if err != nil {
		log.Error().Err(err).Str("airport", airport).Msg("failed to get arrivals")

		return res, fmt.Errorf("failed to get arrivals: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Get(ctx context.Context, key model.Key) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&key); err != nil {
		return res, err //nolint:wrapcheck
	}

	flight, err := s.repo.Get(ctx, repository.KeyFilter(key))
	if err != nil {
		log.Error().Err(err).Str("flight", key.FlightNumber).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.FlightNumber == constant.Empty {
		return res, failure.NotFound("flight") //nolint:wrapcheck
	}

	res.FromModel(flight)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFlightRequest, key model.Key) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&key); err != nil {
		return err //nolint:wrapcheck
	}

	filter := repository.KeyFilter(key)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if flight exists")

		return fmt.Errorf("failed to check if flight exists: %w", err)
	}

	if !exists {
		return failure.NotFound("flight") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.ToFields(), filter); err != nil {
		log.Error().Err(err).Str("flight", key.FlightNumber).Msg("failed to update flight")

		return fmt.Errorf("failed to update flight: %w", err)
	}

	return nil
}

// Delete removes one dated flight instance. Deleting an absent key is a
// silent no-op. Passenger records referencing the flight number survive.
func (s *serviceImpl) Delete(ctx context.Context, key model.Key) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&key); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, repository.KeyFilter(key)); err != nil {
		log.Error().Err(err).Str("flight", key.FlightNumber).Msg("failed to delete flight")

		return fmt.Errorf("failed to delete flight: %w", err)
	}

	return nil
}

// UpdateSeats writes the seat count as given. The decrement arithmetic and
// the seats-available check belong to the passenger registration flow; this
// method only refuses negative values.
func (s *serviceImpl) UpdateSeats(ctx context.Context, key model.Key, seats int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.UpdateSeats")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(seats, "gte=0"); err != nil {
		return err //nolint:wrapcheck
	}

	fields := map[string]any{model.FieldAvailableSeats: seats}

	if err = s.repo.Update(ctx, fields, repository.KeyFilter(key)); err != nil {
		log.Error().Err(err).Str("flight", key.FlightNumber).Int("seats", seats).Msg("failed to update seats")

		return fmt.Errorf("failed to update seats: %w", err)
	}

	return nil
}

// ResetAllSeats sets every flight's seat count to the same value, used when
// passenger records are wiped.
func (s *serviceImpl) ResetAllSeats(ctx context.Context, seats int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.ResetAllSeats")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(seats, "gte=0"); err != nil {
		return err //nolint:wrapcheck
	}

	fields := map[string]any{model.FieldAvailableSeats: seats}

	if err = s.repo.Update(ctx, fields, shared.FilterAll()); err != nil {
		log.Error().Err(err).Int("seats", seats).Msg("failed to reset seats")

		return fmt.Errorf("failed to reset seats: %w", err)
	}

	return nil
}

func (s *serviceImpl) ArrivalCities(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.ArrivalCities")
	defer scope.End()
	defer scope.TraceIfError(err)

	cities, err := s.repo.Distinct(ctx, model.FieldArrivalCity)
	if err != nil {
		log.Error().Err(err).Msg("failed to get arrival cities")

		return res, fmt.Errorf("failed to get arrival cities: %w", err)
	}

	return cities, nil
}

func (s *serviceImpl) Wipe(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".flight.Wipe")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to wipe flights")

		return fmt.Errorf("failed to wipe flights: %w", err)
	}

	return nil
}
