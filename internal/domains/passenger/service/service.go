package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"flightdesk/infras/otel"
	flightModel "flightdesk/internal/domains/flight/model"
	flightRepo "flightdesk/internal/domains/flight/repository"
	"flightdesk/internal/domains/passenger/model/dto"
	"flightdesk/internal/domains/passenger/repository"
	"flightdesk/shared/constant"
	gDto "flightdesk/shared/dto"
	"flightdesk/shared/failure"
	"flightdesk/shared/validator"
)

type Passenger interface {
	Register(ctx context.Context, req dto.RegisterPassengerRequest) error
	ListByFlight(ctx context.Context, flightNumber string) ([]dto.PassengerResponse, error)
	Wipe(ctx context.Context) error
}

type serviceImpl struct {
	repo       repository.Passenger
	flightRepo flightRepo.Flight
	otel       otel.Otel
}

func New(repo repository.Passenger, flightRepo flightRepo.Flight, otel otel.Otel) Passenger {
	return &serviceImpl{
		repo:       repo,
		flightRepo: flightRepo,
		otel:       otel,
	}
}

// Register books a passenger onto a dated flight. The flight must exist and
// have a seat left; the seat count is decremented here and can never pass
// zero. The passenger row itself only references the flight number.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterPassengerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	key := flightModel.Key{FlightNumber: req.FlightNumber, DepartureDate: req.DepartureDate}

	flight, err := s.flightRepo.Get(ctx, flightRepo.KeyFilter(key))
	if err != nil {
		log.Error().Err(err).Str("flight", req.FlightNumber).Msg("failed to load flight for registration")

		return fmt.Errorf("failed to load flight for registration: %w", err)
	}

	if flight.FlightNumber == constant.Empty {
		return failure.NotFound("flight") //nolint:wrapcheck
	}

	if flight.AvailableSeats <= 0 {
		return failure.Conflict("no seats available on this flight") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Str("passport", req.PassportNumber).Msg("failed to register passenger")

		return fmt.Errorf("failed to register passenger: %w", err)
	}

	fields := map[string]any{flightModel.FieldAvailableSeats: flight.AvailableSeats - 1}

	if err = s.flightRepo.Update(ctx, fields, flightRepo.KeyFilter(key)); err != nil {
		log.Error().Err(err).Str("flight", req.FlightNumber).Msg("failed to decrement seats")

		return fmt.Errorf("failed to decrement seats: %w", err)
	}

	return nil
}

func (s *serviceImpl) ListByFlight(ctx context.Context, flightNumber string) (res []dto.PassengerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.ListByFlight")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.ListParams{}, repository.FlightFilter(flightNumber))
	if err != nil {
		log.Error().Err(err).Str("flight", flightNumber).Msg("failed to get passengers")

		return res, fmt.Errorf("failed to get passengers: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Wipe(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Wipe")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to wipe passengers")

		return fmt.Errorf("failed to wipe passengers: %w", err)
	}

	return nil
}
