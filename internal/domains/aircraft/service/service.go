package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"flightdesk/infras/otel"
	"flightdesk/internal/domains/aircraft/model/dto"
	"flightdesk/internal/domains/aircraft/repository"
	"flightdesk/shared"
	"flightdesk/shared/constant"
	gDto "flightdesk/shared/dto"
	"flightdesk/shared/validator"
)

type Aircraft interface {
	Add(ctx context.Context, req dto.CreateAircraftRequest) error
	List(ctx context.Context) ([]dto.AircraftResponse, error)
}

type serviceImpl struct {
	repo repository.Aircraft
	otel otel.Otel
}

func New(repo repository.Aircraft, otel otel.Otel) Aircraft {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.CreateAircraftRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".aircraft.Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Str("model", req.Model).Msg("failed to add aircraft")

		return fmt.Errorf("failed to add aircraft: %w", err)
	}

	return nil
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.AircraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".aircraft.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.ListParams{}, shared.FilterAll())
	if err != nil {
		log.Error().Err(err).Msg("failed to get aircrafts")

		return res, fmt.Errorf("failed to get aircrafts: %w", err)
	}

	return dto.FromModels(models), nil
}
