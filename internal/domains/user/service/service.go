package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"flightdesk/config"
	"flightdesk/infras/otel"
	"flightdesk/internal/domains/user/model/dto"
	"flightdesk/internal/domains/user/repository"
	"flightdesk/shared/constant"
	"flightdesk/shared/failure"
	"flightdesk/shared/password"
	"flightdesk/shared/validator"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) error
	Authenticate(ctx context.Context, req dto.CredentialsRequest) (bool, error)
	DisplayName(ctx context.Context, login string) (string, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	digest := password.Digest(req.Login)

	exists, err := s.repo.Exist(ctx, repository.LoginFilter(digest))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if login is taken")

		return fmt.Errorf("failed to check if login is taken: %w", err)
	}

	if exists {
		return failure.Conflict("login already registered") //nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(digest, hash)); err != nil {
		// The login column is UNIQUE, so two registrations racing past the
		// existence check still surface as a conflict.
		if strings.Contains(err.Error(), constant.SqliteUniqueViolation) {
			return failure.Conflict("login already registered") //nolint:wrapcheck
		}

		log.Error().Err(err).Str("name", req.Name).Msg("failed to register user")

		return fmt.Errorf("failed to register user: %w", err)
	}

	return nil
}

// Authenticate reports whether the credentials match a stored account. An
// unknown login and a wrong password both come back as a plain false so the
// caller cannot tell the two apart.
func (s *serviceImpl) Authenticate(ctx context.Context, req dto.CredentialsRequest) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Authenticate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return false, err //nolint:wrapcheck
	}

	user, err := s.repo.Get(ctx, repository.LoginFilter(password.Digest(req.Login)))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")

		return false, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Login == constant.Empty {
		return false, nil
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return false, nil
		}

		log.Error().Err(err).Msg("failed to verify password")

		return false, fmt.Errorf("failed to verify password: %w", err)
	}

	return true, nil
}

// DisplayName resolves the stored name for a login, falling back to the
// configured placeholder when the login is unknown.
func (s *serviceImpl) DisplayName(ctx context.Context, login string) (name string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.DisplayName")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, repository.LoginFilter(password.Digest(login)))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")

		return s.cfg.Auth.FallbackName, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.UserName == constant.Empty {
		return s.cfg.Auth.FallbackName, nil
	}

	return user.UserName, nil
}
