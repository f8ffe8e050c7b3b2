package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/internal/domains/aircraft/model"
	gDto "flightdesk/shared/dto"
	gRepo "flightdesk/shared/repository"
)

const schema = `CREATE TABLE IF NOT EXISTS Aircrafts (
	model            TEXT NOT NULL,
	capacity         INTEGER NOT NULL,
	last_maintenance TEXT NOT NULL,
	status           TEXT NOT NULL
)`

type Aircraft interface {
	Insert(ctx context.Context, model model.Aircraft) error
	GetAll(ctx context.Context, params gDto.ListParams, filter gDto.FilterGroup) ([]model.Aircraft, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	DeleteAll(ctx context.Context) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Aircraft]
	conn *sqlite.Connection
	otel otel.Otel
}

func New(conn *sqlite.Connection, otel otel.Otel) Aircraft {
	repo := &repositoryImpl{
		Repository: gRepo.NewRepository[model.Aircraft](model.EntityName, model.TableName, conn, otel),
		conn:       conn,
		otel:       otel,
	}

	if err := repo.EnsureSchema(context.Background(), schema); err != nil {
		log.Error().Err(err).Msg("failed to ensure Aircrafts schema")
	}

	return repo
}
