package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"flightdesk/infras/otel"
	"flightdesk/infras/sqlite"
	"flightdesk/internal/domains/user/model"
	"flightdesk/shared"
	gDto "flightdesk/shared/dto"
	gRepo "flightdesk/shared/repository"
)

const schema = `CREATE TABLE IF NOT EXISTS Users (
	user_id       INTEGER PRIMARY KEY AUTOINCREMENT,
	user_name     TEXT NOT NULL,
	user_login    TEXT NOT NULL UNIQUE,
	user_password TEXT NOT NULL
)`

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	DeleteAll(ctx context.Context) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	conn *sqlite.Connection
	otel otel.Otel
}

func New(conn *sqlite.Connection, otel otel.Otel) User {
	repo := &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, conn, otel),
		conn:       conn,
		otel:       otel,
	}

	if err := repo.EnsureSchema(context.Background(), schema); err != nil {
		log.Error().Err(err).Msg("failed to ensure Users schema")
	}

	return repo
}

// LoginFilter matches a user row by its login digest.
func LoginFilter(loginDigest string) gDto.FilterGroup {
	return shared.FilterEq(model.FieldLogin, loginDigest, "")
}
