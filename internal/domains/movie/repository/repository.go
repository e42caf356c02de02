package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"cinema/infras/otel"
	"cinema/infras/postgres"
	"cinema/internal/domains/movie/model"
	gDto "cinema/shared/dto"
	gRepo "cinema/shared/repository"
	"context"

	"github.com/jmoiron/sqlx"
)

type Movie interface {
	Insert(ctx context.Context, model model.Movie) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Movie, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, lock gRepo.Lock, filter gDto.FilterGroup, columns ...string) (model.Movie, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Movie, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	Transaction(ctx context.Context, fn postgres.TxFunc) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Movie]
}

func New(db *postgres.Connection, otel otel.Otel) Movie {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Movie](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
