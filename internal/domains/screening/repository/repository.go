package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"cinema/infras/otel"
	"cinema/infras/postgres"
	"cinema/internal/domains/screening/model"
	"cinema/shared"
	"cinema/shared/constant"
	gDto "cinema/shared/dto"
	gRepo "cinema/shared/repository"
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Screening interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Screening) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Screening, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, lock gRepo.Lock, filter gDto.FilterGroup, columns ...string) (model.Screening, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Screening, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	Transaction(ctx context.Context, fn postgres.TxFunc) error
	GetInRoomWindowTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, from, to time.Time, excludeID string) ([]model.Screening, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Screening]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Screening {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Screening](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// GetInRoomWindowTx lists the screenings of a room starting strictly inside (from, to).
// excludeID skips the screening being revised.
func (r *repositoryImpl) GetInRoomWindowTx(ctx context.Context, sqltx *sqlx.Tx, roomID string, from, to time.Time, excludeID string) ([]model.Screening, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".screening.GetInRoomWindowTx")
	defer scope.End()

	filter := shared.FilterByID(roomID, model.FieldRoomID, model.TableName)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters,
		gDto.Filter{Field: model.FieldStartTime, ArgName: "window_from", Value: from, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
		gDto.Filter{Field: model.FieldStartTime, ArgName: "window_to", Value: to, Operator: gDto.FilterOperatorLess, Table: model.TableName},
	)

	if excludeID != constant.Empty {
		filter.Filters = append(filter.Filters,
			gDto.Filter{Field: model.FieldID, ArgName: "exclude_id", Value: excludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		)
	}

	params := gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}

	screenings, err := r.GetAllTx(ctx, sqltx, params, filter)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get screenings in room window: %w", err)
	}

	return screenings, nil
}
