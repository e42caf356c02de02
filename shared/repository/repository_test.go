package repository_test

import (
	"cinema/infras/otel/mocks"
	"cinema/infras/postgres"
	"cinema/shared/dto"
	"cinema/shared/repository"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movie struct {
	ID    string `db:"id"`
	Title string `db:"title"`
}

func newRepository(t *testing.T) (repository.Repository[movie], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.NewRepository[movie]("movie", "movies", "id", &postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func byID(id string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq, Table: "movies"}}}
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO movies (id, title) VALUES ($1, $2)")).
		WithArgs("m1", "Dune").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), movie{ID: "m1", Title: "Dune"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertTranslatesConstraintErrors(t *testing.T) {
	tests := []struct {
		name     string
		code     pq.ErrorCode
		sentinel error
	}{
		{name: "unique", code: "23505", sentinel: repository.ErrUniqueViolation},
		{name: "foreign key", code: "23503", sentinel: repository.ErrForeignKeyViolation},
		{name: "exclusion", code: "23P01", sentinel: repository.ErrExclusionViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)

			mock.ExpectExec("INSERT INTO movies").
				WillReturnError(&pq.Error{Code: tt.code, Constraint: "movies_constraint"})

			err := repo.Insert(context.Background(), movie{ID: "m1", Title: "Dune"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}

	repo, mock := newRepository(t)
	mock.ExpectExec("INSERT INTO movies").WillReturnError(errors.New("connection reset"))

	err := repo.Insert(context.Background(), movie{ID: "m1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrUniqueViolation)
}

func TestRepository_Get(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT movies.id, movies.title FROM movies")).
		ExpectQuery().
		WithArgs("m1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow("m1", "Dune"))

	got, err := repo.Get(context.Background(), byID("m1"))
	require.NoError(t, err)
	assert.Equal(t, movie{ID: "m1", Title: "Dune"}, got)

	mock.ExpectPrepare("SELECT movies.id, movies.title FROM movies").
		ExpectQuery().
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	got, err = repo.Get(context.Background(), byID("missing"))
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetTxWithLock(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare("FROM movies .*FOR UPDATE").
		ExpectQuery().
		WithArgs("m1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow("m1", "Dune"))
	mock.ExpectCommit()

	err := repo.Transaction(context.Background(), func(tx *sqlx.Tx) error {
		got, err := repo.GetTx(context.Background(), tx, repository.LockForUpdate, byID("m1"))
		if err != nil {
			return err
		}

		assert.Equal(t, "Dune", got.Title)

		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TransactionRollsBack(t *testing.T) {
	repo, mock := newRepository(t)
	failure := errors.New("overlap")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.Transaction(context.Background(), func(_ *sqlx.Tx) error {
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY movies.title ASC LIMIT $1 OFFSET $2")).
		ExpectQuery().
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow("m1", "Alien").AddRow("m2", "Brazil"))

	got, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 2, Limit: 10, SortBy: "title", SortDir: "ASC"}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(movies.id) FROM movies")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE movies SET title = $1")).
		WithArgs("Dune: Part Two", "m1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), map[string]any{"title": "Dune: Part Two"}, byID("m1")))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM movies")).
		WithArgs("m1").
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Delete(context.Background(), byID("m1"))
	assert.ErrorIs(t, err, repository.ErrForeignKeyViolation)

	assert.Error(t, repo.Delete(context.Background(), dto.FilterGroup{}))
	assert.Error(t, repo.Update(context.Background(), map[string]any{"title": "x"}, dto.FilterGroup{}))

	assert.NoError(t, mock.ExpectationsWereMet())
}
