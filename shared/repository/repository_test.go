package repository_test

import (
	"context"
	"errors"
	"hoteldash/infras/otel/mocks"
	"hoteldash/infras/postgres"
	"hoteldash/shared"
	"hoteldash/shared/dto"
	"hoteldash/shared/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID        int64  `db:"widget_id"  insert:"false"`
	HotelID   int64  `db:"hotel_id"`
	Name      string `db:"name"`
	HotelName string `db:"hotel_name" column:"name" table:"hotels"`
}

func (widget) GetJoinQuery() string {
	return "JOIN hotels ON hotels.hotel_id = widgets.hotel_id"
}

func newRepository(t *testing.T) (repository.Repository[widget], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[widget]("widget", "widgets", "widget_id", conn, mocks.NewOtel()), mock
}

func TestRepository_InsertColumns(t *testing.T) {
	repo, _ := newRepository(t)

	assert.Equal(t, []string{"hotel_id", "name"}, repo.InsertColumns)
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO widgets (hotel_id, name) VALUES ($1, $2) RETURNING widget_id")).
		ExpectQuery().
		WithArgs(int64(1), "lamp").
		WillReturnRows(sqlmock.NewRows([]string{"widget_id"}).AddRow(int64(42)))

	id, err := repo.Insert(context.Background(), widget{HotelID: 1, Name: "lamp"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT widgets.widget_id, widgets.hotel_id, widgets.name, hotels.name AS hotel_name FROM widgets JOIN hotels ON hotels.hotel_id = widgets.hotel_id")).
			ExpectQuery().
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"widget_id", "hotel_id", "name", "hotel_name"}).AddRow(int64(42), int64(1), "lamp", "Hotel Nord"))

		res, err := repo.Get(context.Background(), shared.FilterByID(int64(42), "widget_id", "widgets"))

		require.NoError(t, err)
		assert.Equal(t, "Hotel Nord", res.HotelName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows gives zero value", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectPrepare("SELECT (.+) FROM widgets").
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"widget_id", "hotel_id", "name", "hotel_name"}))

		res, err := repo.Get(context.Background(), shared.FilterByID(int64(7), "widget_id", "widgets"))

		require.NoError(t, err)
		assert.Zero(t, res.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_WithTx(t *testing.T) {
	t.Run("commit locks and writes in one transaction", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectPrepare("SELECT (.+) FROM widgets (.+) FOR UPDATE OF widgets").
			ExpectQuery().
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"widget_id", "hotel_id", "name", "hotel_name"}).AddRow(int64(42), int64(1), "lamp", "Hotel Nord"))
		mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM widgets")).
			ExpectQuery().
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE widgets SET name = $1")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.WithTx(context.Background(), func(tx *sqlx.Tx) error {
			locked, err := repo.GetForUpdateTx(context.Background(), tx, shared.FilterByID(int64(42), "widget_id", "widgets"))
			if err != nil {
				return err
			}

			exist, err := repo.ExistTx(context.Background(), tx, dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "name", Value: "desk", Operator: dto.FilterOperatorEq},
				},
			})
			if err != nil {
				return err
			}

			if exist {
				return errors.New("duplicate")
			}

			return repo.UpdateTx(context.Background(), tx, map[string]any{"name": "desk"}, shared.FilterByID(locked.ID, "widget_id", "widgets"))
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error rolls back and is returned unchanged", func(t *testing.T) {
		repo, mock := newRepository(t)
		sentinel := errors.New("room unavailable")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := repo.WithTx(context.Background(), func(_ *sqlx.Tx) error {
			return sentinel
		})

		assert.ErrorIs(t, err, sentinel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		called := false
		err := repo.WithTx(context.Background(), func(_ *sqlx.Tx) error {
			called = true

			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateRequiresFilter(t *testing.T) {
	repo, mock := newRepository(t)

	err := repo.Update(context.Background(), map[string]any{"name": "desk"}, dto.FilterGroup{})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(widgets.widget_id) FROM widgets")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), dto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
