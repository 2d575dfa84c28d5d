package repository

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupMockDB opens a Gorm session over a sqlmock connection. Default
// transactions are disabled so single statements map to single
// expectations; explicit Transaction blocks still begin and commit.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestPostRepository_IncrementViewCount(t *testing.T) {
	ctx := context.Background()

	t.Run("single statement increment", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`UPDATE "posts" SET "view_count"=view_count`).
			WithArgs(1, "p1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.IncrementViewCount(ctx, "p1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means the post is gone", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`UPDATE "posts" SET "view_count"=view_count`).
			WithArgs(1, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.IncrementViewCount(ctx, "missing")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure maps to internal", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectExec(`UPDATE "posts" SET "view_count"=view_count`).
			WithArgs(1, "p1").
			WillReturnError(errors.New("connection reset"))

		err := repo.IncrementViewCount(ctx, "p1")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeInternal, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes comments and join rows before the post", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "comments" WHERE post_id`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM post_categories WHERE post_id`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "posts" WHERE id`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(ctx, "p1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing post rolls the transaction back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "comments" WHERE post_id`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM post_categories WHERE post_id`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM "posts" WHERE id`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(ctx, "missing")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_List(t *testing.T) {
	ctx := context.Background()
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	params, err := models.NewPageParams(2, 10)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name"}).
			AddRow("u11", "eleven@example.com", "Eleven").
			AddRow("u12", "twelve@example.com", "Twelve"))
	mock.ExpectCommit()

	users, total, err := repo.List(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, users, 2)
	assert.Equal(t, "u11", users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
