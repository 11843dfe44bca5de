package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/trackit/internal/error_values"
	"github.com/limbo/trackit/internal/repository"
	"github.com/limbo/trackit/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDay = "2026-08-26"
)

func TestCreateCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO habit_completions (habit_id, user_id, day) VALUES ($1, $2, $3::date) ON CONFLICT DO NOTHING;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(1, userID, testDay).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, 1, userID, testDay)
		assert.NoError(t, err)
	})
	t.Run("conflict swallowed", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(1, userID, testDay).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		err := repo.Create(ctx, 1, userID, testDay)
		assert.NoError(t, err)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(404, userID, testDay).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.Create(ctx, 404, userID, testDay)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(1, userID, testDay).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, 1, userID, testDay)
		assert.Error(t, err)
	})
}

func TestDeleteCompletion(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`DELETE FROM habit_completions WHERE habit_id = $1 AND user_id = $2 AND day = $3::date;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(1, userID, testDay).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, 1, userID, testDay)
		assert.NoError(t, err)
	})
	t.Run("already absent", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(1, userID, testDay).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, 1, userID, testDay)
		assert.ErrorIs(t, err, errorvalues.ErrCompletionNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(1, userID, testDay).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, 1, userID, testDay)
		assert.Error(t, err)
	})
}

func TestGetCompletionsByUserAndDateRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCompletionsRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT habit_id, user_id, to_char(day, 'YYYY-MM-DD') AS day
		FROM habit_completions WHERE user_id = $1 AND day BETWEEN $2::date AND $3::date;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, "2026-08-24", "2026-08-30").
			WillReturnRows(pgxmock.NewRows([]string{"habit_id", "user_id", "day"}).
				AddRow(1, userID, "2026-08-26").
				AddRow(2, userID, "2026-08-24"),
			)
		completions, err := repo.GetByUserAndDateRange(ctx, userID, "2026-08-24", "2026-08-30")
		assert.NoError(t, err)
		assert.Equal(t, []entity.Completion{
			{HabitID: 1, UserID: userID, Day: "2026-08-26"},
			{HabitID: 2, UserID: userID, Day: "2026-08-24"},
		}, completions)
	})
	t.Run("empty range", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, "2026-08-24", "2026-08-30").
			WillReturnRows(pgxmock.NewRows([]string{"habit_id", "user_id", "day"}))
		completions, err := repo.GetByUserAndDateRange(ctx, userID, "2026-08-24", "2026-08-30")
		assert.NoError(t, err)
		assert.Empty(t, completions)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, "2026-08-24", "2026-08-30").
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDateRange(ctx, userID, "2026-08-24", "2026-08-30")
		assert.Error(t, err)
	})
}

func TestCompletionsRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	pool := setupTestDB(t)
	repo := repository.NewCompletionsRepoWithConn(pool)
	ctx := context.Background()

	var habitID int
	err := pool.QueryRow(ctx, `INSERT INTO habits (user_id, name, position) VALUES ($1, 'Read', 0) RETURNING id;`, userID).Scan(&habitID)
	require.NoError(t, err)

	t.Run("double toggle-on leaves one row", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, habitID, userID, testDay))
		require.NoError(t, repo.Create(ctx, habitID, userID, testDay))

		var count int
		err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM habit_completions WHERE habit_id = $1 AND day = $2::date;`, habitID, testDay).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("toggle-off removes the row, second one reports absence", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, habitID, userID, testDay))
		err := repo.Delete(ctx, habitID, userID, testDay)
		assert.ErrorIs(t, err, errorvalues.ErrCompletionNotFound)

		var count int
		err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM habit_completions WHERE habit_id = $1;`, habitID).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("cascade delete removes completions with the habit", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, habitID, userID, testDay))
		_, err := pool.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, habitID)
		require.NoError(t, err)

		completions, err := repo.GetByUserAndDateRange(ctx, userID, "2026-08-24", "2026-08-30")
		require.NoError(t, err)
		assert.Empty(t, completions)
	})
}
