package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/trackit/internal/error_values"
	"github.com/limbo/trackit/pkg/cleanup"
	"github.com/limbo/trackit/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(cfg DBConfig) *CompletionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for completionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CompletionsRepository{
		conn: pool,
	}
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Create(ctx context.Context, habitID int, userID, day string) error {
	// (habit_id, day) is the primary key; ON CONFLICT DO NOTHING makes
	// concurrent duplicate toggles collapse into one row
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO habit_completions (habit_id, user_id, day) VALUES ($1, $2, $3::date) ON CONFLICT DO NOTHING;`,
		habitID,
		userID,
		day,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("creating completion error: " + err.Error())
	}
	return nil
}

func (cr *CompletionsRepository) Delete(ctx context.Context, habitID int, userID, day string) error {
	ct, err := cr.conn.Exec(
		ctx,
		`DELETE FROM habit_completions WHERE habit_id = $1 AND user_id = $2 AND day = $3::date;`,
		habitID,
		userID,
		day,
	)
	if err != nil {
		return errors.New("deleting completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCompletionNotFound
	}
	return nil
}

func (cr *CompletionsRepository) GetByUserAndDateRange(ctx context.Context, userID, from, to string) ([]entity.Completion, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT habit_id, user_id, to_char(day, 'YYYY-MM-DD') AS day
		FROM habit_completions WHERE user_id = $1 AND day BETWEEN $2::date AND $3::date;`,
		userID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting completions for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Completion, 0)
	for rows.Next() {
		c := entity.Completion{}
		err = rows.Scan(&c.HabitID, &c.UserID, &c.Day)
		if err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion rows error: " + rows.Err().Error())
	}
	return result, nil
}
