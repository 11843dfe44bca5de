package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/trackit/pkg/entity"
)

type HabitsRepositoryI interface {
	// Creates new habit owned by userID. Position gets the tail sentinel
	Create(ctx context.Context, userID, name string) error
	// Lists user's full habit set, ordered by (position, id)
	GetByUserID(ctx context.Context, userID string) ([]*entity.Habit, error)
	// Deletes habit scoped by both id and owner. Zero affected rows surface as ErrHabitNotFound
	Delete(ctx context.Context, habitID int, userID string) error
}

type CompletionsRepositoryI interface {
	// Inserts completion row, silently keeping an already-present key
	Create(ctx context.Context, habitID int, userID, day string) error
	// Deletes completion row. Zero affected rows surface as ErrCompletionNotFound
	Delete(ctx context.Context, habitID int, userID, day string) error
	// Provides user's completions with day in [from, to] inclusive
	GetByUserAndDateRange(ctx context.Context, userID, from, to string) ([]entity.Completion, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
