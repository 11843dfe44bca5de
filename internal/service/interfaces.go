package service

import (
	"context"
	"time"

	"github.com/limbo/trackit/pkg/entity"
)

type CreateHabitRequest struct {
	Name string `validate:"max=200"`
}

type HabitsServiceI interface {
	// Trims the name and creates the habit. A blank name is dropped
	// without error, by policy
	CreateHabit(ctx context.Context, userID string, req *CreateHabitRequest) error
	// Returns user's full habit list in display order
	GetUserHabits(ctx context.Context, userID string) ([]*entity.Habit, error)
	// Deletes habit if it belongs to userID; foreign or missing ids are a no-op
	DeleteHabit(ctx context.Context, habitID int, userID string) error
}

type CompletionsServiceI interface {
	// Moves the (habitID, day) cell to present (value true) or absent
	// (value false). Both directions are idempotent
	ToggleCompletion(ctx context.Context, habitID int, userID, day string, value bool) error
}

type BoardServiceI interface {
	// Builds the weekly board for the week containing ref
	GetBoard(ctx context.Context, userID string, ref time.Time) (*entity.Board, error)
}
