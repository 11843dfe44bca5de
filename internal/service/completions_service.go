package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	errorvalues "github.com/limbo/trackit/internal/error_values"
	"github.com/limbo/trackit/internal/repository"
	"github.com/limbo/trackit/pkg/week"
)

type CompletionsService struct {
	repo repository.CompletionsRepositoryI
}

func NewCompletionsService(completionsRepo repository.CompletionsRepositoryI) *CompletionsService {
	if completionsRepo == nil {
		log.Fatal("provided nil completionsRepo")
	}
	return &CompletionsService{
		repo: completionsRepo,
	}
}

func (cs *CompletionsService) ToggleCompletion(ctx context.Context, habitID int, userID, day string, value bool) error {
	if _, err := time.Parse(week.DayKeyLayout, day); err != nil {
		return errorvalues.ErrInvalidDay
	}
	if value {
		// Insert ignores an existing (habit_id, day) key, so toggling on
		// twice keeps exactly one row
		err := cs.repo.Create(ctx, habitID, userID, day)
		if err != nil {
			if errors.Is(err, errorvalues.ErrHabitNotFound) {
				return err
			}
			return errors.New("completions repository error: " + err.Error())
		}
		return nil
	}
	err := cs.repo.Delete(ctx, habitID, userID, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCompletionNotFound) {
			// Cell already absent, nothing to undo
			slog.Debug("toggle-off on absent completion",
				slog.Int("habit_id", habitID),
				slog.String("day", day),
			)
			return nil
		}
		return errors.New("completions repository error: " + err.Error())
	}
	return nil
}
