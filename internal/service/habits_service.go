package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/trackit/internal/error_values"
	"github.com/limbo/trackit/internal/repository"
	"github.com/limbo/trackit/pkg/entity"
)

type HabitsService struct {
	repo repository.HabitsRepositoryI
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI) *HabitsService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	return &HabitsService{
		repo: habitsRepo,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, userID string, req *CreateHabitRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		// Blank names are dropped silently, not surfaced as errors
		slog.Debug("ignored habit creation with blank name", slog.String("uid", userID))
		return nil
	}
	err := validate.Struct(CreateHabitRequest{Name: name})
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	err = hs.repo.Create(ctx, userID, name)
	if err != nil {
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, userID string) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID int, userID string) error {
	err := hs.repo.Delete(ctx, habitID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			// Foreign or missing habit: zero rows touched, reported as
			// success so callers can't probe other users' ids
			slog.Debug("habit deletion affected nothing",
				slog.Int("habit_id", habitID),
				slog.String("uid", userID),
			)
			return nil
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}
