package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/limbo/trackit/internal/repository"
	"github.com/limbo/trackit/pkg/entity"
	"github.com/limbo/trackit/pkg/week"
)

// BoardService assembles the weekly view model: the habit/day completion
// matrix plus the per-day completion-ratio series the chart renders.
type BoardService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
}

func NewBoardService(habitsRepo repository.HabitsRepositoryI, completionsRepo repository.CompletionsRepositoryI) *BoardService {
	if habitsRepo == nil || completionsRepo == nil {
		log.Fatal("on board service provided nil repos")
	}
	return &BoardService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
	}
}

func (bs *BoardService) GetBoard(ctx context.Context, userID string, ref time.Time) (*entity.Board, error) {
	w := week.Of(ref)
	habits, err := bs.habitsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	// Completions are only ever read inside the displayed week's bounds
	completions, err := bs.completionsRepo.GetByUserAndDateRange(ctx, userID, w.Days[0].Key, w.Days[6].Key)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}

	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		done[fmt.Sprintf("%d:%s", c.HabitID, c.Day)] = true
	}

	board := &entity.Board{
		WeekStart: w.Days[0].Key,
		WeekEnd:   w.Days[6].Key,
		WeekNum:   week.Number(w.Start),
		Days:      make([]entity.BoardDay, 0, len(w.Days)),
		Habits:    habits,
		Matrix:    make(map[int]map[string]bool, len(habits)),
		Series:    make([]float64, len(w.Days)),
	}
	for _, d := range w.Days {
		board.Days = append(board.Days, entity.BoardDay{Key: d.Key, Label: d.Label})
	}
	for _, h := range habits {
		row := make(map[string]bool, len(w.Days))
		for _, d := range w.Days {
			row[d.Key] = done[fmt.Sprintf("%d:%s", h.ID, d.Key)]
		}
		board.Matrix[h.ID] = row
	}
	for i, d := range w.Days {
		if len(habits) == 0 {
			// Empty board charts flat zero instead of dividing by zero
			board.Series[i] = 0
			continue
		}
		count := 0
		for _, h := range habits {
			if board.Matrix[h.ID][d.Key] {
				count++
			}
		}
		board.Series[i] = float64(count) / float64(len(habits))
	}
	return board, nil
}
