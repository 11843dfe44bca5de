package errorvalues

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid auth token")
	ErrHabitNotFound      = errors.New("habit doesn't exist")
	ErrCompletionNotFound = errors.New("completion doesn't exist")
	ErrInvalidDay         = errors.New("day is not a valid YYYY-MM-DD date")
)
