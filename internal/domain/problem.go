package domain

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when a problem id has no matching row.
	ErrNotFound = errors.New("problem not found")

	// ErrInvalidAttempt is returned for attempt ordinals outside {1, 2, 3}.
	ErrInvalidAttempt = errors.New("attempt must be 1, 2, or 3")
)

// Problem represents a single tracked practice problem.
//
// Optional fields use database/sql Null wrappers end to end so that
// "not set" survives storage and display distinct from an empty value.
type Problem struct {
	ID               int64
	Description      string `validate:"required"`
	Link             sql.NullString
	Category         sql.NullString
	Pattern          sql.NullString
	Difficulty       sql.NullString
	TimeToSolve1st   sql.NullInt64
	TimeToSolve2nd   sql.NullInt64
	TimeToSolve3rd   sql.NullInt64
	Comments         sql.NullString
	ShouldSolveAgain bool
}

// SolveTimes returns the three attempt slots in fixed order.
func (p Problem) SolveTimes() [3]sql.NullInt64 {
	return [3]sql.NullInt64{p.TimeToSolve1st, p.TimeToSolve2nd, p.TimeToSolve3rd}
}

// Attempt identifies one of the three timed solve attempts.
type Attempt int

const (
	First  Attempt = 1
	Second Attempt = 2
	Third  Attempt = 3
)

// attemptColumns maps each attempt ordinal to its column identifier.
// Only these internally-controlled identifiers may ever be substituted
// into a query string.
var attemptColumns = map[Attempt]string{
	First:  "time_to_solve_1st",
	Second: "time_to_solve_2nd",
	Third:  "time_to_solve_3rd",
}

// Valid reports whether the attempt ordinal is one of {1, 2, 3}.
func (a Attempt) Valid() bool {
	_, ok := attemptColumns[a]
	return ok
}

// Column returns the column identifier for the attempt slot.
// It returns ErrInvalidAttempt for ordinals outside the enum.
func (a Attempt) Column() (string, error) {
	col, ok := attemptColumns[a]
	if !ok {
		return "", ErrInvalidAttempt
	}
	return col, nil
}
