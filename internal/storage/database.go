package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/conorfennell/probtrack/internal/domain"
	"github.com/go-playground/validator/v10"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB represents a wrapper around the SQL database connection.
type DB struct {
	conn     *sql.DB
	validate *validator.Validate
}

// Open creates a new database connection and ensures the schema exists.
// It is safe to call repeatedly against the same file; existing data is
// left untouched.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Execute the schema to create the table if it doesn't exist.
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{
		conn:     db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// problemColumns is the canonical column order shared by every SELECT
// and by scanProblem.
const problemColumns = `id, description, link, category, pattern, difficulty,
	time_to_solve_1st, time_to_solve_2nd, time_to_solve_3rd,
	comments, should_solve_again`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProblem(row rowScanner) (domain.Problem, error) {
	var p domain.Problem
	var review int64
	err := row.Scan(
		&p.ID,
		&p.Description,
		&p.Link,
		&p.Category,
		&p.Pattern,
		&p.Difficulty,
		&p.TimeToSolve1st,
		&p.TimeToSolve2nd,
		&p.TimeToSolve3rd,
		&p.Comments,
		&review,
	)
	if err != nil {
		return domain.Problem{}, err
	}
	p.ShouldSolveAgain = review != 0
	return p, nil
}

// InsertProblem inserts a new problem and returns its assigned id.
func (db *DB) InsertProblem(p domain.Problem) (int64, error) {
	if err := db.validate.Struct(p); err != nil {
		return 0, fmt.Errorf("invalid problem: %w", err)
	}

	res, err := db.conn.Exec(`
		INSERT INTO problems (
			description, link, category, pattern, difficulty,
			time_to_solve_1st, time_to_solve_2nd, time_to_solve_3rd,
			comments, should_solve_again
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.Description,
		p.Link,
		p.Category,
		p.Pattern,
		p.Difficulty,
		p.TimeToSolve1st,
		p.TimeToSolve2nd,
		p.TimeToSolve3rd,
		p.Comments,
		boolToInt(p.ShouldSolveAgain),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert problem: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// FindProblemByID retrieves a problem by its id. It returns
// domain.ErrNotFound when no such row exists.
func (db *DB) FindProblemByID(id int64) (*domain.Problem, error) {
	row := db.conn.QueryRow(`
		SELECT `+problemColumns+`
		FROM problems WHERE id = ?
	`, id)

	p, err := scanProblem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find problem %d: %w", id, err)
	}
	return &p, nil
}

// GetAllProblems retrieves every problem ordered by ascending id.
func (db *DB) GetAllProblems() ([]domain.Problem, error) {
	return db.queryProblems(`
		SELECT ` + problemColumns + `
		FROM problems ORDER BY id
	`)
}

// GetProblemsToReview retrieves the problems flagged for review.
func (db *DB) GetProblemsToReview() ([]domain.Problem, error) {
	return db.queryProblems(`
		SELECT ` + problemColumns + `
		FROM problems WHERE should_solve_again = 1 ORDER BY id
	`)
}

// GetProblemsByCategory retrieves the problems whose category equals
// the given value exactly (case-sensitive).
func (db *DB) GetProblemsByCategory(category string) ([]domain.Problem, error) {
	return db.queryProblems(`
		SELECT `+problemColumns+`
		FROM problems WHERE category = ? ORDER BY id
	`, category)
}

// GetProblemsByPattern retrieves the problems whose pattern equals the
// given value exactly (case-sensitive).
func (db *DB) GetProblemsByPattern(pattern string) ([]domain.Problem, error) {
	return db.queryProblems(`
		SELECT `+problemColumns+`
		FROM problems WHERE pattern = ? ORDER BY id
	`, pattern)
}

// GetProblemsByDifficulty retrieves the problems whose difficulty
// equals the given value exactly (case-sensitive).
func (db *DB) GetProblemsByDifficulty(difficulty string) ([]domain.Problem, error) {
	return db.queryProblems(`
		SELECT `+problemColumns+`
		FROM problems WHERE difficulty = ? ORDER BY id
	`, difficulty)
}

// SearchProblems retrieves the problems where keyword occurs as a
// substring of the description, category, pattern or comments.
// Matching is case-insensitive for ASCII (SQLite LIKE semantics).
func (db *DB) SearchProblems(keyword string) ([]domain.Problem, error) {
	like := "%" + keyword + "%"
	return db.queryProblems(`
		SELECT `+problemColumns+`
		FROM problems
		WHERE description LIKE ?
		   OR category LIKE ?
		   OR pattern LIKE ?
		   OR comments LIKE ?
		ORDER BY id
	`, like, like, like, like)
}

func (db *DB) queryProblems(query string, args ...any) ([]domain.Problem, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query problems: %w", err)
	}
	defer rows.Close()

	var problems []domain.Problem
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan problem row: %w", err)
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate problem rows: %w", err)
	}
	return problems, nil
}

// UpdateSolveTime sets the solve-time slot for the given attempt and
// returns the number of rows affected. Zero rows means the id does not
// exist; callers decide whether that is worth reporting. The attempt
// ordinal is validated before any query is constructed and only the
// fixed column identifier from the attempt table is substituted.
func (db *DB) UpdateSolveTime(id int64, attempt domain.Attempt, minutes int64) (int64, error) {
	column, err := attempt.Column()
	if err != nil {
		return 0, err
	}

	res, err := db.conn.Exec(
		fmt.Sprintf("UPDATE problems SET %s = ? WHERE id = ?", column),
		minutes, id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update solve time for problem %d: %w", id, err)
	}
	return res.RowsAffected()
}

// ToggleReviewFlag flips should_solve_again on the given problem and
// returns the number of rows affected (zero when the id does not exist).
func (db *DB) ToggleReviewFlag(id int64) (int64, error) {
	res, err := db.conn.Exec(`
		UPDATE problems
		SET should_solve_again = NOT should_solve_again
		WHERE id = ?
	`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to toggle review flag for problem %d: %w", id, err)
	}
	return res.RowsAffected()
}

// DeleteProblem removes a problem permanently and returns the number of
// rows affected (zero when the id does not exist).
func (db *DB) DeleteProblem(id int64) (int64, error) {
	res, err := db.conn.Exec(`
		DELETE FROM problems
		WHERE id = ?
	`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete problem %d: %w", id, err)
	}
	return res.RowsAffected()
}

// Stats summarizes the tracked problems.
type Stats struct {
	TotalProblems     int
	NeedReview        int
	Attempted         int
	CountByDifficulty map[string]int
	CountByCategory   map[string]int
}

// GetStats computes aggregate counts over the problems table. Rows
// without a difficulty or category are grouped under "Unknown".
func (db *DB) GetStats() (*Stats, error) {
	stats := &Stats{
		CountByDifficulty: make(map[string]int),
		CountByCategory:   make(map[string]int),
	}

	if err := db.conn.QueryRow("SELECT COUNT(*) FROM problems").Scan(&stats.TotalProblems); err != nil {
		return nil, fmt.Errorf("failed to count problems: %w", err)
	}

	if err := db.conn.QueryRow("SELECT COUNT(*) FROM problems WHERE should_solve_again = 1").Scan(&stats.NeedReview); err != nil {
		return nil, fmt.Errorf("failed to count review-flagged problems: %w", err)
	}

	if err := db.conn.QueryRow(`
		SELECT COUNT(*) FROM problems
		WHERE time_to_solve_1st IS NOT NULL
		   OR time_to_solve_2nd IS NOT NULL
		   OR time_to_solve_3rd IS NOT NULL
	`).Scan(&stats.Attempted); err != nil {
		return nil, fmt.Errorf("failed to count attempted problems: %w", err)
	}

	if err := db.countBy("difficulty", stats.CountByDifficulty); err != nil {
		return nil, err
	}
	if err := db.countBy("category", stats.CountByCategory); err != nil {
		return nil, err
	}

	return stats, nil
}

// countBy groups the problems table by one of the fixed label columns.
// The column name is an internal constant, never caller input.
func (db *DB) countBy(column string, into map[string]int) error {
	rows, err := db.conn.Query(fmt.Sprintf(
		"SELECT IFNULL(%s, 'Unknown'), COUNT(*) FROM problems GROUP BY %s", column, column,
	))
	if err != nil {
		return fmt.Errorf("failed to group problems by %s: %w", column, err)
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return fmt.Errorf("failed to scan %s count row: %w", column, err)
		}
		into[label] = count
	}
	return rows.Err()
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
