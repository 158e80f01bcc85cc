package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/conorfennell/probtrack/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "problems.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustInsert(t *testing.T, db *DB, p domain.Problem) int64 {
	t.Helper()
	id, err := db.InsertProblem(p)
	if err != nil {
		t.Fatalf("Failed to insert problem: %v", err)
	}
	return id
}

func str(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }
func num(n int64) sql.NullInt64   { return sql.NullInt64{Int64: n, Valid: true} }

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	id := mustInsert(t, db, domain.Problem{Description: "Two Sum"})
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	db2, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer db2.Close()

	p, err := db2.FindProblemByID(id)
	if err != nil {
		t.Fatalf("Expected existing data to survive reopen, got error: %v", err)
	}
	if p.Description != "Two Sum" {
		t.Errorf("Expected description 'Two Sum', got %q", p.Description)
	}
}

func TestInsertAndFindRoundtrip(t *testing.T) {
	db := openTestDB(t)

	in := domain.Problem{
		Description:      "Longest Substring Without Repeating Characters",
		Link:             str("https://leetcode.com/problems/longest-substring"),
		Category:         str("Strings"),
		Pattern:          str("Sliding Window"),
		Difficulty:       str("Medium"),
		TimeToSolve1st:   num(35),
		TimeToSolve2nd:   num(20),
		Comments:         str("Watch the window shrink condition"),
		ShouldSolveAgain: true,
	}

	id := mustInsert(t, db, in)
	if id <= 0 {
		t.Fatalf("Expected a positive id, got %d", id)
	}

	got, err := db.FindProblemByID(id)
	if err != nil {
		t.Fatalf("Failed to find inserted problem: %v", err)
	}

	in.ID = id
	if *got != in {
		t.Errorf("Roundtrip mismatch:\n got %+v\nwant %+v", *got, in)
	}
	if got.TimeToSolve3rd.Valid {
		t.Error("Expected third solve time to stay absent")
	}
}

func TestAbsentIsDistinctFromEmpty(t *testing.T) {
	db := openTestDB(t)

	absentID := mustInsert(t, db, domain.Problem{Description: "no link"})
	emptyID := mustInsert(t, db, domain.Problem{Description: "empty link", Link: str("")})

	absent, err := db.FindProblemByID(absentID)
	if err != nil {
		t.Fatalf("Failed to find problem: %v", err)
	}
	empty, err := db.FindProblemByID(emptyID)
	if err != nil {
		t.Fatalf("Failed to find problem: %v", err)
	}

	if absent.Link.Valid {
		t.Error("Expected unset link to come back as absent")
	}
	if !empty.Link.Valid || empty.Link.String != "" {
		t.Errorf("Expected empty link to come back present and empty, got %+v", empty.Link)
	}
}

func TestInsertRejectsEmptyDescription(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.InsertProblem(domain.Problem{}); err == nil {
		t.Error("Expected inserting an empty description to fail")
	}
}

func TestFindNotFound(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.FindProblemByID(9999); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetAllProblemsOrderedByID(t *testing.T) {
	db := openTestDB(t)

	first := mustInsert(t, db, domain.Problem{Description: "first"})
	second := mustInsert(t, db, domain.Problem{Description: "second"})
	third := mustInsert(t, db, domain.Problem{Description: "third"})

	problems, err := db.GetAllProblems()
	if err != nil {
		t.Fatalf("Failed to get all problems: %v", err)
	}
	if len(problems) != 3 {
		t.Fatalf("Expected 3 problems, got %d", len(problems))
	}
	for i, want := range []int64{first, second, third} {
		if problems[i].ID != want {
			t.Errorf("Expected id %d at position %d, got %d", want, i, problems[i].ID)
		}
	}
}

func TestGetAllProblemsEmpty(t *testing.T) {
	db := openTestDB(t)

	problems, err := db.GetAllProblems()
	if err != nil {
		t.Fatalf("Expected empty result, got error: %v", err)
	}
	if len(problems) != 0 {
		t.Errorf("Expected no problems, got %d", len(problems))
	}
}

func TestGetProblemsToReview(t *testing.T) {
	db := openTestDB(t)

	mustInsert(t, db, domain.Problem{Description: "done"})
	flagged := mustInsert(t, db, domain.Problem{Description: "again", ShouldSolveAgain: true})

	problems, err := db.GetProblemsToReview()
	if err != nil {
		t.Fatalf("Failed to get review problems: %v", err)
	}
	if len(problems) != 1 || problems[0].ID != flagged {
		t.Errorf("Expected only the flagged problem, got %+v", problems)
	}
}

func TestExactMatchFiltersAreCaseSensitive(t *testing.T) {
	db := openTestDB(t)

	id := mustInsert(t, db, domain.Problem{
		Description: "Two Sum",
		Category:    str("Arrays"),
		Pattern:     str("Hash Map"),
		Difficulty:  str("Easy"),
	})

	t.Run("exact category matches", func(t *testing.T) {
		problems, err := db.GetProblemsByCategory("Arrays")
		if err != nil {
			t.Fatalf("Failed to filter by category: %v", err)
		}
		if len(problems) != 1 || problems[0].ID != id {
			t.Errorf("Expected the Arrays problem, got %+v", problems)
		}
	})

	t.Run("differing case matches nothing", func(t *testing.T) {
		problems, err := db.GetProblemsByCategory("arrays")
		if err != nil {
			t.Fatalf("Failed to filter by category: %v", err)
		}
		if len(problems) != 0 {
			t.Errorf("Expected no match for 'arrays', got %+v", problems)
		}
	})

	t.Run("pattern and difficulty filters", func(t *testing.T) {
		byPattern, err := db.GetProblemsByPattern("Hash Map")
		if err != nil {
			t.Fatalf("Failed to filter by pattern: %v", err)
		}
		if len(byPattern) != 1 {
			t.Errorf("Expected one Hash Map problem, got %d", len(byPattern))
		}

		byDifficulty, err := db.GetProblemsByDifficulty("Easy")
		if err != nil {
			t.Fatalf("Failed to filter by difficulty: %v", err)
		}
		if len(byDifficulty) != 1 {
			t.Errorf("Expected one Easy problem, got %d", len(byDifficulty))
		}
	})
}

func TestSearchProblems(t *testing.T) {
	db := openTestDB(t)

	twoSum := mustInsert(t, db, domain.Problem{Description: "Two Sum", Category: str("Arrays")})
	window := mustInsert(t, db, domain.Problem{Description: "Max Window", Pattern: str("sliding window")})
	noted := mustInsert(t, db, domain.Problem{Description: "Coin Change", Comments: str("classic dp, felt two times harder")})
	mustInsert(t, db, domain.Problem{Description: "Unrelated", Link: str("https://example.com/two")})

	t.Run("substring over four fields, ordered by id", func(t *testing.T) {
		problems, err := db.SearchProblems("two")
		if err != nil {
			t.Fatalf("Failed to search: %v", err)
		}
		var ids []int64
		for _, p := range problems {
			ids = append(ids, p.ID)
		}
		// "two" appears in a description and in comments; the link field
		// is not searched.
		want := []int64{twoSum, noted}
		if len(ids) != len(want) {
			t.Fatalf("Expected ids %v, got %v", want, ids)
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("Expected ids %v, got %v", want, ids)
			}
		}
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		problems, err := db.SearchProblems("WINDOW")
		if err != nil {
			t.Fatalf("Failed to search: %v", err)
		}
		if len(problems) != 1 || problems[0].ID != window {
			t.Errorf("Expected the window problem, got %+v", problems)
		}
	})

	t.Run("no match is not an error", func(t *testing.T) {
		problems, err := db.SearchProblems("zzz")
		if err != nil {
			t.Fatalf("Failed to search: %v", err)
		}
		if len(problems) != 0 {
			t.Errorf("Expected no matches, got %+v", problems)
		}
	})
}

func TestUpdateSolveTime(t *testing.T) {
	db := openTestDB(t)

	id := mustInsert(t, db, domain.Problem{Description: "Two Sum"})

	t.Run("sets exactly the targeted slot", func(t *testing.T) {
		if _, err := db.UpdateSolveTime(id, domain.Second, 10); err != nil {
			t.Fatalf("Failed to update solve time: %v", err)
		}

		p, err := db.FindProblemByID(id)
		if err != nil {
			t.Fatalf("Failed to find problem: %v", err)
		}
		if p.TimeToSolve1st.Valid || p.TimeToSolve3rd.Valid {
			t.Error("Expected only the second slot to be set")
		}
		if !p.TimeToSolve2nd.Valid || p.TimeToSolve2nd.Int64 != 10 {
			t.Errorf("Expected second slot to be 10, got %+v", p.TimeToSolve2nd)
		}
	})

	t.Run("rejects invalid attempt without mutating", func(t *testing.T) {
		if _, err := db.UpdateSolveTime(id, domain.Attempt(4), 99); !errors.Is(err, domain.ErrInvalidAttempt) {
			t.Fatalf("Expected ErrInvalidAttempt, got %v", err)
		}

		p, err := db.FindProblemByID(id)
		if err != nil {
			t.Fatalf("Failed to find problem: %v", err)
		}
		if p.TimeToSolve1st.Valid || p.TimeToSolve3rd.Valid {
			t.Error("Expected slots to be untouched after a rejected attempt")
		}
	})

	t.Run("missing id is a zero-row no-op", func(t *testing.T) {
		affected, err := db.UpdateSolveTime(9999, domain.First, 5)
		if err != nil {
			t.Fatalf("Expected no error for a missing id, got %v", err)
		}
		if affected != 0 {
			t.Errorf("Expected zero rows affected, got %d", affected)
		}
	})
}

func TestToggleReviewFlag(t *testing.T) {
	db := openTestDB(t)

	id := mustInsert(t, db, domain.Problem{Description: "Two Sum"})

	reviewFlag := func() bool {
		t.Helper()
		p, err := db.FindProblemByID(id)
		if err != nil {
			t.Fatalf("Failed to find problem: %v", err)
		}
		return p.ShouldSolveAgain
	}

	if _, err := db.ToggleReviewFlag(id); err != nil {
		t.Fatalf("Failed to toggle review flag: %v", err)
	}
	if !reviewFlag() {
		t.Error("Expected review flag to be set after one toggle")
	}

	if _, err := db.ToggleReviewFlag(id); err != nil {
		t.Fatalf("Failed to toggle review flag: %v", err)
	}
	if reviewFlag() {
		t.Error("Expected two toggles to restore the original value")
	}

	affected, err := db.ToggleReviewFlag(9999)
	if err != nil {
		t.Fatalf("Expected no error for a missing id, got %v", err)
	}
	if affected != 0 {
		t.Errorf("Expected zero rows affected for a missing id, got %d", affected)
	}
}

func TestDeleteProblem(t *testing.T) {
	db := openTestDB(t)

	id := mustInsert(t, db, domain.Problem{Description: "Two Sum"})

	affected, err := db.DeleteProblem(id)
	if err != nil {
		t.Fatalf("Failed to delete problem: %v", err)
	}
	if affected != 1 {
		t.Errorf("Expected one row affected, got %d", affected)
	}

	if _, err := db.FindProblemByID(id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	affected, err = db.DeleteProblem(9999)
	if err != nil {
		t.Fatalf("Expected no error deleting a missing id, got %v", err)
	}
	if affected != 0 {
		t.Errorf("Expected zero rows affected, got %d", affected)
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	db := openTestDB(t)

	mustInsert(t, db, domain.Problem{Description: "first"})
	last := mustInsert(t, db, domain.Problem{Description: "second"})
	if _, err := db.DeleteProblem(last); err != nil {
		t.Fatalf("Failed to delete problem: %v", err)
	}

	next := mustInsert(t, db, domain.Problem{Description: "third"})
	if next <= last {
		t.Errorf("Expected a fresh id greater than %d, got %d", last, next)
	}
}

func TestGetStats(t *testing.T) {
	db := openTestDB(t)

	mustInsert(t, db, domain.Problem{Description: "a", Difficulty: str("Easy"), Category: str("Arrays"), TimeToSolve1st: num(15)})
	mustInsert(t, db, domain.Problem{Description: "b", Difficulty: str("Easy"), ShouldSolveAgain: true})
	mustInsert(t, db, domain.Problem{Description: "c", Category: str("Graphs")})

	stats, err := db.GetStats()
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}

	if stats.TotalProblems != 3 {
		t.Errorf("Expected 3 total problems, got %d", stats.TotalProblems)
	}
	if stats.NeedReview != 1 {
		t.Errorf("Expected 1 review-flagged problem, got %d", stats.NeedReview)
	}
	if stats.Attempted != 1 {
		t.Errorf("Expected 1 attempted problem, got %d", stats.Attempted)
	}
	if stats.CountByDifficulty["Easy"] != 2 || stats.CountByDifficulty["Unknown"] != 1 {
		t.Errorf("Unexpected difficulty breakdown: %+v", stats.CountByDifficulty)
	}
	if stats.CountByCategory["Arrays"] != 1 || stats.CountByCategory["Graphs"] != 1 || stats.CountByCategory["Unknown"] != 1 {
		t.Errorf("Unexpected category breakdown: %+v", stats.CountByCategory)
	}
}
