// Package render turns a problem into the fixed multi-line text block
// printed by the CLI. The layout is a stable contract: header, optional
// link line, solve-times line, optional comments line, optional review
// marker, in that order.
package render

import (
	"fmt"
	"strings"

	"github.com/conorfennell/probtrack/internal/domain"
)

const (
	unknownDifficulty = "Unknown"
	emptySlot         = "-"
	notAttempted      = "Not attempted"
	reviewMarker      = "[REVIEW NEEDED]"
)

// Problem renders a problem as a human-readable text block.
func Problem(p domain.Problem) string {
	var b strings.Builder

	difficulty := unknownDifficulty
	if p.Difficulty.Valid {
		difficulty = p.Difficulty.String
	}
	fmt.Fprintf(&b, "Problem #%d: %s (%s)", p.ID, p.Description, difficulty)

	if p.Category.Valid {
		fmt.Fprintf(&b, " - Category: %s", p.Category.String)
	}
	if p.Pattern.Valid {
		fmt.Fprintf(&b, " - Pattern: %s", p.Pattern.String)
	}

	if p.Link.Valid {
		fmt.Fprintf(&b, "\n  Link: %s", p.Link.String)
	}

	fmt.Fprintf(&b, "\n  Solve times: %s", solveTimes(p))

	if p.Comments.Valid {
		fmt.Fprintf(&b, "\n  Comments: %s", p.Comments.String)
	}

	if p.ShouldSolveAgain {
		fmt.Fprintf(&b, "\n  %s", reviewMarker)
	}

	return b.String()
}

// solveTimes renders the three attempt slots as a fixed-order tuple.
// Slots are read left to right; the first absent slot blanks itself and
// every slot after it. A fully blank tuple collapses to "Not attempted".
func solveTimes(p domain.Problem) string {
	slots := p.SolveTimes()

	parts := make([]string, 0, len(slots))
	present := true
	for _, slot := range slots {
		present = present && slot.Valid
		if present {
			parts = append(parts, fmt.Sprintf("%dmin", slot.Int64))
		} else {
			parts = append(parts, emptySlot)
		}
	}

	if parts[0] == emptySlot {
		return notAttempted
	}
	return strings.Join(parts, ", ")
}
