package planner

import (
	"errors"
	"fmt"

	"github.com/acrispim/vidaplan/internal/validation"
)

// The finalize pipeline surfaces one typed error per failure kind so the
// CLI can decide presentation. Every failure leaves the day-plan store
// exactly as it was; the user corrects inputs and retries the same call.
var (
	// ErrEmptyPlan means no plan data at all has been staged for the date
	ErrEmptyPlan = errors.New("no plan data staged for this date")

	// ErrMissingSleepWindow means the staged plan lacks bedtime or wake time
	ErrMissingSleepWindow = errors.New("sleep window is not set")

	// ErrEmptyGeneration means generation produced no activities beyond sleep
	ErrEmptyGeneration = errors.New("generated schedule has no activities beyond sleep")
)

// ConflictError aborts a finalize with the full list of detected overlaps.
type ConflictError struct {
	Conflicts []validation.Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule has %d conflict(s)", len(e.Conflicts))
}
