package planner

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/storage"
)

// fakeStore is an in-memory Store for pipeline tests.
type fakeStore struct {
	staged    map[string]models.DayPlanInput
	schedules map[string]models.DailySchedule
	saves     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		staged:    make(map[string]models.DayPlanInput),
		schedules: make(map[string]models.DailySchedule),
	}
}

func (s *fakeStore) GetStagedInput(date string) (models.DayPlanInput, error) {
	input, ok := s.staged[date]
	if !ok {
		return models.DayPlanInput{}, fmt.Errorf("no staged plan for date %s: %w", date, storage.ErrNotFound)
	}
	return input, nil
}

func (s *fakeStore) ClearStagedInput(date string) error {
	delete(s.staged, date)
	return nil
}

func (s *fakeStore) GetSchedule(date string) (models.DailySchedule, error) {
	sched, ok := s.schedules[date]
	if !ok {
		return models.DailySchedule{}, fmt.Errorf("no schedule for date %s: %w", date, storage.ErrNotFound)
	}
	return sched, nil
}

func (s *fakeStore) SaveSchedule(schedule models.DailySchedule) error {
	s.schedules[schedule.Date] = schedule
	s.saves++
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testNow = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

func validPlan() models.DayPlanInput {
	return models.DayPlanInput{
		Sleep: &models.TimeWindow{Start: "23:00", End: "07:00"},
		Jobs: []models.NamedEntry{
			{Name: "Office", Times: []models.TimeWindow{{Start: "13:30", End: "17:00"}}},
		},
		// Meals synthesize to 12:20 and 17:40, clear of the job slot.
		MealsCount: 2,
	}
}

func TestFinalize_NothingStaged(t *testing.T) {
	store := newFakeStore()
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	_, err := f.Finalize("2026-03-14")
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("got %v, want ErrEmptyPlan", err)
	}
}

func TestFinalize_EmptyStagedPlan(t *testing.T) {
	store := newFakeStore()
	store.staged["2026-03-14"] = models.DayPlanInput{}
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	_, err := f.Finalize("2026-03-14")
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("got %v, want ErrEmptyPlan", err)
	}
}

func TestFinalize_MissingSleepWindow(t *testing.T) {
	store := newFakeStore()
	store.staged["2026-03-14"] = models.DayPlanInput{
		Jobs: []models.NamedEntry{
			{Name: "Office", Times: []models.TimeWindow{{Start: "09:00", End: "17:00"}}},
		},
	}
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	_, err := f.Finalize("2026-03-14")
	if !errors.Is(err, ErrMissingSleepWindow) {
		t.Fatalf("got %v, want ErrMissingSleepWindow", err)
	}
	if store.saves != 0 {
		t.Error("failed finalize must not write a schedule")
	}
}

func TestFinalize_SleepOnlyPlanIsEmptyGeneration(t *testing.T) {
	store := newFakeStore()
	store.staged["2026-03-14"] = models.DayPlanInput{
		Sleep: &models.TimeWindow{Start: "23:00", End: "07:00"},
	}
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	_, err := f.Finalize("2026-03-14")
	if !errors.Is(err, ErrEmptyGeneration) {
		t.Fatalf("got %v, want ErrEmptyGeneration", err)
	}
}

func TestFinalize_ConflictAbortsWithoutWrites(t *testing.T) {
	store := newFakeStore()
	store.staged["2026-03-14"] = models.DayPlanInput{
		Sleep: &models.TimeWindow{Start: "23:00", End: "07:00"},
		Jobs: []models.NamedEntry{
			{Name: "Office", Times: []models.TimeWindow{{Start: "09:00", End: "17:00"}}},
		},
		Studies: []models.NamedEntry{
			{Name: "Algorithms", Times: []models.TimeWindow{{Start: "10:00", End: "12:00"}}},
		},
	}
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	_, err := f.Finalize("2026-03-14")

	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("got %v, want *ConflictError", err)
	}
	if len(conflictErr.Conflicts) != 1 {
		t.Errorf("got %d conflicts, want 1", len(conflictErr.Conflicts))
	}
	if store.saves != 0 {
		t.Error("conflicted finalize must not write a schedule")
	}
	if _, ok := store.staged["2026-03-14"]; !ok {
		t.Error("conflicted finalize must keep the staged plan for correction")
	}
}

func TestFinalize_CommitsAndClearsStagedPlan(t *testing.T) {
	store := newFakeStore()
	store.staged["2026-03-14"] = validPlan()
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	sched, err := f.Finalize("2026-03-14")
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if sched.Date != "2026-03-14" {
		t.Errorf("date = %s, want 2026-03-14", sched.Date)
	}
	if sched.DayName != "Saturday" {
		t.Errorf("day name = %s, want Saturday", sched.DayName)
	}
	// Sleep + job + 2 meals.
	if len(sched.Activities) != 4 {
		t.Errorf("got %d activities, want 4", len(sched.Activities))
	}
	if sched.IsPlanned {
		t.Error("finalizing today's date should not mark the schedule as planned ahead")
	}
	if sched.CreatedAt != testNow.UTC().Format(time.RFC3339) {
		t.Errorf("created_at = %s, want %s", sched.CreatedAt, testNow.UTC().Format(time.RFC3339))
	}

	if _, ok := store.staged["2026-03-14"]; ok {
		t.Error("staged plan should be cleared after commit")
	}
	if _, ok := store.schedules["2026-03-14"]; !ok {
		t.Error("schedule was not persisted")
	}
}

// brokenReadStore fails every schedule read with a non-NotFound error.
type brokenReadStore struct {
	*fakeStore
}

func (s *brokenReadStore) GetSchedule(date string) (models.DailySchedule, error) {
	return models.DailySchedule{}, fmt.Errorf("disk I/O error")
}

func TestFinalize_ExistingScheduleReadFailureAborts(t *testing.T) {
	inner := newFakeStore()
	inner.staged["2026-03-14"] = validPlan()
	store := &brokenReadStore{fakeStore: inner}
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	_, err := f.Finalize("2026-03-14")
	if err == nil {
		t.Fatal("Finalize should abort when the existing schedule cannot be read")
	}
	if errors.Is(err, ErrEmptyPlan) || errors.Is(err, ErrMissingSleepWindow) || errors.Is(err, ErrEmptyGeneration) {
		t.Fatalf("storage failure must not masquerade as a plan error: %v", err)
	}
	if inner.saves != 0 {
		t.Error("nothing may be committed after a failed schedule read")
	}
	if _, ok := inner.staged["2026-03-14"]; !ok {
		t.Error("staged plan must survive an aborted finalize")
	}
}

func TestFinalize_FutureDateIsMarkedPlanned(t *testing.T) {
	store := newFakeStore()
	store.staged["2026-03-16"] = validPlan()
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	sched, err := f.Finalize("2026-03-16")
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if !sched.IsPlanned {
		t.Error("finalizing a future date should mark the schedule as planned ahead")
	}
}

func TestFinalize_RefinalizePreservesCreatedAtAndTracking(t *testing.T) {
	store := newFakeStore()
	store.staged["2026-03-14"] = validPlan()
	f := NewFinalizer(store, WithClock(fixedClock(testNow)))

	first, err := f.Finalize("2026-03-14")
	if err != nil {
		t.Fatalf("first Finalize failed: %v", err)
	}

	// Mark a meal complete on the committed schedule.
	marked := false
	for i := range first.Activities {
		if first.Activities[i].Name == "Meal 1" {
			first.Activities[i].SimpleTracking = &models.SimpleTracking{
				Status:     models.TrackingComplete,
				MarkedDate: "2026-03-14",
			}
			marked = true
		}
	}
	if !marked {
		t.Fatal("expected a Meal 1 activity on the committed schedule")
	}
	if err := store.SaveSchedule(first); err != nil {
		t.Fatalf("SaveSchedule failed: %v", err)
	}

	// Re-stage with an extra study slot and finalize again an hour later.
	plan := validPlan()
	plan.Studies = []models.NamedEntry{
		{Name: "Algorithms", Times: []models.TimeWindow{{Start: "19:00", End: "20:00"}}},
	}
	store.staged["2026-03-14"] = plan

	later := testNow.Add(time.Hour)
	f2 := NewFinalizer(store, WithClock(fixedClock(later)))

	second, err := f2.Finalize("2026-03-14")
	if err != nil {
		t.Fatalf("second Finalize failed: %v", err)
	}

	if second.CreatedAt != first.CreatedAt {
		t.Errorf("created_at changed across re-finalize: %s vs %s", second.CreatedAt, first.CreatedAt)
	}
	if second.LastSaved != later.UTC().Format(time.RFC3339) {
		t.Errorf("last_saved = %s, want %s", second.LastSaved, later.UTC().Format(time.RFC3339))
	}

	var meal *models.Activity
	for i := range second.Activities {
		if second.Activities[i].Name == "Meal 1" {
			meal = &second.Activities[i]
		}
	}
	if meal == nil {
		t.Fatal("Meal 1 missing from regenerated schedule")
	}
	if meal.SimpleTracking == nil || meal.SimpleTracking.Status != models.TrackingComplete {
		t.Error("completion state did not survive regeneration")
	}

	// The new study slot exists and is fresh.
	found := false
	for _, a := range second.Activities {
		if a.Type == models.ActivityStudy {
			found = true
			if a.SimpleTracking != nil {
				t.Error("new activity should carry no tracking")
			}
		}
	}
	if !found {
		t.Error("added study slot missing from regenerated schedule")
	}
}
