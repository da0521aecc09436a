package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
)

// fakeHabitsStore keeps habits in memory for service tests.
type fakeHabitsStore struct {
	habits map[string]*model.Habit
}

func newFakeHabitsStore(habits ...*model.Habit) *fakeHabitsStore {
	s := &fakeHabitsStore{habits: map[string]*model.Habit{}}
	for _, h := range habits {
		s.habits[h.HabitID] = h
	}
	return s
}

func (s *fakeHabitsStore) GetUserHabits(_ context.Context, userID string) ([]*model.Habit, error) {
	var out []*model.Habit
	for _, h := range s.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *fakeHabitsStore) GetHabit(_ context.Context, habitID, userID string) (*model.Habit, error) {
	h, ok := s.habits[habitID]
	if !ok || h.UserID != userID {
		return nil, errors.New("habit not found")
	}
	copied := *h
	return &copied, nil
}

func (s *fakeHabitsStore) CreateHabit(_ context.Context, habit *model.Habit) error {
	s.habits[habit.HabitID] = habit
	return nil
}

func (s *fakeHabitsStore) UpdateHabit(_ context.Context, habitID, userID string, updates *model.Habit) error {
	h, ok := s.habits[habitID]
	if !ok || h.UserID != userID {
		return errors.New("habit not found")
	}
	h.Name = updates.Name
	h.Description = updates.Description
	h.Recurrence = updates.Recurrence
	h.RecurrenceDays = updates.RecurrenceDays
	h.CategoryID = updates.CategoryID
	return nil
}

func (s *fakeHabitsStore) ReplaceCompletions(_ context.Context, habitID, userID string, completions []model.HabitCompletion) error {
	h, ok := s.habits[habitID]
	if !ok || h.UserID != userID {
		return errors.New("habit not found")
	}
	h.Completions = completions
	return nil
}

func (s *fakeHabitsStore) SetArchived(_ context.Context, habitID, userID string, archived bool) error {
	h, ok := s.habits[habitID]
	if !ok || h.UserID != userID {
		return errors.New("habit not found")
	}
	h.IsArchived = archived
	return nil
}

func (s *fakeHabitsStore) DeleteHabit(_ context.Context, habitID, userID string) error {
	h, ok := s.habits[habitID]
	if !ok || h.UserID != userID {
		return errors.New("habit not found")
	}
	delete(s.habits, habitID)
	return nil
}

func TestCreateHabitDefaults(t *testing.T) {
	store := newFakeHabitsStore()
	svc := NewHabitsService(store)

	habit := &model.Habit{UserID: "u1", Name: "read"}
	if err := svc.CreateHabit(context.Background(), habit); err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}

	if habit.HabitID == "" {
		t.Error("expected generated habit ID")
	}
	if habit.Recurrence != model.RecurrenceTypeDaily {
		t.Errorf("expected default DAILY recurrence, got %s", habit.Recurrence)
	}
	if !habit.Active || habit.IsArchived {
		t.Error("new habit should be active and not archived")
	}
	if habit.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestCreateHabitValidation(t *testing.T) {
	svc := NewHabitsService(newFakeHabitsStore())

	if err := svc.CreateHabit(context.Background(), &model.Habit{UserID: "u1"}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := svc.CreateHabit(context.Background(), &model.Habit{Name: "x"}); err == nil {
		t.Error("expected error for missing user ID")
	}
	bad := &model.Habit{UserID: "u1", Name: "x", Recurrence: model.RecurrenceTypeCustom, RecurrenceDays: []int{7}}
	if err := svc.CreateHabit(context.Background(), bad); err == nil {
		t.Error("expected error for out-of-range weekday")
	}
}

func TestToggleCompletionIdempotentLog(t *testing.T) {
	h := &model.Habit{
		HabitID:    "h1",
		UserID:     "u1",
		Name:       "read",
		Recurrence: model.RecurrenceTypeDaily,
		Active:     true,
	}
	store := newFakeHabitsStore(h)
	svc := NewHabitsService(store)
	d := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	updated, completed, err := svc.ToggleCompletion(context.Background(), "h1", "u1", d)
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if !completed {
		t.Error("first toggle should complete the date")
	}
	if len(updated.Completions) != 1 {
		t.Fatalf("expected one entry, got %d", len(updated.Completions))
	}

	updated, completed, err = svc.ToggleCompletion(context.Background(), "h1", "u1", d)
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if completed {
		t.Error("second toggle should uncomplete the date")
	}
	if len(updated.Completions) != 1 {
		t.Fatalf("toggling must never duplicate a date, got %d entries", len(updated.Completions))
	}
}

func TestToggleCompletionUnknownHabit(t *testing.T) {
	svc := NewHabitsService(newFakeHabitsStore())
	_, _, err := svc.ToggleCompletion(context.Background(), "nope", "u1", time.Now())
	if err == nil {
		t.Error("expected error for unknown habit")
	}
}

func TestGetTodayPartition(t *testing.T) {
	d := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	done := &model.Habit{
		HabitID: "h1", UserID: "u1", Name: "done",
		Recurrence:  model.RecurrenceTypeDaily,
		Active:      true,
		Completions: []model.HabitCompletion{{Date: "2024-01-06", Completed: true}},
	}
	open := &model.Habit{
		HabitID: "h2", UserID: "u1", Name: "open",
		Recurrence: model.RecurrenceTypeDaily,
		Active:     true,
	}
	other := &model.Habit{
		HabitID: "h3", UserID: "u2", Name: "other user",
		Recurrence: model.RecurrenceTypeDaily,
		Active:     true,
	}

	svc := NewHabitsService(newFakeHabitsStore(done, open, other))

	view, err := svc.GetToday(context.Background(), "u1", d)
	if err != nil {
		t.Fatalf("GetToday: %v", err)
	}
	if len(view.Due) != 2 {
		t.Fatalf("expected 2 due habits, got %d", len(view.Due))
	}
	if len(view.Completed) != 1 || view.Completed[0].Name != "done" {
		t.Errorf("unexpected completed set")
	}
	if len(view.Remaining) != 1 || view.Remaining[0].Name != "open" {
		t.Errorf("unexpected remaining set")
	}
}
