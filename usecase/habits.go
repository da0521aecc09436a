package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/utils"
)

// HabitsStore is the persistence boundary for habit records. Writes are
// last-write-wins; the service operates on whatever snapshot it reads.
type HabitsStore interface {
	GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error)
	GetHabit(ctx context.Context, habitID, userID string) (*model.Habit, error)
	CreateHabit(ctx context.Context, habit *model.Habit) error
	UpdateHabit(ctx context.Context, habitID, userID string, updates *model.Habit) error
	ReplaceCompletions(ctx context.Context, habitID, userID string, completions []model.HabitCompletion) error
	SetArchived(ctx context.Context, habitID, userID string, archived bool) error
	DeleteHabit(ctx context.Context, habitID, userID string) error
}

type HabitsService struct {
	store HabitsStore
}

func NewHabitsService(store HabitsStore) *HabitsService {
	return &HabitsService{store: store}
}

// TodayView groups the habits due on a date by completion state.
type TodayView struct {
	Due       []*model.Habit `json:"due"`
	Completed []*model.Habit `json:"completed"`
	Remaining []*model.Habit `json:"remaining"`
}

func (svc *HabitsService) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	return svc.store.GetUserHabits(ctx, userID)
}

func (svc *HabitsService) GetHabit(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	return svc.store.GetHabit(ctx, habitID, userID)
}

func (svc *HabitsService) CreateHabit(ctx context.Context, habit *model.Habit) error {
	if habit.UserID == "" {
		return errors.New("user ID is required")
	}
	if habit.Name == "" {
		return errors.New("habit name is required")
	}

	switch habit.Recurrence {
	case model.RecurrenceTypeDaily, model.RecurrenceTypeWeekly,
		model.RecurrenceTypeMonthly, model.RecurrenceTypeCustom:
	case "":
		habit.Recurrence = model.RecurrenceTypeDaily
	default:
		return errors.New("invalid recurrence type")
	}

	for _, d := range habit.RecurrenceDays {
		if d < 0 || d > 6 {
			return errors.New("recurrence days must be weekday indices 0-6")
		}
	}

	if habit.HabitID == "" {
		habit.HabitID = utils.GenerateID()
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}
	habit.Active = true
	habit.IsArchived = false
	if habit.Completions == nil {
		habit.Completions = []model.HabitCompletion{}
	}

	return svc.store.CreateHabit(ctx, habit)
}

func (svc *HabitsService) UpdateHabit(ctx context.Context, habitID, userID string, updates *model.Habit) error {
	if updates.Name == "" {
		return errors.New("habit name is required")
	}
	for _, d := range updates.RecurrenceDays {
		if d < 0 || d > 6 {
			return errors.New("recurrence days must be weekday indices 0-6")
		}
	}
	return svc.store.UpdateHabit(ctx, habitID, userID, updates)
}

func (svc *HabitsService) DeleteHabit(ctx context.Context, habitID, userID string) error {
	// Single-document deletion removes the habit and its completion log
	// together; categories are not owned and stay untouched.
	return svc.store.DeleteHabit(ctx, habitID, userID)
}

func (svc *HabitsService) ArchiveHabit(ctx context.Context, habitID, userID string, archived bool) error {
	return svc.store.SetArchived(ctx, habitID, userID, archived)
}

// ToggleCompletion flips the completion entry for a date: an absent entry
// becomes completed, a present one is inverted. Returns the updated habit
// and the new state.
func (svc *HabitsService) ToggleCompletion(ctx context.Context, habitID, userID string, date time.Time) (*model.Habit, bool, error) {
	habit, err := svc.store.GetHabit(ctx, habitID, userID)
	if err != nil {
		return nil, false, err
	}

	completed := !IsCompletedOn(habit, date)
	updated := SetCompletion(*habit, date, completed)

	if err := svc.store.ReplaceCompletions(ctx, habitID, userID, updated.Completions); err != nil {
		return nil, false, err
	}

	utils.TrackHabitCompletion(completed)
	return &updated, completed, nil
}

// GetToday builds the due/completed/remaining partition for a date.
func (svc *HabitsService) GetToday(ctx context.Context, userID string, date time.Time) (*TodayView, error) {
	habits, err := svc.store.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &TodayView{
		Due:       DueHabits(habits, date),
		Completed: CompletedToday(habits, date),
		Remaining: RemainingToday(habits, date),
	}, nil
}

// GetStats computes streaks and completion rate for one habit as of a date.
func (svc *HabitsService) GetStats(ctx context.Context, habitID, userID string, asOf time.Time) (*model.HabitStats, error) {
	habit, err := svc.store.GetHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(habit, asOf)
	return &stats, nil
}
