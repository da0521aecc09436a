package usecase

import (
	"testing"

	"main/model"
)

func goalHabit(id string, completions ...model.HabitCompletion) *model.Habit {
	return &model.Habit{
		HabitID:     id,
		UserID:      "u1",
		Name:        id,
		Recurrence:  model.RecurrenceTypeDaily,
		Active:      true,
		Completions: completions,
	}
}

func TestComputeGoalStatsCount(t *testing.T) {
	asOf := date(2024, 1, 3)
	h1 := goalHabit("h1",
		model.HabitCompletion{Date: "2024-01-01", Completed: true},
		model.HabitCompletion{Date: "2024-01-02", Completed: true},
	)
	h2 := goalHabit("h2",
		model.HabitCompletion{Date: "2024-01-02", Completed: true},
	)

	goal := &model.Goal{
		Target: model.GoalTarget{Type: model.GoalTargetCount, Value: 6},
		Items:  []model.GoalItem{{ItemID: "h1"}, {ItemID: "h2"}, {ItemID: "missing"}},
	}

	stats := ComputeGoalStats(goal, []*model.Habit{h1, h2}, asOf)
	if stats.CurrentValue != 3 {
		t.Errorf("CurrentValue = %v, want 3", stats.CurrentValue)
	}
	if stats.Progress != 50 {
		t.Errorf("Progress = %v, want 50", stats.Progress)
	}
	if stats.Status != model.GoalInProgress {
		t.Errorf("Status = %s, want in_progress", stats.Status)
	}
}

func TestComputeGoalStatsStreak(t *testing.T) {
	asOf := date(2024, 1, 3)
	h1 := goalHabit("h1",
		model.HabitCompletion{Date: "2024-01-01", Completed: true},
		model.HabitCompletion{Date: "2024-01-02", Completed: true},
		model.HabitCompletion{Date: "2024-01-03", Completed: true},
	)
	h2 := goalHabit("h2",
		model.HabitCompletion{Date: "2024-01-03", Completed: true},
	)

	goal := &model.Goal{
		Target: model.GoalTarget{Type: model.GoalTargetStreak, Value: 3},
		Items:  []model.GoalItem{{ItemID: "h1"}, {ItemID: "h2"}},
	}

	stats := ComputeGoalStats(goal, []*model.Habit{h1, h2}, asOf)
	if stats.CurrentValue != 3 {
		t.Errorf("CurrentValue = %v, want 3 (best streak)", stats.CurrentValue)
	}
	if stats.Status != model.GoalCompleted {
		t.Errorf("Status = %s, want completed", stats.Status)
	}
}

func TestComputeGoalStatsStreakNoItems(t *testing.T) {
	goal := &model.Goal{Target: model.GoalTarget{Type: model.GoalTargetStreak, Value: 5}}
	stats := ComputeGoalStats(goal, nil, date(2024, 1, 3))
	if stats.CurrentValue != 0 {
		t.Errorf("CurrentValue = %v, want 0 for empty goal", stats.CurrentValue)
	}
	if stats.Status != model.GoalNotStarted {
		t.Errorf("Status = %s, want not_started", stats.Status)
	}
}

func TestComputeGoalStatsComposite(t *testing.T) {
	asOf := date(2024, 1, 2)
	// h1 fully completed over its two days, h2 half completed.
	h1 := goalHabit("h1",
		model.HabitCompletion{Date: "2024-01-01", Completed: true},
		model.HabitCompletion{Date: "2024-01-02", Completed: true},
	)
	h2 := goalHabit("h2",
		model.HabitCompletion{Date: "2024-01-01", Completed: true},
		model.HabitCompletion{Date: "2024-01-02", Completed: false},
	)

	goal := &model.Goal{
		Target: model.GoalTarget{
			Type:  model.GoalTargetComposite,
			Value: 100,
			SubTargets: []model.GoalTarget{
				{Type: model.GoalTargetPercentage, Value: 100},
				{Type: model.GoalTargetPercentage, Value: 100},
			},
		},
		Items: []model.GoalItem{{ItemID: "h1", Weight: 3}, {ItemID: "h2", Weight: 1}},
	}

	stats := ComputeGoalStats(goal, []*model.Habit{h1, h2}, asOf)
	// (3*1.0 + 1*0.5) / 4 = 0.875
	if stats.CurrentValue != 87.5 {
		t.Errorf("CurrentValue = %v, want 87.5", stats.CurrentValue)
	}
}

func TestComputeGoalStatsFailedPastEndDate(t *testing.T) {
	goal := &model.Goal{
		Target:  model.GoalTarget{Type: model.GoalTargetCount, Value: 10},
		Items:   []model.GoalItem{{ItemID: "h1"}},
		EndDate: date(2024, 1, 5),
	}
	h1 := goalHabit("h1", model.HabitCompletion{Date: "2024-01-01", Completed: true})

	stats := ComputeGoalStats(goal, []*model.Habit{h1}, date(2024, 1, 10))
	if stats.Status != model.GoalFailed {
		t.Errorf("Status = %s, want failed", stats.Status)
	}
}

func TestComputeGoalStatsProgressCapped(t *testing.T) {
	goal := &model.Goal{
		Target: model.GoalTarget{Type: model.GoalTargetCount, Value: 1},
		Items:  []model.GoalItem{{ItemID: "h1"}},
	}
	h1 := goalHabit("h1",
		model.HabitCompletion{Date: "2024-01-01", Completed: true},
		model.HabitCompletion{Date: "2024-01-02", Completed: true},
		model.HabitCompletion{Date: "2024-01-03", Completed: true},
	)

	stats := ComputeGoalStats(goal, []*model.Habit{h1}, date(2024, 1, 3))
	if stats.Progress != 100 {
		t.Errorf("Progress = %v, want capped at 100", stats.Progress)
	}
}
