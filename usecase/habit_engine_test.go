package usecase

import (
	"testing"
	"time"

	"main/model"
	"main/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dailyHabit(name string, completions ...model.HabitCompletion) *model.Habit {
	return &model.Habit{
		HabitID:     name,
		Name:        name,
		Recurrence:  model.RecurrenceTypeDaily,
		CreatedAt:   date(2024, 1, 1),
		Completions: completions,
		Active:      true,
	}
}

func TestIsDueOnDate(t *testing.T) {
	tests := []struct {
		name  string
		habit model.Habit
		date  time.Time
		want  bool
	}{
		{"daily always due", model.Habit{Recurrence: model.RecurrenceTypeDaily}, date(2024, 1, 6), true},
		{"weekly without days due every day", model.Habit{Recurrence: model.RecurrenceTypeWeekly}, date(2024, 1, 6), true},
		{"weekly with days due on listed day", model.Habit{Recurrence: model.RecurrenceTypeWeekly, RecurrenceDays: []int{6}}, date(2024, 1, 6), true}, // Saturday
		{"weekly with days not due off day", model.Habit{Recurrence: model.RecurrenceTypeWeekly, RecurrenceDays: []int{1}}, date(2024, 1, 6), false},
		{"monthly due every day", model.Habit{Recurrence: model.RecurrenceTypeMonthly}, date(2024, 1, 31), true},
		{"custom with empty days never due", model.Habit{Recurrence: model.RecurrenceTypeCustom}, date(2024, 1, 6), false},
		{"custom due on listed day", model.Habit{Recurrence: model.RecurrenceTypeCustom, RecurrenceDays: []int{6}}, date(2024, 1, 6), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDueOnDate(&tt.habit, tt.date); got != tt.want {
				t.Errorf("IsDueOnDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDueOnDateCustomWindow(t *testing.T) {
	// Mon and Wed over a 60-day window
	habit := &model.Habit{Recurrence: model.RecurrenceTypeCustom, RecurrenceDays: []int{1, 3}}

	start := date(2024, 1, 1)
	for i := 0; i < 60; i++ {
		d := start.AddDate(0, 0, i)
		want := d.Weekday() == time.Monday || d.Weekday() == time.Wednesday
		if got := IsDueOnDate(habit, d); got != want {
			t.Errorf("IsDueOnDate(%s, %s) = %v, want %v", d.Format("2006-01-02"), d.Weekday(), got, want)
		}
	}
}

func TestSetCompletionUpsert(t *testing.T) {
	h := *dailyHabit("read")
	d := date(2024, 1, 5)

	h = SetCompletion(h, d, true)
	h = SetCompletion(h, d, true)

	if len(h.Completions) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(h.Completions))
	}
	if !h.Completions[0].Completed {
		t.Error("entry should be completed")
	}
	if h.Completions[0].Date != "2024-01-05" {
		t.Errorf("unexpected entry date %q", h.Completions[0].Date)
	}

	h = SetCompletion(h, d, false)
	if len(h.Completions) != 1 {
		t.Fatalf("flipping an entry must not add a duplicate, got %d entries", len(h.Completions))
	}
	if h.Completions[0].Completed {
		t.Error("entry should be uncompleted after flip")
	}
}

func TestSetCompletionDoesNotMutateInput(t *testing.T) {
	original := *dailyHabit("read", model.HabitCompletion{Date: "2024-01-01", Completed: true})

	updated := SetCompletion(original, date(2024, 1, 1), false)

	if !original.Completions[0].Completed {
		t.Error("input record was mutated")
	}
	if updated.Completions[0].Completed {
		t.Error("returned record should carry the new flag")
	}
}

func TestIsCompletedOn(t *testing.T) {
	h := dailyHabit("read",
		model.HabitCompletion{Date: "2024-01-01", Completed: true},
		model.HabitCompletion{Date: "2024-01-02", Completed: false},
	)

	if !IsCompletedOn(h, date(2024, 1, 1)) {
		t.Error("expected completed on 2024-01-01")
	}
	if IsCompletedOn(h, date(2024, 1, 2)) {
		t.Error("expected not completed on 2024-01-02")
	}
	if IsCompletedOn(h, date(2024, 1, 3)) {
		t.Error("absent entry must read as not completed")
	}
}

func TestDueHabitsFiltersAndSorts(t *testing.T) {
	archived := dailyHabit("archived")
	archived.IsArchived = true
	inactive := dailyHabit("inactive")
	inactive.Active = false
	offDay := &model.Habit{
		Name:       "off day",
		Recurrence: model.RecurrenceTypeCustom,
		// due Mondays only
		RecurrenceDays: []int{1},
		Active:         true,
	}

	habits := []*model.Habit{dailyHabit("b walk"), archived, dailyHabit("a read"), inactive, offDay}

	due := DueHabits(habits, date(2024, 1, 6)) // a Saturday
	if len(due) != 2 {
		t.Fatalf("expected 2 due habits, got %d", len(due))
	}
	if due[0].Name != "a read" || due[1].Name != "b walk" {
		t.Errorf("due habits not sorted by name: %s, %s", due[0].Name, due[1].Name)
	}
}

func TestTodayPartition(t *testing.T) {
	done := dailyHabit("done", model.HabitCompletion{Date: "2024-01-06", Completed: true})
	todo := dailyHabit("todo")
	undone := dailyHabit("undone", model.HabitCompletion{Date: "2024-01-06", Completed: false})

	habits := []*model.Habit{done, todo, undone}
	d := date(2024, 1, 6)

	due := DueHabits(habits, d)
	completed := CompletedToday(habits, d)
	remaining := RemainingToday(habits, d)

	if len(completed)+len(remaining) != len(due) {
		t.Fatalf("partition incomplete: %d + %d != %d", len(completed), len(remaining), len(due))
	}

	seen := map[string]bool{}
	for _, h := range completed {
		seen[h.Name] = true
	}
	for _, h := range remaining {
		if seen[h.Name] {
			t.Errorf("habit %q in both partitions", h.Name)
		}
	}
	if len(completed) != 1 || completed[0].Name != "done" {
		t.Errorf("unexpected completed set: %v", completed)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(dailyHabit("new"), date(2024, 1, 10))
	if stats != (model.HabitStats{}) {
		t.Errorf("empty log must yield all-zero stats, got %+v", stats)
	}
}

func TestComputeStatsScenario(t *testing.T) {
	// Created 2024-01-01 (a Monday), completed the first three days,
	// nothing recorded on the fourth.
	h := dailyHabit("read",
		model.HabitCompletion{Date: "2024-01-01", Completed: true},
		model.HabitCompletion{Date: "2024-01-02", Completed: true},
		model.HabitCompletion{Date: "2024-01-03", Completed: true},
	)

	stats := ComputeStats(h, date(2024, 1, 4))

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Completed != 3 {
		t.Errorf("Completed = %d, want 3", stats.Completed)
	}
	if stats.CompletionRate != 75 {
		t.Errorf("CompletionRate = %d, want 75", stats.CompletionRate)
	}
	if stats.Streak != 0 {
		t.Errorf("Streak = %d, want 0 (today not completed)", stats.Streak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", stats.LongestStreak)
	}
}

func TestComputeStatsTenDayRun(t *testing.T) {
	h := &model.Habit{
		Name:       "exercise",
		Recurrence: model.RecurrenceTypeWeekly, // no explicit days
		Active:     true,
	}
	start := date(2024, 3, 1)
	for i := 0; i < 10; i++ {
		h.Completions = append(h.Completions, model.HabitCompletion{
			Date:      utils.ToISODate(start.AddDate(0, 0, i)),
			Completed: true,
		})
	}

	stats := ComputeStats(h, start.AddDate(0, 0, 9))
	if stats.LongestStreak != 10 {
		t.Errorf("LongestStreak = %d, want 10", stats.LongestStreak)
	}
	if stats.Streak != 10 {
		t.Errorf("Streak = %d, want 10", stats.Streak)
	}
	if stats.Total != 10 || stats.Completed != 10 || stats.CompletionRate != 100 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestComputeStatsGapBreaksStreak(t *testing.T) {
	// Two completions three days apart; the gap keeps them as separate
	// one-day streaks.
	h := dailyHabit("read",
		model.HabitCompletion{Date: "2024-01-01", Completed: true},
		model.HabitCompletion{Date: "2024-01-04", Completed: true},
	)

	stats := ComputeStats(h, date(2024, 1, 6))
	if stats.LongestStreak != 1 {
		t.Errorf("LongestStreak = %d, want 1", stats.LongestStreak)
	}
	if stats.Streak != 0 {
		t.Errorf("Streak = %d, want 0", stats.Streak)
	}
}

func TestComputeStatsBounds(t *testing.T) {
	histories := [][]model.HabitCompletion{
		nil,
		{{Date: "2024-01-01", Completed: false}},
		{{Date: "2024-01-01", Completed: true}, {Date: "2024-01-02", Completed: false}, {Date: "2024-01-03", Completed: true}},
		{{Date: "2024-02-10", Completed: true}, {Date: "2024-02-29", Completed: true}},
	}

	for i, completions := range histories {
		h := dailyHabit("h", completions...)
		stats := ComputeStats(h, date(2024, 3, 1))

		if stats.CompletionRate < 0 || stats.CompletionRate > 100 {
			t.Errorf("history %d: completion rate %d out of bounds", i, stats.CompletionRate)
		}
		if stats.LongestStreak < stats.Streak {
			t.Errorf("history %d: longest streak %d < current streak %d", i, stats.LongestStreak, stats.Streak)
		}
		if len(completions) == 0 && stats.CompletionRate != 0 {
			t.Errorf("history %d: empty log must yield zero rate", i)
		}
	}
}

func TestFindCategory(t *testing.T) {
	categories := []*model.Category{
		{CategoryID: "c1", Name: "Health"},
		{CategoryID: "c2", Name: "Learning"},
	}

	if got := FindCategory(categories, "c2"); got == nil || got.Name != "Learning" {
		t.Errorf("FindCategory(c2) = %v", got)
	}
	if got := FindCategory(categories, "missing"); got != nil {
		t.Errorf("expected nil for unknown id, got %v", got)
	}
}
