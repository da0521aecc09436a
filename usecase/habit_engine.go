package usecase

import (
	"math"
	"sort"
	"time"

	"main/model"
	"main/utils"
)

// IsDueOnDate reports whether a habit should be performed on a calendar date.
// Daily habits are always due. Weekly habits with an explicit weekday set are
// due on those weekdays, otherwise every day. Monthly habits are due every
// day of the month. Custom habits are due only on their listed weekdays.
func IsDueOnDate(habit *model.Habit, date time.Time) bool {
	dayOfWeek := int(date.Weekday()) // 0-6, 0 is Sunday

	switch habit.Recurrence {
	case model.RecurrenceTypeDaily:
		return true
	case model.RecurrenceTypeWeekly:
		if len(habit.RecurrenceDays) > 0 {
			return containsDay(habit.RecurrenceDays, dayOfWeek)
		}
		return true
	case model.RecurrenceTypeMonthly:
		return true
	case model.RecurrenceTypeCustom:
		return containsDay(habit.RecurrenceDays, dayOfWeek)
	default:
		return true
	}
}

// IsCompletedOn looks up the completion entry for the given date and returns
// its flag, or false when the log has no entry for that date.
func IsCompletedOn(habit *model.Habit, date time.Time) bool {
	dateStr := utils.ToISODate(date)
	for _, c := range habit.Completions {
		if c.Date == dateStr {
			return c.Completed
		}
	}
	return false
}

// SetCompletion upserts the completion entry for a date and returns the
// updated record without touching the input. The log keeps at most one
// entry per distinct date.
func SetCompletion(habit model.Habit, date time.Time, completed bool) model.Habit {
	dateStr := utils.ToISODate(date)

	completions := make([]model.HabitCompletion, len(habit.Completions))
	copy(completions, habit.Completions)

	for i := range completions {
		if completions[i].Date == dateStr {
			completions[i].Completed = completed
			habit.Completions = completions
			return habit
		}
	}

	habit.Completions = append(completions, model.HabitCompletion{Date: dateStr, Completed: completed})
	return habit
}

// DueHabits filters to active, non-archived habits due on the date, sorted
// by name for deterministic display.
func DueHabits(habits []*model.Habit, date time.Time) []*model.Habit {
	var due []*model.Habit
	for _, h := range habits {
		if h.Active && !h.IsArchived && IsDueOnDate(h, date) {
			due = append(due, h)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].Name < due[j].Name })
	return due
}

// CompletedToday returns the due habits already completed on the date.
func CompletedToday(habits []*model.Habit, date time.Time) []*model.Habit {
	var completed []*model.Habit
	for _, h := range DueHabits(habits, date) {
		if IsCompletedOn(h, date) {
			completed = append(completed, h)
		}
	}
	return completed
}

// RemainingToday returns the due habits not yet completed on the date.
func RemainingToday(habits []*model.Habit, date time.Time) []*model.Habit {
	var remaining []*model.Habit
	for _, h := range DueHabits(habits, date) {
		if !IsCompletedOn(h, date) {
			remaining = append(remaining, h)
		}
	}
	return remaining
}

// ComputeStats derives completion statistics from a habit's sparse log.
//
// Total is the inclusive calendar-day count from the first log entry through
// asOf, regardless of the recurrence rule, and Completed counts every
// completed entry in the log; the rate is their rounded percentage. The
// streak walk runs over the date-sorted log with an entry for asOf
// synthesized when absent: each completed entry extends the streak, a
// not-completed entry resets it, and a gap of more than one day between
// neighboring entries resets it at interior positions of the walk.
func ComputeStats(habit *model.Habit, asOf time.Time) model.HabitStats {
	var stats model.HabitStats
	if len(habit.Completions) == 0 {
		return stats
	}

	entries := make([]model.HabitCompletion, len(habit.Completions))
	copy(entries, habit.Completions)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	firstDate := utils.ParseISODate(entries[0].Date)
	stats.Total = utils.DaysBetween(firstDate, asOf) + 1

	for _, e := range entries {
		if e.Completed {
			stats.Completed++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(100 * float64(stats.Completed) / float64(stats.Total)))
	}

	asOfStr := utils.ToISODate(asOf)
	if !hasEntryFor(entries, asOfStr) {
		entries = append(entries, model.HabitCompletion{Date: asOfStr, Completed: IsCompletedOn(habit, asOf)})
		sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	}

	streak := 0
	longest := 0
	for i := range entries {
		if i > 0 && i < len(entries)-1 {
			prev := utils.ParseISODate(entries[i-1].Date)
			cur := utils.ParseISODate(entries[i].Date)
			if utils.DaysBetween(prev, cur) > 1 {
				streak = 0
			}
		}
		if entries[i].Completed {
			streak++
			if streak > longest {
				longest = streak
			}
		} else {
			streak = 0
		}
	}

	stats.Streak = streak
	stats.LongestStreak = longest
	return stats
}

// FindCategory is a linear category lookup; returns nil when absent.
func FindCategory(categories []*model.Category, id string) *model.Category {
	for _, c := range categories {
		if c.CategoryID == id {
			return c
		}
	}
	return nil
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func hasEntryFor(entries []model.HabitCompletion, date string) bool {
	for _, e := range entries {
		if e.Date == date {
			return true
		}
	}
	return false
}
