package model

import "time"

type RecurrenceType string

const (
	RecurrenceTypeDaily   RecurrenceType = "DAILY"
	RecurrenceTypeWeekly  RecurrenceType = "WEEKLY"
	RecurrenceTypeMonthly RecurrenceType = "MONTHLY"
	RecurrenceTypeCustom  RecurrenceType = "CUSTOM"
)

// HabitCompletion is one per-date entry in a habit's completion log.
// Date is an ISO calendar date ("YYYY-MM-DD") with no time component;
// the log holds at most one entry per distinct date.
type HabitCompletion struct {
	Date      string `bson:"date" json:"date"`
	Completed bool   `bson:"completed" json:"completed"`
}

type Habit struct {
	HabitID         string            `bson:"_id,omitempty" json:"id"`
	UserID          string            `bson:"user_id" json:"user_id"`
	Name            string            `bson:"name" json:"name" binding:"required"`
	Description     string            `bson:"description,omitempty" json:"description,omitempty"`
	Recurrence      RecurrenceType    `bson:"recurrence" json:"recurrence"`
	RecurrenceDays  []int             `bson:"recurrence_days,omitempty" json:"recurrence_days,omitempty"` // weekday indices 0-6, 0 is Sunday
	RecurrenceCount int               `bson:"recurrence_count,omitempty" json:"recurrence_count,omitempty"`
	CategoryID      string            `bson:"category_id" json:"category_id"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
	Completions     []HabitCompletion `bson:"completions" json:"completions"`
	Active          bool              `bson:"active" json:"active"`
	IsArchived      bool              `bson:"is_archived" json:"is_archived"`
}

type HabitStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Streak         int `json:"streak"`
	LongestStreak  int `json:"longest_streak"`
	CompletionRate int `json:"completion_rate"`
}
