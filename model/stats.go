package model

import "time"

// UserStats is the dashboard aggregate returned by the stats endpoint.
type UserStats struct {
	HabitStats struct {
		DueToday       int `json:"due_today"`
		CompletedToday int `json:"completed_today"`
		RemainingToday int `json:"remaining_today"`
		Active         int `json:"active"`
	} `json:"habit_stats"`
	TodoStats struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
	} `json:"todo_stats"`
	NoteStats struct {
		Total    int `json:"total"`
		Archived int `json:"archived"`
		Pinned   int `json:"pinned"`
	} `json:"note_stats"`
	GoalStats struct {
		Active    int `json:"active"`
		Completed int `json:"completed"`
	} `json:"goal_stats"`
	PomodoroCycles int `json:"pomodoro_cycles"`
	ActivityStats  struct {
		LastActive     time.Time `json:"last_active"`
		AccountCreated time.Time `json:"account_created"`
		ActiveSessions int       `json:"active_sessions"`
	} `json:"activity_stats"`
}
