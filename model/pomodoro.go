package model

import "time"

type TimerMode string

const (
	TimerModeWork       TimerMode = "WORK"
	TimerModeShortBreak TimerMode = "SHORT_BREAK"
	TimerModeLongBreak  TimerMode = "LONG_BREAK"
)

// PomodoroState is the per-user timer position. Cycles counts finished
// work phases; every fourth one earns a long break.
type PomodoroState struct {
	UserID    string    `bson:"_id" json:"user_id"`
	Mode      TimerMode `bson:"mode" json:"mode"`
	Cycles    int       `bson:"cycles" json:"cycles"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
