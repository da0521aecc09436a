package model

import "time"

type Settings struct {
	UserID            string    `bson:"_id" json:"user_id"`
	DarkMode          bool      `bson:"dark_mode" json:"dark_mode"`
	Notifications     bool      `bson:"notifications" json:"notifications"`
	AutoStartPomodoro bool      `bson:"auto_start_pomodoro" json:"auto_start_pomodoro"`
	WorkMinutes       int       `bson:"work_minutes" json:"work_minutes"`
	ShortBreakMinutes int       `bson:"short_break_minutes" json:"short_break_minutes"`
	LongBreakMinutes  int       `bson:"long_break_minutes" json:"long_break_minutes"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultSettings returns the out-of-the-box settings for a user.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:            userID,
		DarkMode:          false,
		Notifications:     true,
		AutoStartPomodoro: false,
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
	}
}
