package model

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPending   ProjectStatus = "pending"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// TimeEntry records time spent on a project task. Duration is seconds.
type TimeEntry struct {
	EntryID   string    `bson:"entry_id" json:"entry_id"`
	TaskID    string    `bson:"task_id" json:"task_id"`
	StartTime time.Time `bson:"start_time" json:"start_time"`
	EndTime   time.Time `bson:"end_time" json:"end_time"`
	Duration  int64     `bson:"duration" json:"duration"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
}

type ProjectTask struct {
	TaskID      string      `bson:"task_id" json:"task_id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Complete    bool        `bson:"complete" json:"complete"`
	TimeEntries []TimeEntry `bson:"time_entries" json:"time_entries"`
	TimeSpent   int64       `bson:"time_spent" json:"time_spent"`
	CreatedAt   time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}

// Project embeds its tasks and their time entries in a single document;
// goal and todo references are ids into their own collections.
type Project struct {
	ProjectID   string        `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	Title       string        `bson:"title" json:"title" binding:"required"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Status      ProjectStatus `bson:"status" json:"status"`
	Tasks       []ProjectTask `bson:"tasks" json:"tasks"`
	GoalIDs     []string      `bson:"goal_ids,omitempty" json:"goal_ids,omitempty"`
	TodoIDs     []string      `bson:"todo_ids,omitempty" json:"todo_ids,omitempty"`
	TimeSpent   int64         `bson:"time_spent" json:"time_spent"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// TimeReport is the aggregation of a project's time entries over a window.
type TimeReport struct {
	TotalTime int64            `json:"total_time"`
	ByTask    map[string]int64 `json:"by_task"`
	ByDate    map[string]int64 `json:"by_date"`
	Entries   []TimeEntry      `json:"entries"`
}
