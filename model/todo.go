package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

type Todo struct {
	TodoID      string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Text        string    `bson:"text" json:"text" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Complete    bool      `bson:"complete" json:"complete"`
	Priority    Priority  `bson:"priority,omitempty" json:"priority,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	DueDate     time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	ProjectID   string    `bson:"project_id,omitempty" json:"project_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
