package model

import "time"

type Note struct {
	NoteID     string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Title      string    `bson:"title" json:"title" binding:"required"`
	Content    string    `bson:"content" json:"content"`
	Tags       []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	IsPinned   bool      `bson:"is_pinned" json:"is_pinned"`
	IsArchived bool      `bson:"is_archived" json:"is_archived"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
