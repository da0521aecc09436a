package model

// Category is a flat label for habits and goals. Default categories are
// seeded once, global, and read-only through the API; user categories are
// scoped to their owner.
type Category struct {
	CategoryID string `bson:"_id,omitempty" json:"id"`
	UserID     string `bson:"user_id,omitempty" json:"user_id,omitempty"` // empty for defaults
	Name       string `bson:"name" json:"name" binding:"required"`
	Color      string `bson:"color" json:"color"`
	Icon       string `bson:"icon,omitempty" json:"icon,omitempty"`
	IsDefault  bool   `bson:"is_default" json:"is_default"`
}
