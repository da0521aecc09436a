package model

import "time"

type GoalTargetType string
type GoalPeriod string

const (
	GoalTargetCount      GoalTargetType = "COUNT"
	GoalTargetPercentage GoalTargetType = "PERCENTAGE"
	GoalTargetStreak     GoalTargetType = "STREAK"
	GoalTargetComposite  GoalTargetType = "COMPOSITE"

	GoalPeriodDaily   GoalPeriod = "DAILY"
	GoalPeriodWeekly  GoalPeriod = "WEEKLY"
	GoalPeriodMonthly GoalPeriod = "MONTHLY"
	GoalPeriodYearly  GoalPeriod = "YEARLY"
	GoalPeriodCustom  GoalPeriod = "CUSTOM"
)

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not_started"
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
	GoalFailed     GoalStatus = "failed"
)

// GoalTarget describes what a goal is measured against. Composite targets
// carry one sub-target per goal item, weighted through the item.
type GoalTarget struct {
	Type        GoalTargetType `bson:"type" json:"type"`
	Value       float64        `bson:"value" json:"value"`
	Period      GoalPeriod     `bson:"period,omitempty" json:"period,omitempty"`
	PeriodValue int            `bson:"period_value,omitempty" json:"period_value,omitempty"`
	SubTargets  []GoalTarget   `bson:"sub_targets,omitempty" json:"sub_targets,omitempty"`
}

// GoalItem links a habit into a goal. Weight only matters for composite
// targets and defaults to 1 when zero.
type GoalItem struct {
	ItemID string  `bson:"item_id" json:"item_id"`
	Weight float64 `bson:"weight,omitempty" json:"weight,omitempty"`
}

type Goal struct {
	GoalID      string     `bson:"_id,omitempty" json:"id"`
	UserID      string     `bson:"user_id" json:"user_id"`
	Name        string     `bson:"name" json:"name" binding:"required"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	CategoryID  string     `bson:"category_id" json:"category_id"`
	Target      GoalTarget `bson:"target" json:"target"`
	Items       []GoalItem `bson:"items" json:"items"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	StartDate   time.Time  `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     time.Time  `bson:"end_date,omitempty" json:"end_date,omitempty"`
	IsArchived  bool       `bson:"is_archived" json:"is_archived"`
	LastUpdated time.Time  `bson:"last_updated" json:"last_updated"`
}

type GoalStats struct {
	CurrentValue float64    `json:"current_value"`
	TargetValue  float64    `json:"target_value"`
	Progress     float64    `json:"progress"`
	Status       GoalStatus `json:"status"`
}
