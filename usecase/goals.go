package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/utils"
)

type GoalsStore interface {
	GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error)
	GetGoal(ctx context.Context, goalID, userID string) (*model.Goal, error)
	CreateGoal(ctx context.Context, goal *model.Goal) error
	UpdateGoal(ctx context.Context, goalID, userID string, updates *model.Goal) error
	ReplaceItems(ctx context.Context, goalID, userID string, items []model.GoalItem) error
	SetArchived(ctx context.Context, goalID, userID string, archived bool) error
	DeleteGoal(ctx context.Context, goalID, userID string) error
}

type GoalsService struct {
	store  GoalsStore
	habits HabitsStore
}

func NewGoalsService(store GoalsStore, habits HabitsStore) *GoalsService {
	return &GoalsService{store: store, habits: habits}
}

// ComputeGoalStats measures a goal against the owner's habits as of a date.
// Count targets sum completed entries across member habits; percentage
// targets count members at a 100% completion rate; streak targets take the
// best current streak; composite targets average sub-target completion
// rates weighted by item weight.
func ComputeGoalStats(goal *model.Goal, habits []*model.Habit, asOf time.Time) model.GoalStats {
	var current float64
	target := goal.Target.Value

	switch goal.Target.Type {
	case model.GoalTargetCount:
		for _, item := range goal.Items {
			if h := findHabit(habits, item.ItemID); h != nil {
				current += float64(ComputeStats(h, asOf).Completed)
			}
		}

	case model.GoalTargetPercentage:
		if len(goal.Items) > 0 {
			done := 0
			for _, item := range goal.Items {
				if h := findHabit(habits, item.ItemID); h != nil {
					if ComputeStats(h, asOf).CompletionRate >= 100 {
						done++
					}
				}
			}
			current = 100 * float64(done) / float64(len(goal.Items))
		}

	case model.GoalTargetStreak:
		for _, item := range goal.Items {
			if h := findHabit(habits, item.ItemID); h != nil {
				if s := float64(ComputeStats(h, asOf).Streak); s > current {
					current = s
				}
			}
		}

	case model.GoalTargetComposite:
		var totalWeight, weightedSum float64
		for i := range goal.Target.SubTargets {
			if i >= len(goal.Items) {
				break
			}
			item := goal.Items[i]
			weight := item.Weight
			if weight == 0 {
				weight = 1
			}
			totalWeight += weight
			if h := findHabit(habits, item.ItemID); h != nil {
				rate := float64(ComputeStats(h, asOf).CompletionRate)
				weightedSum += rate / 100 * weight
			}
		}
		if totalWeight > 0 {
			current = 100 * weightedSum / totalWeight
		}
	}

	var progress float64
	if target > 0 {
		progress = 100 * current / target
		if progress > 100 {
			progress = 100
		}
	} else if current > 0 {
		progress = 100
	}

	status := model.GoalNotStarted
	if progress > 0 {
		status = model.GoalInProgress
	}
	if progress >= 100 {
		status = model.GoalCompleted
	}
	if !goal.EndDate.IsZero() && asOf.After(goal.EndDate) && progress < 100 {
		status = model.GoalFailed
	}

	return model.GoalStats{
		CurrentValue: current,
		TargetValue:  target,
		Progress:     progress,
		Status:       status,
	}
}

func (svc *GoalsService) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return svc.store.GetUserGoals(ctx, userID)
}

func (svc *GoalsService) GetGoal(ctx context.Context, goalID, userID string) (*model.Goal, error) {
	return svc.store.GetGoal(ctx, goalID, userID)
}

func (svc *GoalsService) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if goal.UserID == "" {
		return errors.New("user ID is required")
	}
	if goal.Name == "" {
		return errors.New("goal name is required")
	}
	switch goal.Target.Type {
	case model.GoalTargetCount, model.GoalTargetPercentage,
		model.GoalTargetStreak, model.GoalTargetComposite:
	default:
		return errors.New("invalid goal target type")
	}

	if goal.GoalID == "" {
		goal.GoalID = utils.GenerateID()
	}
	now := time.Now()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	goal.LastUpdated = now
	if goal.Items == nil {
		goal.Items = []model.GoalItem{}
	}

	return svc.store.CreateGoal(ctx, goal)
}

func (svc *GoalsService) UpdateGoal(ctx context.Context, goalID, userID string, updates *model.Goal) error {
	if updates.Name == "" {
		return errors.New("goal name is required")
	}
	updates.LastUpdated = time.Now()
	return svc.store.UpdateGoal(ctx, goalID, userID, updates)
}

func (svc *GoalsService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	return svc.store.DeleteGoal(ctx, goalID, userID)
}

func (svc *GoalsService) ArchiveGoal(ctx context.Context, goalID, userID string, archived bool) error {
	return svc.store.SetArchived(ctx, goalID, userID, archived)
}

// GetGoalStats loads the goal with the owner's habits and measures it.
func (svc *GoalsService) GetGoalStats(ctx context.Context, goalID, userID string, asOf time.Time) (*model.GoalStats, error) {
	goal, err := svc.store.GetGoal(ctx, goalID, userID)
	if err != nil {
		return nil, err
	}

	habits, err := svc.habits.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := ComputeGoalStats(goal, habits, asOf)
	return &stats, nil
}

// AddItem links a habit into a goal; duplicate links are refused.
func (svc *GoalsService) AddItem(ctx context.Context, goalID, userID, itemID string, weight float64) error {
	goal, err := svc.store.GetGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}

	for _, item := range goal.Items {
		if item.ItemID == itemID {
			return errors.New("item already linked to goal")
		}
	}

	items := append(goal.Items, model.GoalItem{ItemID: itemID, Weight: weight})
	return svc.store.ReplaceItems(ctx, goalID, userID, items)
}

func (svc *GoalsService) RemoveItem(ctx context.Context, goalID, userID, itemID string) error {
	goal, err := svc.store.GetGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}

	items := goal.Items[:0:0]
	for _, item := range goal.Items {
		if item.ItemID != itemID {
			items = append(items, item)
		}
	}
	return svc.store.ReplaceItems(ctx, goalID, userID, items)
}

func (svc *GoalsService) UpdateItemWeight(ctx context.Context, goalID, userID, itemID string, weight float64) error {
	goal, err := svc.store.GetGoal(ctx, goalID, userID)
	if err != nil {
		return err
	}

	found := false
	items := make([]model.GoalItem, len(goal.Items))
	copy(items, goal.Items)
	for i := range items {
		if items[i].ItemID == itemID {
			items[i].Weight = weight
			found = true
		}
	}
	if !found {
		return errors.New("item not linked to goal")
	}
	return svc.store.ReplaceItems(ctx, goalID, userID, items)
}

func findHabit(habits []*model.Habit, id string) *model.Habit {
	for _, h := range habits {
		if h.HabitID == id {
			return h
		}
	}
	return nil
}
