package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type HabitsRepo struct {
	MongoCollection *mongo.Collection
}

func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	return &HabitsRepo{
		MongoCollection: collectionFor(client, "HABITS_COLLECTION", "habits"),
	}
}

func (r *HabitsRepo) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	timer := utils.TrackDBOperation("find", "habits")
	defer timer.ObserveDuration()

	var habits []*model.Habit
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &habits); err != nil {
		utils.TrackError("database", "habit_decode_failed")
		return nil, err
	}
	return habits, nil
}

func (r *HabitsRepo) GetHabit(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	timer := utils.TrackDBOperation("find_one", "habits")
	defer timer.ObserveDuration()

	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     habitID,
		"user_id": userID,
	}).Decode(&habit)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("habit not found")
		}
		utils.TrackError("database", "habit_fetch_failed")
		return nil, err
	}
	return &habit, nil
}

func (r *HabitsRepo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	timer := utils.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	if habit.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, habit)
	if err != nil {
		utils.TrackError("database", "habit_creation_failed")
		return err
	}
	return nil
}

func (r *HabitsRepo) UpdateHabit(ctx context.Context, habitID, userID string, updates *model.Habit) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":             updates.Name,
			"description":      updates.Description,
			"recurrence":       updates.Recurrence,
			"recurrence_days":  updates.RecurrenceDays,
			"recurrence_count": updates.RecurrenceCount,
			"category_id":      updates.CategoryID,
			"active":           updates.Active,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "habit_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}

// ReplaceCompletions overwrites the full completion log of a habit.
func (r *HabitsRepo) ReplaceCompletions(ctx context.Context, habitID, userID string, completions []model.HabitCompletion) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"completions": completions},
	})
	if err != nil {
		utils.TrackError("database", "habit_completion_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}

func (r *HabitsRepo) SetArchived(ctx context.Context, habitID, userID string, archived bool) error {
	timer := utils.TrackDBOperation("update", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"is_archived": archived},
	})
	if err != nil {
		utils.TrackError("database", "habit_archive_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}

func (r *HabitsRepo) DeleteHabit(ctx context.Context, habitID, userID string) error {
	timer := utils.TrackDBOperation("delete", "habits")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     habitID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "habit_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "habit_not_found")
		return errors.New("habit not found")
	}
	return nil
}

// CountUserHabits counts non-archived habits for a user.
func (r *HabitsRepo) CountUserHabits(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("count", "habits")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":     userID,
		"is_archived": false,
	})
	if err != nil {
		utils.TrackError("database", "habit_count_failed")
		return 0, err
	}
	return count, nil
}
