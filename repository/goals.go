package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

func GetGoalsRepo(client *mongo.Client) *GoalsRepo {
	return &GoalsRepo{
		MongoCollection: collectionFor(client, "GOALS_COLLECTION", "goals"),
	}
}

func (r *GoalsRepo) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	var goals []*model.Goal
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &goals); err != nil {
		utils.TrackError("database", "goal_decode_failed")
		return nil, err
	}
	return goals, nil
}

func (r *GoalsRepo) GetGoal(ctx context.Context, goalID, userID string) (*model.Goal, error) {
	timer := utils.TrackDBOperation("find_one", "goals")
	defer timer.ObserveDuration()

	var goal model.Goal
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     goalID,
		"user_id": userID,
	}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("goal not found")
		}
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	return &goal, nil
}

func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("insert", "goals")
	defer timer.ObserveDuration()

	if goal.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, goal)
	if err != nil {
		utils.TrackError("database", "goal_creation_failed")
		return err
	}
	return nil
}

func (r *GoalsRepo) UpdateGoal(ctx context.Context, goalID, userID string, updates *model.Goal) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     goalID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":         updates.Name,
			"description":  updates.Description,
			"category_id":  updates.CategoryID,
			"target":       updates.Target,
			"start_date":   updates.StartDate,
			"end_date":     updates.EndDate,
			"last_updated": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return errors.New("goal not found")
	}
	return nil
}

// ReplaceItems overwrites a goal's member list.
func (r *GoalsRepo) ReplaceItems(ctx context.Context, goalID, userID string, items []model.GoalItem) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     goalID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"items":        items,
			"last_updated": time.Now(),
		},
	})
	if err != nil {
		utils.TrackError("database", "goal_items_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return errors.New("goal not found")
	}
	return nil
}

func (r *GoalsRepo) SetArchived(ctx context.Context, goalID, userID string, archived bool) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     goalID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"is_archived":  archived,
			"last_updated": time.Now(),
		},
	})
	if err != nil {
		utils.TrackError("database", "goal_archive_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return errors.New("goal not found")
	}
	return nil
}

func (r *GoalsRepo) DeleteGoal(ctx context.Context, goalID, userID string) error {
	timer := utils.TrackDBOperation("delete", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     goalID,
		"user_id": userID,
	})
	if err != nil {
		utils.TrackError("database", "goal_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "goal_not_found")
		return errors.New("goal not found")
	}
	return nil
}
