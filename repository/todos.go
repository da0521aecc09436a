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

type TodosRepo struct {
	MongoCollection *mongo.Collection
}

func GetTodosRepo(client *mongo.Client) *TodosRepo {
	return &TodosRepo{
		MongoCollection: collectionFor(client, "TODOS_COLLECTION", "todos"),
	}
}

func (r *TodosRepo) CreateTodo(ctx context.Context, todo *model.Todo) error {
	timer := utils.TrackDBOperation("insert", "todos")
	defer timer.ObserveDuration()

	if todo.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, todo)
	if err != nil {
		utils.TrackError("database", "todo_creation_failed")
		return err
	}
	return nil
}

func (r *TodosRepo) GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error) {
	timer := utils.TrackDBOperation("find", "todos")
	defer timer.ObserveDuration()

	var todos []*model.Todo
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &todos); err != nil {
		utils.TrackError("database", "todo_decode_failed")
		return nil, err
	}
	return todos, nil
}

func (r *TodosRepo) GetTodo(ctx context.Context, todoID, userID string) (*model.Todo, error) {
	timer := utils.TrackDBOperation("find_one", "todos")
	defer timer.ObserveDuration()

	var todo model.Todo
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     todoID,
		"user_id": userID,
	}).Decode(&todo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("todo not found")
		}
		utils.TrackError("database", "todo_fetch_failed")
		return nil, err
	}
	return &todo, nil
}

func (r *TodosRepo) UpdateTodo(ctx context.Context, todoID, userID string, updates *model.Todo) error {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todoID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"text":        updates.Text,
			"description": updates.Description,
			"priority":    updates.Priority,
			"tags":        updates.Tags,
			"due_date":    updates.DueDate,
			"project_id":  updates.ProjectID,
			"updated_at":  time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "todo_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return errors.New("todo not found")
	}
	return nil
}

func (r *TodosRepo) SetComplete(ctx context.Context, todoID, userID string, complete bool) error {
	timer := utils.TrackDBOperation("update", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todoID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"complete":   complete,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		utils.TrackError("database", "todo_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return errors.New("todo not found")
	}
	return nil
}

func (r *TodosRepo) DeleteTodo(ctx context.Context, todoID, userID string) error {
	timer := utils.TrackDBOperation("delete", "todos")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     todoID,
		"user_id": userID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "todo_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "todo_not_found")
		return errors.New("todo not found")
	}
	return nil
}

// CountUserTodos returns total and completed todo counts for a user.
func (r *TodosRepo) CountUserTodos(ctx context.Context, userID string) (total, completed int64, err error) {
	timer := utils.TrackDBOperation("count", "todos")
	defer timer.ObserveDuration()

	total, err = r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "todo_count_failed")
		return 0, 0, err
	}

	completed, err = r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":  userID,
		"complete": true,
	})
	if err != nil {
		utils.TrackError("database", "todo_count_failed")
		return 0, 0, err
	}
	return total, completed, nil
}
