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

type ProjectsRepo struct {
	MongoCollection *mongo.Collection
}

func GetProjectsRepo(client *mongo.Client) *ProjectsRepo {
	return &ProjectsRepo{
		MongoCollection: collectionFor(client, "PROJECTS_COLLECTION", "projects"),
	}
}

func (r *ProjectsRepo) GetUserProjects(ctx context.Context, userID string) ([]*model.Project, error) {
	timer := utils.TrackDBOperation("find", "projects")
	defer timer.ObserveDuration()

	var projects []*model.Project
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "project_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &projects); err != nil {
		utils.TrackError("database", "project_decode_failed")
		return nil, err
	}
	return projects, nil
}

func (r *ProjectsRepo) GetProject(ctx context.Context, projectID, userID string) (*model.Project, error) {
	timer := utils.TrackDBOperation("find_one", "projects")
	defer timer.ObserveDuration()

	var project model.Project
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     projectID,
		"user_id": userID,
	}).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("project not found")
		}
		utils.TrackError("database", "project_fetch_failed")
		return nil, err
	}
	return &project, nil
}

func (r *ProjectsRepo) CreateProject(ctx context.Context, project *model.Project) error {
	timer := utils.TrackDBOperation("insert", "projects")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, project)
	if err != nil {
		utils.TrackError("database", "project_creation_failed")
		return err
	}
	return nil
}

func (r *ProjectsRepo) UpdateProject(ctx context.Context, projectID, userID string, updates *model.Project) error {
	timer := utils.TrackDBOperation("update", "projects")
	defer timer.ObserveDuration()

	set := bson.M{
		"title":       updates.Title,
		"description": updates.Description,
		"goal_ids":    updates.GoalIDs,
		"todo_ids":    updates.TodoIDs,
		"updated_at":  time.Now(),
	}
	if updates.Status != "" {
		set["status"] = updates.Status
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{
		"_id":     projectID,
		"user_id": userID,
	}, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "project_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "project_not_found")
		return errors.New("project not found")
	}
	return nil
}

// PushTask appends a task to the project's embedded task array.
func (r *ProjectsRepo) PushTask(ctx context.Context, projectID, userID string, task *model.ProjectTask) error {
	timer := utils.TrackDBOperation("update", "projects")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{
		"_id":     projectID,
		"user_id": userID,
	}, bson.M{
		"$push": bson.M{"tasks": task},
		"$set":  bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		utils.TrackError("database", "project_task_push_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "project_not_found")
		return errors.New("project not found")
	}
	return nil
}

// ReplaceTasks overwrites the embedded task array and the project total.
func (r *ProjectsRepo) ReplaceTasks(ctx context.Context, projectID, userID string, tasks []model.ProjectTask, timeSpent int64) error {
	timer := utils.TrackDBOperation("update", "projects")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{
		"_id":     projectID,
		"user_id": userID,
	}, bson.M{
		"$set": bson.M{
			"tasks":      tasks,
			"time_spent": timeSpent,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		utils.TrackError("database", "project_tasks_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "project_not_found")
		return errors.New("project not found")
	}
	return nil
}

func (r *ProjectsRepo) DeleteProject(ctx context.Context, projectID, userID string) error {
	timer := utils.TrackDBOperation("delete", "projects")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     projectID,
		"user_id": userID,
	})
	if err != nil {
		utils.TrackError("database", "project_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "project_not_found")
		return errors.New("project not found")
	}
	return nil
}
