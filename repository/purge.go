package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"main/utils"
)

// PurgeRepo removes every document a user owns. The user record itself is
// handled by UsersRepo.DeleteUser.
type PurgeRepo struct {
	userScoped map[string]*mongo.Collection
	categories *mongo.Collection
	singletons map[string]*mongo.Collection
}

func GetPurgeRepo(client *mongo.Client) *PurgeRepo {
	return &PurgeRepo{
		userScoped: map[string]*mongo.Collection{
			"habits":   collectionFor(client, "HABITS_COLLECTION", "habits"),
			"todos":    collectionFor(client, "TODOS_COLLECTION", "todos"),
			"notes":    collectionFor(client, "NOTES_COLLECTION", "notes"),
			"goals":    collectionFor(client, "GOALS_COLLECTION", "goals"),
			"projects": collectionFor(client, "PROJECTS_COLLECTION", "projects"),
			"sessions": collectionFor(client, "SESSIONS_COLLECTION", "sessions"),
		},
		categories: collectionFor(client, "CATEGORIES_COLLECTION", "categories"),
		singletons: map[string]*mongo.Collection{
			"pomodoro": collectionFor(client, "POMODORO_COLLECTION", "pomodoro"),
			"settings": collectionFor(client, "SETTINGS_COLLECTION", "settings"),
		},
	}
}

func (r *PurgeRepo) PurgeUserData(ctx context.Context, userID string) error {
	for name, coll := range r.userScoped {
		timer := utils.TrackDBOperation("delete_many", name)
		_, err := coll.DeleteMany(ctx, bson.M{"user_id": userID})
		timer.ObserveDuration()
		if err != nil {
			utils.TrackError("database", "user_purge_failed")
			return err
		}
	}

	// Default categories are global; only the user's own are removed.
	timer := utils.TrackDBOperation("delete_many", "categories")
	_, err := r.categories.DeleteMany(ctx, bson.M{"user_id": userID, "is_default": false})
	timer.ObserveDuration()
	if err != nil {
		utils.TrackError("database", "user_purge_failed")
		return err
	}

	for name, coll := range r.singletons {
		timer := utils.TrackDBOperation("delete_one", name)
		_, err := coll.DeleteOne(ctx, bson.M{"_id": userID})
		timer.ObserveDuration()
		if err != nil {
			utils.TrackError("database", "user_purge_failed")
			return err
		}
	}
	return nil
}
