package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionFor resolves a collection from its env override, falling back
// to the conventional name.
func collectionFor(client *mongo.Client, envName, fallback string) *mongo.Collection {
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "lifedesk"
	}
	name := os.Getenv(envName)
	if name == "" {
		name = fallback
	}
	return client.Database(dbName).Collection(name)
}

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userDate := func(name string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName(name),
		}
	}

	habitIndexes := []mongo.IndexModel{
		userDate("user_habits_date"),
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_archived", Value: 1},
				{Key: "active", Value: 1},
			},
			Options: options.Index().SetName("user_habit_state"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "category_id", Value: 1},
			},
			Options: options.Index().SetName("user_habit_category"),
		},
	}

	noteIndexes := []mongo.IndexModel{
		userDate("user_notes_date"),
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_pinned", Value: 1},
			},
			Options: options.Index().SetName("user_pinned_notes"),
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "content", Value: "text"},
				{Key: "tags", Value: "text"},
			},
			Options: options.Index().
				SetName("text_search").
				SetDefaultLanguage("english").
				SetWeights(bson.D{
					{Key: "title", Value: 10},
					{Key: "content", Value: 5},
					{Key: "tags", Value: 3},
				}),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_archived", Value: 1},
			},
			Options: options.Index().SetName("user_archived_notes"),
		},
	}

	todoIndexes := []mongo.IndexModel{
		userDate("user_todos_date"),
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "complete", Value: 1},
				{Key: "due_date", Value: 1},
			},
			Options: options.Index().SetName("user_todo_due"),
		},
	}

	goalIndexes := []mongo.IndexModel{
		userDate("user_goals_date"),
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_archived", Value: 1},
			},
			Options: options.Index().SetName("user_archived_goals"),
		},
	}

	projectIndexes := []mongo.IndexModel{
		userDate("user_projects_date"),
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().SetName("user_project_status"),
		},
	}

	categoryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "name", Value: 1},
			},
			Options: options.Index().SetName("user_category_name"),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "last_activity_at", Value: -1},
			},
			Options: options.Index().SetName("user_sessions_activity"),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("session_expiry").SetExpireAfterSeconds(0),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("unique_username").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("unique_email").SetUnique(true),
		},
	}

	for collection, indexes := range map[string][]mongo.IndexModel{
		"habits":     habitIndexes,
		"notes":      noteIndexes,
		"todos":      todoIndexes,
		"goals":      goalIndexes,
		"projects":   projectIndexes,
		"categories": categoryIndexes,
		"sessions":   sessionIndexes,
		"users":      userIndexes,
	} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
		log.Printf("Indexes ensured for %s collection", collection)
	}

	return nil
}
