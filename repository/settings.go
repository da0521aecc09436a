package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsRepo struct {
	MongoCollection *mongo.Collection
}

func GetSettingsRepo(client *mongo.Client) *SettingsRepo {
	return &SettingsRepo{
		MongoCollection: collectionFor(client, "SETTINGS_COLLECTION", "settings"),
	}
}

// GetSettings returns stored settings, or the defaults when the user has
// never saved any.
func (r *SettingsRepo) GetSettings(ctx context.Context, userID string) (*model.Settings, error) {
	timer := utils.TrackDBOperation("find_one", "settings")
	defer timer.ObserveDuration()

	var settings model.Settings
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.DefaultSettings(userID), nil
		}
		utils.TrackError("database", "settings_fetch_failed")
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepo) SaveSettings(ctx context.Context, settings *model.Settings) error {
	timer := utils.TrackDBOperation("upsert", "settings")
	defer timer.ObserveDuration()

	if settings.WorkMinutes <= 0 || settings.ShortBreakMinutes <= 0 || settings.LongBreakMinutes <= 0 {
		return errors.New("timer durations must be positive")
	}

	settings.UpdatedAt = time.Now()

	_, err := r.MongoCollection.ReplaceOne(ctx,
		bson.M{"_id": settings.UserID},
		settings,
		options.Replace().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "settings_save_failed")
		return err
	}
	return nil
}

func (r *SettingsRepo) DeleteSettings(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete", "settings")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		utils.TrackError("database", "settings_deletion_failed")
		return err
	}
	return nil
}
