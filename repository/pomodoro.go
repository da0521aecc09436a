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

type PomodoroRepo struct {
	MongoCollection *mongo.Collection
}

func GetPomodoroRepo(client *mongo.Client) *PomodoroRepo {
	return &PomodoroRepo{
		MongoCollection: collectionFor(client, "POMODORO_COLLECTION", "pomodoro"),
	}
}

// GetState returns the user's timer state, defaulting to a fresh work
// phase when none is stored.
func (r *PomodoroRepo) GetState(ctx context.Context, userID string) (*model.PomodoroState, error) {
	timer := utils.TrackDBOperation("find_one", "pomodoro")
	defer timer.ObserveDuration()

	var state model.PomodoroState
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.PomodoroState{
				UserID:    userID,
				Mode:      model.TimerModeWork,
				Cycles:    0,
				UpdatedAt: time.Now(),
			}, nil
		}
		utils.TrackError("database", "pomodoro_fetch_failed")
		return nil, err
	}
	return &state, nil
}

func (r *PomodoroRepo) SaveState(ctx context.Context, state *model.PomodoroState) error {
	timer := utils.TrackDBOperation("upsert", "pomodoro")
	defer timer.ObserveDuration()

	state.UpdatedAt = time.Now()

	_, err := r.MongoCollection.ReplaceOne(ctx,
		bson.M{"_id": state.UserID},
		state,
		options.Replace().SetUpsert(true))
	if err != nil {
		utils.TrackError("database", "pomodoro_save_failed")
		return err
	}
	return nil
}
