package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"main/model"
	"main/services"
	"main/utils"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type SessionRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionRepo(client *mongo.Client) *SessionRepo {
	return &SessionRepo{
		MongoCollection: collectionFor(client, "SESSIONS_COLLECTION", "sessions"),
	}
}

func (r *SessionRepo) CreateSession(ctx context.Context, session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	if session == nil {
		utils.TrackError("database", "nil_session")
		return fmt.Errorf("session cannot be nil")
	}
	if session.SessionID == "" || session.UserID == "" {
		utils.TrackError("database", "invalid_session_data")
		return fmt.Errorf("invalid session data: missing required fields")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, session); err != nil {
		utils.TrackError("database", "session_creation_failed")
		return fmt.Errorf("failed to create session in database: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(session); err != nil {
			log.Printf("Failed to cache session: %v", err)
		}
		services.GlobalSessionCache.InvalidateUserSessions(session.UserID)
	}
	return nil
}

func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if services.GlobalSessionCache != nil {
		if cached, err := services.GlobalSessionCache.GetSession(sessionID); err == nil && cached != nil {
			return cached, nil
		}
	}

	timer := utils.TrackDBOperation("find_one", "sessions")
	defer timer.ObserveDuration()

	var session model.Session
	err := r.MongoCollection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("session not found")
		}
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}

	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.SetSession(&session)
	}
	return &session, nil
}

// UpdateSession persists activity changes and refreshes the cache.
func (r *SessionRepo) UpdateSession(ctx context.Context, session *model.Session) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"session_id": session.SessionID},
		bson.M{"$set": bson.M{
			"last_activity_at": session.LastActivityAt,
			"is_active":        session.IsActive,
			"expires_at":       session.ExpiresAt,
		}})
	if err != nil {
		utils.TrackError("database", "session_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "session_not_found")
		return errors.New("session not found")
	}

	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.SetSession(session)
		services.GlobalSessionCache.InvalidateUserSessions(session.UserID)
	}
	return nil
}

// DeleteSession removes one of the user's sessions. The filter carries the
// owner so a session ID alone can never delete another user's session.
func (r *SessionRepo) DeleteSession(ctx context.Context, userID, sessionID string) error {
	timer := utils.TrackDBOperation("delete", "sessions")
	defer timer.ObserveDuration()

	var session model.Session
	err := r.MongoCollection.FindOneAndDelete(ctx, bson.M{
		"session_id": sessionID,
		"user_id":    userID,
	}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errors.New("session not found")
		}
		utils.TrackError("database", "session_deletion_failed")
		return err
	}

	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.DeleteSession(sessionID)
		services.GlobalSessionCache.InvalidateUserSessions(session.UserID)
	}
	return nil
}

// GetUserActiveSessions returns the user's unexpired sessions, most
// recently active first.
func (r *SessionRepo) GetUserActiveSessions(ctx context.Context, userID string) ([]*model.Session, error) {
	if services.GlobalSessionCache != nil {
		if sessions, found, err := services.GlobalSessionCache.GetUserSessions(userID); err == nil && found {
			return sessions, nil
		}
	}

	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":    userID,
		"is_active":  true,
		"expires_at": bson.M{"$gt": time.Now()},
	}

	var sessions []*model.Session
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastActivityAt.After(sessions[j].LastActivityAt)
	})

	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.CacheUserSessions(userID, sessions)
	}
	return sessions, nil
}

func (r *SessionRepo) CountActiveSessions(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "sessions")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":    userID,
		"is_active":  true,
		"expires_at": bson.M{"$gt": time.Now()},
	})
	if err != nil {
		utils.TrackError("database", "session_count_failed")
		return 0, err
	}
	return int(count), nil
}

// EndLeastActiveSession deactivates the session with the oldest activity,
// making room for a new login at the session cap.
func (r *SessionRepo) EndLeastActiveSession(ctx context.Context, userID string) error {
	sessions, err := r.GetUserActiveSessions(ctx, userID)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return errors.New("no active sessions")
	}

	least := sessions[len(sessions)-1]
	least.IsActive = false
	return r.UpdateSession(ctx, least)
}

func (r *SessionRepo) EndAllUserSessions(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		utils.TrackError("database", "session_update_failed")
		return err
	}

	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.InvalidateUserSessions(userID)
	}
	return nil
}

// DeleteExpiredSessions removes sessions past their expiry. Used by the
// maintenance scheduler.
func (r *SessionRepo) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	timer := utils.TrackDBOperation("delete", "sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"expires_at": bson.M{"$lt": time.Now()},
	})
	if err != nil {
		utils.TrackError("database", "session_cleanup_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}

// CountAllActiveSessions counts active sessions across all users.
func (r *SessionRepo) CountAllActiveSessions(ctx context.Context) (int64, error) {
	timer := utils.TrackDBOperation("count", "sessions")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"is_active":  true,
		"expires_at": bson.M{"$gt": time.Now()},
	})
	if err != nil {
		utils.TrackError("database", "session_count_failed")
		return 0, err
	}
	return count, nil
}
