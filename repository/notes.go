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

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: collectionFor(client, "NOTES_COLLECTION", "notes"),
	}
}

func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		return err
	}
	return nil
}

// GetUserNotes returns a user's notes, pinned first, newest first within
// each group. Archived notes are excluded unless requested.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string, includeArchived bool) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if !includeArchived {
		filter["is_archived"] = false
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "is_pinned", Value: -1},
		{Key: "updated_at", Value: -1},
	})

	var notes []*model.Note
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "note_decode_failed")
		return nil, err
	}
	return notes, nil
}

// SearchNotes runs a text search over titles, content, and tags.
func (r *NotesRepo) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id":     userID,
		"is_archived": false,
		"$text":       bson.M{"$search": query},
	}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})

	var notes []*model.Note
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_search_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "note_decode_failed")
		return nil, err
	}
	return notes, nil
}

func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find_one", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     noteID,
		"user_id": userID,
	}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("note not found")
		}
		utils.TrackError("database", "note_fetch_failed")
		return nil, err
	}
	return &note, nil
}

func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, updates *model.Note) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":      updates.Title,
			"content":    updates.Content,
			"tags":       updates.Tags,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "note_not_found")
		return errors.New("note not found")
	}
	return nil
}

func (r *NotesRepo) SetPinned(ctx context.Context, noteID, userID string, pinned bool) error {
	return r.setFlag(ctx, noteID, userID, "is_pinned", pinned)
}

func (r *NotesRepo) SetArchived(ctx context.Context, noteID, userID string, archived bool) error {
	return r.setFlag(ctx, noteID, userID, "is_archived", archived)
}

func (r *NotesRepo) setFlag(ctx context.Context, noteID, userID, field string, value bool) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{
		"_id":     noteID,
		"user_id": userID,
	}, bson.M{
		"$set": bson.M{
			field:        value,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		utils.TrackError("database", "note_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "note_not_found")
		return errors.New("note not found")
	}
	return nil
}

func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     noteID,
		"user_id": userID,
	})
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "note_not_found")
		return errors.New("note not found")
	}
	return nil
}

// CountUserNotes returns total and pinned note counts for a user.
func (r *NotesRepo) CountUserNotes(ctx context.Context, userID string) (total, pinned int64, err error) {
	timer := utils.TrackDBOperation("count", "notes")
	defer timer.ObserveDuration()

	total, err = r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":     userID,
		"is_archived": false,
	})
	if err != nil {
		utils.TrackError("database", "note_count_failed")
		return 0, 0, err
	}

	pinned, err = r.MongoCollection.CountDocuments(ctx, bson.M{
		"user_id":   userID,
		"is_pinned": true,
	})
	if err != nil {
		utils.TrackError("database", "note_count_failed")
		return 0, 0, err
	}
	return total, pinned, nil
}
