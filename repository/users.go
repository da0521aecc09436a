package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(client *mongo.Client) *UsersRepo {
	return &UsersRepo{
		MongoCollection: collectionFor(client, "USERS_COLLECTION", "users"),
	}
}

func (r *UsersRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		utils.TrackError("database", "user_creation_failed")
		return err
	}
	return nil
}

func (r *UsersRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *UsersRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UsersRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	timer := utils.TrackDBOperation("find_one", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "user_fetch_failed")
		return nil, err
	}
	return &user, nil
}

func (r *UsersRepo) UpdateUserEmail(ctx context.Context, userID, email string) error {
	return r.setFields(ctx, userID, bson.M{"email": email})
}

func (r *UsersRepo) UpdateUserPassword(ctx context.Context, userID, hashedPassword string) error {
	return r.setFields(ctx, userID, bson.M{"password": hashedPassword})
}

// Enable2FAWithRecoveryCodes stores the TOTP secret and hashed recovery
// codes in a single write so 2FA is never half-enabled.
func (r *UsersRepo) Enable2FAWithRecoveryCodes(ctx context.Context, userID, secret string, recoveryCodes []string) error {
	return r.setFields(ctx, userID, bson.M{
		"two_factor_secret":  secret,
		"two_factor_enabled": true,
		"recovery_codes":     recoveryCodes,
	})
}

func (r *UsersRepo) UpdateRecoveryCodes(ctx context.Context, userID string, codes []string) error {
	return r.setFields(ctx, userID, bson.M{"recovery_codes": codes})
}

func (r *UsersRepo) Disable2FA(ctx context.Context, userID string) error {
	return r.setFields(ctx, userID, bson.M{
		"two_factor_secret":  "",
		"two_factor_enabled": false,
		"recovery_codes":     []string{},
	})
}

func (r *UsersRepo) setFields(ctx context.Context, userID string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "user_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "user_not_found")
		return errors.New("user not found")
	}
	return nil
}

func (r *UsersRepo) DeleteUser(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("delete", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "user_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "user_not_found")
		return errors.New("user not found")
	}
	return nil
}
