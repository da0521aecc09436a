package repository

import (
	"context"
	"errors"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoriesRepo struct {
	MongoCollection *mongo.Collection
}

func GetCategoriesRepo(client *mongo.Client) *CategoriesRepo {
	return &CategoriesRepo{
		MongoCollection: collectionFor(client, "CATEGORIES_COLLECTION", "categories"),
	}
}

var defaultCategories = []model.Category{
	{CategoryID: "default-health", Name: "Health", Color: "#e74c3c", Icon: "heart", IsDefault: true},
	{CategoryID: "default-fitness", Name: "Fitness", Color: "#e67e22", Icon: "dumbbell", IsDefault: true},
	{CategoryID: "default-learning", Name: "Learning", Color: "#3498db", Icon: "book", IsDefault: true},
	{CategoryID: "default-productivity", Name: "Productivity", Color: "#2ecc71", Icon: "check", IsDefault: true},
	{CategoryID: "default-mindfulness", Name: "Mindfulness", Color: "#9b59b6", Icon: "leaf", IsDefault: true},
	{CategoryID: "default-finance", Name: "Finance", Color: "#f1c40f", Icon: "wallet", IsDefault: true},
	{CategoryID: "default-social", Name: "Social", Color: "#1abc9c", Icon: "users", IsDefault: true},
}

// EnsureDefaultCategories upserts the shared default set at startup.
func (r *CategoriesRepo) EnsureDefaultCategories(ctx context.Context) error {
	timer := utils.TrackDBOperation("upsert", "categories")
	defer timer.ObserveDuration()

	for _, category := range defaultCategories {
		filter := bson.M{"_id": category.CategoryID}
		update := bson.M{"$set": bson.M{
			"name":       category.Name,
			"color":      category.Color,
			"icon":       category.Icon,
			"is_default": true,
		}}
		if _, err := r.MongoCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			utils.TrackError("database", "default_category_seed_failed")
			return err
		}
	}
	return nil
}

// GetCategoriesForUser returns default categories plus the user's own.
func (r *CategoriesRepo) GetCategoriesForUser(ctx context.Context, userID string) ([]*model.Category, error) {
	timer := utils.TrackDBOperation("find", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{"$or": []bson.M{
		{"is_default": true},
		{"user_id": userID},
	}}

	var categories []*model.Category
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &categories); err != nil {
		utils.TrackError("database", "category_decode_failed")
		return nil, err
	}
	return categories, nil
}

func (r *CategoriesRepo) GetCategory(ctx context.Context, categoryID string) (*model.Category, error) {
	timer := utils.TrackDBOperation("find_one", "categories")
	defer timer.ObserveDuration()

	var category model.Category
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": categoryID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("category not found")
		}
		utils.TrackError("database", "category_fetch_failed")
		return nil, err
	}
	return &category, nil
}

func (r *CategoriesRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	timer := utils.TrackDBOperation("insert", "categories")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, category)
	if err != nil {
		utils.TrackError("database", "category_creation_failed")
		return err
	}
	return nil
}

func (r *CategoriesRepo) UpdateCategory(ctx context.Context, categoryID, userID string, updates *model.Category) error {
	timer := utils.TrackDBOperation("update", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":        categoryID,
		"user_id":    userID,
		"is_default": false,
	}

	update := bson.M{
		"$set": bson.M{
			"name":  updates.Name,
			"color": updates.Color,
			"icon":  updates.Icon,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "category_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoriesRepo) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	timer := utils.TrackDBOperation("delete", "categories")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":        categoryID,
		"user_id":    userID,
		"is_default": false,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "category_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", "category_not_found")
		return errors.New("category not found")
	}
	return nil
}
