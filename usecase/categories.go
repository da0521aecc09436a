package usecase

import (
	"context"
	"errors"

	"main/model"
	"main/repository"
	"main/utils"
)

type CategoriesService struct {
	CategoriesRepo *repository.CategoriesRepo
	habits         HabitsStore
}

func NewCategoriesService(repo *repository.CategoriesRepo, habits HabitsStore) *CategoriesService {
	return &CategoriesService{CategoriesRepo: repo, habits: habits}
}

// GetCategories returns the default categories plus the user's own.
func (svc *CategoriesService) GetCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	return svc.CategoriesRepo.GetCategoriesForUser(ctx, userID)
}

func (svc *CategoriesService) CreateCategory(ctx context.Context, category *model.Category) error {
	if category.UserID == "" {
		return errors.New("user ID is required")
	}
	if category.Name == "" {
		return errors.New("category name is required")
	}

	category.CategoryID = utils.GenerateID()
	category.IsDefault = false

	return svc.CategoriesRepo.CreateCategory(ctx, category)
}

func (svc *CategoriesService) UpdateCategory(ctx context.Context, categoryID, userID string, updates *model.Category) error {
	existing, err := svc.CategoriesRepo.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if existing.IsDefault {
		return errors.New("default categories cannot be modified")
	}
	if existing.UserID != userID {
		return errors.New("category not found")
	}
	if updates.Name == "" {
		return errors.New("category name is required")
	}
	return svc.CategoriesRepo.UpdateCategory(ctx, categoryID, userID, updates)
}

// DeleteCategory removes a user category. Default categories and
// categories still referenced by a habit are refused.
func (svc *CategoriesService) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	existing, err := svc.CategoriesRepo.GetCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if existing.IsDefault {
		return errors.New("default categories cannot be deleted")
	}
	if existing.UserID != userID {
		return errors.New("category not found")
	}

	habits, err := svc.habits.GetUserHabits(ctx, userID)
	if err != nil {
		return err
	}
	for _, habit := range habits {
		if habit.CategoryID == categoryID {
			return errors.New("category is in use by a habit")
		}
	}

	return svc.CategoriesRepo.DeleteCategory(ctx, categoryID, userID)
}
