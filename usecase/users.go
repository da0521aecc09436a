package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UsersService struct {
	UsersRepo *repository.UsersRepo
	PurgeRepo *repository.PurgeRepo
}

func NewUsersService(repo *repository.UsersRepo, purge *repository.PurgeRepo) *UsersService {
	return &UsersService{UsersRepo: repo, PurgeRepo: purge}
}

// Register creates a new account with an argon2id password hash.
func (svc *UsersService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if existing, _ := svc.UsersRepo.FindUserByUsername(ctx, req.Username); existing != nil {
		return nil, ErrUsernameTaken
	}
	if existing, _ := svc.UsersRepo.FindUserByEmail(ctx, req.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    utils.GenerateID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks username and password, returning the user on success.
func (svc *UsersService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (svc *UsersService) ChangeEmail(ctx context.Context, userID, newEmail string) error {
	if existing, _ := svc.UsersRepo.FindUserByEmail(ctx, newEmail); existing != nil && existing.UserID != userID {
		return ErrEmailTaken
	}
	return svc.UsersRepo.UpdateUserEmail(ctx, userID, newEmail)
}

func (svc *UsersService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, currentPassword)
	if err != nil || !match {
		return ErrInvalidCredentials
	}

	hashed, err := services.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return svc.UsersRepo.UpdateUserPassword(ctx, userID, hashed)
}

// DeleteAccount removes the user and everything the user owns.
func (svc *UsersService) DeleteAccount(ctx context.Context, userID, password string) error {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return ErrInvalidCredentials
	}

	if err := svc.PurgeRepo.PurgeUserData(ctx, userID); err != nil {
		return err
	}
	return svc.UsersRepo.DeleteUser(ctx, userID)
}
