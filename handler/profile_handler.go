package handler

import (
	"errors"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	users     *usecase.UsersService
	usersRepo *repository.UsersRepo
	sessions  *repository.SessionRepo
}

func NewProfileHandler(users *usecase.UsersService, usersRepo *repository.UsersRepo, sessions *repository.SessionRepo) *ProfileHandler {
	return &ProfileHandler{users: users, usersRepo: usersRepo, sessions: sessions}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.usersRepo.FindUser(c, c.GetString("user_id"))
	if err != nil || user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, gin.H{
		"id":                 user.UserID,
		"username":           user.Username,
		"email":              user.Email,
		"created_at":         user.CreatedAt,
		"two_factor_enabled": user.TwoFactorEnabled,
	})
}

func (h *ProfileHandler) ChangeEmail(c *gin.Context) {
	var req struct {
		NewEmail string `json:"new_email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "A valid email is required")
		return
	}

	if err := h.users.ChangeEmail(c, c.GetString("user_id"), req.NewEmail); err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			utils.Conflict(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to change email")
		return
	}
	utils.Success(c, gin.H{"message": "Email updated successfully"})
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "New password must be at least 6 characters with a number and a special character")
		return
	}

	userID := c.GetString("user_id")
	if err := h.users.ChangePassword(c, userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.Unauthorized(c, "Current password is incorrect")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	// Force re-login everywhere after a password change.
	h.sessions.EndAllUserSessions(c, userID)

	utils.Success(c, gin.H{"message": "Password updated successfully"})
}

func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Password is required")
		return
	}

	userID := c.GetString("user_id")
	if err := h.users.DeleteAccount(c, userID, req.Password); err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.Unauthorized(c, "Password is incorrect")
			return
		}
		utils.InternalError(c, "Failed to delete account")
		return
	}

	h.sessions.EndAllUserSessions(c, userID)
	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "Account deleted"})
}
