package handler

import (
	"errors"
	"strings"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type AuthHandler struct {
	users    *usecase.UsersService
	sessions *repository.SessionRepo
}

func NewAuthHandler(users *usecase.UsersService, sessions *repository.SessionRepo) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "registration_validation")
		utils.BadRequest(c, "Invalid request: password must be at least 6 characters with a number and a special character")
		return
	}

	user, err := h.users.Register(c, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) || errors.Is(err, usecase.ErrEmailTaken) {
			utils.TrackAuthAttempt("failure", "duplicate_account")
			utils.Conflict(c, err.Error())
			return
		}
		utils.TrackError("auth", "registration_failed")
		utils.InternalError(c, "Failed to create account")
		return
	}

	utils.TrackAuthAttempt("success", "registration")
	utils.Created(c, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":       user.UserID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := h.users.Authenticate(c, req.Username, req.Password)
	if err != nil {
		utils.TrackAuthAttempt("failure", "invalid_credentials")
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	if user.TwoFactorEnabled {
		if req.TwoFactorCode == "" {
			utils.TrackAuthAttempt("pending", "2fa_required")
			utils.Success(c, gin.H{
				"requires_2fa": true,
				"message":      "2FA code required",
			})
			return
		}
		if !totp.Validate(req.TwoFactorCode, user.TwoFactorSecret) {
			utils.TrackAuthAttempt("failure", "invalid_2fa")
			utils.Unauthorized(c, "Invalid 2FA code")
			return
		}
		utils.TrackAuthAttempt("success", "2fa")
	}

	accessToken, err := services.GenerateAccessToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if _, err := middleware.CreateSession(c, user.UserID, h.sessions); err != nil {
		utils.TrackError("session", "creation")
		utils.InternalError(c, "Failed to create session")
		return
	}

	utils.TrackAuthAttempt("success", "login")
	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   accessToken,
		"refresh": refreshToken,
		"user": gin.H{
			"id":       user.UserID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout blacklists the presented tokens and ends the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	accessToken := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	c.ShouldBindJSON(&req)

	if err := services.BlacklistTokens(accessToken, req.RefreshToken); err != nil {
		utils.TrackError("auth", "token_blacklist_failed")
	}

	if sessionID, err := c.Cookie("session_id"); err == nil {
		h.sessions.DeleteSession(c, c.GetString("user_id"), sessionID)
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

// RefreshToken exchanges a valid refresh token for a new token pair. The
// used refresh token is blacklisted so it cannot be replayed.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Refresh token is required")
		return
	}

	if services.IsTokenBlacklisted(req.RefreshToken) {
		utils.TrackAuthAttempt("failure", "blacklisted_refresh")
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	claims, err := services.ValidateToken(req.RefreshToken, "refresh")
	if err != nil {
		utils.TrackAuthAttempt("failure", "invalid_refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	accessToken, err := services.GenerateAccessToken(claims.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(claims.UserID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := services.BlacklistTokens(req.RefreshToken, ""); err != nil {
		utils.TrackError("auth", "token_blacklist_failed")
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   accessToken,
		"refresh": refreshToken,
	})
}
