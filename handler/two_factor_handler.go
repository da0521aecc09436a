package handler

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

type TwoFactorHandler struct {
	usersRepo *repository.UsersRepo
}

func NewTwoFactorHandler(usersRepo *repository.UsersRepo) *TwoFactorHandler {
	return &TwoFactorHandler{usersRepo: usersRepo}
}

// GenerateSecret creates a TOTP secret and QR code for enrollment. The
// secret is not stored until the user confirms a valid code.
func (h *TwoFactorHandler) GenerateSecret(c *gin.Context) {
	user, err := h.usersRepo.FindUser(c, c.GetString("user_id"))
	if err != nil || user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "lifedesk",
		AccountName: user.Username,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	img, err := key.Image(200, 200)
	if err != nil {
		utils.InternalError(c, "Failed to generate QR code")
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		utils.InternalError(c, "Failed to encode QR code")
		return
	}

	utils.Success(c, gin.H{
		"secret":  key.Secret(),
		"qr_code": "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// Enable turns on 2FA after verifying a code against the pending secret,
// returning one-time recovery codes.
func (h *TwoFactorHandler) Enable(c *gin.Context) {
	var req struct {
		Secret string `json:"secret" binding:"required"`
		Code   string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID := c.GetString("user_id")
	user, err := h.usersRepo.FindUser(c, userID)
	if err != nil || user == nil {
		utils.NotFound(c, "User not found")
		return
	}
	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.TrackAuthAttempt("failure", "2fa_enrollment")
		utils.BadRequest(c, "Invalid 2FA code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}

	hashedCodes := utils.HashRecoveryCodes(recoveryCodes)
	if err := h.usersRepo.Enable2FAWithRecoveryCodes(c, userID, req.Secret, hashedCodes); err != nil {
		utils.InternalError(c, "Failed to enable 2FA")
		return
	}

	utils.TrackAuthAttempt("success", "2fa_enrollment")
	utils.Success(c, gin.H{
		"message":        "2FA enabled successfully",
		"recovery_codes": recoveryCodes,
		"warning":        "Save these recovery codes securely. They will not be shown again.",
	})
}

func (h *TwoFactorHandler) Disable(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID := c.GetString("user_id")
	user, err := h.usersRepo.FindUser(c, userID)
	if err != nil || user == nil {
		utils.NotFound(c, "User not found")
		return
	}
	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	if err := h.usersRepo.Disable2FA(c, userID); err != nil {
		utils.InternalError(c, "Failed to disable 2FA")
		return
	}
	utils.Success(c, gin.H{"message": "2FA disabled"})
}

// UseRecoveryCode burns a recovery code for users locked out of their
// authenticator.
func (h *TwoFactorHandler) UseRecoveryCode(c *gin.Context) {
	var req struct {
		RecoveryCode string `json:"recovery_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID := c.GetString("user_id")
	user, err := h.usersRepo.FindUser(c, userID)
	if err != nil || user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	hashedCode := utils.HashString(utils.NormalizeRecoveryCode(req.RecoveryCode))

	found := false
	remaining := make([]string, 0, len(user.RecoveryCodes))
	for _, stored := range user.RecoveryCodes {
		if stored == hashedCode && !found {
			found = true
			continue
		}
		remaining = append(remaining, stored)
	}

	if !found {
		utils.TrackAuthAttempt("failure", "recovery_code")
		utils.Unauthorized(c, "Invalid recovery code")
		return
	}

	if err := h.usersRepo.UpdateRecoveryCodes(c, userID, remaining); err != nil {
		utils.InternalError(c, "Failed to update recovery codes")
		return
	}

	utils.TrackAuthAttempt("success", "recovery_code")
	utils.Success(c, gin.H{
		"message":         "Recovery code accepted",
		"remaining_codes": len(remaining),
	})
}
