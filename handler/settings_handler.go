package handler

import (
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	repo *repository.SettingsRepo
}

func NewSettingsHandler(repo *repository.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.repo.GetSettings(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch settings")
		return
	}
	utils.Success(c, settings)
}

func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var settings model.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	settings.UserID = c.GetString("user_id")
	if err := h.repo.SaveSettings(c, &settings); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, settings)
}

// ResetSettings restores the defaults by deleting the stored document.
func (h *SettingsHandler) ResetSettings(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.repo.DeleteSettings(c, userID); err != nil {
		utils.InternalError(c, "Failed to reset settings")
		return
	}
	utils.Success(c, model.DefaultSettings(userID))
}
