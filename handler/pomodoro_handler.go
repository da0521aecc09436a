package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type PomodoroHandler struct {
	service *usecase.PomodoroService
}

func NewPomodoroHandler(service *usecase.PomodoroService) *PomodoroHandler {
	return &PomodoroHandler{service: service}
}

func (h *PomodoroHandler) GetState(c *gin.Context) {
	view, err := h.service.GetState(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch timer state")
		return
	}
	utils.Success(c, view)
}

// CompletePhase advances the timer: finished work phases count a cycle
// and earn a break, finished breaks return to work.
func (h *PomodoroHandler) CompletePhase(c *gin.Context) {
	view, err := h.service.CompletePhase(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to advance timer")
		return
	}
	utils.Success(c, view)
}

func (h *PomodoroHandler) Reset(c *gin.Context) {
	view, err := h.service.Reset(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to reset timer")
		return
	}
	utils.Success(c, view)
}
