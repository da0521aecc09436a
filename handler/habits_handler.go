package handler

import (
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type HabitsHandler struct {
	service *usecase.HabitsService
}

func NewHabitsHandler(service *usecase.HabitsService) *HabitsHandler {
	return &HabitsHandler{service: service}
}

func (h *HabitsHandler) GetUserHabits(c *gin.Context) {
	habits, err := h.service.GetUserHabits(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}
	utils.Success(c, gin.H{"habits": habits, "count": len(habits)})
}

func (h *HabitsHandler) GetHabit(c *gin.Context) {
	habit, err := h.service.GetHabit(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.NotFound(c, "Habit not found")
		return
	}
	utils.Success(c, habit)
}

func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	var habit model.Habit
	if err := c.ShouldBindJSON(&habit); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	habit.UserID = c.GetString("user_id")
	if err := h.service.CreateHabit(c, &habit); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, habit)
}

func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	var updates model.Habit
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateHabit(c, c.Param("id"), c.GetString("user_id"), &updates); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Habit updated successfully"})
}

func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	if err := h.service.DeleteHabit(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.NotFound(c, "Habit not found")
		return
	}
	utils.Success(c, gin.H{"message": "Habit deleted successfully"})
}

func (h *HabitsHandler) ArchiveHabit(c *gin.Context) {
	if err := h.service.ArchiveHabit(c, c.Param("id"), c.GetString("user_id"), true); err != nil {
		utils.NotFound(c, "Habit not found")
		return
	}
	utils.Success(c, gin.H{"message": "Habit archived successfully"})
}

func (h *HabitsHandler) UnarchiveHabit(c *gin.Context) {
	if err := h.service.ArchiveHabit(c, c.Param("id"), c.GetString("user_id"), false); err != nil {
		utils.NotFound(c, "Habit not found")
		return
	}
	utils.Success(c, gin.H{"message": "Habit unarchived successfully"})
}

// ToggleCompletion flips the completion entry for a date, defaulting to
// today when no date query is given.
func (h *HabitsHandler) ToggleCompletion(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	habit, completed, err := h.service.ToggleCompletion(c, c.Param("id"), c.GetString("user_id"), date)
	if err != nil {
		utils.NotFound(c, "Habit not found")
		return
	}

	utils.Success(c, gin.H{
		"habit":     habit,
		"date":      utils.ToISODate(date),
		"completed": completed,
	})
}

func (h *HabitsHandler) GetToday(c *gin.Context) {
	view, err := h.service.GetToday(c, c.GetString("user_id"), time.Now())
	if err != nil {
		utils.InternalError(c, "Failed to fetch today's habits")
		return
	}
	utils.Success(c, view)
}

func (h *HabitsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c, c.Param("id"), c.GetString("user_id"), time.Now())
	if err != nil {
		utils.NotFound(c, "Habit not found")
		return
	}
	utils.Success(c, stats)
}
