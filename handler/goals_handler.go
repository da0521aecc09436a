package handler

import (
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type GoalsHandler struct {
	service *usecase.GoalsService
}

func NewGoalsHandler(service *usecase.GoalsService) *GoalsHandler {
	return &GoalsHandler{service: service}
}

func (h *GoalsHandler) GetUserGoals(c *gin.Context) {
	goals, err := h.service.GetUserGoals(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch goals")
		return
	}
	utils.Success(c, gin.H{"goals": goals, "count": len(goals)})
}

func (h *GoalsHandler) GetGoal(c *gin.Context) {
	goal, err := h.service.GetGoal(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, goal)
}

func (h *GoalsHandler) CreateGoal(c *gin.Context) {
	var goal model.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	goal.UserID = c.GetString("user_id")
	if err := h.service.CreateGoal(c, &goal); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, goal)
}

func (h *GoalsHandler) UpdateGoal(c *gin.Context) {
	var updates model.Goal
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateGoal(c, c.Param("id"), c.GetString("user_id"), &updates); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Goal updated successfully"})
}

func (h *GoalsHandler) ArchiveGoal(c *gin.Context) {
	if err := h.service.ArchiveGoal(c, c.Param("id"), c.GetString("user_id"), true); err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, gin.H{"message": "Goal archived successfully"})
}

func (h *GoalsHandler) DeleteGoal(c *gin.Context) {
	if err := h.service.DeleteGoal(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, gin.H{"message": "Goal deleted successfully"})
}

// GetGoalStats measures progress against the goal's target as of today.
func (h *GoalsHandler) GetGoalStats(c *gin.Context) {
	stats, err := h.service.GetGoalStats(c, c.Param("id"), c.GetString("user_id"), time.Now())
	if err != nil {
		utils.NotFound(c, "Goal not found")
		return
	}
	utils.Success(c, stats)
}

func (h *GoalsHandler) AddItem(c *gin.Context) {
	var req struct {
		ItemID string  `json:"item_id" binding:"required"`
		Weight float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.AddItem(c, c.Param("id"), c.GetString("user_id"), req.ItemID, req.Weight); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Item added to goal"})
}

func (h *GoalsHandler) RemoveItem(c *gin.Context) {
	if err := h.service.RemoveItem(c, c.Param("id"), c.GetString("user_id"), c.Param("itemId")); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Item removed from goal"})
}

func (h *GoalsHandler) UpdateItemWeight(c *gin.Context) {
	var req struct {
		Weight float64 `json:"weight" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateItemWeight(c, c.Param("id"), c.GetString("user_id"), c.Param("itemId"), req.Weight); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Item weight updated"})
}
