package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct {
	service *usecase.CategoriesService
}

func NewCategoriesHandler(service *usecase.CategoriesService) *CategoriesHandler {
	return &CategoriesHandler{service: service}
}

func (h *CategoriesHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch categories")
		return
	}
	utils.Success(c, gin.H{"categories": categories})
}

func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	category.UserID = c.GetString("user_id")
	if err := h.service.CreateCategory(c, &category); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, category)
}

func (h *CategoriesHandler) UpdateCategory(c *gin.Context) {
	var updates model.Category
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateCategory(c, c.Param("id"), c.GetString("user_id"), &updates); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Category updated successfully"})
}

func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.Conflict(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Category deleted successfully"})
}
