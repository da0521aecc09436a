package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TodosHandler struct {
	service *usecase.TodosService
}

func NewTodosHandler(service *usecase.TodosService) *TodosHandler {
	return &TodosHandler{service: service}
}

func (h *TodosHandler) GetUserTodos(c *gin.Context) {
	todos, err := h.service.GetUserTodos(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch todos")
		return
	}
	utils.Success(c, gin.H{"todos": todos, "count": len(todos)})
}

func (h *TodosHandler) CreateTodo(c *gin.Context) {
	var todo model.Todo
	if err := c.ShouldBindJSON(&todo); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	todo.UserID = c.GetString("user_id")
	if err := h.service.CreateTodo(c, &todo); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, todo)
}

func (h *TodosHandler) UpdateTodo(c *gin.Context) {
	var updates model.Todo
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateTodo(c, c.Param("id"), c.GetString("user_id"), &updates); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Todo updated successfully"})
}

func (h *TodosHandler) ToggleComplete(c *gin.Context) {
	todo, err := h.service.ToggleComplete(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.NotFound(c, "Todo not found")
		return
	}
	utils.Success(c, todo)
}

func (h *TodosHandler) DeleteTodo(c *gin.Context) {
	if err := h.service.DeleteTodo(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.NotFound(c, "Todo not found")
		return
	}
	utils.Success(c, gin.H{"message": "Todo deleted successfully"})
}
