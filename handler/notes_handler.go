package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	service *usecase.NotesService
}

func NewNotesHandler(service *usecase.NotesService) *NotesHandler {
	return &NotesHandler{service: service}
}

func (h *NotesHandler) GetUserNotes(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"
	notes, err := h.service.GetUserNotes(c, c.GetString("user_id"), includeArchived)
	if err != nil {
		utils.InternalError(c, "Failed to fetch notes")
		return
	}
	utils.Success(c, gin.H{"notes": notes, "count": len(notes)})
}

func (h *NotesHandler) SearchNotes(c *gin.Context) {
	notes, err := h.service.SearchNotes(c, c.GetString("user_id"), c.Query("q"))
	if err != nil {
		utils.InternalError(c, "Search failed")
		return
	}
	utils.Success(c, gin.H{"notes": notes, "count": len(notes)})
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	var note model.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note.UserID = c.GetString("user_id")
	if err := h.service.CreateNote(c, &note); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, note)
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	var updates model.Note
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateNote(c, c.Param("id"), c.GetString("user_id"), &updates); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Note updated successfully"})
}

func (h *NotesHandler) TogglePin(c *gin.Context) {
	note, err := h.service.TogglePin(c, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.NotFound(c, "Note not found")
		return
	}
	utils.Success(c, note)
}

func (h *NotesHandler) ArchiveNote(c *gin.Context) {
	if err := h.service.ArchiveNote(c, c.Param("id"), c.GetString("user_id"), true); err != nil {
		utils.NotFound(c, "Note not found")
		return
	}
	utils.Success(c, gin.H{"message": "Note archived successfully"})
}

func (h *NotesHandler) UnarchiveNote(c *gin.Context) {
	if err := h.service.ArchiveNote(c, c.Param("id"), c.GetString("user_id"), false); err != nil {
		utils.NotFound(c, "Note not found")
		return
	}
	utils.Success(c, gin.H{"message": "Note unarchived successfully"})
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	if err := h.service.DeleteNote(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.NotFound(c, "Note not found")
		return
	}
	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}
