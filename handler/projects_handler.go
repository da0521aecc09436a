package handler

import (
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ProjectsHandler struct {
	service *usecase.ProjectsService
}

func NewProjectsHandler(service *usecase.ProjectsService) *ProjectsHandler {
	return &ProjectsHandler{service: service}
}

func (h *ProjectsHandler) GetUserProjects(c *gin.Context) {
	projects, err := h.service.GetUserProjects(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch projects")
		return
	}
	utils.Success(c, gin.H{"projects": projects, "count": len(projects)})
}

func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	project.UserID = c.GetString("user_id")
	if err := h.service.CreateProject(c, &project); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, project)
}

func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	var updates model.Project
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateProject(c, c.Param("id"), c.GetString("user_id"), &updates); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Project updated successfully"})
}

func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	if err := h.service.DeleteProject(c, c.Param("id"), c.GetString("user_id")); err != nil {
		utils.NotFound(c, "Project not found")
		return
	}
	utils.Success(c, gin.H{"message": "Project deleted successfully"})
}

func (h *ProjectsHandler) AddTask(c *gin.Context) {
	var task model.ProjectTask
	if err := c.ShouldBindJSON(&task); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.AddTask(c, c.Param("id"), c.GetString("user_id"), &task)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, created)
}

func (h *ProjectsHandler) UpdateTask(c *gin.Context) {
	var updates model.ProjectTask
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateTask(c, c.Param("id"), c.GetString("user_id"), c.Param("taskId"), &updates); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"message": "Task updated successfully"})
}

// AddTimeEntry records tracked time against a project task.
func (h *ProjectsHandler) AddTimeEntry(c *gin.Context) {
	var entry model.TimeEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	entry.TaskID = c.Param("taskId")

	if entry.Duration == 0 && !entry.StartTime.IsZero() && !entry.EndTime.IsZero() {
		entry.Duration = int64(entry.EndTime.Sub(entry.StartTime).Seconds())
	}

	if err := h.service.AddTimeEntry(c, c.Param("id"), c.GetString("user_id"), entry); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, gin.H{"message": "Time entry recorded"})
}

// GetTimeReport aggregates tracked time over an optional start/end window.
func (h *ProjectsHandler) GetTimeReport(c *gin.Context) {
	var start, end time.Time
	var err error

	if raw := c.Query("start"); raw != "" {
		if start, err = time.Parse("2006-01-02", raw); err != nil {
			utils.BadRequest(c, "Invalid start date, expected YYYY-MM-DD")
			return
		}
	}
	if raw := c.Query("end"); raw != "" {
		if end, err = time.Parse("2006-01-02", raw); err != nil {
			utils.BadRequest(c, "Invalid end date, expected YYYY-MM-DD")
			return
		}
		end = end.Add(24 * time.Hour)
	}

	report, err := h.service.GetTimeReport(c, c.Param("id"), c.GetString("user_id"), start, end)
	if err != nil {
		utils.NotFound(c, "Project not found")
		return
	}
	utils.Success(c, report)
}
