package handler

import (
	"time"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	habits   *usecase.HabitsService
	goals    *usecase.GoalsService
	todos    *repository.TodosRepo
	notes    *repository.NotesRepo
	pomodoro *repository.PomodoroRepo
	users    *repository.UsersRepo
	sessions *repository.SessionRepo
}

func NewStatsHandler(
	habits *usecase.HabitsService,
	goals *usecase.GoalsService,
	todos *repository.TodosRepo,
	notes *repository.NotesRepo,
	pomodoro *repository.PomodoroRepo,
	users *repository.UsersRepo,
	sessions *repository.SessionRepo,
) *StatsHandler {
	return &StatsHandler{
		habits:   habits,
		goals:    goals,
		todos:    todos,
		notes:    notes,
		pomodoro: pomodoro,
		users:    users,
		sessions: sessions,
	}
}

// GetUserStats assembles the dashboard snapshot across all modules.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID := c.GetString("user_id")
	now := time.Now()

	var stats model.UserStats

	today, err := h.habits.GetToday(c, userID, now)
	if err != nil {
		utils.InternalError(c, "Failed to compute habit stats")
		return
	}
	stats.HabitStats.DueToday = len(today.Due)
	stats.HabitStats.CompletedToday = len(today.Completed)
	stats.HabitStats.RemainingToday = len(today.Remaining)

	habits, err := h.habits.GetUserHabits(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}
	for _, habit := range habits {
		if habit.Active && !habit.IsArchived {
			stats.HabitStats.Active++
		}
	}

	todoTotal, todoDone, err := h.todos.CountUserTodos(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to compute todo stats")
		return
	}
	stats.TodoStats.Total = int(todoTotal)
	stats.TodoStats.Completed = int(todoDone)
	stats.TodoStats.Pending = int(todoTotal - todoDone)

	noteTotal, notePinned, err := h.notes.CountUserNotes(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to compute note stats")
		return
	}
	stats.NoteStats.Total = int(noteTotal)
	stats.NoteStats.Pinned = int(notePinned)

	goals, err := h.goals.GetUserGoals(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch goals")
		return
	}
	for _, goal := range goals {
		if goal.IsArchived {
			continue
		}
		gs := usecase.ComputeGoalStats(goal, habits, now)
		if gs.Status == model.GoalCompleted {
			stats.GoalStats.Completed++
		} else {
			stats.GoalStats.Active++
		}
	}

	if state, err := h.pomodoro.GetState(c, userID); err == nil {
		stats.PomodoroCycles = state.Cycles
	}

	if user, err := h.users.FindUser(c, userID); err == nil && user != nil {
		stats.ActivityStats.AccountCreated = user.CreatedAt
	}
	if sessions, err := h.sessions.GetUserActiveSessions(c, userID); err == nil {
		stats.ActivityStats.ActiveSessions = len(sessions)
		if len(sessions) > 0 {
			stats.ActivityStats.LastActive = sessions[0].LastActivityAt
		}
	}

	utils.Success(c, stats)
}
