package handler

import (
	"context"

	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// SessionStore is the slice of the session repository the handler needs.
// Every operation is scoped to the authenticated user.
type SessionStore interface {
	GetUserActiveSessions(ctx context.Context, userID string) ([]*model.Session, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error
	EndAllUserSessions(ctx context.Context, userID string) error
}

type SessionsHandler struct {
	sessions SessionStore
}

func NewSessionsHandler(sessions SessionStore) *SessionsHandler {
	return &SessionsHandler{sessions: sessions}
}

func (h *SessionsHandler) GetActiveSessions(c *gin.Context) {
	sessions, err := h.sessions.GetUserActiveSessions(c, c.GetString("user_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}
	utils.Success(c, gin.H{"sessions": sessions, "count": len(sessions)})
}

// EndSession terminates one of the caller's own sessions. Session IDs
// belonging to other users fall through to not-found.
func (h *SessionsHandler) EndSession(c *gin.Context) {
	if err := h.sessions.DeleteSession(c, c.GetString("user_id"), c.Param("id")); err != nil {
		utils.NotFound(c, "Session not found")
		return
	}
	utils.Success(c, gin.H{"message": "Session ended"})
}

// LogoutAllSessions deactivates every session for the user, including
// the current one.
func (h *SessionsHandler) LogoutAllSessions(c *gin.Context) {
	if err := h.sessions.EndAllUserSessions(c, c.GetString("user_id")); err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}
	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "All sessions ended"})
}
