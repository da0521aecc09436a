package middleware

import (
	"fmt"
	"main/model"
	"main/repository"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	maxActiveSessions = utils.GetEnvAsInt("MAX_ACTIVE_SESSIONS", 5)
	sessionLifetime   = utils.GetEnvAsDuration("SESSION_LIFETIME", 24*time.Hour)
	inactivityTimeout = utils.GetEnvAsDuration("SESSION_INACTIVITY_TIMEOUT", 48*time.Hour)
)

// SessionMiddleware resolves the session cookie, expiring inactive
// sessions and refreshing activity on the rest.
func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		session, err := sessionRepo.GetSession(ctx, sessionID)
		if err != nil || session == nil || !session.IsActive {
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > inactivityTimeout {
			session.IsActive = false
			sessionRepo.UpdateSession(ctx, session)
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		sessionRepo.UpdateSession(ctx, session)

		c.Set("session", session)
		c.Next()
	}
}

// CreateSession opens a session for a fresh login, evicting the least
// active one when the user is at the session cap.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) (*model.Session, error) {
	ctx := c.Request.Context()

	count, err := sessionRepo.CountActiveSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if count >= maxActiveSessions {
		if err := sessionRepo.EndLeastActiveSession(ctx, userID); err != nil {
			return nil, err
		}
	}

	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	now := time.Now()
	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		IPAddress:      c.ClientIP(),
		CreatedAt:      now,
		ExpiresAt:      now.Add(sessionLifetime),
		LastActivityAt: now,
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	c.SetCookie(
		"session_id",
		session.SessionID,
		int(sessionLifetime.Seconds()),
		"/",
		"",
		true,
		true,
	)

	return session, nil
}
