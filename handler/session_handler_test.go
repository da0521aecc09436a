package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"

	"github.com/gin-gonic/gin"
)

type fakeSessionStore struct {
	owners  map[string]string
	deleted []string
}

func (s *fakeSessionStore) GetUserActiveSessions(ctx context.Context, userID string) ([]*model.Session, error) {
	return nil, nil
}

func (s *fakeSessionStore) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if s.owners[sessionID] != userID {
		return errors.New("session not found")
	}
	s.deleted = append(s.deleted, sessionID)
	return nil
}

func (s *fakeSessionStore) EndAllUserSessions(ctx context.Context, userID string) error {
	return nil
}

func endSessionRequest(store SessionStore, userID, sessionID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sessionID, nil)
	c.Params = gin.Params{{Key: "id", Value: sessionID}}
	c.Set("user_id", userID)

	NewSessionsHandler(store).EndSession(c)
	return w
}

func TestEndSessionDeletesOwnSession(t *testing.T) {
	store := &fakeSessionStore{owners: map[string]string{"sess-1": "user-1"}}

	w := endSessionRequest(store, "user-1", "sess-1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "sess-1" {
		t.Errorf("expected sess-1 deleted, got %v", store.deleted)
	}
}

func TestEndSessionRejectsForeignSession(t *testing.T) {
	store := &fakeSessionStore{owners: map[string]string{"sess-1": "user-1"}}

	w := endSessionRequest(store, "user-2", "sess-1")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, w.Code)
	}
	if len(store.deleted) != 0 {
		t.Errorf("foreign session was deleted: %v", store.deleted)
	}
}
