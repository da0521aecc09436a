package services

import (
	"context"
	"encoding/json"
	"fmt"
	"main/model"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type SessionCache struct {
	client    *redis.Client
	cacheLock sync.RWMutex
}

var GlobalSessionCache *SessionCache

func NewSessionCache(redisURL string) (*SessionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &SessionCache{client: client}, nil
}

// SetSession caches a session with a TTL matching its expiry.
func (sc *SessionCache) SetSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("cannot cache nil session")
	}

	sc.cacheLock.Lock()
	defer sc.cacheLock.Unlock()

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session has already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %v", err)
	}

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", session.SessionID)
	if err := sc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %v", err)
	}
	return nil
}

// GetSession retrieves a cached session. A nil result with nil error is
// a cache miss.
func (sc *SessionCache) GetSession(sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	sc.cacheLock.RLock()
	defer sc.cacheLock.RUnlock()

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", sessionID)

	data, err := sc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %v", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %v", err)
	}

	if time.Now().After(session.ExpiresAt) {
		sc.DeleteSession(sessionID)
		return nil, nil
	}
	return &session, nil
}

func (sc *SessionCache) DeleteSession(sessionID string) error {
	ctx := context.Background()
	key := fmt.Sprintf("session:%s", sessionID)
	if err := sc.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cached session: %v", err)
	}
	return nil
}

// CacheUserSessions stores a user's active session list.
func (sc *SessionCache) CacheUserSessions(userID string, sessions []*model.Session) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	sc.cacheLock.Lock()
	defer sc.cacheLock.Unlock()

	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %v", err)
	}

	ctx := context.Background()
	key := fmt.Sprintf("user_sessions:%s", userID)
	if err := sc.client.Set(ctx, key, data, 15*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to cache user sessions: %v", err)
	}
	return nil
}

// GetUserSessions returns the cached session list and whether it was found.
func (sc *SessionCache) GetUserSessions(userID string) ([]*model.Session, bool, error) {
	sc.cacheLock.RLock()
	defer sc.cacheLock.RUnlock()

	ctx := context.Background()
	key := fmt.Sprintf("user_sessions:%s", userID)

	data, err := sc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user sessions from cache: %v", err)
	}

	var sessions []*model.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal sessions: %v", err)
	}
	return sessions, true, nil
}

func (sc *SessionCache) InvalidateUserSessions(userID string) error {
	ctx := context.Background()
	key := fmt.Sprintf("user_sessions:%s", userID)
	if err := sc.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate user sessions: %v", err)
	}
	return nil
}

func (sc *SessionCache) IsConnected() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return sc.client.Ping(ctx).Err() == nil
}

func (sc *SessionCache) Close() error {
	return sc.client.Close()
}
