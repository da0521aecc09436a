package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	client *redis.Client
}

var TokenBlacklist *RedisTokenBlacklist

func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
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

	return &RedisTokenBlacklist{client: client}, nil
}

// BlacklistTokens invalidates an access/refresh token pair.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}
	return TokenBlacklist.blacklistTokens(accessToken, refreshToken)
}

func (tb *RedisTokenBlacklist) blacklistTokens(accessToken, refreshToken string) error {
	if err := tb.blacklistSingleToken(accessToken, "access"); err != nil {
		return err
	}
	if refreshToken != "" {
		if err := tb.blacklistSingleToken(refreshToken, "refresh"); err != nil {
			return err
		}
	}
	return nil
}

func (tb *RedisTokenBlacklist) blacklistSingleToken(tokenString, tokenType string) error {
	if tokenString == "" {
		return fmt.Errorf("empty %s token", tokenType)
	}

	// Parse unverified just to read the expiry; keys expire with the token.
	ttl := 24 * time.Hour
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err == nil {
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			if remaining := time.Until(exp.Time); remaining > 0 {
				ttl = remaining
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := fmt.Sprintf("blacklist:%s", tokenString)
	if err := tb.client.Set(ctx, key, tokenType, ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist %s token: %v", tokenType, err)
	}
	return nil
}

// IsTokenBlacklisted reports whether a token has been invalidated. A
// missing blacklist fails open so login keeps working without Redis.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}
	return TokenBlacklist.isTokenBlacklisted(tokenString)
}

func (tb *RedisTokenBlacklist) isTokenBlacklisted(tokenString string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := fmt.Sprintf("blacklist:%s", tokenString)
	exists, err := tb.client.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("Failed to check token blacklist: %v", err)
		return false
	}
	return exists > 0
}

func (tb *RedisTokenBlacklist) IsConnected() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return tb.client.Ping(ctx).Err() == nil
}

func (tb *RedisTokenBlacklist) Close() error {
	return tb.client.Close()
}
