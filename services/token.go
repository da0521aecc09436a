package services

import (
	"errors"
	"main/utils"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "lifedesk"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

type TokenClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived access token for a user.
func GenerateAccessToken(userID string) (string, error) {
	return generateToken(userID, "access", time.Duration(utils.JWTExpirationTime)*time.Second)
}

// GenerateRefreshToken signs a long-lived refresh token for a user.
func GenerateRefreshToken(userID string) (string, error) {
	return generateToken(userID, "refresh", time.Duration(utils.RefreshTokenExpirationTime)*time.Second)
}

func generateToken(userID, tokenType string, lifetime time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("user ID is required")
	}

	now := time.Now()
	claims := TokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ValidateToken parses and verifies a token of the expected type.
func ValidateToken(tokenString, expectedType string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(utils.JWTSecretKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expectedType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
