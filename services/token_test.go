package services

import (
	"testing"

	"main/utils"
)

func initTestKeys(t *testing.T) {
	t.Helper()
	utils.JWTSecretKey = "test_secret_key"
	utils.JWTExpirationTime = 3600
	utils.RefreshTokenExpirationTime = 604800
}

func TestAccessTokenRoundTrip(t *testing.T) {
	initTestKeys(t)

	token, err := GenerateAccessToken("user-1")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := ValidateToken(token, "access")
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	initTestKeys(t)

	token, err := GenerateRefreshToken("user-1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	if _, err := ValidateToken(token, "access"); err == nil {
		t.Error("refresh token accepted as access token")
	}
	if _, err := ValidateToken(token, "refresh"); err != nil {
		t.Errorf("refresh token rejected as refresh: %v", err)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	initTestKeys(t)

	token, err := GenerateAccessToken("user-1")
	if err != nil {
		t.Fatal(err)
	}

	utils.JWTSecretKey = "a_different_key"
	if _, err := ValidateToken(token, "access"); err == nil {
		t.Error("token signed with old key validated against new key")
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	initTestKeys(t)

	if _, err := GenerateAccessToken(""); err == nil {
		t.Error("expected error for empty user ID")
	}
}
