package utils

import (
	"testing"
	"time"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := GetEnvAsInt("TEST_INT", 5); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := GetEnvAsInt("TEST_INT_MISSING", 5); got != 5 {
		t.Errorf("expected default 5, got %d", got)
	}

	t.Setenv("TEST_INT_BAD", "not-a-number")
	if got := GetEnvAsInt("TEST_INT_BAD", 5); got != 5 {
		t.Errorf("expected default on parse failure, got %d", got)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90m")
	if got := GetEnvAsDuration("TEST_DUR", time.Hour); got != 90*time.Minute {
		t.Errorf("expected 90m, got %v", got)
	}
	if got := GetEnvAsDuration("TEST_DUR_MISSING", time.Hour); got != time.Hour {
		t.Errorf("expected default 1h, got %v", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	if !GetEnvAsBool("TEST_BOOL", false) {
		t.Error("expected true")
	}
	if GetEnvAsBool("TEST_BOOL_MISSING", false) {
		t.Error("expected default false")
	}
}

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	if got := GetEnvAsString("TEST_STR", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
	if got := GetEnvAsString("TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}
