package services

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.Contains(hash, "$") {
		t.Errorf("hash %q missing salt separator", hash)
	}

	match, err := VerifyPassword(hash, "secret1!")
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !match {
		t.Error("correct password did not verify")
	}

	match, err = VerifyPassword(hash, "wrong1!!")
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if match {
		t.Error("wrong password verified")
	}
}

func TestHashPasswordRejectsWeak(t *testing.T) {
	for _, password := range []string{"", "short", "nonumbers!", "nospecial1"} {
		if _, err := HashPassword(password); err == nil {
			t.Errorf("HashPassword(%q) accepted a weak password", password)
		}
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("secret1!")
	if err != nil {
		t.Fatal(err)
	}
	b, err := HashPassword("secret1!")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same password share a salt")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("not-a-valid-hash", "secret1!"); err == nil {
		t.Error("expected error for malformed stored hash")
	}
}
