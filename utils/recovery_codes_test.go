package utils

import "testing"

func TestGenerateRecoveryCodesFormat(t *testing.T) {
	codes, err := GenerateRecoveryCodes()
	if err != nil {
		t.Fatalf("GenerateRecoveryCodes() error = %v", err)
	}
	if len(codes) != NumRecoveryCodes {
		t.Fatalf("got %d codes, want %d", len(codes), NumRecoveryCodes)
	}

	seen := map[string]bool{}
	for _, code := range codes {
		if len(code) != RecoveryCodeLength+1 || code[4] != '-' {
			t.Errorf("code %q not in XXXX-XXXX format", code)
		}
		if seen[code] {
			t.Errorf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestHashRecoveryCodesMatchesUserInput(t *testing.T) {
	hashed := HashRecoveryCodes([]string{"AB12-CD34"})

	// Users may type the code with or without the hyphen.
	for _, input := range []string{"AB12-CD34", "ab12cd34", "AB12CD34"} {
		if HashString(NormalizeRecoveryCode(input)) != hashed[0] {
			t.Errorf("input %q does not match stored hash", input)
		}
	}
}
