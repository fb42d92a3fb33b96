package security

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	value, err := RandomString(32, "ab")
	if err != nil {
		t.Fatalf("random string failed: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected 32 characters, got %d", len(value))
	}
	for _, character := range value {
		if character != 'a' && character != 'b' {
			t.Fatalf("unexpected character %q", character)
		}
	}

	if empty, err := RandomString(0, "ab"); err != nil || empty != "" {
		t.Fatalf("expected empty string for zero length, got %q err %v", empty, err)
	}
	if _, err := RandomString(-1, "ab"); err == nil {
		t.Fatalf("expected an error for a negative length")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatalf("expected an error for an empty alphabet")
	}
}

func TestNewRecoveryCodeShape(t *testing.T) {
	code, err := NewRecoveryCode()
	if err != nil {
		t.Fatalf("recovery code failed: %v", err)
	}

	groups := strings.Split(code, "-")
	if len(groups) != 3 {
		t.Fatalf("expected three groups, got %q", code)
	}
	for _, group := range groups {
		if len(group) != 4 {
			t.Fatalf("expected 4-character groups, got %q", code)
		}
		for _, character := range group {
			if !strings.ContainsRune(recoveryCodeAlphabet, character) {
				t.Fatalf("character %q outside the recovery alphabet", character)
			}
		}
	}
}
