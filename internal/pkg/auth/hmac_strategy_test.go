package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndParseToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"missing signature", strings.Join(strings.Split(token, ".")[:2], ".")},
		{"forged user", "99" + token[strings.Index(token, "."):]},
		{"broken signature", token[:len(token)-2] + "xx"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := strategy.ParseToken(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	issuer := NewHMACStrategy("secret-a", Options{})
	verifier := NewHMACStrategy("secret-b", Options{})

	token, err := issuer.IssueToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Nanosecond})

	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// expiry has second granularity
	time.Sleep(1100 * time.Millisecond)
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("token with default ttl must be valid: %v", err)
	}
}
