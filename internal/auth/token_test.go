package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), time.Hour)
	userID := "user-123"

	tok, err := svc.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := NewTokenService([]byte("secret"), time.Hour)

	svc.WithClock(func() time.Time { return now })
	tok, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Advance the clock past expiry instead of sleeping.
	svc.WithClock(func() time.Time { return now.Add(2 * time.Hour) })
	_, err = svc.Verify(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WithinWindowAfterClockAdvance(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := NewTokenService([]byte("secret"), time.Hour)
	svc.WithClock(func() time.Time { return now })

	tok, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	svc.WithClock(func() time.Time { return now.Add(59 * time.Minute) })
	got, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != "u1" {
		t.Fatalf("userID mismatch: got %q", got)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService([]byte("right-secret"), time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewTokenService([]byte("k"), time.Hour).Verify("not.a.jwt")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestNewTokenService_CapsTTL(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), 48*time.Hour)
	if svc.ttl != MaxTokenTTL {
		t.Fatalf("expected ttl capped at %s, got %s", MaxTokenTTL, svc.ttl)
	}
}
