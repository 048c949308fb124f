package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

func newVerificationFixture(t *testing.T, cfg VerificationConfig) (domain.VerificationService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewVerificationService(client, cfg), mr
}

func TestVerificationServiceImpl_NewCode(t *testing.T) {
	cfg := VerificationConfig{TTL: 15 * time.Minute, MaxAttempts: 5, ResendWindow: time.Minute}
	svc, mr := newVerificationFixture(t, cfg)
	ctx := context.Background()

	code, err := svc.NewCode(ctx, "grace@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^\d{6}$`).MatchString(code) {
		t.Errorf("expected a 6-digit code, got %q", code)
	}
	if code[0] == '0' {
		t.Errorf("code must be in 100000-999999, got %q", code)
	}

	// A second request inside the resend window is throttled.
	if _, err := svc.NewCode(ctx, "grace@example.com"); !errors.Is(err, domain.ErrResendThrottled) {
		t.Fatalf("expected ErrResendThrottled, got %v", err)
	}

	// After the window passes, a fresh code is allowed.
	mr.FastForward(time.Minute + time.Second)
	if _, err := svc.NewCode(ctx, "grace@example.com"); err != nil {
		t.Fatalf("expected fresh code after window, got %v", err)
	}

	// Other addresses are throttled independently.
	if _, err := svc.NewCode(ctx, "other@example.com"); err != nil {
		t.Fatalf("throttle must be per email, got %v", err)
	}
}

func TestVerificationServiceImpl_RecordAttempt(t *testing.T) {
	cfg := VerificationConfig{TTL: 15 * time.Minute, MaxAttempts: 3, ResendWindow: time.Minute}
	svc, _ := newVerificationFixture(t, cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.RecordAttempt(ctx, "grace@example.com"); err != nil {
			t.Fatalf("attempt %d should be allowed: %v", i+1, err)
		}
	}
	if err := svc.RecordAttempt(ctx, "grace@example.com"); !errors.Is(err, domain.ErrCodeMaxAttempts) {
		t.Fatalf("expected ErrCodeMaxAttempts on attempt 4, got %v", err)
	}
}

func TestVerificationServiceImpl_NewCodeResetsAttempts(t *testing.T) {
	cfg := VerificationConfig{TTL: 15 * time.Minute, MaxAttempts: 2, ResendWindow: time.Minute}
	svc, mr := newVerificationFixture(t, cfg)
	ctx := context.Background()

	svc.RecordAttempt(ctx, "grace@example.com")
	svc.RecordAttempt(ctx, "grace@example.com")
	if err := svc.RecordAttempt(ctx, "grace@example.com"); !errors.Is(err, domain.ErrCodeMaxAttempts) {
		t.Fatalf("expected exhausted attempts, got %v", err)
	}

	mr.FastForward(time.Minute + time.Second)
	if _, err := svc.NewCode(ctx, "grace@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.RecordAttempt(ctx, "grace@example.com"); err != nil {
		t.Fatalf("a fresh code must reset the counter, got %v", err)
	}
}

func TestVerificationServiceImpl_ClearAttempts(t *testing.T) {
	cfg := VerificationConfig{TTL: 15 * time.Minute, MaxAttempts: 1, ResendWindow: time.Minute}
	svc, _ := newVerificationFixture(t, cfg)
	ctx := context.Background()

	svc.RecordAttempt(ctx, "grace@example.com")
	if err := svc.RecordAttempt(ctx, "grace@example.com"); !errors.Is(err, domain.ErrCodeMaxAttempts) {
		t.Fatalf("expected exhausted attempts, got %v", err)
	}

	svc.ClearAttempts(ctx, "grace@example.com")
	if err := svc.RecordAttempt(ctx, "grace@example.com"); err != nil {
		t.Fatalf("cleared counter must allow attempts again, got %v", err)
	}
}
