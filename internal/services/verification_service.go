package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// VerificationServiceImpl implements domain.VerificationService. The
// canonical code lives on the account record; redis only carries the
// resend throttle and the bounded attempt counter, both with TTLs.
type VerificationServiceImpl struct {
	redisClient *redis.Client
	config      VerificationConfig
}

type VerificationConfig struct {
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewVerificationService creates a redis-backed verification service.
func NewVerificationService(redisClient *redis.Client, config VerificationConfig) domain.VerificationService {
	return &VerificationServiceImpl{
		redisClient: redisClient,
		config:      config,
	}
}

// NewCode implements domain.VerificationService. It enforces the
// resend window and resets the attempt counter for the email.
func (s *VerificationServiceImpl) NewCode(ctx context.Context, email string) (string, error) {
	resendKey := fmt.Sprintf("verify:res:%s", email)
	attemptsKey := fmt.Sprintf("verify:att:%s", email)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to check resend throttle: %w", err)
	}
	if ttl > 0 {
		return "", fmt.Errorf("%w: retry in %d seconds", domain.ErrResendThrottled, int64(ttl.Seconds()))
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to reset attempts counter: %w", err)
	}
	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return "", fmt.Errorf("failed to set resend throttle: %w", err)
	}

	return code, nil
}

// RecordAttempt implements domain.VerificationService. It counts one
// verification attempt and fails once the cap is exceeded.
func (s *VerificationServiceImpl) RecordAttempt(ctx context.Context, email string) error {
	attemptsKey := fmt.Sprintf("verify:att:%s", email)

	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}
	// A fresh key has no TTL; bound it so abandoned counters expire.
	if attempts == 1 {
		s.redisClient.Expire(ctx, attemptsKey, s.config.TTL)
	}

	if attempts > int64(s.config.MaxAttempts) {
		return domain.ErrCodeMaxAttempts
	}
	return nil
}

// ClearAttempts implements domain.VerificationService
func (s *VerificationServiceImpl) ClearAttempts(ctx context.Context, email string) {
	attemptsKey := fmt.Sprintf("verify:att:%s", email)
	resendKey := fmt.Sprintf("verify:res:%s", email)
	s.redisClient.Del(ctx, attemptsKey, resendKey)
}

// generateCode returns a 6-digit decimal code in 100000-999999,
// generated from crypto/rand. Rendered as text so the width is fixed.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
