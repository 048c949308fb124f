package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// JWTServiceImpl implements domain.TokenService. Tokens carry the
// account id and admin claim and expire together with the client-held
// session record.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}

// NewJWTService creates a new session token service.
func NewJWTService(secretKey, issuer string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		ttl:       ttl,
	}
}

// generateJTI creates a unique JWT ID.
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// Generate implements domain.TokenService
func (j *JWTServiceImpl) Generate(accountID string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   accountID,
		"admin": isAdmin,
		"iss":   j.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(j.ttl).Unix(),
		"jti":   j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domain.ErrUnauthorized
	}
	isAdmin, _ := claims["admin"].(bool)
	iat, _ := claims["iat"].(float64)
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	return &domain.TokenClaims{
		AccountID: sub,
		IsAdmin:   isAdmin,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
