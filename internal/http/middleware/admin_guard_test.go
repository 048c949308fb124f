package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/mocks"
)

func newGuardedRouter(guard *AdminGuard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", guard.RequireAdmin(), func(c *gin.Context) {
		c.JSON(200, gin.H{"adminId": c.GetString("admin_id")})
	})
	return r
}

func adminAccount(id string) *domain.Account {
	return &domain.Account{ID: id, Name: "Root", Email: "root@example.com", Verified: true, IsAdmin: true}
}

func TestAdminGuard_HeaderIdentity(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	repo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Account, error) {
		if id == "root-1" {
			return adminAccount(id), nil
		}
		return nil, domain.ErrNotFound
	}
	r := newGuardedRouter(NewAdminGuard(repo, mocks.NewMockTokenService()))

	tests := []struct {
		name     string
		adminID  string
		expected int
	}{
		{"admin id passes", "root-1", http.StatusOK},
		{"missing id gets 401", "", http.StatusUnauthorized},
		{"unknown id gets 403", "ghost", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.adminID != "" {
				req.Header.Set("adminid", tt.adminID)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, w.Code)
			}
		})
	}
}

func TestAdminGuard_BearerIdentity(t *testing.T) {
	repo := mocks.NewMockAccountRepository()
	repo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Account, error) {
		if id == "root-1" {
			return adminAccount(id), nil
		}
		return nil, domain.ErrNotFound
	}
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
		if token == "good-token" {
			return &domain.TokenClaims{AccountID: "root-1", IsAdmin: true}, nil
		}
		return nil, domain.ErrUnauthorized
	}
	r := newGuardedRouter(NewAdminGuard(repo, tokenSvc))

	t.Run("valid bearer token passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid token without header fallback gets 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token falls back to adminid header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		req.Header.Set("adminid", "root-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
