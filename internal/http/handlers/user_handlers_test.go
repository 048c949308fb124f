package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/mocks"
)

func newUserRouter(accountSvc domain.AccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/api/user/update", NewUserHandlers(accountSvc).UpdateProfile)
	return r
}

func TestUserHandlers_UpdateProfile(t *testing.T) {
	t.Run("userId is required", func(t *testing.T) {
		r := newUserRouter(mocks.NewMockAccountService())

		body, contentType := multipartBody(t, map[string]string{"name": "Grace"}, "", "")
		req := httptest.NewRequest(http.MethodPut, "/api/user/update", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards supplied fields only", func(t *testing.T) {
		accountSvc := mocks.NewMockAccountService()
		var gotUpd domain.ProfileUpdate
		accountSvc.UpdateProfileFunc = func(ctx context.Context, accountID string, upd domain.ProfileUpdate, image io.Reader, imageName string) (*domain.PublicUser, error) {
			gotUpd = upd
			return &domain.PublicUser{ID: accountID, Name: *upd.Name}, nil
		}
		r := newUserRouter(accountSvc)

		body, contentType := multipartBody(t, map[string]string{"userId": "acc-1", "name": "Grace Hopper"}, "", "")
		req := httptest.NewRequest(http.MethodPut, "/api/user/update", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if gotUpd.Name == nil || *gotUpd.Name != "Grace Hopper" {
			t.Errorf("expected name in update, got %+v", gotUpd)
		}
		if gotUpd.NewPassword != nil || gotUpd.CurrentPassword != nil {
			t.Error("omitted password fields must stay nil")
		}
	})

	t.Run("profile image is forwarded", func(t *testing.T) {
		accountSvc := mocks.NewMockAccountService()
		var gotName string
		accountSvc.UpdateProfileFunc = func(ctx context.Context, accountID string, upd domain.ProfileUpdate, image io.Reader, imageName string) (*domain.PublicUser, error) {
			gotName = imageName
			if image == nil {
				t.Error("expected image reader")
			}
			return &domain.PublicUser{ID: accountID}, nil
		}
		r := newUserRouter(accountSvc)

		body, contentType := multipartBody(t, map[string]string{"userId": "acc-1"}, "profileImage", "avatar.png")
		req := httptest.NewRequest(http.MethodPut, "/api/user/update", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotName != "avatar.png" {
			t.Errorf("expected image filename, got %q", gotName)
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		accountSvc := mocks.NewMockAccountService()
		accountSvc.UpdateProfileFunc = func(ctx context.Context, accountID string, upd domain.ProfileUpdate, image io.Reader, imageName string) (*domain.PublicUser, error) {
			return nil, domain.ErrInvalidCredentials
		}
		r := newUserRouter(accountSvc)

		body, contentType := multipartBody(t, map[string]string{
			"userId": "acc-1", "currentPassword": "wrong", "newPassword": "next",
		}, "", "")
		req := httptest.NewRequest(http.MethodPut, "/api/user/update", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var out map[string]string
		json.Unmarshal(w.Body.Bytes(), &out)
		if out["message"] != "Current password is incorrect" {
			t.Errorf("unexpected message %q", out["message"])
		}
	})
}
