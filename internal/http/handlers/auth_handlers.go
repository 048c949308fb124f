package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// AuthHandlers handles registration, verification and login.
type AuthHandlers struct {
	accountSvc domain.AccountService
	tokenSvc   domain.TokenService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(accountSvc domain.AccountService, tokenSvc domain.TokenService) *AuthHandlers {
	return &AuthHandlers{accountSvc: accountSvc, tokenSvc: tokenSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest represents a verification request
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResendRequest represents a resend-code request
type ResendRequest struct {
	Email string `json:"email"`
}

// Register handles POST /api/auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	user, err := h.accountSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		case errors.Is(err, domain.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		case errors.Is(err, domain.ErrResendThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Verification code recently sent. Please wait before retrying."})
		case errors.Is(err, domain.ErrDelivery):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send verification email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully. Please verify your email.",
		"email":   user.Email,
	})
}

// Verify handles POST /api/auth/verify
func (h *AuthHandlers) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and code are required"})
		return
	}

	err := h.accountSvc.VerifyAccount(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and code are required"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, domain.ErrAlreadyVerified):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already verified"})
		case errors.Is(err, domain.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid verification code"})
		case errors.Is(err, domain.ErrCodeMaxAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Maximum verification attempts exceeded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error verifying user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account verified successfully"})
}

// Resend handles POST /api/auth/resend
func (h *AuthHandlers) Resend(c *gin.Context) {
	var req ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	err := h.accountSvc.ResendCode(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, domain.ErrAlreadyVerified):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already verified"})
		case errors.Is(err, domain.ErrResendThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Verification code recently sent. Please wait before retrying."})
		case errors.Is(err, domain.ErrDelivery):
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send verification email"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error resending code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// Login handles POST /api/auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	user, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnverified):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please verify your email first"})
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidCredentials):
			// One message for unknown email and wrong password.
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		}
		return
	}

	token, err := h.tokenSvc.Generate(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}
