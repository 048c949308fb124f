package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// UserHandlers handles profile updates.
type UserHandlers struct {
	accountSvc domain.AccountService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(accountSvc domain.AccountService) *UserHandlers {
	return &UserHandlers{accountSvc: accountSvc}
}

// UpdateProfile handles PUT /api/user/update (multipart form).
// Accepted fields: userId (required), name, currentPassword with
// newPassword, and an optional profileImage file.
func (h *UserHandlers) UpdateProfile(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User id is required"})
		return
	}

	upd := domain.ProfileUpdate{}
	if v, ok := c.GetPostForm("name"); ok {
		upd.Name = &v
	}
	if v, ok := c.GetPostForm("currentPassword"); ok {
		upd.CurrentPassword = &v
	}
	if v, ok := c.GetPostForm("newPassword"); ok {
		upd.NewPassword = &v
	}

	var image io.Reader
	imageName := ""
	if fileHeader, err := c.FormFile("profileImage"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read uploaded image"})
			return
		}
		defer f.Close()
		image = f
		imageName = fileHeader.Filename
	}

	user, err := h.accountSvc.UpdateProfile(c.Request.Context(), userID, upd, image, imageName)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is required to set a new password"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Current password is incorrect"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
