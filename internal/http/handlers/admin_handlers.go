package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// activityPageSize bounds the admin activity listing.
const activityPageSize = 200

// AdminHandlers handles the admin console endpoints. All of them sit
// behind the admin guard; the acting admin's id is taken from the
// context it sets.
type AdminHandlers struct {
	accountSvc   domain.AccountService
	accountRepo  domain.AccountRepository
	paperRepo    domain.PaperRepository
	activityRepo domain.ActivityRepository
	recorder     domain.ActivityRecorder
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(
	accountSvc domain.AccountService,
	accountRepo domain.AccountRepository,
	paperRepo domain.PaperRepository,
	activityRepo domain.ActivityRepository,
	recorder domain.ActivityRecorder,
) *AdminHandlers {
	return &AdminHandlers{
		accountSvc:   accountSvc,
		accountRepo:  accountRepo,
		paperRepo:    paperRepo,
		activityRepo: activityRepo,
		recorder:     recorder,
	}
}

// RoleRequest represents a role change request
type RoleRequest struct {
	IsAdmin *bool `json:"isAdmin"`
}

// Stats handles GET /api/admin/stats
func (h *AdminHandlers) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	total, verified, admins, err := h.accountRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching stats"})
		return
	}
	papers, err := h.paperRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching stats"})
		return
	}
	activity, err := h.activityRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching stats"})
		return
	}

	c.JSON(http.StatusOK, domain.Stats{
		TotalUsers:    total,
		VerifiedUsers: verified,
		AdminUsers:    admins,
		TotalPapers:   papers,
		TotalActivity: activity,
	})
}

// ListUsers handles GET /api/admin/users. Accounts are sanitized to
// the safe projection before leaving the server.
func (h *AdminHandlers) ListUsers(c *gin.Context) {
	accounts, err := h.accountRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users"})
		return
	}

	users := make([]*domain.PublicUser, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, a.Public())
	}
	c.JSON(http.StatusOK, users)
}

// SetRole handles PUT /api/admin/users/:id/role
func (h *AdminHandlers) SetRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAdmin == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "isAdmin is required"})
		return
	}

	targetID := c.Param("id")
	user, err := h.accountSvc.SetAdminRole(c.Request.Context(), targetID, *req.IsAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same body as the guard's rejection: admin endpoints do
			// not confirm which ids exist.
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating role"})
		return
	}

	h.recorder.Record("Role Changed", c.GetString("admin_id"),
		fmt.Sprintf("target=%s isAdmin=%t", targetID, *req.IsAdmin))
	c.JSON(http.StatusOK, gin.H{
		"message": "Role updated successfully",
		"user":    user,
	})
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *AdminHandlers) DeleteUser(c *gin.Context) {
	targetID := c.Param("id")

	if err := h.accountSvc.DeleteAccount(c.Request.Context(), targetID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user"})
		return
	}

	h.recorder.Record("User Deleted", c.GetString("admin_id"), fmt.Sprintf("target=%s", targetID))
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// Activity handles GET /api/admin/activity. Entries are enriched with
// the acting user's current name and email where the account still
// exists.
func (h *AdminHandlers) Activity(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.activityRepo.List(ctx, activityPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching activity"})
		return
	}

	cache := map[string]*domain.Account{}
	enriched := make([]*domain.EnrichedActivityEntry, 0, len(entries))
	for _, e := range entries {
		out := &domain.EnrichedActivityEntry{ActivityEntry: *e}
		if e.UserID != "" {
			acct, ok := cache[e.UserID]
			if !ok {
				acct, _ = h.accountRepo.FindByID(ctx, e.UserID)
				cache[e.UserID] = acct
			}
			if acct != nil {
				out.UserName = acct.Name
				out.UserEmail = acct.Email
			}
		}
		enriched = append(enriched, out)
	}

	c.JSON(http.StatusOK, enriched)
}
