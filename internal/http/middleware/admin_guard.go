package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/domain"
)

// AdminGuard gates the administrative routes. The caller identifies
// itself with a Bearer session token or, for compatibility with older
// clients, the bare `adminid` header. Either way the claimed account
// is loaded and must carry the admin flag; a missing or non-admin
// account gets the same 403 body, so responses reveal nothing about
// which ids exist.
type AdminGuard struct {
	accountRepo domain.AccountRepository
	tokenSvc    domain.TokenService
}

// NewAdminGuard creates the admin authorization middleware.
func NewAdminGuard(accountRepo domain.AccountRepository, tokenSvc domain.TokenService) *AdminGuard {
	return &AdminGuard{accountRepo: accountRepo, tokenSvc: tokenSvc}
}

// RequireAdmin returns the guard as a gin middleware. On success the
// acting admin's id is stored in the context under "admin_id".
func (g *AdminGuard) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimedID := g.claimedID(c)
		if claimedID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		account, err := g.accountRepo.FindByID(c.Request.Context(), claimedID)
		if err != nil || !account.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		c.Set("admin_id", account.ID)
		c.Next()
	}
}

func (g *AdminGuard) claimedID(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := g.tokenSvc.Validate(parts[1]); err == nil {
				return claims.AccountID
			}
		}
	}
	return c.GetHeader("adminid")
}
