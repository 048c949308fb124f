package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/http/handlers"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/http/middleware"
)

// BuildRouter wires all portal routes. uploadsDir is served under
// /uploads when non-empty (local storage backend only).
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	rh *handlers.ResearchHandlers,
	adh *handlers.AdminHandlers,
	guard *middleware.AdminGuard,
	limiter *middleware.RateLimiter,
	metrics *middleware.Metrics,
	uploadsDir string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), metrics.Collect())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	if uploadsDir != "" {
		r.Static("/uploads", uploadsDir)
	}

	auth := r.Group("/api/auth").Use(limiter.Limit())
	auth.POST("/register", ah.Register)
	auth.POST("/verify", ah.Verify)
	auth.POST("/resend", ah.Resend)
	auth.POST("/login", ah.Login)

	r.PUT("/api/user/update", uh.UpdateProfile)

	r.GET("/api/research", rh.List)
	r.POST("/api/research/upload", rh.Upload)
	r.PUT("/api/research/:id", rh.Edit)
	r.DELETE("/api/research/:id", rh.Delete)

	adm := r.Group("/api/admin").Use(guard.RequireAdmin())
	adm.GET("/stats", adh.Stats)
	adm.GET("/users", adh.ListUsers)
	adm.PUT("/users/:id/role", adh.SetRole)
	adm.DELETE("/users/:id", adh.DeleteUser)
	adm.GET("/activity", adh.Activity)

	return r
}
