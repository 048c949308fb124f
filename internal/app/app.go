package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/config"
	httpx "github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/http"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/http/handlers"
	"github.com/muhammadsohaib-cs/DeepTech-web-portal/internal/http/middleware"
)

// Run wires the portal together and serves it until the process exits.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	authH := handlers.NewAuthHandlers(container.AccountSvc, container.TokenSvc)
	userH := handlers.NewUserHandlers(container.AccountSvc)
	researchH := handlers.NewResearchHandlers(container.PaperSvc)
	adminH := handlers.NewAdminHandlers(
		container.AccountSvc,
		container.AccountRepo,
		container.PaperRepo,
		container.ActivityRepo,
		container.Recorder,
	)

	guard := middleware.NewAdminGuard(container.AccountRepo, container.TokenSvc)
	limiter := middleware.NewRateLimiter(cfg.AuthPerMinute, cfg.AuthBurst)
	defer limiter.Stop()
	metrics := middleware.NewMetrics()

	uploadsDir := ""
	if cfg.StorageBackend == "local" || cfg.StorageBackend == "" {
		uploadsDir = cfg.LocalDir
	}

	r := httpx.BuildRouter(authH, userH, researchH, adminH, guard, limiter, metrics, uploadsDir)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
