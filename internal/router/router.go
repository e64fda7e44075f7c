package router

import (
	"github.com/gin-gonic/gin"

	"github.com/CorporateFormFiling/Florida-Renewals/internal/config"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/handler"
	"github.com/CorporateFormFiling/Florida-Renewals/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	entityH *handler.EntityHandler,
	prefillH *handler.PrefillHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public registry routes
	entities := v1.Group("/entities")
	entities.GET("/search", entityH.Search)
	entities.GET("/:doc", entityH.GetByDoc)
	entities.GET("/:doc/export", entityH.Export)

	// Prefill redemption is public: possession of the token is the credential.
	v1.GET("/prefill", prefillH.Redeem)

	// Admin routes - prefill link issuance
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKeyHash))
	admin.POST("/prefill-links", prefillH.IssueLink)

	return r
}
