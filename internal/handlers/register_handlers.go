package handlers

import (
	"net/http"
	"time"

	"github.com/khamsone/bizbooks_backend/cmd/docs"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/middleware"
	"github.com/khamsone/bizbooks_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	registerHomeRoutes(r)

	setupAPIV1Routes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.ActorMiddleware())

	// Per-vertical book-keeping surfaces
	vertical := v1.Group("/verticals/:vertical")
	registerLedgerRoutes(vertical, services.Ledger)
	registerCashRoutes(vertical, services.Cash)
	registerStockRoutes(vertical, services.Stock)

	// Cross-vertical surfaces
	registerTourRoutes(v1, services.Tour)
	registerCalculationRoutes(v1, services.Calculation)
	registerCurrencyRoutes(v1, services.Currency)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// verticalFromPath resolves and validates the :vertical path parameter.
// Writes the 400 response itself and returns false on an unknown vertical.
func verticalFromPath(c *gin.Context) (domain.Vertical, bool) {
	vertical := domain.Vertical(c.Param("vertical"))
	if !vertical.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown business vertical: " + c.Param("vertical")})
		return "", false
	}
	return vertical, true
}

// monthFromQuery parses the optional ?month=YYYY-MM query parameter,
// defaulting to the current month.
func monthFromQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now().UTC(), true
	}
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
		return time.Time{}, false
	}
	return month, true
}
