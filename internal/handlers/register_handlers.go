package handlers

import (
	"net/http"

	"github.com/HaroonAzizi/hadaf-accounting/cmd/docs"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/HaroonAzizi/hadaf-accounting/internal/platform/config"
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
	setupAPIRoutes(r, services)
	setupSwaggerRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Fail("NOT_FOUND", "Route not found", nil))
	})
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(r *gin.Engine, service *portssvc.ServiceContainer) {
	api := r.Group("/api")

	api.GET("/health", getHealth(service.Health))
	registerCategoryRoutes(api, service.Category, service.Reporting)
	registerTransactionRoutes(api, service.Transaction)
	registerRecurringRoutes(api, service.Recurring, service.Reporting)
	registerDashboardRoutes(api, service.Reporting)
	registerExportRoutes(api, service.Export)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
