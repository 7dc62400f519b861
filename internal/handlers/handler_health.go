package handlers

import (
	"net/http"

	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/gin-gonic/gin"
)

// HealthResponse reports the service and database state.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// getHealth godoc
// @Summary Show the status of server.
// @Description Pings the database.
// @Tags health
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=HealthResponse}
// @Failure 503 {object} dto.SuccessResponse{data=HealthResponse}
// @Router /health [get]
func getHealth(hs portssvc.HealthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := hs.Check(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.SuccessResponse{
				Success: false,
				Data:    HealthResponse{Status: "degraded", Database: "unreachable"},
				Message: "Database check failed",
			})
			return
		}
		c.JSON(http.StatusOK, dto.OK(HealthResponse{Status: "ok", Database: "ok"}, "Service is healthy"))
	}
}
