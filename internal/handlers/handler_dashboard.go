package handlers

import (
	"net/http"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the reporting endpoints.
type dashboardHandler struct {
	reportingService portssvc.ReportingService
}

func registerDashboardRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService) {
	h := &dashboardHandler{reportingService: rs}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/follow-ups", h.getFollowUps)
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Per-currency totals of done entries, by category and by month
// @Tags dashboard
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} dto.SuccessResponse{data=dto.DashboardSummaryResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	start, end, err := dateRange(params)
	if err != nil {
		genericErrors.respond(c, err)
		return
	}

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), start, end)
	if err != nil {
		genericErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToDashboardSummaryResponse(summary), "Dashboard summary retrieved"))
}

// getFollowUps godoc
// @Summary Follow-up queue
// @Description Pending entries, oldest first. type defaults to "in"; "all" includes both directions.
// @Tags dashboard
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param type query string false "in, out or all" default(in)
// @Param recurringOnly query bool false "Only installments of recurring templates"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.TransactionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /dashboard/follow-ups [get]
func (h *dashboardHandler) getFollowUps(c *gin.Context) {
	var params dto.FollowUpParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	start, end, err := dateRange(params.DateRangeParams)
	if err != nil {
		genericErrors.respond(c, err)
		return
	}

	filter := domain.FollowUpFilter{StartDate: start, EndDate: end, RecurringOnly: params.RecurringOnly}
	direction := "in"
	if params.Type != nil {
		direction = *params.Type
	}
	if direction != "all" {
		d := domain.Direction(direction)
		filter.Type = &d
	}

	txns, err := h.reportingService.FollowUps(c.Request.Context(), filter)
	if err != nil {
		genericErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTransactionResponses(txns), "Follow-ups retrieved"))
}
