package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/HaroonAzizi/hadaf-accounting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recurringHandler handles HTTP requests related to recurring templates.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
	reportingService portssvc.ReportingService
	today            func() domain.Date
}

func newRecurringHandler(rs portssvc.RecurringSvcFacade, reporting portssvc.ReportingService) *recurringHandler {
	return &recurringHandler{
		recurringService: rs,
		reportingService: reporting,
		today:            domain.Today,
	}
}

// registerRecurringRoutes registers routes related to recurring templates.
func registerRecurringRoutes(rg *gin.RouterGroup, rs portssvc.RecurringSvcFacade, reporting portssvc.ReportingService) {
	h := newRecurringHandler(rs, reporting)

	recurring := rg.Group("/recurring")
	{
		recurring.GET("", h.listRecurring)
		recurring.POST("", h.createRecurring)
		recurring.GET("/due", h.listDue)
		recurring.GET("/:id", h.getRecurring)
		recurring.PUT("/:id", h.updateRecurring)
		recurring.DELETE("/:id", h.deleteRecurring)
		recurring.POST("/:id/execute", h.executeRecurring)
	}
}

// listRecurring godoc
// @Summary List recurring templates
// @Tags recurring
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.RecurringResponse}
// @Router /recurring [get]
func (h *recurringHandler) listRecurring(c *gin.Context) {
	templates, err := h.recurringService.ListRecurring(c.Request.Context())
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToRecurringResponses(templates), "Recurring transactions retrieved"))
}

// listDue godoc
// @Summary List due templates
// @Description Active templates whose next due date is on or before asOf (default today). Read only.
// @Tags recurring
// @Produce json
// @Param asOf query string false "YYYY-MM-DD"
// @Success 200 {object} dto.SuccessResponse{data=[]dto.RecurringResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /recurring/due [get]
func (h *recurringHandler) listDue(c *gin.Context) {
	var params dto.DueRecurringParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	asOf, err := optionalDate(params.AsOf, "asOf")
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}
	if asOf == nil {
		today := h.today()
		asOf = &today
	}

	templates, err := h.reportingService.DueTemplates(c.Request.Context(), *asOf)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToRecurringResponses(templates), "Due recurring transactions retrieved"))
}

// getRecurring godoc
// @Summary Get a recurring template
// @Tags recurring
// @Produce json
// @Param id path int true "Recurring template ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.RecurringResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /recurring/{id} [get]
func (h *recurringHandler) getRecurring(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}
	tmpl, err := h.recurringService.GetRecurringByID(c.Request.Context(), id)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToRecurringResponse(tmpl), "Recurring transaction retrieved"))
}

// createRecurring godoc
// @Summary Create a recurring template
// @Description Also creates the first pending installment unless the template is inactive or create_installment is false.
// @Tags recurring
// @Accept json
// @Produce json
// @Param recurring body dto.CreateRecurringRequest true "Template"
// @Success 201 {object} dto.SuccessResponse{data=dto.CreateRecurringResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /recurring [post]
func (h *recurringHandler) createRecurring(c *gin.Context) {
	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tmpl, installment, err := h.recurringService.CreateRecurring(c.Request.Context(), req)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Recurring template created",
		slog.Int64("recurring_id", tmpl.ID), slog.Bool("installment", installment != nil))
	c.JSON(http.StatusCreated, dto.OK(dto.ToCreateRecurringResponse(tmpl, installment), "Recurring transaction created"))
}

// updateRecurring godoc
// @Summary Update a recurring template
// @Description next_due_date moves only by closing installments; a different value is rejected.
// @Tags recurring
// @Accept json
// @Produce json
// @Param id path int true "Recurring template ID"
// @Param recurring body dto.UpdateRecurringRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=dto.RecurringResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /recurring/{id} [put]
func (h *recurringHandler) updateRecurring(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}
	var req dto.UpdateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tmpl, err := h.recurringService.UpdateRecurring(c.Request.Context(), id, req)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToRecurringResponse(tmpl), "Recurring transaction updated"))
}

// deleteRecurring godoc
// @Summary Delete a recurring template
// @Description Entries generated from the template are kept and lose their link.
// @Tags recurring
// @Produce json
// @Param id path int true "Recurring template ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /recurring/{id} [delete]
func (h *recurringHandler) deleteRecurring(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}
	if err := h.recurringService.DeleteRecurring(c.Request.Context(), id); err != nil {
		recurringErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(nil, "Recurring transaction deleted"))
}

// executeRecurring godoc
// @Summary Ensure the current installment exists
// @Description Returns the pending installment for the template's next due date, creating it when missing. Does not advance the template.
// @Tags recurring
// @Produce json
// @Param id path int true "Recurring template ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.ExecuteRecurringResponse} "Existing installment"
// @Success 201 {object} dto.SuccessResponse{data=dto.ExecuteRecurringResponse} "Installment created"
// @Failure 400 {object} dto.ErrorResponse "Template inactive"
// @Failure 404 {object} dto.ErrorResponse
// @Router /recurring/{id}/execute [post]
func (h *recurringHandler) executeRecurring(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}

	res, err := h.recurringService.ExecuteRecurring(c.Request.Context(), id)
	if err != nil {
		recurringErrors.respond(c, err)
		return
	}

	status := http.StatusOK
	message := fmt.Sprintf("Installment for %s already pending", res.Installment.Date)
	if res.Created {
		status = http.StatusCreated
		message = fmt.Sprintf("Installment for %s created", res.Installment.Date)
	}
	c.JSON(status, dto.OK(dto.ToExecuteRecurringResponse(res), message))
}
