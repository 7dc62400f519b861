package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/HaroonAzizi/hadaf-accounting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService  portssvc.CategorySvcFacade
	reportingService portssvc.ReportingService
}

func newCategoryHandler(cs portssvc.CategorySvcFacade, rs portssvc.ReportingService) *categoryHandler {
	return &categoryHandler{categoryService: cs, reportingService: rs}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, cs portssvc.CategorySvcFacade, rs portssvc.ReportingService) {
	h := newCategoryHandler(cs, rs)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.GET("/:id", h.getCategory)
		categories.GET("/:id/stats", h.getCategoryStats)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Description Returns the category tree ordered by name, children nested under their parent
// @Tags categories
// @Produce json
// @Success 200 {object} dto.SuccessResponse{data=[]dto.CategoryTreeNode}
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	cats, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryTree(cats), "Categories retrieved"))
}

// getCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.CategoryResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}
	cat, err := h.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryResponse(cat), "Category retrieved"))
}

// getCategoryStats godoc
// @Summary Category totals
// @Description Per-currency income, expenses and profit of the done entries booked on the category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.SuccessResponse{data=dto.CategoryStatsResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id}/stats [get]
func (h *categoryHandler) getCategoryStats(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}
	stats, err := h.reportingService.CategoryStats(c.Request.Context(), id)
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryStatsResponse(stats), "Category statistics retrieved"))
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.SuccessResponse{data=dto.CategoryResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error or invalid parent"
// @Failure 409 {object} dto.ErrorResponse "Duplicate name"
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cat, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Category created", slog.Int64("category_id", cat.ID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToCategoryResponse(cat), "Category created"))
}

// updateCategory godoc
// @Summary Rename or re-parent a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=dto.CategoryResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cat, err := h.categoryService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCategoryResponse(cat), "Category updated"))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes the category with its sub-categories, entries and templates
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		categoryErrors.respond(c, err)
		return
	}
	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		categoryErrors.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(nil, "Category deleted"))
}
