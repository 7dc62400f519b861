package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/HaroonAzizi/hadaf-accounting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// errorMapper turns service errors into error envelopes for one resource.
type errorMapper struct {
	resource      string // used in not-found messages, e.g. "Transaction"
	duplicateCode string
}

var (
	categoryErrors    = errorMapper{resource: "Category", duplicateCode: "DUPLICATE_CATEGORY"}
	transactionErrors = errorMapper{resource: "Transaction", duplicateCode: "DUPLICATE"}
	recurringErrors   = errorMapper{resource: "Recurring transaction", duplicateCode: "DUPLICATE"}
	genericErrors     = errorMapper{resource: "Resource", duplicateCode: "DUPLICATE"}
)

func (m errorMapper) classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", m.resource + " not found"
	case errors.Is(err, apperrors.ErrInvalidCategory):
		return http.StatusBadRequest, "INVALID_CATEGORY", "Invalid category_id"
	case errors.Is(err, apperrors.ErrInvalidParent):
		return http.StatusBadRequest, "INVALID_PARENT", err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		if m.duplicateCode == "DUPLICATE_CATEGORY" {
			return http.StatusConflict, m.duplicateCode, "Category name already exists"
		}
		return http.StatusConflict, m.duplicateCode, err.Error()
	case errors.Is(err, apperrors.ErrInactiveTemplate):
		return http.StatusBadRequest, "INACTIVE", "Recurring transaction is inactive"
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, apperrors.ErrNotSupported):
		return http.StatusNotImplemented, "NOT_IMPLEMENTED", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}

// respond writes the envelope for err and aborts the request.
func (m errorMapper) respond(c *gin.Context, err error) {
	status, code, message := m.classify(err)
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		logger.Error("Request failed", slog.String("code", code), slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.String("code", code), slog.String("error", err.Error()))
	}
	c.AbortWithStatusJSON(status, dto.Fail(code, message, nil))
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	details := dto.ValidationDetails(err)
	message := "Validation failed"
	if details == nil {
		message = "Invalid request: " + err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail("VALIDATION_ERROR", message, details))
}
