package handlers

import (
	"fmt"
	"strconv"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// pathID reads the :id path parameter.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: id must be a positive integer", apperrors.ErrValidation)
	}
	return id, nil
}

func optionalDate(s *string, field string) (*domain.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrValidation, field, err)
	}
	return &d, nil
}

func dateRange(p dto.DateRangeParams) (start, end *domain.Date, err error) {
	if start, err = optionalDate(p.StartDate, "startDate"); err != nil {
		return nil, nil, err
	}
	if end, err = optionalDate(p.EndDate, "endDate"); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

// ledgerFilter converts list query parameters to a repository filter.
func ledgerFilter(p dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	start, end, err := dateRange(dto.DateRangeParams{StartDate: p.StartDate, EndDate: p.EndDate})
	if err != nil {
		return domain.TransactionFilter{}, err
	}

	f := domain.TransactionFilter{
		CategoryID: p.CategoryID,
		StartDate:  start,
		EndDate:    end,
		Limit:      p.Limit,
	}
	if p.Type != nil {
		d := domain.Direction(*p.Type)
		f.Type = &d
	}
	if p.Currency != nil {
		c := domain.Currency(*p.Currency)
		f.Currency = &c
	}
	if p.Status != nil {
		if *p.Status == "all" {
			f.Status = domain.StatusAll
		} else {
			f.Status = domain.OnlyStatus(domain.TransactionStatus(*p.Status))
		}
	}
	if p.NextToken != nil && *p.NextToken != "" {
		cursor, err := pagination.DecodeLedgerToken(*p.NextToken)
		if err != nil {
			return domain.TransactionFilter{}, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		f.After = &cursor
	}
	return f, nil
}
