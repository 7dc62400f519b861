package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/dto"
	"github.com/HaroonAzizi/hadaf-accounting/internal/handlers"
	"github.com/HaroonAzizi/hadaf-accounting/internal/platform/config"
	"github.com/HaroonAzizi/hadaf-accounting/internal/utils/pagination"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Meta    *dto.Meta       `json:"meta"`
	Error   struct {
		Code    string           `json:"code"`
		Message string           `json:"message"`
		Details []dto.FieldError `json:"details"`
	} `json:"error"`
}

type HandlersTestSuite struct {
	suite.Suite
	router       *gin.Engine
	categories   *MockCategoryService
	transactions *MockTransactionService
	recurring    *MockRecurringService
	reporting    *MockReportingService
	export       *MockExportService
	health       *MockHealthService
}

func (s *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(dto.RegisterValidators())
	decimal.MarshalJSONWithoutQuotes = true
}

func (s *HandlersTestSuite) SetupTest() {
	s.categories = new(MockCategoryService)
	s.transactions = new(MockTransactionService)
	s.recurring = new(MockRecurringService)
	s.reporting = new(MockReportingService)
	s.export = new(MockExportService)
	s.health = new(MockHealthService)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Category:    s.categories,
		Transaction: s.transactions,
		Recurring:   s.recurring,
		Reporting:   s.reporting,
		Export:      s.export,
		Health:      s.health,
	})
}

func (s *HandlersTestSuite) TearDownTest() {
	s.categories.AssertExpectations(s.T())
	s.transactions.AssertExpectations(s.T())
	s.recurring.AssertExpectations(s.T())
	s.reporting.AssertExpectations(s.T())
	s.export.AssertExpectations(s.T())
	s.health.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlersTestSuite) decode(w *httptest.ResponseRecorder) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func sampleTransaction(id int64, date string, status domain.TransactionStatus) *domain.Transaction {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return &domain.Transaction{
		ID:           id,
		CategoryID:   3,
		CategoryName: "Web Development",
		Amount:       decimal.RequireFromString("150.50"),
		Currency:     domain.CurrencyUSD,
		Type:         domain.DirectionIn,
		Status:       status,
		Date:         domain.MustParseDate(date),
		Name:         "Invoice",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func sampleTemplate(id int64, due string) *domain.RecurringTemplate {
	return &domain.RecurringTemplate{
		ID:          id,
		CategoryID:  3,
		Amount:      decimal.NewFromInt(500),
		Currency:    domain.CurrencyUSD,
		Type:        domain.DirectionIn,
		Name:        "Hosting retainer",
		Frequency:   domain.FrequencyMonthly,
		NextDueDate: domain.MustParseDate(due),
		IsActive:    true,
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *HandlersTestSuite) TestHealth() {
	s.Run("ok", func() {
		s.health.On("Check", mock.Anything).Return(nil).Once()

		w := s.do(http.MethodGet, "/api/health", "")

		s.Equal(http.StatusOK, w.Code)
		env := s.decode(w)
		s.True(env.Success)
		s.JSONEq(`{"status":"ok","database":"ok"}`, string(env.Data))
	})

	s.Run("database unreachable", func() {
		s.health.On("Check", mock.Anything).Return(errors.New("connection refused")).Once()

		w := s.do(http.MethodGet, "/api/health", "")

		s.Equal(http.StatusServiceUnavailable, w.Code)
		env := s.decode(w)
		s.False(env.Success)
		s.JSONEq(`{"status":"degraded","database":"unreachable"}`, string(env.Data))
	})
}

func (s *HandlersTestSuite) TestUnknownRoute() {
	w := s.do(http.MethodGet, "/api/nope", "")

	s.Equal(http.StatusNotFound, w.Code)
	env := s.decode(w)
	s.False(env.Success)
	s.Equal("NOT_FOUND", env.Error.Code)
	s.Equal("Route not found", env.Error.Message)
}

func (s *HandlersTestSuite) TestSwaggerHiddenInProduction() {
	w := s.do(http.MethodGet, "/swagger/index.html", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestListCategoriesReturnsTree() {
	parent := int64(1)
	s.categories.On("ListCategories", mock.Anything).Return([]domain.Category{
		{ID: 1, Name: "Income", Type: domain.CategoryTypeDefault, Children: []domain.Category{
			{ID: 3, Name: "Web Development", ParentID: &parent, Type: domain.CategoryTypeDefault},
		}},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/categories", "")

	s.Equal(http.StatusOK, w.Code)
	var nodes []dto.CategoryTreeNode
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &nodes))
	s.Require().Len(nodes, 1)
	s.Require().Len(nodes[0].Children, 1)
	s.Equal("Web Development", nodes[0].Children[0].Name)
	s.NotNil(nodes[0].Children[0].Children, "leaf nodes carry an empty children array")
}

func (s *HandlersTestSuite) TestCreateCategory() {
	s.Run("created", func() {
		s.categories.On("CreateCategory", mock.Anything, mock.MatchedBy(func(req dto.CreateCategoryRequest) bool {
			return req.Name == "Consulting" && req.ParentID != nil && *req.ParentID == 1
		})).Return(&domain.Category{ID: 9, Name: "Consulting", Type: domain.CategoryTypeCustom}, nil).Once()

		w := s.do(http.MethodPost, "/api/categories", `{"name":"Consulting","parentId":1}`)

		s.Equal(http.StatusCreated, w.Code)
		s.True(s.decode(w).Success)
	})

	s.Run("blank name", func() {
		w := s.do(http.MethodPost, "/api/categories", `{"name":"   "}`)

		s.Equal(http.StatusBadRequest, w.Code)
		env := s.decode(w)
		s.Equal("VALIDATION_ERROR", env.Error.Code)
		s.Require().Len(env.Error.Details, 1)
		s.Equal("name", env.Error.Details[0].Field)
	})

	s.Run("duplicate name", func() {
		s.categories.On("CreateCategory", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: category %q", apperrors.ErrDuplicate, "Consulting")).Once()

		w := s.do(http.MethodPost, "/api/categories", `{"name":"Consulting"}`)

		s.Equal(http.StatusConflict, w.Code)
		s.Equal("DUPLICATE_CATEGORY", s.decode(w).Error.Code)
	})
}

func (s *HandlersTestSuite) TestGetCategory() {
	s.Run("bad id", func() {
		w := s.do(http.MethodGet, "/api/categories/abc", "")
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("VALIDATION_ERROR", s.decode(w).Error.Code)
	})

	s.Run("not found", func() {
		s.categories.On("GetCategoryByID", mock.Anything, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

		w := s.do(http.MethodGet, "/api/categories/42", "")

		s.Equal(http.StatusNotFound, w.Code)
		env := s.decode(w)
		s.Equal("NOT_FOUND", env.Error.Code)
		s.Equal("Category not found", env.Error.Message)
	})
}

func (s *HandlersTestSuite) TestCategoryStats() {
	s.reporting.On("CategoryStats", mock.Anything, int64(3)).Return(&domain.CategoryStats{
		Category: domain.Category{ID: 3, Name: "Web Development"},
		FlowTotals: domain.FlowTotals{
			Income:   domain.CurrencyAmounts{domain.CurrencyUSD: decimal.NewFromInt(1000)},
			Expenses: domain.CurrencyAmounts{domain.CurrencyUSD: decimal.NewFromInt(250)},
			Profit:   domain.CurrencyAmounts{domain.CurrencyUSD: decimal.NewFromInt(750)},
		},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/categories/3/stats", "")

	s.Equal(http.StatusOK, w.Code)
	var stats map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &stats))
	s.JSONEq(`{"USD":750}`, string(stats["profit"]))
}

func (s *HandlersTestSuite) TestListTransactions() {
	s.Run("default filter and next token", func() {
		next := domain.LedgerCursor{Date: domain.MustParseDate("2026-01-10"), ID: 7}
		s.transactions.On("ListTransactions", mock.Anything, domain.TransactionFilter{}).Return(&portssvc.TransactionPage{
			Items: []domain.Transaction{*sampleTransaction(7, "2026-01-10", domain.StatusDone)},
			Next:  &next,
		}, nil).Once()

		w := s.do(http.MethodGet, "/api/transactions", "")

		s.Equal(http.StatusOK, w.Code)
		env := s.decode(w)
		s.Require().NotNil(env.Meta)
		s.Require().NotNil(env.Meta.NextToken)
		s.Equal(pagination.EncodeLedgerToken(next), *env.Meta.NextToken)

		var items []map[string]any
		s.Require().NoError(json.Unmarshal(env.Data, &items))
		s.Require().Len(items, 1)
		s.Equal(150.5, items[0]["amount"])
		s.Equal("2026-01-10", items[0]["date"])
	})

	s.Run("query parameters", func() {
		token := pagination.EncodeLedgerToken(domain.LedgerCursor{Date: domain.MustParseDate("2026-02-01"), ID: 12})
		s.transactions.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Status == domain.StatusAll &&
				f.Type != nil && *f.Type == domain.DirectionOut &&
				f.CategoryID != nil && *f.CategoryID == 3 &&
				f.Limit == 20 &&
				f.StartDate != nil && f.StartDate.String() == "2026-01-01" &&
				f.After != nil && f.After.ID == 12
		})).Return(&portssvc.TransactionPage{Items: []domain.Transaction{}}, nil).Once()

		w := s.do(http.MethodGet, "/api/transactions?status=all&type=out&categoryId=3&limit=20&startDate=2026-01-01&nextToken="+token, "")

		s.Equal(http.StatusOK, w.Code)
		env := s.decode(w)
		s.Nil(env.Meta)
		s.JSONEq(`[]`, string(env.Data))
	})

	s.Run("bad token", func() {
		w := s.do(http.MethodGet, "/api/transactions?nextToken=%21%21", "")
		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("VALIDATION_ERROR", s.decode(w).Error.Code)
	})

	s.Run("bad status", func() {
		w := s.do(http.MethodGet, "/api/transactions?status=archived", "")
		s.Equal(http.StatusBadRequest, w.Code)
		env := s.decode(w)
		s.Require().Len(env.Error.Details, 1)
		s.Equal("status", env.Error.Details[0].Field)
	})
}

func (s *HandlersTestSuite) TestCreateTransaction() {
	s.Run("created", func() {
		s.transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Amount.Equal(decimal.RequireFromString("150.5")) &&
				req.Date.String() == "2026-01-10" &&
				req.Frequency != nil && *req.Frequency == "monthly"
		})).Return(sampleTransaction(1, "2026-01-10", domain.StatusPending), nil).Once()

		w := s.do(http.MethodPost, "/api/transactions",
			`{"category_id":3,"amount":150.5,"currency":"USD","type":"in","status":"pending","date":"2026-01-10","name":"Invoice","frequency":"monthly"}`)

		s.Equal(http.StatusCreated, w.Code)
		s.Equal("Transaction created", s.decode(w).Message)
	})

	s.Run("validation details", func() {
		w := s.do(http.MethodPost, "/api/transactions",
			`{"category_id":3,"amount":-5,"currency":"GBP","type":"in","date":"2026-01-10","name":"Invoice"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		env := s.decode(w)
		s.Equal("VALIDATION_ERROR", env.Error.Code)
		fields := make([]string, 0, len(env.Error.Details))
		for _, d := range env.Error.Details {
			fields = append(fields, d.Field)
		}
		s.ElementsMatch([]string{"amount", "currency"}, fields)
	})

	s.Run("unknown category", func() {
		s.transactions.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrInvalidCategory).Once()

		w := s.do(http.MethodPost, "/api/transactions",
			`{"category_id":99,"amount":10,"currency":"AFN","type":"out","date":"2026-01-10","name":"Rent"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("INVALID_CATEGORY", s.decode(w).Error.Code)
	})

	s.Run("malformed date", func() {
		w := s.do(http.MethodPost, "/api/transactions",
			`{"category_id":3,"amount":10,"currency":"AFN","type":"out","date":"10/01/2026","name":"Rent"}`)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("VALIDATION_ERROR", s.decode(w).Error.Code)
	})
}

func (s *HandlersTestSuite) TestUpdateAndDeleteTransaction() {
	s.Run("update missing", func() {
		s.transactions.On("UpdateTransaction", mock.Anything, int64(5), mock.Anything).
			Return(nil, apperrors.ErrNotFound).Once()

		w := s.do(http.MethodPut, "/api/transactions/5", `{"status":"done"}`)

		s.Equal(http.StatusNotFound, w.Code)
		s.Equal("Transaction not found", s.decode(w).Error.Message)
	})

	s.Run("delete", func() {
		s.transactions.On("DeleteTransaction", mock.Anything, int64(5)).Return(nil).Once()

		w := s.do(http.MethodDelete, "/api/transactions/5", "")

		s.Equal(http.StatusOK, w.Code)
		env := s.decode(w)
		s.True(env.Success)
		s.Equal("null", string(env.Data))
	})
}

func (s *HandlersTestSuite) TestCreateRecurring() {
	installment := sampleTransaction(20, "2026-01-15", domain.StatusPending)
	s.recurring.On("CreateRecurring", mock.Anything, mock.MatchedBy(func(req dto.CreateRecurringRequest) bool {
		return req.Frequency == "monthly" && req.NextDueDate.String() == "2026-01-15"
	})).Return(sampleTemplate(4, "2026-01-15"), installment, nil).Once()

	w := s.do(http.MethodPost, "/api/recurring",
		`{"category_id":3,"amount":500,"currency":"USD","type":"in","name":"Hosting retainer","frequency":"monthly","next_due_date":"2026-01-15"}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateRecurringResponse
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &resp))
	s.Equal("2026-01-15", resp.NextDueDate.String())
	s.Require().NotNil(resp.Installment)
	s.Equal(int64(20), resp.Installment.ID)
}

func (s *HandlersTestSuite) TestUpdateRecurringRejectsDueDateEdit() {
	s.recurring.On("UpdateRecurring", mock.Anything, int64(4), mock.Anything).
		Return(nil, fmt.Errorf("%w: next_due_date cannot be changed directly", apperrors.ErrValidation)).Once()

	w := s.do(http.MethodPut, "/api/recurring/4", `{"next_due_date":"2026-03-01"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("VALIDATION_ERROR", s.decode(w).Error.Code)
}

func (s *HandlersTestSuite) TestExecuteRecurring() {
	s.Run("creates installment", func() {
		s.recurring.On("ExecuteRecurring", mock.Anything, int64(4)).Return(&domain.Execution{
			Template:    *sampleTemplate(4, "2026-02-15"),
			Installment: *sampleTransaction(21, "2026-02-15", domain.StatusPending),
			Created:     true,
		}, nil).Once()

		w := s.do(http.MethodPost, "/api/recurring/4/execute", "")

		s.Equal(http.StatusCreated, w.Code)
		var resp dto.ExecuteRecurringResponse
		s.Require().NoError(json.Unmarshal(s.decode(w).Data, &resp))
		s.True(resp.Created)
		s.Equal("2026-02-15", resp.Transaction.Date.String())
		s.Equal("2026-02-15", resp.Recurring.NextDueDate.String(), "execute never advances the template")
	})

	s.Run("reuses pending installment", func() {
		s.recurring.On("ExecuteRecurring", mock.Anything, int64(4)).Return(&domain.Execution{
			Template:    *sampleTemplate(4, "2026-02-15"),
			Installment: *sampleTransaction(21, "2026-02-15", domain.StatusPending),
		}, nil).Once()

		w := s.do(http.MethodPost, "/api/recurring/4/execute", "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("inactive", func() {
		s.recurring.On("ExecuteRecurring", mock.Anything, int64(8)).Return(nil, apperrors.ErrInactiveTemplate).Once()

		w := s.do(http.MethodPost, "/api/recurring/8/execute", "")

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("INACTIVE", s.decode(w).Error.Code)
	})
}

func (s *HandlersTestSuite) TestDueTemplates() {
	s.reporting.On("DueTemplates", mock.Anything, domain.MustParseDate("2026-03-01")).
		Return([]domain.RecurringTemplate{*sampleTemplate(4, "2026-02-15")}, nil).Once()

	w := s.do(http.MethodGet, "/api/recurring/due?asOf=2026-03-01", "")

	s.Equal(http.StatusOK, w.Code)
	var items []dto.RecurringResponse
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &items))
	s.Len(items, 1)
}

func (s *HandlersTestSuite) TestFollowUps() {
	s.Run("defaults to incoming", func() {
		s.reporting.On("FollowUps", mock.Anything, mock.MatchedBy(func(f domain.FollowUpFilter) bool {
			return f.Type != nil && *f.Type == domain.DirectionIn && !f.RecurringOnly
		})).Return([]domain.Transaction{*sampleTransaction(1, "2026-01-10", domain.StatusPending)}, nil).Once()

		w := s.do(http.MethodGet, "/api/dashboard/follow-ups", "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("all directions", func() {
		s.reporting.On("FollowUps", mock.Anything, mock.MatchedBy(func(f domain.FollowUpFilter) bool {
			return f.Type == nil && f.RecurringOnly
		})).Return([]domain.Transaction{}, nil).Once()

		w := s.do(http.MethodGet, "/api/dashboard/follow-ups?type=all&recurringOnly=true", "")

		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("bad date", func() {
		w := s.do(http.MethodGet, "/api/dashboard/follow-ups?startDate=yesterday", "")

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlersTestSuite) TestDashboardSummary() {
	s.reporting.On("DashboardSummary", mock.Anything, mock.MatchedBy(func(d *domain.Date) bool {
		return d != nil && d.String() == "2026-01-01"
	}), (*domain.Date)(nil)).Return(&domain.DashboardSummary{
		FlowTotals: domain.FlowTotals{
			Income:   domain.CurrencyAmounts{domain.CurrencyAFN: decimal.NewFromInt(8000)},
			Expenses: domain.CurrencyAmounts{},
			Profit:   domain.CurrencyAmounts{domain.CurrencyAFN: decimal.NewFromInt(8000)},
		},
		MonthlyBreakdown: []domain.MonthlyFlow{{Month: "2026-01"}},
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/dashboard/summary?startDate=2026-01-01", "")

	s.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardSummaryResponse
	s.Require().NoError(json.Unmarshal(s.decode(w).Data, &resp))
	s.True(resp.TotalIncome["AFN"].Equal(decimal.NewFromInt(8000)))
	s.Len(resp.MonthlyBreakdown, 1)
}

func (s *HandlersTestSuite) TestExportCSV() {
	s.export.On("ExportTransactionsCSV", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Status == domain.StatusFilter{} && f.Limit == 0 && f.After == nil
	})).Return("id,date\n1,2026-01-10\n", 1, nil).Once()

	w := s.do(http.MethodGet, "/api/export/csv?status=pending&limit=5", "")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "attachment; filename=\"transactions-")
	s.Equal("id,date\n1,2026-01-10\n", w.Body.String())
}

func (s *HandlersTestSuite) TestBackup() {
	s.Run("snapshot", func() {
		s.export.On("Backup", mock.Anything, mock.Anything).Return("hadaf-backup-20260110-090000.db", nil).Once()

		w := s.do(http.MethodGet, "/api/export/backup", "")

		s.Equal(http.StatusOK, w.Code)
		s.Equal("application/octet-stream", w.Header().Get("Content-Type"))
		s.Equal(`attachment; filename="hadaf-backup-20260110-090000.db"`, w.Header().Get("Content-Disposition"))
	})

	s.Run("unsupported driver", func() {
		s.export.On("Backup", mock.Anything, mock.Anything).
			Return("", fmt.Errorf("%w: backup requires the sqlite driver", apperrors.ErrNotSupported)).Once()

		w := s.do(http.MethodGet, "/api/export/backup", "")

		s.Equal(http.StatusNotImplemented, w.Code)
		s.Empty(w.Header().Get("Content-Disposition"))
		s.Equal("NOT_IMPLEMENTED", s.decode(w).Error.Code)
	})
}

func TestExportExcelIsNotImplemented(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/export/excel", nil))

	assert.Equal(t, http.StatusNotImplemented, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "NOT_IMPLEMENTED", env.Error.Code)
}
