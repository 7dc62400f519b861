package services_test

import (
	"context"
	"testing"

	"github.com/HaroonAzizi/hadaf-accounting/internal/apperrors"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/domain"
	portsrepo "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/repositories"
	portssvc "github.com/HaroonAzizi/hadaf-accounting/internal/core/ports/services"
	"github.com/HaroonAzizi/hadaf-accounting/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AdvancerTestSuite struct {
	suite.Suite
	txnRepo       *MockTransactionRepository
	recurringRepo *MockRecurringRepository
	repos         portsrepo.RepositoryProvider
	advancer      portssvc.InstallmentAdvancerSvc
	ctx           context.Context
	template      domain.RecurringTemplate
}

func (s *AdvancerTestSuite) SetupTest() {
	s.txnRepo = new(MockTransactionRepository)
	s.recurringRepo = new(MockRecurringRepository)
	s.repos = portsrepo.RepositoryProvider{
		TransactionRepo: s.txnRepo,
		RecurringRepo:   s.recurringRepo,
	}
	s.advancer = services.NewInstallmentAdvancer()
	s.ctx = context.Background()
	s.template = domain.RecurringTemplate{
		ID:          5,
		CategoryID:  2,
		Amount:      decimal.NewFromInt(3000),
		Currency:    domain.CurrencyAFN,
		Type:        domain.DirectionIn,
		Name:        "Tuition",
		Frequency:   domain.FrequencyMonthly,
		NextDueDate: domain.MustParseDate("2026-01-15"),
		IsActive:    true,
	}
}

func TestAdvancerTestSuite(t *testing.T) {
	suite.Run(t, new(AdvancerTestSuite))
}

func (s *AdvancerTestSuite) installment(id int64, date string, status domain.TransactionStatus) domain.Transaction {
	txn := s.template.Installment(domain.MustParseDate(date))
	txn.ID = id
	txn.Status = status
	return txn
}

func (s *AdvancerTestSuite) TestClosingCurrentInstallmentAdvancesOnce() {
	before := s.installment(10, "2026-01-15", domain.StatusPending)
	after := before
	after.Status = domain.StatusDone
	next := domain.MustParseDate("2026-02-15")
	tmpl := s.template

	s.recurringRepo.On("LockRecurring", s.ctx, int64(5)).Return(&tmpl, nil).Once()
	s.recurringRepo.On("AdvanceNextDueDate", s.ctx, int64(5), next).Return(nil).Once()
	s.txnRepo.On("FindByTemplateAndDate", s.ctx, int64(5), next, []domain.TransactionStatus{domain.StatusPending}).Return(nil, nil).Once()
	s.txnRepo.On("SaveTransaction", s.ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Status == domain.StatusPending && t.Date.Equal(next) && *t.RecurringID == 5 &&
			t.Amount.Equal(decimal.NewFromInt(3000)) && t.Currency == domain.CurrencyAFN && t.Name == "Tuition"
	})).Return(&domain.Transaction{ID: 11, Date: next, Status: domain.StatusPending, RecurringID: ptr(int64(5))}, nil).Once()

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.True(adv.Advanced)
	s.True(adv.Created)
	s.Equal("2026-02-15", adv.Template.NextDueDate.String())
	s.Equal(int64(11), adv.NextInstallment.ID)
	s.recurringRepo.AssertExpectations(s.T())
	s.txnRepo.AssertExpectations(s.T())
}

func (s *AdvancerTestSuite) TestExistingNextInstallmentIsReused() {
	before := s.installment(10, "2026-01-15", domain.StatusPending)
	after := before
	after.Status = domain.StatusCancelled
	next := domain.MustParseDate("2026-02-15")
	existing := s.installment(12, "2026-02-15", domain.StatusPending)
	tmpl := s.template

	s.recurringRepo.On("LockRecurring", s.ctx, int64(5)).Return(&tmpl, nil)
	s.recurringRepo.On("AdvanceNextDueDate", s.ctx, int64(5), next).Return(nil)
	s.txnRepo.On("FindByTemplateAndDate", s.ctx, int64(5), next, []domain.TransactionStatus{domain.StatusPending}).Return(&existing, nil)

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.True(adv.Advanced)
	s.False(adv.Created)
	s.Equal(int64(12), adv.NextInstallment.ID)
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *AdvancerTestSuite) TestStaleInstallmentDoesNotAdvance() {
	// Template already moved to 2026-02-15; the January row is closed late.
	tmpl := s.template
	tmpl.NextDueDate = domain.MustParseDate("2026-02-15")
	before := s.installment(10, "2026-01-15", domain.StatusPending)
	after := before
	after.Status = domain.StatusDone

	s.recurringRepo.On("LockRecurring", s.ctx, int64(5)).Return(&tmpl, nil)

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.False(adv.Advanced)
	s.recurringRepo.AssertNotCalled(s.T(), "AdvanceNextDueDate", mock.Anything, mock.Anything, mock.Anything)
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *AdvancerTestSuite) TestAlreadyClosedIsNoOp() {
	before := s.installment(10, "2026-01-15", domain.StatusDone)
	after := before

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.False(adv.Advanced)
	s.recurringRepo.AssertNotCalled(s.T(), "LockRecurring", mock.Anything, mock.Anything)
}

func (s *AdvancerTestSuite) TestEditWithoutStatusChangeIsNoOp() {
	before := s.installment(10, "2026-01-15", domain.StatusPending)
	after := before
	after.Name = "Renamed"

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.False(adv.Advanced)
	s.recurringRepo.AssertNotCalled(s.T(), "LockRecurring", mock.Anything, mock.Anything)
}

func (s *AdvancerTestSuite) TestOneOffEntryIsNoOp() {
	before := domain.Transaction{ID: 3, Status: domain.StatusPending, Date: domain.MustParseDate("2026-01-15")}
	after := before
	after.Status = domain.StatusDone

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.False(adv.Advanced)
	s.Nil(adv.Template)
}

func (s *AdvancerTestSuite) TestInactiveTemplateDoesNotAdvance() {
	tmpl := s.template
	tmpl.IsActive = false
	before := s.installment(10, "2026-01-15", domain.StatusPending)
	after := before
	after.Status = domain.StatusDone

	s.recurringRepo.On("LockRecurring", s.ctx, int64(5)).Return(&tmpl, nil)

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.False(adv.Advanced)
	s.recurringRepo.AssertNotCalled(s.T(), "AdvanceNextDueDate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AdvancerTestSuite) TestDeletedTemplateIsIgnored() {
	before := s.installment(10, "2026-01-15", domain.StatusPending)
	after := before
	after.Status = domain.StatusDone

	s.recurringRepo.On("LockRecurring", s.ctx, int64(5)).Return(nil, apperrors.ErrNotFound)

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.False(adv.Advanced)
}

func (s *AdvancerTestSuite) TestMonthEndClamps() {
	tmpl := s.template
	tmpl.NextDueDate = domain.MustParseDate("2026-01-31")
	before := s.installment(10, "2026-01-31", domain.StatusPending)
	after := before
	after.Status = domain.StatusDone
	next := domain.MustParseDate("2026-02-28")

	s.recurringRepo.On("LockRecurring", s.ctx, int64(5)).Return(&tmpl, nil)
	s.recurringRepo.On("AdvanceNextDueDate", s.ctx, int64(5), next).Return(nil).Once()
	s.txnRepo.On("FindByTemplateAndDate", s.ctx, int64(5), next, []domain.TransactionStatus{domain.StatusPending}).Return(nil, nil)
	s.txnRepo.On("SaveTransaction", s.ctx, mock.Anything).Return(&domain.Transaction{ID: 11, Date: next}, nil)

	adv, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().NoError(err)
	s.Equal("2026-02-28", adv.Template.NextDueDate.String())
	s.recurringRepo.AssertExpectations(s.T())
}

func (s *AdvancerTestSuite) TestAdvanceFailurePropagates() {
	tmpl := s.template
	before := s.installment(10, "2026-01-15", domain.StatusPending)
	after := before
	after.Status = domain.StatusDone

	s.recurringRepo.On("LockRecurring", s.ctx, int64(5)).Return(&tmpl, nil)
	s.recurringRepo.On("AdvanceNextDueDate", s.ctx, int64(5), mock.Anything).Return(errBoom)

	_, err := s.advancer.CloseInstallmentAndMaybeAdvance(s.ctx, s.repos, before, after)

	s.Require().Error(err)
	s.ErrorIs(err, errBoom)
}
