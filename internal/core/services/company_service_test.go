package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pjfinancas/financas_backend/internal/apperrors"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/core/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindCompanyByOwnerUserID(ctx context.Context, ownerUserID string) (*domain.Company, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) SaveCompanyIfAbsent(ctx context.Context, company domain.Company) (bool, error) {
	args := m.Called(ctx, company)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) UpdateCompany(ctx context.Context, company domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, companyID string, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, companyID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) MarkCategoryDeleted(ctx context.Context, companyID string, categoryID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, companyID, categoryID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CompanyServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo  *MockCompanyRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.CompanySvcFacade
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCompanyService(suite.mockCompanyRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *CompanyServiceTestSuite) TestEnsureCompany_ReturnsExisting() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        "Minha Empresa",
		OwnerUserID: userID,
	}

	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(existing, nil).Once()

	company, err := suite.service.EnsureCompany(ctx, userID, "")

	suite.Require().NoError(err)
	suite.Equal(existing, company)

	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "SaveCompanyIfAbsent", mock.Anything, mock.Anything)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategories", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestEnsureCompany_ProvisionsWithDefaults() {
	ctx := context.Background()
	userID := uuid.NewString()
	provisioned := &domain.Company{
		CompanyID:    uuid.NewString(),
		Name:         "Minha Empresa",
		CurrencyCode: "BRL",
		TimeZone:     "America/Sao_Paulo",
		OwnerUserID:  userID,
	}

	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanyRepo.On("SaveCompanyIfAbsent", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Minha Empresa" &&
			c.CurrencyCode == "BRL" &&
			c.TimeZone == "America/Sao_Paulo" &&
			c.OwnerUserID == userID
	})).Return(true, nil).Once()
	suite.mockCategoryRepo.On("SaveCategories", ctx, mock.MatchedBy(func(categories []domain.Category) bool {
		if len(categories) != 9 {
			return false
		}
		names := make(map[string]bool, len(categories))
		for _, c := range categories {
			names[c.Name] = true
		}
		return names["Salário"] && names["Alimentação"] && names["Outros"]
	})).Return(nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(provisioned, nil).Once()

	company, err := suite.service.EnsureCompany(ctx, userID, "")

	suite.Require().NoError(err)
	suite.Equal(provisioned, company)

	suite.mockCompanyRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestEnsureCompany_UsesNameHint() {
	ctx := context.Background()
	userID := uuid.NewString()
	provisioned := &domain.Company{CompanyID: uuid.NewString(), OwnerUserID: userID}

	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanyRepo.On("SaveCompanyIfAbsent", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Empresa de Maria Silva"
	})).Return(true, nil).Once()
	suite.mockCategoryRepo.On("SaveCategories", ctx, mock.AnythingOfType("[]domain.Category")).Return(nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(provisioned, nil).Once()

	_, err := suite.service.EnsureCompany(ctx, userID, "Maria Silva")

	suite.Require().NoError(err)
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestEnsureCompany_LostRaceSkipsSeeding() {
	ctx := context.Background()
	userID := uuid.NewString()
	winner := &domain.Company{CompanyID: uuid.NewString(), OwnerUserID: userID}

	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	// A concurrent request inserted first, so no row was written here
	suite.mockCompanyRepo.On("SaveCompanyIfAbsent", ctx, mock.AnythingOfType("domain.Company")).Return(false, nil).Once()
	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(winner, nil).Once()

	company, err := suite.service.EnsureCompany(ctx, userID, "")

	suite.Require().NoError(err)
	suite.Equal(winner, company)

	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategories", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestEnsureCompany_SeedFailureIsNotFatal() {
	ctx := context.Background()
	userID := uuid.NewString()
	provisioned := &domain.Company{CompanyID: uuid.NewString(), OwnerUserID: userID}

	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanyRepo.On("SaveCompanyIfAbsent", ctx, mock.AnythingOfType("domain.Company")).Return(true, nil).Once()
	suite.mockCategoryRepo.On("SaveCategories", ctx, mock.AnythingOfType("[]domain.Category")).Return(assert.AnError).Once()
	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(provisioned, nil).Once()

	company, err := suite.service.EnsureCompany(ctx, userID, "")

	suite.Require().NoError(err)
	suite.Equal(provisioned, company)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Company{
		CompanyID:    uuid.NewString(),
		Name:         "Minha Empresa",
		CurrencyCode: "BRL",
		TimeZone:     "America/Sao_Paulo",
		OwnerUserID:  userID,
	}

	newName := "Padaria do João"
	limit := decimal.NewFromInt(5000)
	req := dto.UpdateCompanyRequest{
		Name:                 &newName,
		MonthlySpendingLimit: &limit,
	}

	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(existing, nil).Once()
	suite.mockCompanyRepo.On("UpdateCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == newName &&
			c.MonthlySpendingLimit != nil &&
			c.MonthlySpendingLimit.Equal(limit) &&
			c.LastUpdatedBy == userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateCompany(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(newName, updated.Name)
	suite.True(updated.HasSpendingLimit())

	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_NegativeLimit() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Company{CompanyID: uuid.NewString(), OwnerUserID: userID}

	limit := decimal.NewFromInt(-1)
	req := dto.UpdateCompanyRequest{MonthlySpendingLimit: &limit}

	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateCompany(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "UpdateCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_UnknownTimeZone() {
	ctx := context.Background()
	userID := uuid.NewString()
	existing := &domain.Company{CompanyID: uuid.NewString(), OwnerUserID: userID}

	badZone := "America/Nowhere"
	req := dto.UpdateCompanyRequest{TimeZone: &badZone}

	suite.mockCompanyRepo.On("FindCompanyByOwnerUserID", ctx, userID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateCompany(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "UpdateCompany", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestCompanyService(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
