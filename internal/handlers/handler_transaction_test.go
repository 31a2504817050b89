package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pjfinancas/financas_backend/internal/core/domain"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
	"github.com/pjfinancas/financas_backend/internal/dto"
	"github.com/pjfinancas/financas_backend/internal/handlers"
	"github.com/pjfinancas/financas_backend/internal/platform/config"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCompany     *MockCompanyService
	mockTransaction *MockTransactionService
	jwtSecret       string
}

// generateTestToken creates a signed JWT for the given user.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "financas-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCompany = new(MockCompanyService)
	suite.mockTransaction = new(MockTransactionService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "financas-test",
		IsProduction:      true, // skips swagger registration
	}
	container := &portssvc.ServiceContainer{
		User:        new(MockUserService),
		Company:     suite.mockCompany,
		Account:     new(MockAccountService),
		Category:    new(MockCategoryService),
		Client:      new(MockClientService),
		Transaction: suite.mockTransaction,
		Dashboard:   new(MockDashboardService),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultsPageSize() {
	userID := uuid.NewString()
	companyID := uuid.NewString()
	company := &domain.Company{CompanyID: companyID, OwnerUserID: userID}
	items := []domain.Transaction{
		{TransactionID: uuid.NewString(), Description: "Venda"},
	}

	suite.mockCompany.On("EnsureCompany", mock.Anything, userID, "").Return(company, nil).Once()
	suite.mockTransaction.On("ListTransactions", mock.Anything, companyID,
		mock.MatchedBy(func(f portsrepo.TransactionListFilters) bool {
			return f.Limit == 50 && f.Offset == 0
		})).Return(items, int64(1), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListTransactionsResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Require().Len(body.Items, 1)
	suite.Equal(int64(1), body.Total)

	suite.mockTransaction.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_LimitZeroRejected() {
	userID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?limit=0", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_LimitAboveMaxRejected() {
	userID := uuid.NewString()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions?limit=500", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransaction.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
