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
	"github.com/pjfinancas/financas_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "maria",
		Name:     "Maria Silva",
		Password: "super-secret-1",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		// The hash must verify against the original password and never equal it
		return u.Username == "maria" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.Equal(req.Name, created.Name)
	// Audit fields are self-referencing on registration
	suite.Equal(created.UserID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "maria",
		Name:     "Maria Silva",
		Password: "super-secret-1",
	}

	duplicateErr := apperrors.NewConflictError("username maria is already taken")
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(duplicateErr).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "super-secret-1"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "maria",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "maria").Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "maria", password)

	suite.Require().NoError(err)
	suite.Equal(user, authenticated)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-right-password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "maria",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "maria").Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "maria", "the-wrong-password")

	suite.Require().Error(err)
	suite.Nil(authenticated)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	// Same error as a wrong password, so usernames cannot be probed
	suite.Require().Error(err)
	suite.Nil(authenticated)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	expected := &domain.User{UserID: userID, Username: "maria"}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
}

// --- Run Test Suite ---

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
