package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fintrackhq/fintrack-backend/internal/apperrors"
	"github.com/fintrackhq/fintrack-backend/internal/core/domain"
	portssvc "github.com/fintrackhq/fintrack-backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack-backend/internal/core/services"
	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/platform/config"
	"github.com/fintrackhq/fintrack-backend/internal/utils"
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

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
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

func (m *MockUserRepository) UpdateRefreshTokenHash(ctx context.Context, userID string, tokenHash string, now time.Time) error {
	args := m.Called(ctx, userID, tokenHash, now)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, now time.Time) error {
	args := m.Called(ctx, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

const testRefreshSecret = "test-refresh-token-hmac-key"

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo, &config.Config{
		RefreshTokenSecret: testRefreshSecret,
	})
}

// --- RegisterUser ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse battery staple",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password // Never stored in plaintext
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Ana",
		Email:    "taken@example.com",
		Password: "correct horse battery staple",
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct horse battery staple"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "ana@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Email, password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authenticated.UserID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the real password")
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "ana@example.com",
		PasswordHash: hash,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Email, "a wrong guess")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	// Unknown email and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthUserHasNoPassword() {
	ctx := context.Background()
	user := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "google@example.com",
		PasswordHash: "", // Google sign-in only
		AuthProvider: domain.ProviderGoogle,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, user.Email, "any password")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- FindOrCreateGoogleUser ---

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingMatchedBySubject() {
	ctx := context.Background()
	subject := "google-subject-123"
	existing := &domain.User{
		UserID:         uuid.NewString(),
		Email:          "ana@example.com",
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: subject,
	}

	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, subject).Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, existing.Email, "Ana", subject)

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesOnFirstSignIn() {
	ctx := context.Background()
	subject := "google-subject-456"

	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, subject).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID == subject &&
			u.EmailVerified &&
			u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, "new@example.com", "New User", subject)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)

	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Refresh tokens ---

func (suite *UserServiceTestSuite) TestIssueAndRedeemRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()
	var storedHash string

	suite.mockRepo.On("UpdateRefreshTokenHash", ctx, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).Return(nil).Once()

	token, err := suite.service.IssueRefreshToken(ctx, userID)
	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.NotEqual(token, storedHash) // Only the hash is persisted

	user := &domain.User{UserID: userID, RefreshTokenHash: storedHash}
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	redeemed, err := suite.service.RedeemRefreshToken(ctx, userID, token)
	suite.Require().NoError(err)
	suite.Equal(userID, redeemed.UserID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRedeemRefreshToken_WrongToken() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, RefreshTokenHash: utils.HashRefreshToken(testRefreshSecret, "the real token")}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	redeemed, err := suite.service.RedeemRefreshToken(ctx, userID, "a forged token")

	suite.Require().Error(err)
	suite.Nil(redeemed)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestRedeemRefreshToken_ClearedHashRejectsAll() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, RefreshTokenHash: ""}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	redeemed, err := suite.service.RedeemRefreshToken(ctx, userID, "any token")

	suite.Require().Error(err)
	suite.Nil(redeemed)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("UpdateRefreshTokenHash", ctx, userID, "", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
