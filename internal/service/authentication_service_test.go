package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kids-media-server/config"
	"kids-media-server/internal/model"
	"kids-media-server/internal/security"
	"kids-media-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUUID(ctx context.Context, uuid string) (*model.User, error) {
	args := m.Called(ctx, uuid)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, uuid string) (bool, error) {
	args := m.Called(ctx, uuid)
	return args.Bool(0), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateAccessRefreshTokens(userUUID string, email string) (*model.TokensPair, *model.RefreshToken, error) {
	args := m.Called(userUUID, email)

	var tokens *model.TokensPair
	if t := args.Get(0); t != nil {
		tokens = t.(*model.TokensPair)
	}

	var refresh *model.RefreshToken
	if r := args.Get(1); r != nil {
		refresh = r.(*model.RefreshToken)
	}

	return tokens, refresh, args.Error(2)
}

func (m *MockJWTService) ValidateJWT(tokenString string, secret []byte) (*security.Claims, error) {
	args := m.Called(tokenString, secret)
	if claims, ok := args.Get(0).(*security.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) ParseAccessToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if claims, ok := args.Get(0).(*security.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockJWTRepo struct {
	mock.Mock
}

func (m *MockJWTRepo) SaveRefreshToken(ctx context.Context, refreshToken *model.RefreshToken) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockJWTRepo) FindByUUID(ctx context.Context, uuid string) (*model.RefreshToken, error) {
	args := m.Called(ctx, uuid)
	if token, ok := args.Get(0).(*model.RefreshToken); ok {
		return token, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTRepo) MarkRefreshTokenUsedByUUID(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

// ===== HELPERS =====

func newTestAuthService() (*service.AuthenticationService, *MockUserRepository, *MockJWTService, *MockJWTRepo) {
	mockUserRepo := new(MockUserRepository)
	mockJWTService := new(MockJWTService)
	mockJWTRepo := new(MockJWTRepo)

	svc := service.NewAuthenticationService(
		mockJWTRepo,
		&config.AppConfig{
			JWT: config.JWTConfig{
				SecretKey: "secret",
			},
		},
		mockJWTService,
		mockUserRepo,
	)

	return svc, mockUserRepo, mockJWTService, mockJWTRepo
}

// ===== TESTS =====

func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService()

	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").
		Return(nil, errors.New("not found"))

	_, err := svc.Login(context.Background(), "test@example.com", "pass", "agent", "127.0.0.1")

	assert.ErrorIs(t, err, service.ErrUserNotFound)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUserRepo, _, _ := newTestAuthService()

	hash, _ := security.HashPassword("goodpass")
	user := &model.User{UUID: "u1", Email: "test@example.com", PasswordHash: hash}

	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").
		Return(user, nil)

	_, err := svc.Login(context.Background(), "test@example.com", "badpass", "agent", "127.0.0.1")

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService, mockJWTRepo := newTestAuthService()

	hash, _ := security.HashPassword("goodpass")
	user := &model.User{UUID: "u1", Email: "test@example.com", PasswordHash: hash}
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}
	refresh := &model.RefreshToken{
		UUID:      "r1",
		UserUUID:  "u1",
		TokenHash: "ref",
		ExpireAt:  time.Now().Add(24 * time.Hour),
	}

	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").
		Return(user, nil)
	mockJWTService.On("GenerateAccessRefreshTokens", "u1", "test@example.com").
		Return(tokens, refresh, nil)
	mockJWTRepo.On("SaveRefreshToken", mock.Anything, refresh).
		Return(nil)

	result, err := svc.Login(context.Background(), "test@example.com", "goodpass", "agent", "127.0.0.1")

	assert.NoError(t, err)
	assert.Equal(t, tokens, result)
	assert.Equal(t, "agent", refresh.UserAgent)
	assert.Equal(t, "127.0.0.1", refresh.IpAddress)

	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
	mockJWTRepo.AssertExpectations(t)
}

func TestLogin_SaveRefreshTokenError(t *testing.T) {
	svc, mockUserRepo, mockJWTService, mockJWTRepo := newTestAuthService()

	hash, _ := security.HashPassword("goodpass")
	user := &model.User{UUID: "u1", Email: "test@example.com", PasswordHash: hash}
	tokens := &model.TokensPair{AccessToken: "acc", RefreshToken: "ref"}
	refresh := &model.RefreshToken{UUID: "r1", UserUUID: "u1"}

	mockUserRepo.On("FindByEmail", mock.Anything, "test@example.com").
		Return(user, nil)
	mockJWTService.On("GenerateAccessRefreshTokens", "u1", "test@example.com").
		Return(tokens, refresh, nil)
	mockJWTRepo.On("SaveRefreshToken", mock.Anything, refresh).
		Return(errors.New("db error"))

	_, err := svc.Login(context.Background(), "test@example.com", "goodpass", "agent", "127.0.0.1")

	assert.Error(t, err)
}

// ===== Тесты RefreshToken =====

func TestRefreshToken_ValidateJWTError(t *testing.T) {
	svc, _, mockJWTService, _ := newTestAuthService()

	mockJWTService.On("ValidateJWT", "badtoken", []byte("secret")).
		Return(nil, errors.New("invalid"))

	_, err := svc.RefreshToken(context.Background(), "agent", "127.0.0.1", "badtoken", "refresh")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "не удалось провалидировать токен")
}

func TestRefreshToken_UsedToken(t *testing.T) {
	svc, _, mockJWTService, mockJWTRepo := newTestAuthService()

	claims := &security.Claims{UserUUID: "u1", RefreshTokenUUID: "r1"}
	mockJWTService.On("ValidateJWT", "access", []byte("secret")).Return(claims, nil)
	mockJWTRepo.On("FindByUUID", mock.Anything, "r1").
		Return(&model.RefreshToken{UUID: "r1", Used: true}, nil)

	_, err := svc.RefreshToken(context.Background(), "agent", "127.0.0.1", "access", "refresh")

	assert.Error(t, err)
}

func TestRefreshToken_UserAgentMismatchRevokes(t *testing.T) {
	svc, _, mockJWTService, mockJWTRepo := newTestAuthService()

	claims := &security.Claims{UserUUID: "u1", RefreshTokenUUID: "r1"}
	stored := &model.RefreshToken{
		UUID:      "r1",
		UserAgent: "agent",
		IpAddress: "127.0.0.1",
		ExpireAt:  time.Now().Add(time.Hour),
	}

	mockJWTService.On("ValidateJWT", "access", []byte("secret")).Return(claims, nil)
	mockJWTRepo.On("FindByUUID", mock.Anything, "r1").Return(stored, nil)
	mockJWTRepo.On("MarkRefreshTokenUsedByUUID", mock.Anything, "r1").Return(nil)

	_, err := svc.RefreshToken(context.Background(), "other-agent", "127.0.0.1", "access", "refresh")

	assert.Error(t, err)
	mockJWTRepo.AssertCalled(t, "MarkRefreshTokenUsedByUUID", mock.Anything, "r1")
}

// ===== Тесты Logout =====

func TestLogout_Success(t *testing.T) {
	svc, _, _, mockJWTRepo := newTestAuthService()

	mockJWTRepo.On("MarkRefreshTokenUsedByUUID", mock.Anything, "r1").Return(nil)

	err := svc.Logout(context.Background(), "r1")

	assert.NoError(t, err)
	mockJWTRepo.AssertExpectations(t)
}
