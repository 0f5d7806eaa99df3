package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testTokens() *token.Manager {
	return token.NewManager("test-secret")
}

func TestRegister(t *testing.T) {
	t.Run("job seeker registration issues a session token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cache := new(MockCache)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), cache, testTokens())

		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
		userRepo.On("UpdateSession", mock.Anything, mock.Anything, mock.Anything, true).Return(nil)
		cache.On("Set", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		result, err := uc.Register(context.Background(), &domain.RegisterRequest{
			Name: "Jane", Email: "jane@test.dev", Password: "secret-password", Role: domain.RoleJobSeeker,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, domain.RoleJobSeeker, result.User.Role)
		assert.NotEqual(t, "secret-password", result.User.PasswordHash)
	})

	t.Run("employer registration requires an existing company", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewAuthUsecase(userRepo, companyRepo, new(MockCache), testTokens())

		_, err := uc.Register(context.Background(), &domain.RegisterRequest{
			Name: "ACME HR", Email: "hr@acme.dev", Password: "secret-password", Role: domain.RoleEmployer,
		})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)

		companyRepo.On("GetByID", mock.Anything, "missing-co").Return(nil, domain.ErrNotFound)
		_, err = uc.Register(context.Background(), &domain.RegisterRequest{
			Name: "ACME HR", Email: "hr@acme.dev", Password: "secret-password",
			Role: domain.RoleEmployer, CompanyID: strPtr("missing-co"),
		})
		appErr, ok = err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("admin self-registration is forbidden", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), new(MockCompanyRepo), new(MockCache), testTokens())

		_, err := uc.Register(context.Background(), &domain.RegisterRequest{
			Name: "Mallory", Email: "m@test.dev", Password: "secret-password", Role: domain.RoleAdmin,
		})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	storedUser := func() *domain.User {
		u := &domain.User{
			ID: "u1", Role: domain.RoleJobSeeker, Email: "jane@test.dev",
			PasswordHash: string(hash), Name: "Jane",
		}
		u.IsActive = true
		return u
	}

	t.Run("valid credentials warm the identity cache", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cache := new(MockCache)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), cache, testTokens())

		userRepo.On("GetByEmailAndRole", mock.Anything, "jane@test.dev", domain.RoleJobSeeker).Return(storedUser(), nil)
		userRepo.On("UpdateSession", mock.Anything, "u1", mock.Anything, true).Return(nil)
		cache.On("Set", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		result, err := uc.Login(context.Background(), "jane@test.dev", "correct-password", domain.RoleJobSeeker)
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		cache.AssertCalled(t, "Set", mock.Anything, mock.AnythingOfType("*domain.User"))
	})

	t.Run("wrong password is 401 without leaking which part failed", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), new(MockCache), testTokens())

		userRepo.On("GetByEmailAndRole", mock.Anything, "jane@test.dev", domain.RoleJobSeeker).Return(storedUser(), nil)

		_, err := uc.Login(context.Background(), "jane@test.dev", "wrong", domain.RoleJobSeeker)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("role mismatch is also 401", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), new(MockCache), testTokens())

		userRepo.On("GetByEmailAndRole", mock.Anything, "jane@test.dev", domain.RoleEmployer).Return(nil, domain.ErrNotFound)

		_, err := uc.Login(context.Background(), "jane@test.dev", "correct-password", domain.RoleEmployer)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 401, appErr.Code)
	})

	t.Run("blocked accounts cannot log in", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), new(MockCache), testTokens())

		blocked := storedUser()
		blocked.IsBlocked = true
		userRepo.On("GetByEmailAndRole", mock.Anything, "jane@test.dev", domain.RoleJobSeeker).Return(blocked, nil)

		_, err := uc.Login(context.Background(), "jane@test.dev", "correct-password", domain.RoleJobSeeker)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestGetSessionUser(t *testing.T) {
	t.Run("cache hit skips the database", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cache := new(MockCache)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), cache, testTokens())

		cached := &domain.User{ID: "u1", Role: domain.RoleJobSeeker}
		cache.On("Get", mock.Anything, domain.RoleJobSeeker, "u1").Return(cached, nil)

		user, err := uc.GetSessionUser(context.Background(), domain.RoleJobSeeker, "u1")
		assert.NoError(t, err)
		assert.Equal(t, cached, user)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss falls through and re-populates", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cache := new(MockCache)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), cache, testTokens())

		stored := &domain.User{ID: "u1", Role: domain.RoleJobSeeker}
		cache.On("Get", mock.Anything, domain.RoleJobSeeker, "u1").Return(nil, nil)
		userRepo.On("GetByID", mock.Anything, "u1").Return(stored, nil)
		cache.On("Set", mock.Anything, stored).Return(nil)

		user, err := uc.GetSessionUser(context.Background(), domain.RoleJobSeeker, "u1")
		assert.NoError(t, err)
		assert.Equal(t, stored, user)
		cache.AssertCalled(t, "Set", mock.Anything, stored)
	})
}

func TestLogout(t *testing.T) {
	userRepo := new(MockUserRepo)
	cache := new(MockCache)
	uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), cache, testTokens())

	userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleJobSeeker}, nil)
	userRepo.On("UpdateSession", mock.Anything, "u1", (*string)(nil), false).Return(nil)
	cache.On("Invalidate", mock.Anything, domain.RoleJobSeeker, "u1").Return(nil)

	assert.NoError(t, uc.Logout(context.Background(), "u1"))
	cache.AssertCalled(t, "Invalidate", mock.Anything, domain.RoleJobSeeker, "u1")
}

func TestEnsureAdminExists(t *testing.T) {
	t.Run("skips when an admin row exists", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), new(MockCache), testTokens())

		userRepo.On("CountByRole", mock.Anything, domain.RoleAdmin).Return(int64(1), nil)

		assert.NoError(t, uc.EnsureAdminExists(context.Background(), "admin@test.dev", "password"))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("seeds the bootstrap admin from configuration", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), new(MockCache), testTokens())

		userRepo.On("CountByRole", mock.Anything, domain.RoleAdmin).Return(int64(0), nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, domain.RoleAdmin, u.Role)
			assert.Equal(t, "admin@test.dev", u.Email)
		})

		assert.NoError(t, uc.EnsureAdminExists(context.Background(), "admin@test.dev", "password"))
	})

	t.Run("missing credentials only log a warning", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockCompanyRepo), new(MockCache), testTokens())

		userRepo.On("CountByRole", mock.Anything, domain.RoleAdmin).Return(int64(0), nil)

		assert.NoError(t, uc.EnsureAdminExists(context.Background(), "", ""))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
