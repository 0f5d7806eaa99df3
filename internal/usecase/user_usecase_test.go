package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListUsers(t *testing.T) {
	t.Run("admin sees active and soft-deleted accounts separately", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo, new(MockCompanyRepo), new(MockCache), new(MockFileRemover))

		userRepo.On("FetchActive", mock.Anything).Return([]domain.User{{ID: "u1"}}, nil)
		userRepo.On("FetchDeleted", mock.Anything).Return([]domain.User{{ID: "u2"}}, nil)

		listing, err := uc.ListUsers(context.Background(), admin())
		assert.NoError(t, err)
		assert.Len(t, listing.ActiveUsers, 1)
		assert.Len(t, listing.DeletedUsers, 1)
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockCompanyRepo), new(MockCache), new(MockFileRemover))

		_, err := uc.ListUsers(context.Background(), employer())
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("users update their own profile and the cache entry drops", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cache := new(MockCache)
		uc := usecase.NewUserUsecase(userRepo, new(MockCompanyRepo), cache, new(MockFileRemover))

		target := &domain.User{ID: "seeker1", Role: domain.RoleJobSeeker, Name: "Old"}
		userRepo.On("GetByID", mock.Anything, "seeker1").Return(target, nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
		cache.On("Invalidate", mock.Anything, domain.RoleJobSeeker, "seeker1").Return(nil)

		updated, err := uc.UpdateUser(context.Background(), seeker(), "seeker1", &domain.UserUpdateRequest{Name: strPtr("New")})
		assert.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
		cache.AssertCalled(t, "Invalidate", mock.Anything, domain.RoleJobSeeker, "seeker1")
	})

	t.Run("users cannot update someone else", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockCompanyRepo), new(MockCache), new(MockFileRemover))

		_, err := uc.UpdateUser(context.Background(), seeker(), "other", &domain.UserUpdateRequest{Name: strPtr("X")})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("only admins can block accounts", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockCompanyRepo), new(MockCache), new(MockFileRemover))

		blocked := true
		_, err := uc.UpdateUser(context.Background(), seeker(), "seeker1", &domain.UserUpdateRequest{IsBlocked: &blocked})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("identical payload yields 304", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo, new(MockCompanyRepo), new(MockCache), new(MockFileRemover))

		userRepo.On("GetByID", mock.Anything, "seeker1").Return(&domain.User{
			ID: "seeker1", Role: domain.RoleJobSeeker, Name: "Same",
		}, nil)

		_, err := uc.UpdateUser(context.Background(), seeker(), "seeker1", &domain.UserUpdateRequest{Name: strPtr("Same")})
		assert.True(t, apperror.IsNoOp(err))
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeletionFlow(t *testing.T) {
	t.Run("request flags the account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cache := new(MockCache)
		uc := usecase.NewUserUsecase(userRepo, new(MockCompanyRepo), cache, new(MockFileRemover))

		userRepo.On("SetDeletionRequested", mock.Anything, "seeker1").Return(nil)
		cache.On("Invalidate", mock.Anything, domain.RoleJobSeeker, "seeker1").Return(nil)

		assert.NoError(t, uc.RequestDeletion(context.Background(), seeker()))
	})

	t.Run("double request is a no-op", func(t *testing.T) {
		uc := usecase.NewUserUsecase(new(MockUserRepo), new(MockCompanyRepo), new(MockCache), new(MockFileRemover))

		actor := seeker()
		actor.DeletionRequested = true
		err := uc.RequestDeletion(context.Background(), actor)
		assert.True(t, apperror.IsNoOp(err))
	})

	t.Run("approval erases files then hard-deletes the row", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cache := new(MockCache)
		files := new(MockFileRemover)
		uc := usecase.NewUserUsecase(userRepo, new(MockCompanyRepo), cache, files)

		target := &domain.User{
			ID: "seeker1", Role: domain.RoleJobSeeker,
			ProfilePic: strPtr("pic.jpg"), Resume: strPtr("cv.pdf"),
			DeletionRequested: true,
		}
		userRepo.On("GetByID", mock.Anything, "seeker1").Return(target, nil)
		files.On("Delete", "pic.jpg").Return(nil)
		files.On("Delete", "cv.pdf").Return(nil)
		userRepo.On("HardDelete", mock.Anything, "seeker1").Return(nil)
		cache.On("Invalidate", mock.Anything, domain.RoleJobSeeker, "seeker1").Return(nil)

		assert.NoError(t, uc.ApproveDeletion(context.Background(), admin(), "seeker1"))
		files.AssertCalled(t, "Delete", "pic.jpg")
		files.AssertCalled(t, "Delete", "cv.pdf")
		userRepo.AssertCalled(t, "HardDelete", mock.Anything, "seeker1")
	})

	t.Run("approval requires a prior request", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo, new(MockCompanyRepo), new(MockCache), new(MockFileRemover))

		userRepo.On("GetByID", mock.Anything, "seeker1").Return(&domain.User{
			ID: "seeker1", Role: domain.RoleJobSeeker,
		}, nil)

		err := uc.ApproveDeletion(context.Background(), admin(), "seeker1")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
	})
}
