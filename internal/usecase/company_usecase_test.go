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

func TestRegisterCompany(t *testing.T) {
	t.Run("admin registers an active company", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyProfileUsecase(companyRepo)

		companyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CompanyProfile")).Return(nil)

		profile, err := uc.RegisterCompany(context.Background(), admin(), &domain.CompanyProfile{
			CompanyName: "ACME", Industry: "Tech", CompanySize: "11-50", Location: "Berlin",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.CompanyStatusActive, profile.Status)
		assert.NotEmpty(t, profile.ID)
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		uc := usecase.NewCompanyProfileUsecase(new(MockCompanyRepo))

		_, err := uc.RegisterCompany(context.Background(), employer(), &domain.CompanyProfile{
			CompanyName: "ACME", CompanySize: "11-50",
		})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("company size must come from the closed set", func(t *testing.T) {
		uc := usecase.NewCompanyProfileUsecase(new(MockCompanyRepo))

		_, err := uc.RegisterCompany(context.Background(), admin(), &domain.CompanyProfile{
			CompanyName: "ACME", CompanySize: "huge",
		})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestUpdateCompany(t *testing.T) {
	existing := func() *domain.CompanyProfile {
		return &domain.CompanyProfile{
			ID: "co1", CompanyName: "ACME", Industry: "Tech",
			CompanySize: "11-50", Location: "Berlin", Status: domain.CompanyStatusActive,
		}
	}

	t.Run("admin edits pass through", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyProfileUsecase(companyRepo)

		companyRepo.On("GetByID", mock.Anything, "co1").Return(existing(), nil)
		companyRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CompanyProfile")).Return(nil)

		profile, err := uc.UpdateCompany(context.Background(), admin(), "co1", &domain.CompanyUpdateRequest{
			Location: strPtr("Munich"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Munich", profile.Location)
	})

	t.Run("identical payload yields 304", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyProfileUsecase(companyRepo)

		companyRepo.On("GetByID", mock.Anything, "co1").Return(existing(), nil)

		_, err := uc.UpdateCompany(context.Background(), admin(), "co1", &domain.CompanyUpdateRequest{
			Location: strPtr("Berlin"),
		})
		assert.True(t, apperror.IsNoOp(err))
		companyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewCompanyProfileUsecase(companyRepo)

		companyRepo.On("GetByID", mock.Anything, "co1").Return(existing(), nil)

		_, err := uc.UpdateCompany(context.Background(), admin(), "co1", &domain.CompanyUpdateRequest{
			Status: strPtr("Paused"),
		})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
	})
}
