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

func admin() *domain.User {
	return &domain.User{ID: "admin1", Role: domain.RoleAdmin, Email: "admin@test.dev"}
}

func TestCreateJob(t *testing.T) {
	t.Run("new jobs start Pending with the default applicant cap", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByEmployerAndTitle", mock.Anything, "emp1", "Backend Engineer").Return(nil, domain.ErrNotFound)
		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.CreateJob(context.Background(), employer(), &domain.Job{
			Title: "Backend Engineer", RequiredSkills: []string{"Go"},
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, job.Status)
		assert.Equal(t, 10, job.MaxApplicants)
		assert.Equal(t, 0, job.CurrentApplicants)
		assert.Equal(t, "emp1", job.EmployerID)
	})

	t.Run("duplicate title for the same employer is 409", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByEmployerAndTitle", mock.Anything, "emp1", "Backend Engineer").Return(&domain.Job{ID: "existing"}, nil)

		_, err := uc.CreateJob(context.Background(), employer(), &domain.Job{
			Title: "Backend Engineer", RequiredSkills: []string{"Go"},
		})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("a job without skills is 400", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		_, err := uc.CreateJob(context.Background(), employer(), &domain.Job{Title: "Backend Engineer"})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("only employers can post", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		_, err := uc.CreateJob(context.Background(), seeker(), &domain.Job{Title: "X"})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestUpdateJob(t *testing.T) {
	t.Run("owner edits pass through", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "emp1", Title: "Old", Status: domain.JobStatusApproved,
		}, nil)
		jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.UpdateJob(context.Background(), employer(), "job1", &domain.JobUpdateRequest{Title: strPtr("New")})
		assert.NoError(t, err)
		assert.Equal(t, "New", job.Title)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "someone-else", Status: domain.JobStatusApproved,
		}, nil)

		_, err := uc.UpdateJob(context.Background(), employer(), "job1", &domain.JobUpdateRequest{Title: strPtr("New")})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("closed jobs are immutable", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "emp1", Status: domain.JobStatusClosed,
		}, nil)

		_, err := uc.UpdateJob(context.Background(), employer(), "job1", &domain.JobUpdateRequest{Title: strPtr("New")})
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("no changed field yields 304", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "emp1", Title: "Same", Status: domain.JobStatusApproved,
		}, nil)

		_, err := uc.UpdateJob(context.Background(), employer(), "job1", &domain.JobUpdateRequest{Title: strPtr("Same")})
		assert.True(t, apperror.IsNoOp(err))
		jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestJobApproval(t *testing.T) {
	t.Run("approval stamps the reviewing admin", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", Status: domain.JobStatusPending,
		}, nil)
		jobRepo.On("SetApproval", mock.Anything, "job1", domain.JobStatusApproved, "admin1", mock.Anything).Return(nil)

		assert.NoError(t, uc.ApproveJob(context.Background(), admin(), "job1"))
		jobRepo.AssertCalled(t, "SetApproval", mock.Anything, "job1", domain.JobStatusApproved, "admin1", mock.Anything)
	})

	t.Run("re-approval overwrites the stamp instead of erroring", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", Status: domain.JobStatusApproved,
		}, nil)
		jobRepo.On("SetApproval", mock.Anything, "job1", domain.JobStatusApproved, "admin1", mock.Anything).Return(nil)

		assert.NoError(t, uc.ApproveJob(context.Background(), admin(), "job1"))
	})

	t.Run("non-admin reviewers get 403", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockJobRepo))

		err := uc.RejectJob(context.Background(), employer(), "job1")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("closed jobs cannot be reviewed", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", Status: domain.JobStatusClosed,
		}, nil)

		err := uc.ApproveJob(context.Background(), admin(), "job1")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
	})
}

func TestCloseJob(t *testing.T) {
	t.Run("owner closes an open job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "emp1", Status: domain.JobStatusApproved,
		}, nil)
		jobRepo.On("SetStatus", mock.Anything, "job1", domain.JobStatusClosed, "emp1").Return(nil)

		assert.NoError(t, uc.CloseJob(context.Background(), employer(), "job1"))
	})

	t.Run("closing an already closed job is 403", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "emp1", Status: domain.JobStatusClosed,
		}, nil)

		err := uc.CloseJob(context.Background(), employer(), "job1")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
		jobRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("closing a rejected job is 403 and keeps the rejection", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "emp1", Status: domain.JobStatusRejected,
		}, nil)

		err := uc.CloseJob(context.Background(), employer(), "job1")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
		jobRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteJob(t *testing.T) {
	t.Run("owner deletes an open job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "emp1", Status: domain.JobStatusApproved,
		}, nil)
		jobRepo.On("SoftDelete", mock.Anything, "job1", "emp1").Return(nil)

		assert.NoError(t, uc.DeleteJob(context.Background(), employer(), "job1"))
	})

	t.Run("closed and rejected jobs cannot be deleted", func(t *testing.T) {
		for _, status := range []domain.JobStatus{domain.JobStatusClosed, domain.JobStatusRejected} {
			jobRepo := new(MockJobRepo)
			uc := usecase.NewJobUsecase(jobRepo)

			jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
				ID: "job1", EmployerID: "emp1", Status: status,
			}, nil)

			err := uc.DeleteJob(context.Background(), employer(), "job1")
			appErr, ok := err.(*apperror.AppError)
			assert.True(t, ok)
			assert.Equal(t, 403, appErr.Code)
			jobRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", mock.Anything, "job1").Return(&domain.Job{
			ID: "job1", EmployerID: "someone-else", Status: domain.JobStatusApproved,
		}, nil)

		err := uc.DeleteJob(context.Background(), employer(), "job1")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})
}
