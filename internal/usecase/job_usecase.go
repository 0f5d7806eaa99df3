package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

// defaultMaxApplicants caps a posting when the employer does not set one.
const defaultMaxApplicants = 10

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor *domain.User, job *domain.Job) (*domain.Job, error) {
	if actor.Role != domain.RoleEmployer {
		return nil, apperror.Forbidden("Only employers can post jobs")
	}
	if job.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if len(job.RequiredSkills) == 0 {
		return nil, apperror.BadRequest("At least one required skill must be provided")
	}

	// One posting per title per employer.
	existing, err := u.jobRepo.GetByEmployerAndTitle(ctx, actor.ID, job.Title)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("You have already posted a job with this title")
	}

	if job.MaxApplicants <= 0 {
		job.MaxApplicants = defaultMaxApplicants
	}

	job.ID = uuid.NewString()
	job.EmployerID = actor.ID
	job.Status = domain.JobStatusPending
	job.CurrentApplicants = 0
	job.IsActive = true
	job.CreatedBy = actor.ID

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.Fetch(ctx)
}

func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobSearchFilter) ([]domain.Job, error) {
	return u.jobRepo.Search(ctx, filter)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actor *domain.User, id string, req *domain.JobUpdateRequest) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && job.EmployerID != actor.ID {
		return nil, apperror.Forbidden("You do not own this job posting")
	}
	if job.Status == domain.JobStatusClosed || job.Status == domain.JobStatusRejected {
		return nil, apperror.Forbidden("Closed or rejected jobs cannot be edited")
	}

	changed := false
	if req.Title != nil && *req.Title != job.Title {
		if *req.Title == "" {
			return nil, apperror.BadRequest("Title cannot be empty")
		}
		job.Title = *req.Title
		changed = true
	}
	if req.Description != nil && *req.Description != job.Description {
		job.Description = *req.Description
		changed = true
	}
	if req.Location != nil && *req.Location != job.Location {
		job.Location = *req.Location
		changed = true
	}
	if req.Industry != nil && *req.Industry != job.Industry {
		job.Industry = *req.Industry
		changed = true
	}
	if req.ExperienceLevel != nil && *req.ExperienceLevel != job.ExperienceLevel {
		job.ExperienceLevel = *req.ExperienceLevel
		changed = true
	}
	if req.SalaryRange != nil && !equalStrPtr(req.SalaryRange, job.SalaryRange) {
		job.SalaryRange = req.SalaryRange
		changed = true
	}

	if !changed {
		return nil, apperror.NotModified("No changes detected")
	}

	job.UpdatedBy = &actor.ID
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// ApproveJob stamps the approving admin and timestamp even when the job is
// already approved; re-approval overwrites the stamp rather than erroring.
func (u *jobUsecase) ApproveJob(ctx context.Context, actor *domain.User, id string) error {
	return u.setApproval(ctx, actor, id, domain.JobStatusApproved)
}

func (u *jobUsecase) RejectJob(ctx context.Context, actor *domain.User, id string) error {
	return u.setApproval(ctx, actor, id, domain.JobStatusRejected)
}

func (u *jobUsecase) setApproval(ctx context.Context, actor *domain.User, id string, status domain.JobStatus) error {
	if actor.Role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can review job postings")
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if job.Status == domain.JobStatusClosed {
		return apperror.InvalidState("Closed jobs cannot be reviewed")
	}

	return u.jobRepo.SetApproval(ctx, id, status, actor.ID, time.Now())
}

func (u *jobUsecase) CloseJob(ctx context.Context, actor *domain.User, id string) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if actor.Role != domain.RoleAdmin && job.EmployerID != actor.ID {
		return apperror.Forbidden("You do not own this job posting")
	}
	if job.Status == domain.JobStatusClosed || job.Status == domain.JobStatusRejected {
		return apperror.Forbidden("Closed or rejected jobs cannot be modified")
	}

	return u.jobRepo.SetStatus(ctx, id, domain.JobStatusClosed, actor.ID)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actor *domain.User, id string) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	if actor.Role != domain.RoleAdmin && job.EmployerID != actor.ID {
		return apperror.Forbidden("You do not own this job posting")
	}
	if job.Status == domain.JobStatusClosed || job.Status == domain.JobStatusRejected {
		return apperror.Forbidden("Closed or rejected jobs cannot be deleted")
	}

	return u.jobRepo.SoftDelete(ctx, id, actor.ID)
}
