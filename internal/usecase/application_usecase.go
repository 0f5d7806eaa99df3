package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	appRepo    domain.ApplicationRepository
	jobRepo    domain.JobRepository
	inviteRepo domain.InterviewInvitationRepository
	notifier   domain.Notifier
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, inviteRepo domain.InterviewInvitationRepository, notifier domain.Notifier) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:    appRepo,
		jobRepo:    jobRepo,
		inviteRepo: inviteRepo,
		notifier:   notifier,
	}
}

func (u *applicationUsecase) SubmitApplication(ctx context.Context, actor *domain.User, jobID string) (*domain.Application, error) {
	if actor.Role != domain.RoleJobSeeker {
		return nil, apperror.Forbidden("Only job seekers can apply for jobs")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	if !job.Status.AcceptsApplications() {
		return nil, apperror.Forbidden("This job is no longer accepting applications.")
	}
	if job.MaxApplicants > 0 && job.CurrentApplicants >= job.MaxApplicants {
		return nil, apperror.Forbidden("This job has reached its applicant limit.")
	}

	// Fast path only; the store's uniqueness guard is authoritative under
	// concurrent submissions.
	exists, err := u.appRepo.Exists(ctx, jobID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("You have already applied for this job.")
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		JobSeekerID: actor.ID,
		Status:      domain.ApplicationStatusApplied,
	}
	app.IsActive = true
	app.CreatedBy = actor.ID

	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) ListApplications(ctx context.Context, actor *domain.User) ([]domain.Application, error) {
	if actor.Role != domain.RoleEmployer {
		return nil, apperror.Forbidden("Only employers can review applications")
	}
	return u.appRepo.FetchByEmployer(ctx, actor.ID)
}

// FilterApplications narrows the employer's applications in memory. Every
// supplied predicate must pass; skill matching is case-insensitive
// any-overlap.
func (u *applicationUsecase) FilterApplications(ctx context.Context, actor *domain.User, filter domain.ApplicationFilter) ([]domain.Application, error) {
	apps, err := u.ListApplications(ctx, actor)
	if err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperror.BadRequest("Invalid application status")
	}

	filtered := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		if filter.MinExperience != nil {
			if app.SeekerExperience == nil || *app.SeekerExperience < *filter.MinExperience {
				continue
			}
		}
		if len(filter.Skills) > 0 && !hasSkillOverlap(app.SeekerSkills, filter.Skills) {
			continue
		}
		if filter.Status != nil && app.Status != *filter.Status {
			continue
		}
		filtered = append(filtered, app)
	}
	return filtered, nil
}

func hasSkillOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(w)) {
				return true
			}
		}
	}
	return false
}

func (u *applicationUsecase) UpdateApplicationStatus(ctx context.Context, actor *domain.User, applicationID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid application status")
	}

	app, job, err := u.getOwnedApplication(ctx, actor, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status == status {
		return nil, apperror.NotModified("Application already has this status")
	}

	if err := u.appRepo.UpdateStatus(ctx, applicationID, status, actor.ID); err != nil {
		return nil, err
	}
	app.Status = status

	// An acceptance consumes one applicant slot; the job closes itself when
	// the cap is reached.
	if status == domain.ApplicationStatusAccepted {
		count, err := u.jobRepo.IncrementApplicants(ctx, job.ID)
		if err != nil {
			return nil, err
		}
		if job.MaxApplicants > 0 && count >= job.MaxApplicants && job.Status != domain.JobStatusClosed {
			if err := u.jobRepo.SetStatus(ctx, job.ID, domain.JobStatusClosed, actor.ID); err != nil {
				return nil, err
			}
		}
	}

	if app.SeekerEmail != nil {
		u.notifier.NotifyApplicationStatus(*app.SeekerEmail, job.Title, status)
	}
	return app, nil
}

// CloseApplicationIfFull rejects the application when its job has exhausted
// the applicant cap. A job below cap is a no-op, not an error.
func (u *applicationUsecase) CloseApplicationIfFull(ctx context.Context, actor *domain.User, applicationID string) (*domain.CloseOutcome, error) {
	app, job, err := u.getOwnedApplication(ctx, actor, applicationID)
	if err != nil {
		return nil, err
	}

	outcome := &domain.CloseOutcome{
		CurrentApplicants: job.CurrentApplicants,
		MaxApplicants:     job.MaxApplicants,
	}
	if job.MaxApplicants <= 0 || job.CurrentApplicants < job.MaxApplicants {
		return outcome, nil
	}

	if err := u.appRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusRejected, actor.ID); err != nil {
		return nil, err
	}
	outcome.Closed = true

	if app.SeekerEmail != nil {
		u.notifier.NotifyApplicationStatus(*app.SeekerEmail, job.Title, domain.ApplicationStatusRejected)
	}
	return outcome, nil
}

func (u *applicationUsecase) ScheduleInterview(ctx context.Context, actor *domain.User, applicationID string, req *domain.ScheduleInterviewRequest) (*domain.InterviewInvitation, error) {
	app, job, err := u.getOwnedApplication(ctx, actor, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != domain.ApplicationStatusAccepted {
		return nil, apperror.InvalidState("Interviews can only be scheduled for accepted applications")
	}

	// Fast path; the store enforces one invitation per application.
	existing, err := u.inviteRepo.GetByApplicationID(ctx, applicationID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("An interview is already scheduled for this application.")
	}

	invite := &domain.InterviewInvitation{
		ID:                uuid.NewString(),
		ApplicationID:     applicationID,
		EmployerID:        actor.ID,
		ScheduledDate:     req.ScheduledDate,
		InterviewLocation: req.InterviewLocation,
		Message:           req.Message,
	}
	invite.IsActive = true
	invite.CreatedBy = actor.ID

	if err := u.inviteRepo.Create(ctx, invite); err != nil {
		return nil, err
	}
	if err := u.appRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusInterviewScheduled, actor.ID); err != nil {
		return nil, err
	}

	if app.SeekerEmail != nil {
		u.notifier.NotifyInterviewScheduled(*app.SeekerEmail, job.Title, invite)
	}
	return invite, nil
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, actor *domain.User, applicationID string) error {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}

	if actor.ID != app.JobSeekerID && actor.Role != domain.RoleAdmin {
		job, err := u.jobRepo.GetByID(ctx, app.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.NotFound("Job not found")
			}
			return err
		}
		if job.EmployerID != actor.ID {
			return apperror.Forbidden("You cannot delete this application")
		}
	}

	return u.appRepo.SoftDelete(ctx, applicationID, actor.ID)
}

// getOwnedApplication loads the application and its job and verifies the
// actor is the employer who owns the posting. Existence is checked before
// ownership so missing resources stay 404.
func (u *applicationUsecase) getOwnedApplication(ctx context.Context, actor *domain.User, applicationID string) (*domain.Application, *domain.Job, error) {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Application not found")
		}
		return nil, nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.NotFound("Job not found")
		}
		return nil, nil, err
	}
	if job.EmployerID != actor.ID {
		return nil, nil, apperror.Forbidden("You do not own this job posting")
	}
	return app, job, nil
}
