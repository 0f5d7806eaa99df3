package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

type feedbackUsecase struct {
	feedbackRepo domain.FeedbackRepository
	userRepo     domain.UserRepository
}

func NewFeedbackUsecase(feedbackRepo domain.FeedbackRepository, userRepo domain.UserRepository) domain.FeedbackUsecase {
	return &feedbackUsecase{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
	}
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (u *feedbackUsecase) CreateFeedback(ctx context.Context, actor *domain.User, fb *domain.Feedback) (*domain.Feedback, error) {
	if actor.Role != domain.RoleEmployer {
		return nil, apperror.Forbidden("Only employers can leave feedback")
	}
	if fb.FeedbackText == "" {
		return nil, apperror.BadRequest("Feedback text is required")
	}
	if !validRating(fb.Rating) {
		return nil, apperror.BadRequest("Rating must be between 1 and 5")
	}

	target, err := u.userRepo.GetByID(ctx, fb.JobSeekerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job Seeker not found")
		}
		return nil, err
	}
	if target.Role != domain.RoleJobSeeker {
		return nil, apperror.BadRequest("Feedback can only be left for job seekers")
	}

	// Fast path; the store enforces one feedback per (employer, job seeker).
	exists, err := u.feedbackRepo.Exists(ctx, actor.ID, fb.JobSeekerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.Conflict("You have already submitted feedback for this Job Seeker.")
	}

	fb.ID = uuid.NewString()
	fb.EmployerID = actor.ID
	fb.IsActive = true
	fb.CreatedBy = actor.ID

	if err := u.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (u *feedbackUsecase) GetFeedbackForJobSeeker(ctx context.Context, jobSeekerID string) ([]domain.Feedback, error) {
	return u.feedbackRepo.FetchForJobSeeker(ctx, jobSeekerID)
}

func (u *feedbackUsecase) UpdateFeedback(ctx context.Context, actor *domain.User, id string, req *domain.FeedbackUpdateRequest) (*domain.Feedback, error) {
	fb, err := u.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Feedback not found")
		}
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && fb.EmployerID != actor.ID {
		return nil, apperror.Forbidden("You can only update your own feedback")
	}

	changed := false
	if req.FeedbackText != nil && *req.FeedbackText != fb.FeedbackText {
		if *req.FeedbackText == "" {
			return nil, apperror.BadRequest("Feedback text cannot be empty")
		}
		fb.FeedbackText = *req.FeedbackText
		changed = true
	}
	if req.Rating != nil && *req.Rating != fb.Rating {
		if !validRating(*req.Rating) {
			return nil, apperror.BadRequest("Rating must be between 1 and 5")
		}
		fb.Rating = *req.Rating
		changed = true
	}

	if !changed {
		return nil, apperror.NotModified("No changes detected")
	}

	fb.UpdatedBy = &actor.ID
	if err := u.feedbackRepo.Update(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (u *feedbackUsecase) DeleteFeedback(ctx context.Context, actor *domain.User, id string) error {
	fb, err := u.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Feedback not found")
		}
		return err
	}
	if actor.Role != domain.RoleAdmin && fb.EmployerID != actor.ID {
		return apperror.Forbidden("You can only delete your own feedback")
	}

	return u.feedbackRepo.SoftDelete(ctx, id, actor.ID)
}
