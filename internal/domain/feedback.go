package domain

import "context"

// Feedback is an employer's rating of a job seeker. One per
// (employer, job seeker) pair.
type Feedback struct {
	ID           string `json:"id"`
	EmployerID   string `json:"employer_id"`
	JobSeekerID  string `json:"job_seeker_id"`
	FeedbackText string `json:"feedback_text"`
	Rating       int    `json:"rating"` // 1-5

	Audit

	EmployerName *string `json:"employer_name,omitempty"`
}

type FeedbackUpdateRequest struct {
	FeedbackText *string `json:"feedback_text,omitempty"`
	Rating       *int    `json:"rating,omitempty"`
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *Feedback) error
	GetByID(ctx context.Context, id string) (*Feedback, error)
	Exists(ctx context.Context, employerID, jobSeekerID string) (bool, error)
	FetchForJobSeeker(ctx context.Context, jobSeekerID string) ([]Feedback, error)
	Update(ctx context.Context, fb *Feedback) error
	SoftDelete(ctx context.Context, id string, actorID string) error
}

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, actor *User, fb *Feedback) (*Feedback, error)
	GetFeedbackForJobSeeker(ctx context.Context, jobSeekerID string) ([]Feedback, error)
	UpdateFeedback(ctx context.Context, actor *User, id string, req *FeedbackUpdateRequest) (*Feedback, error)
	DeleteFeedback(ctx context.Context, actor *User, id string) error
}
