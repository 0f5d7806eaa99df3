package domain

import (
	"context"
	"time"
)

// ApplicationStatus is the application lifecycle state.
type ApplicationStatus string

const (
	ApplicationStatusApplied            ApplicationStatus = "Applied"
	ApplicationStatusInReview           ApplicationStatus = "In Review"
	ApplicationStatusAccepted           ApplicationStatus = "Accepted"
	ApplicationStatusInterviewScheduled ApplicationStatus = "Interview Scheduled"
	ApplicationStatusRejected           ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusInReview, ApplicationStatusAccepted,
		ApplicationStatusInterviewScheduled, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links a job seeker to a job posting.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	JobSeekerID string            `json:"job_seeker_id"`
	Status      ApplicationStatus `json:"status"`

	Audit

	// Joined data for employer review
	SeekerName       *string  `json:"seeker_name,omitempty"`
	SeekerEmail      *string  `json:"seeker_email,omitempty"`
	SeekerExperience *int     `json:"seeker_experience,omitempty"`
	SeekerSkills     []string `json:"seeker_skills,omitempty"`
	JobTitle         *string  `json:"job_title,omitempty"`
}

// ApplicationFilter composes conjunctively; every supplied predicate must
// pass. Skill matching is case-insensitive any-overlap.
type ApplicationFilter struct {
	MinExperience *int
	Skills        []string
	Status        *ApplicationStatus
}

// ScheduleInterviewRequest carries the interview details for an accepted
// application.
type ScheduleInterviewRequest struct {
	ScheduledDate     time.Time `json:"scheduled_date" binding:"required"`
	InterviewLocation *string   `json:"interview_location,omitempty"`
	Message           *string   `json:"message,omitempty"`
}

// CloseOutcome distinguishes a cap-reached rejection from a no-op.
type CloseOutcome struct {
	Closed            bool `json:"closed"`
	CurrentApplicants int  `json:"current_applicants"`
	MaxApplicants     int  `json:"max_applicants"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	// FetchByEmployer returns applications against the employer's jobs with
	// joined seeker data, newest first.
	FetchByEmployer(ctx context.Context, employerID string) ([]Application, error)
	Exists(ctx context.Context, jobID, jobSeekerID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus, actorID string) error
	SoftDelete(ctx context.Context, id string, actorID string) error
}

type InterviewInvitationRepository interface {
	Create(ctx context.Context, invite *InterviewInvitation) error
	GetByApplicationID(ctx context.Context, applicationID string) (*InterviewInvitation, error)
}

type ApplicationUsecase interface {
	// Job seeker operations
	SubmitApplication(ctx context.Context, actor *User, jobID string) (*Application, error)

	// Employer operations
	ListApplications(ctx context.Context, actor *User) ([]Application, error)
	FilterApplications(ctx context.Context, actor *User, filter ApplicationFilter) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, actor *User, applicationID string, status ApplicationStatus) (*Application, error)
	CloseApplicationIfFull(ctx context.Context, actor *User, applicationID string) (*CloseOutcome, error)
	ScheduleInterview(ctx context.Context, actor *User, applicationID string, req *ScheduleInterviewRequest) (*InterviewInvitation, error)
	DeleteApplication(ctx context.Context, actor *User, applicationID string) error
}
