package domain

import (
	"context"
	"time"
)

// JobStatus is the job posting lifecycle state.
type JobStatus string

const (
	JobStatusPending  JobStatus = "Pending"
	JobStatusApproved JobStatus = "Approved"
	JobStatusRejected JobStatus = "Rejected"
	JobStatusClosed   JobStatus = "Closed"
)

// AcceptsApplications reports whether new applications may target a job in
// this state. Closed and Rejected jobs accept no application traffic at all.
func (s JobStatus) AcceptsApplications() bool {
	return s != JobStatusClosed && s != JobStatusRejected
}

type Job struct {
	ID              string  `json:"id"`
	EmployerID      string  `json:"employer_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Location        string  `json:"location"`
	Industry        string  `json:"industry"`
	ExperienceLevel string  `json:"experience_level"` // Entry / Mid / Senior
	SalaryRange     *string `json:"salary_range,omitempty"`

	RequiredSkills     []string `json:"required_skills"`
	RequiredExperience int      `json:"required_experience"`

	MaxApplicants     int `json:"max_applicants"`
	CurrentApplicants int `json:"current_applicants"`

	Status     JobStatus  `json:"status"`
	ApprovedBy *string    `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedBy *string    `json:"rejected_by,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`

	Audit

	// Joined data for list responses
	EmployerName *string `json:"employer_name,omitempty"`
	CompanyName  *string `json:"company_name,omitempty"`
}

// JobUpdateRequest is the typed employer-update payload. Unknown JSON fields
// are rejected at the boundary.
type JobUpdateRequest struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Location        *string `json:"location,omitempty"`
	Industry        *string `json:"industry,omitempty"`
	ExperienceLevel *string `json:"experience_level,omitempty"`
	SalaryRange     *string `json:"salary_range,omitempty"`
}

// JobSearchFilter narrows the job-seeker search. Location and industry are
// case-insensitive partial matches; experience level is an equality match.
type JobSearchFilter struct {
	Location        string
	Industry        string
	ExperienceLevel string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	GetByEmployerAndTitle(ctx context.Context, employerID, title string) (*Job, error)
	Fetch(ctx context.Context) ([]Job, error)
	Search(ctx context.Context, filter JobSearchFilter) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	// SetApproval stamps the approving or rejecting admin and flips status.
	SetApproval(ctx context.Context, id string, status JobStatus, actorID string, at time.Time) error
	SetStatus(ctx context.Context, id string, status JobStatus, actorID string) error
	// IncrementApplicants atomically bumps current_applicants and returns the
	// new count. This is the authoritative guard against lost updates under
	// concurrent acceptances.
	IncrementApplicants(ctx context.Context, id string) (int, error)
	SoftDelete(ctx context.Context, id string, actorID string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor *User, job *Job) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	SearchJobs(ctx context.Context, filter JobSearchFilter) ([]Job, error)
	UpdateJob(ctx context.Context, actor *User, id string, req *JobUpdateRequest) (*Job, error)
	ApproveJob(ctx context.Context, actor *User, id string) error
	RejectJob(ctx context.Context, actor *User, id string) error
	CloseJob(ctx context.Context, actor *User, id string) error
	DeleteJob(ctx context.Context, actor *User, id string) error
}
