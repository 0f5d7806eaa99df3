package domain

import "time"

// InterviewInvitation is one-to-one with an application and is only ever
// created by the employer who owns the application's job.
type InterviewInvitation struct {
	ID                string    `json:"id"`
	ApplicationID     string    `json:"application_id"`
	EmployerID        string    `json:"employer_id"`
	ScheduledDate     time.Time `json:"scheduled_date"`
	InterviewLocation *string   `json:"interview_location,omitempty"`
	Message           *string   `json:"message,omitempty"`

	Audit
}
