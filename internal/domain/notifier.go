package domain

// Notifier delivers lifecycle notifications. Implementations must never block
// the caller and must never surface delivery failures; failures are recorded
// for observability only.
type Notifier interface {
	NotifyApplicationStatus(recipient, jobTitle string, status ApplicationStatus)
	NotifyInterviewScheduled(recipient, jobTitle string, invite *InterviewInvitation)
}

// NopNotifier discards all notifications. Used when SMTP is not configured.
type NopNotifier struct{}

func (NopNotifier) NotifyApplicationStatus(string, string, ApplicationStatus) {}

func (NopNotifier) NotifyInterviewScheduled(string, string, *InterviewInvitation) {}
