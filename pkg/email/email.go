package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"
)

// Mailer delivers lifecycle notifications over SMTP. Sends run in a
// goroutine so request handling never waits on the mail server; failures
// are logged and dropped.
type Mailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (m *Mailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// statusEmailTemplate is the HTML template for application status emails
const statusEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Application Update</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .status-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Application Update</h1>
        </div>
        <div class="content">
            <p>Your application for <strong>{{.JobTitle}}</strong> has been updated.</p>
            <div class="status-box">New status: <strong>{{.Status}}</strong></div>
        </div>
        <div class="footer">
            <p>This is an automated notification. Please do not reply to this email.</p>
        </div>
    </div>
</body>
</html>`

// interviewEmailTemplate is the HTML template for interview invitation emails
const interviewEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Interview Invitation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Interview Invitation</h1>
        </div>
        <div class="content">
            <p>Congratulations! An interview has been scheduled for your application to <strong>{{.JobTitle}}</strong>.</p>
            <div class="field">
                <div class="label">Date:</div>
                <div>{{.ScheduledDate}}</div>
            </div>
            <div class="field">
                <div class="label">Location:</div>
                <div>{{.Location}}</div>
            </div>
            {{if .Message}}
            <div class="field">
                <div class="label">Message from the employer:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>This is an automated notification. Please do not reply to this email.</p>
        </div>
    </div>
</body>
</html>`

var (
	statusTmpl    = template.Must(template.New("status").Parse(statusEmailTemplate))
	interviewTmpl = template.Must(template.New("interview").Parse(interviewEmailTemplate))
)

// NotifyApplicationStatus sends a status change email to the applicant.
func (m *Mailer) NotifyApplicationStatus(recipient, jobTitle string, status domain.ApplicationStatus) {
	if !m.IsConfigured() || recipient == "" {
		return
	}

	data := struct {
		JobTitle string
		Status   string
	}{JobTitle: jobTitle, Status: string(status)}

	subject := fmt.Sprintf("Application Update: %s", jobTitle)
	go m.send(recipient, subject, statusTmpl, data)
}

type interviewEmailData struct {
	JobTitle      string
	ScheduledDate string
	Location      string
	Message       string
}

// newInterviewEmailData flattens the invitation for the template. Location
// and message are optional on the invitation; absent values render empty.
func newInterviewEmailData(jobTitle string, invite *domain.InterviewInvitation) interviewEmailData {
	data := interviewEmailData{
		JobTitle:      jobTitle,
		ScheduledDate: invite.ScheduledDate.Format("Monday, 2 January 2006 at 15:04 MST"),
	}
	if invite.InterviewLocation != nil {
		data.Location = *invite.InterviewLocation
	}
	if invite.Message != nil {
		data.Message = *invite.Message
	}
	return data
}

// NotifyInterviewScheduled sends an interview invitation email to the applicant.
func (m *Mailer) NotifyInterviewScheduled(recipient, jobTitle string, invite *domain.InterviewInvitation) {
	if !m.IsConfigured() || recipient == "" {
		return
	}

	subject := fmt.Sprintf("Interview Invitation: %s", jobTitle)
	go m.send(recipient, subject, interviewTmpl, newInterviewEmailData(jobTitle, invite))
}

func (m *Mailer) send(to, subject string, tmpl *template.Template, data interface{}) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		logger.Log.Error("failed to render notification email", "error", err, "subject", subject)
		return
	}

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		m.fromEmail,
		to,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.fromEmail, []string{to}, msg); err != nil {
		logger.Log.Error("failed to send notification email", "error", err, "subject", subject)
		return
	}
	logger.Log.Info("notification email sent", "subject", subject)
}
