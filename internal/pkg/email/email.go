package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/peopledesk/hrops-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService sends leave notifications.
type EmailService interface {
	// SendLeaveRequest notifies the admin inbox about a new leave request
	SendLeaveRequest(employeeEmail, reason, startDate, endDate string) error
	// SendLeaveStatus notifies the employee after approval or rejection
	SendLeaveStatus(to, reason, startDate, endDate, status string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveRequestEmailData struct {
	EmployeeEmail string
	Reason        string
	StartDate     string
	EndDate       string
}

// SendLeaveRequest sends a new-leave-request notification to the admin inbox
func (s *emailServiceImpl) SendLeaveRequest(employeeEmail, reason, startDate, endDate string) error {
	data := leaveRequestEmailData{
		EmployeeEmail: employeeEmail,
		Reason:        reason,
		StartDate:     startDate,
		EndDate:       endDate,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_request.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(s.cfg.AdminInbox, fmt.Sprintf("Leave request from %s", employeeEmail), body.String())
}

type leaveStatusEmailData struct {
	Reason    string
	StartDate string
	EndDate   string
	Status    string
}

// SendLeaveStatus sends the approval/rejection outcome to the employee
func (s *emailServiceImpl) SendLeaveStatus(to, reason, startDate, endDate, status string) error {
	data := leaveStatusEmailData{
		Reason:    reason,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    status,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_status.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your leave request was %s", status), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
