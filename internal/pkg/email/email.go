package email

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"
)

// Sender defines the outbound email operations of the notification boundary.
type Sender interface {
	// SendConfirmation sends the signup confirmation to the submitter.
	SendConfirmation(ctx context.Context, name, toEmail, userType, company string) (json.RawMessage, error)
	// SendOperatorAlert sends the internal signup alert to the operator mailbox.
	SendOperatorAlert(ctx context.Context, name, submitterEmail, userType, company string) (json.RawMessage, error)
}

// Config holds the settings of the email boundary.
type Config struct {
	APIKey        string
	FromAddress   string // sender for submitter-facing mail
	AlertFrom     string // sender for operator alerts
	OperatorEmail string // fixed internal alert mailbox
}

// Service implements Sender over the Resend API. Every interpolated value is
// HTML-escaped before it reaches an email body, so user-supplied names and
// companies cannot inject markup.
type Service struct {
	client *ResendClient
	config Config
	logger zerolog.Logger
}

// NewService creates a new email Service.
func NewService(config Config, client *ResendClient, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		config: config,
		logger: logger,
	}
}

// SendConfirmation sends the waitlist confirmation email to the submitter.
// The body branches on userType.
func (s *Service) SendConfirmation(ctx context.Context, name, toEmail, userType, company string) (json.RawMessage, error) {
	if s.config.APIKey == "" {
		// Development mode: log instead of sending
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("userType", userType).
			Msg("Email API key not configured - confirmation email not sent")
		return nil, nil
	}

	msg := Message{
		From:    s.config.FromAddress,
		To:      []string{toEmail},
		Subject: "Welcome to Initi8now Waitlist! \U0001F680",
		HTML:    confirmationBody(name, userType, company),
	}

	return s.client.Send(ctx, msg)
}

// SendOperatorAlert sends the internal signup alert to the operator mailbox.
func (s *Service) SendOperatorAlert(ctx context.Context, name, submitterEmail, userType, company string) (json.RawMessage, error) {
	if s.config.APIKey == "" {
		s.logger.Warn().
			Str("submitterEmail", submitterEmail).
			Str("userType", userType).
			Msg("Email API key not configured - operator alert not sent")
		return nil, nil
	}

	msg := Message{
		From:    s.config.AlertFrom,
		To:      []string{s.config.OperatorEmail},
		Subject: fmt.Sprintf("New %s joined the waitlist!", userType),
		HTML:    operatorAlertBody(name, submitterEmail, userType, company),
	}

	return s.client.Send(ctx, msg)
}

// confirmationBody builds the submitter-facing confirmation email.
func confirmationBody(name, userType, company string) string {
	safeName := html.EscapeString(name)
	safeCompany := html.EscapeString(company)

	var segment string
	if userType == "student" {
		segment = `
			<p style="color: #555; font-size: 16px; line-height: 1.6; margin-top: 20px;">
				As a student member, you'll get early access to:
			</p>
			<ul style="color: #555; font-size: 16px; line-height: 1.8;">
				<li>100% verified internships and part-time opportunities</li>
				<li>AI-powered job matching tailored to your skills</li>
				<li>Skill badges and certifications</li>
				<li>Mentorship from industry professionals</li>
			</ul>`
	} else {
		org := safeCompany
		if org == "" {
			org = "your organization"
		}
		segment = fmt.Sprintf(`
			<p style="color: #555; font-size: 16px; line-height: 1.6; margin-top: 20px;">
				As a recruiter from %s, you'll get early access to:
			</p>
			<ul style="color: #555; font-size: 16px; line-height: 1.8;">
				<li>Connect with talented, verified Indian students</li>
				<li>AI-powered candidate matching</li>
				<li>Streamlined hiring process</li>
				<li>Access to diverse skill sets and fresh talent</li>
			</ul>`, org)
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h1 style="color: #333; font-size: 24px; margin-bottom: 20px;">
				Welcome to Initi8now, %s! 🎉
			</h1>

			<p style="color: #555; font-size: 16px; line-height: 1.6;">
				Thank you for joining India's Most Trusted Student Work Platform!
			</p>
			%s
			<p style="color: #555; font-size: 16px; line-height: 1.6; margin-top: 30px;">
				We're working hard to launch soon. You'll be among the first to know when we go live!
			</p>

			<div style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #eee;">
				<p style="color: #888; font-size: 14px;">
					Best regards,<br>
					The Initi8now Team
				</p>
				<p style="color: #888; font-size: 12px; margin-top: 20px;">
					Empowering India's student workforce
				</p>
			</div>
		</div>`, safeName, segment)
}

// operatorAlertBody builds the internal alert email.
func operatorAlertBody(name, submitterEmail, userType, company string) string {
	safeName := html.EscapeString(name)
	safeEmail := html.EscapeString(submitterEmail)
	safeCompany := html.EscapeString(company)

	companyLine := ""
	if safeCompany != "" {
		companyLine = fmt.Sprintf("<p><strong>Company:</strong> %s</p>", safeCompany)
	}

	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h2 style="color: #333;">New Waitlist Signup 🎯</h2>

			<p><strong>User Type:</strong> %s</p>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			%s
			<p style="margin-top: 20px; color: #666; font-size: 14px;">
				Check your admin dashboard to view full details and reach out to this user.
			</p>
		</div>`, strings.ToUpper(userType), safeName, safeEmail, companyLine)
}
