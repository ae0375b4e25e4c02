package service

import (
	"fmt"

	"estatevoice-backend/internal/config"
	"estatevoice-backend/internal/database/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// MailerService sends transactional email through SendGrid
type MailerService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	enabled   bool
	logger    *logrus.Logger
}

// NewMailerService creates a new mailer service. When no SendGrid key is
// configured the mailer logs and drops outgoing mail instead of failing.
func NewMailerService(cfg *config.Config, log *logrus.Logger) *MailerService {
	svc := &MailerService{
		fromEmail: cfg.SendGridFromEmail,
		fromName:  cfg.SendGridFromName,
		logger:    log,
	}
	if cfg.SendGridAPIKey != "" {
		svc.client = sendgrid.NewSendClient(cfg.SendGridAPIKey)
		svc.enabled = true
	}
	return svc
}

func (s *MailerService) send(toName, toEmail, subject, plain, html string) error {
	if !s.enabled {
		s.logger.WithFields(logrus.Fields{
			"to":      toEmail,
			"subject": subject,
		}).Info("Mailer disabled, dropping email")
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendLeadFollowUp sends the qualification follow-up email to a lead
func (s *MailerService) SendLeadFollowUp(lead *models.Lead, tenant *models.Tenant) error {
	if lead.Email == "" {
		s.logger.WithField("lead_id", lead.ID).Info("Lead has no email, skipping follow-up")
		return nil
	}

	subject := fmt.Sprintf("Thanks for speaking with %s", tenant.Name)
	plain := fmt.Sprintf(
		"Hi %s,\n\nThanks for your interest. An agent from %s will reach out shortly to discuss the next steps in your home search.\n\nBest,\n%s",
		lead.FullName, tenant.Name, tenant.Name,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for your interest. An agent from %s will reach out shortly to discuss the next steps in your home search.</p><p>Best,<br>%s</p>",
		lead.FullName, tenant.Name, tenant.Name,
	)
	return s.send(lead.FullName, lead.Email, subject, plain, html)
}
