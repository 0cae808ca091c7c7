package service

import (
	"context"
	"fmt"

	"clubsync-backend/internal/domain"
	"clubsync-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendDecisionNotification(ctx context.Context, email, name, clubName, semester string, action domain.EvaluationAction) error {
	var subject, body string
	switch action {
	case domain.EvaluationApproved:
		subject = fmt.Sprintf("Welcome to %s!", clubName)
		body = fmt.Sprintf("Hi %s,\n\nYour application to %s for %s has been approved. Welcome aboard!", name, clubName, semester)
	case domain.EvaluationRejected:
		subject = fmt.Sprintf("Your application to %s", clubName)
		body = fmt.Sprintf("Hi %s,\n\nYour application to %s for %s was not successful this time.", name, clubName, semester)
	default:
		return nil
	}
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendRecruitmentClosedNotification(ctx context.Context, email, name, clubName, semester string) error {
	subject := fmt.Sprintf("%s recruitment has closed", clubName)
	body := fmt.Sprintf("Hi %s,\n\nRecruitment for %s (%s) has closed. Pending applications will be reviewed shortly.", name, clubName, semester)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	if s.apiKey == "" {
		// Email is optional in development; skipping is not an error.
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err, "to", to)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil, "to", to, "status", response.StatusCode)
	return nil
}
