package service

import (
	"fmt"

	"github.com/compagnon-careme/backend/internal/config"
	emailProvider "github.com/compagnon-careme/backend/pkg/email"
)

type EmailService struct {
	sender  emailProvider.Sender
	config  config.EmailConfig
	enabled bool
}

func newEmailService(sender emailProvider.Sender, config config.EmailConfig) *EmailService {
	return &EmailService{
		enabled: config.Enabled,
		sender:  sender,
		config:  config,
	}
}

type verificationEmailInput struct {
	Name             string
	VerificationCode string
}

type VerificationEmailInput struct {
	Name             string
	Email            string
	VerificationCode string
}

func (s *EmailService) SendUserVerificationEmail(input VerificationEmailInput) error {
	if !s.enabled {
		return nil
	}

	subject := "Activez votre compte - Compagnon du Carême"

	templateInput := verificationEmailInput{input.Name, input.VerificationCode}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: input.Email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	return s.sender.Send(sendInput)
}
