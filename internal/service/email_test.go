package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/compagnon-careme/backend/internal/config"
	emailProvider "github.com/compagnon-careme/backend/pkg/email"
	mock_email "github.com/compagnon-careme/backend/pkg/email/mock"
)

func TestEmailService_SendUserVerificationEmail(t *testing.T) {
	writeEmailTemplate(t)

	var sent emailProvider.SendEmailInput
	sender := new(mock_email.EmailSender)
	sender.On("Send", mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(0).(emailProvider.SendEmailInput)
	}).Return(nil)

	s := newEmailService(sender, config.EmailConfig{
		Enabled:   true,
		Templates: config.EmailTemplates{Verification: "verification_email.html"},
	})

	err := s.SendUserVerificationEmail(VerificationEmailInput{
		Name:             "Marie",
		Email:            "marie@example.com",
		VerificationCode: "123456",
	})
	require.NoError(t, err)

	assert.Equal(t, "marie@example.com", sent.To)
	assert.Contains(t, sent.Body, "Marie")
	assert.Contains(t, sent.Body, "123456")
}

func TestEmailService_Disabled(t *testing.T) {
	sender := new(mock_email.EmailSender)

	s := newEmailService(sender, config.EmailConfig{Enabled: false})

	err := s.SendUserVerificationEmail(VerificationEmailInput{Email: "marie@example.com"})
	require.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything)
}
