package mock_email

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/compagnon-careme/backend/pkg/email"
)

type EmailSender struct {
	mock.Mock
}

func (m *EmailSender) Send(inp email.SendEmailInput) error {
	args := m.Called(inp)

	return args.Error(0)
}

type DomainVerifier struct {
	mock.Mock
}

func (m *DomainVerifier) HasMXRecords(ctx context.Context, address string) bool {
	args := m.Called(ctx, address)

	return args.Bool(0)
}
