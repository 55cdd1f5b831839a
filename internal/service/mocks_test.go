package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/compagnon-careme/backend/internal/domain"
)

type usersRepoMock struct {
	mock.Mock
}

func (m *usersRepoMock) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *usersRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *usersRepoMock) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *usersRepoMock) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *usersRepoMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *usersRepoMock) ConfirmVerification(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *usersRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type challengesRepoMock struct {
	mock.Mock
}

func (m *challengesRepoMock) GetByDayNumber(ctx context.Context, dayNumber int) (*domain.Challenge, error) {
	args := m.Called(ctx, dayNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *challengesRepoMock) GetAll(ctx context.Context) ([]domain.Challenge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Challenge), args.Error(1)
}

type userChallengesRepoMock struct {
	mock.Mock
}

func (m *userChallengesRepoMock) Create(ctx context.Context, userChallenge *domain.UserChallenge) error {
	args := m.Called(ctx, userChallenge)
	return args.Error(0)
}

func (m *userChallengesRepoMock) GetOne(ctx context.Context, userID uuid.UUID, dayNumber int) (*domain.UserChallenge, error) {
	args := m.Called(ctx, userID, dayNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserChallenge), args.Error(1)
}

func (m *userChallengesRepoMock) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserChallenge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserChallenge), args.Error(1)
}

func (m *userChallengesRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// otpGeneratorStub returns a fixed code so tests can assert against it.
type otpGeneratorStub struct {
	code string
}

func (s *otpGeneratorStub) RandomCode(length int) string {
	return s.code
}
