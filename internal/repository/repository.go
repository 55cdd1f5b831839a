package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/compagnon-careme/backend/internal/domain"
)

type Repositories struct {
	Users          Users
	Challenges     Challenges
	UserChallenges UserChallenges
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:          newUserRepository(db),
		Challenges:     newChallengeRepository(db),
		UserChallenges: newUserChallengeRepository(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	ConfirmVerification(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Challenges interface {
	GetByDayNumber(ctx context.Context, dayNumber int) (*domain.Challenge, error)
	GetAll(ctx context.Context) ([]domain.Challenge, error)
}

type UserChallenges interface {
	Create(ctx context.Context, userChallenge *domain.UserChallenge) error
	GetOne(ctx context.Context, userID uuid.UUID, dayNumber int) (*domain.UserChallenge, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserChallenge, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
