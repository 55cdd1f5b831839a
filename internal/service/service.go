package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/compagnon-careme/backend/internal/campaign"
	"github.com/compagnon-careme/backend/internal/config"
	"github.com/compagnon-careme/backend/internal/domain"
	"github.com/compagnon-careme/backend/internal/repository"
	"github.com/compagnon-careme/backend/pkg/auth"
	emailProvider "github.com/compagnon-careme/backend/pkg/email"
	"github.com/compagnon-careme/backend/pkg/hash"
	"github.com/compagnon-careme/backend/pkg/otp"
)

type Services struct {
	Users      Users
	Challenges Challenges
}

type Deps struct {
	Config         *config.Config
	Hasher         hash.PasswordHasher
	TokenManager   auth.TokenManager
	OtpGenerator   otp.Generator
	EmailSender    emailProvider.Sender
	DomainVerifier emailProvider.DomainVerifier
	Calendar       *campaign.Calendar
	Cache          redis.UniversalClient
	Repos          *repository.Repositories
}

func NewServices(deps Deps) *Services {
	emailService := newEmailService(deps.EmailSender, deps.Config.Email)

	return &Services{
		Users: newUserService(deps.Repos.Users,
			deps.Hasher,
			deps.TokenManager,
			deps.OtpGenerator,
			emailService,
			deps.DomainVerifier,
			deps.Config.Auth,
		),
		Challenges: newChallengeService(deps.Repos.Challenges,
			deps.Repos.UserChallenges,
			deps.Calendar,
			deps.Cache,
		),
	}
}

type SignUpInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type SignInResult struct {
	Token string
	User  *domain.User
}

type UpdateProfileInput struct {
	Name  string
	Email string
	Phone string
}

type Users interface {
	SignUp(ctx context.Context, input SignUpInput) error
	VerifyOTP(ctx context.Context, email string, code string) error
	SignIn(ctx context.Context, email string, password string) (*SignInResult, error)
	GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type TodayChallenge struct {
	Day         int
	Progression string
	Challenge   *domain.Challenge
	Completed   bool
}

type ChallengeStatus struct {
	ID          uuid.UUID
	DayNumber   int
	Title       string
	Description string
	Verse       string
	Completed   bool
	IsCurrent   bool
	IsLocked    bool
	IsMissed    bool
}

type Challenges interface {
	CompleteToday(ctx context.Context, userID uuid.UUID, date time.Time) error
	Today(ctx context.Context, userID uuid.UUID, date time.Time) (*TodayChallenge, error)
	GetAll(ctx context.Context, userID uuid.UUID, date time.Time) ([]ChallengeStatus, error)
}
