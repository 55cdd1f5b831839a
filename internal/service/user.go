package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/compagnon-careme/backend/internal/config"
	"github.com/compagnon-careme/backend/internal/domain"
	"github.com/compagnon-careme/backend/internal/repository"
	"github.com/compagnon-careme/backend/pkg/auth"
	emailProvider "github.com/compagnon-careme/backend/pkg/email"
	"github.com/compagnon-careme/backend/pkg/hash"
	"github.com/compagnon-careme/backend/pkg/logger"
	"github.com/compagnon-careme/backend/pkg/otp"
)

type userService struct {
	userRepository repository.Users
	hasher         hash.PasswordHasher
	tokenManager   auth.TokenManager
	otpGenerator   otp.Generator
	emailService   *EmailService
	domainVerifier emailProvider.DomainVerifier
	authConfig     config.AuthConfig
}

func newUserService(userRepository repository.Users,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	emailService *EmailService,
	domainVerifier emailProvider.DomainVerifier,
	authConfig config.AuthConfig,
) *userService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenManager:   tokenManager,
		otpGenerator:   otpGenerator,
		emailService:   emailService,
		domainVerifier: domainVerifier,
		authConfig:     authConfig,
	}
}

// SignUp creates an unverified account and sends the activation code. Account
// creation and email delivery form a two-phase action: when delivery fails the
// fresh account is deleted again, so no account survives whose owner cannot
// receive its code.
func (s *userService) SignUp(ctx context.Context, input SignUpInput) error {
	if !emailProvider.IsEmailValid(input.Email) {
		return ErrInvalidEmail
	}

	if !s.domainVerifier.HasMXRecords(ctx, input.Email) {
		return ErrInvalidEmail
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	code := s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength)

	user := &domain.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
	}
	user.SetOTP(code, time.Now().Add(s.authConfig.VerificationCodeTTL))

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("create user failed: %w", err)
	}

	emailInput := VerificationEmailInput{
		Name:             user.Name,
		Email:            user.Email,
		VerificationCode: code,
	}
	if err := s.emailService.SendUserVerificationEmail(emailInput); err != nil {
		logger.Error("verification email delivery failed, rolling back account",
			zap.String("email", user.Email), zap.Error(err))

		// compensating delete; a missing row means another rollback won
		if delErr := s.userRepository.Delete(ctx, user.ID); delErr != nil && !errors.Is(delErr, domain.ErrNotFound) {
			logger.Error("account rollback failed", zap.String("user_id", user.ID.String()), zap.Error(delErr))
		}

		return ErrEmailDeliveryFailed
	}

	return nil
}

// VerifyOTP flips the account to verified exactly once. The repository guard
// on the UPDATE resolves the race between two concurrent correct codes: one
// caller wins, the other reports the account as already verified.
func (s *userService) VerifyOTP(ctx context.Context, email string, code string) error {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by email failed: %w", err)
	}

	if user.IsVerified {
		return ErrUserAlreadyVerified
	}

	if !user.OTPMatches(code, time.Now()) {
		return ErrInvalidOrExpiredCode
	}

	if err := s.userRepository.ConfirmVerification(ctx, user.ID); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			return ErrUserAlreadyVerified
		}
		return fmt.Errorf("confirm verification failed: %w", err)
	}

	return nil
}

func (s *userService) SignIn(ctx context.Context, email string, password string) (*SignInResult, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// indistinguishable from a wrong password on the outside
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	if !user.IsVerified {
		return nil, ErrUserNotVerified
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokenManager.NewJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	return &SignInResult{Token: token, User: user}, nil
}

func (s *userService) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies partial updates: empty fields are left untouched.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Email != "" && input.Email != user.Email {
		user.Email = input.Email
	}

	if err := s.userRepository.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("update user failed: %w", err)
	}

	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by id failed: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("update password failed: %w", err)
	}

	return nil
}

func (s *userService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user failed: %w", err)
	}

	return nil
}
