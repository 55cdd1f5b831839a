package service

import "errors"

var (
	ErrInvalidEmail         = errors.New("invalid or unreachable email address")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserNotVerified      = errors.New("user account is not verified")
	ErrUserAlreadyVerified  = errors.New("user account is already verified")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")
	ErrEmailDeliveryFailed  = errors.New("verification email delivery failed")

	ErrOutOfCampaign             = errors.New("date is out of the campaign period")
	ErrChallengeAlreadyCompleted = errors.New("challenge already completed")
)
