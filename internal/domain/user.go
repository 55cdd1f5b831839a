package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	Phone        string         `db:"phone" json:"phone"`
	PasswordHash string         `db:"password_hash" json:"-"`
	IsVerified   bool           `db:"is_verified" json:"is_verified"`
	OTPCode      sql.NullString `db:"otp_code" json:"-"`
	OTPExpiresAt sql.NullTime   `db:"otp_expires_at" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SetOTP stores a fresh one-time code together with its expiry; the two
// columns are always written as a pair.
func (u *User) SetOTP(code string, expiresAt time.Time) {
	u.OTPCode = sql.NullString{String: code, Valid: true}
	u.OTPExpiresAt = sql.NullTime{Time: expiresAt, Valid: true}
}

// OTPMatches reports whether the supplied code equals the stored one and the
// stored expiry has not passed yet.
func (u *User) OTPMatches(code string, now time.Time) bool {
	if !u.OTPCode.Valid || !u.OTPExpiresAt.Valid {
		return false
	}

	return u.OTPCode.String == code && now.Before(u.OTPExpiresAt.Time)
}
