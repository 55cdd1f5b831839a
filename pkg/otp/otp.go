package otp

import "github.com/xlzd/gotp"

// Generator produces short numeric one-time codes for email verification.
type Generator interface {
	RandomCode(length int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode derives a numeric code of the requested length from a freshly
// generated random secret, so every call yields an independent code.
func (g *GOTPGenerator) RandomCode(length int) string {
	secret := gotp.RandomSecret(16)

	return gotp.NewTOTP(secret, length, 30, nil).Now()
}
