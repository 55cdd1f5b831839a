package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGOTPGenerator_RandomCode(t *testing.T) {
	g := NewGOTPGenerator()

	code := g.RandomCode(6)
	assert.Len(t, code, 6)
	assert.Regexp(t, `^\d{6}$`, code)
}
