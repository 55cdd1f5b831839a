package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.Error(t, err)

	_, err = NewManager("secret", 0)
	assert.Error(t, err)

	m, err := NewManager("secret", time.Hour)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestManager_NewJWTAndParse(t *testing.T) {
	m, err := NewManager("secret", 7*24*time.Hour)
	require.NoError(t, err)

	userID := uuid.New()

	token, err := m.NewJWT(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestManager_ParseExpired(t *testing.T) {
	m, err := NewManager("secret", -time.Minute)
	require.NoError(t, err)

	token, err := m.NewJWT(uuid.New())
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestManager_ParseWrongKey(t *testing.T) {
	issuer, err := NewManager("secret-a", time.Hour)
	require.NoError(t, err)

	verifier, err := NewManager("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.NewJWT(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestManager_ParseGarbage(t *testing.T) {
	m, err := NewManager("secret", time.Hour)
	require.NoError(t, err)

	_, err = m.Parse("not-a-token")
	assert.Error(t, err)
}
