package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hashed, err := h.Hash("s3cr3t")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "s3cr3t", hashed)

	assert.True(t, h.Compare(hashed, "s3cr3t"))
	assert.False(t, h.Compare(hashed, "wrong"))
}

func TestBcryptHasher_DistinctHashes(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("s3cr3t")
	require.NoError(t, err)
	second, err := h.Hash("s3cr3t")
	require.NoError(t, err)

	// salted: same input must not produce the same stored value
	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	h := NewBcryptHasher(100)

	hashed, err := h.Hash("s3cr3t")
	require.NoError(t, err)
	assert.True(t, h.Compare(hashed, "s3cr3t"))
}
