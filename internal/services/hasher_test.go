package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()
	password := "s3cret-password"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, password, hash)
	assert.True(t, hasher.Compare(password, hash))
	assert.False(t, hasher.Compare("wrong-password", hash))
	assert.False(t, hasher.Compare("", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := NewBcryptHasher()

	first, err1 := hasher.Hash("same-password")
	require.NoError(t, err1)
	second, err2 := hasher.Hash("same-password")
	require.NoError(t, err2)

	// bcrypt солит каждый хеш
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Compare("same-password", first))
	assert.True(t, hasher.Compare("same-password", second))
}
