package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWT(t *testing.T) {
	key := []byte("test-secret")
	userID := "9f2c1c9e-1111-2222-3333-444455556666"

	token, genErr := GenerateSessionJWT(userID, time.Hour, key)
	require.NoError(t, genErr)
	require.NotEmpty(t, token)

	claims, valErr := ValidateSessionJWT(token, key)
	require.NoError(t, valErr)
	assert.Equal(t, userID, claims.UserID)
}

func TestSessionJWT_Expired(t *testing.T) {
	key := []byte("test-secret")

	token, genErr := GenerateSessionJWT("user-id", -time.Minute, key)
	require.NoError(t, genErr)

	_, valErr := ValidateSessionJWT(token, key)
	assert.ErrorIs(t, valErr, ErrTokenExpired)
}

func TestSessionJWT_WrongKey(t *testing.T) {
	token, genErr := GenerateSessionJWT("user-id", time.Hour, []byte("key-one"))
	require.NoError(t, genErr)

	_, valErr := ValidateSessionJWT(token, []byte("key-two"))
	assert.Error(t, valErr)
}
