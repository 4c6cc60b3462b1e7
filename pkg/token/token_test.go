package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot_backend/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 7}

	tok, err := GenerateAccessToken(user, secret, 15*time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.ID)

	// Чужой ключ подписи отклоняется
	_, err = VerifyToken(tok, []byte("other-secret"))
	assert.Error(t, err)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	secret := []byte("test-secret")

	tok, err := GenerateAccessToken(&model.User{ID: 1}, secret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, secret)
	assert.Error(t, err)
}

func TestRefreshTokenVerify(t *testing.T) {
	tok, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	hash := HashRefreshToken(tok)
	assert.True(t, VerifyRefreshToken(tok, hash))
	assert.False(t, VerifyRefreshToken("forged", hash))

	// Токены уникальны между вызовами
	other, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}
