package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookworm/pkg/errors"
)

func TestParseToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(10, "user@example.com")
	require.NoError(t, err)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, uint(10), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user@example.com", claims.Subject)
}

func TestParseToken_Expired(t *testing.T) {
	// Access Token有效期为负,签发即过期
	m := NewManager("test-secret", -time.Minute, 24*time.Hour)

	pair, err := m.GenerateToken(10, "user@example.com")
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired, "过期Token应返回过期错误而不是无效错误")
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)
	other := NewManager("other-secret", time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(10, "user@example.com")
	require.NoError(t, err)

	_, err = other.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour, 24*time.Hour)

	_, err := m.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
