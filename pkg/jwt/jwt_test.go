package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/estore/pkg/errors"
)

func TestGenerateAndParseToken(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateTokenPair(100, "zhangsan@example.com", "张三")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(100), claims.UserID)
	assert.Equal(t, "zhangsan@example.com", claims.Email)
	assert.Equal(t, "张三", claims.Name)
}

func TestParseExpiredToken(t *testing.T) {
	// 过期时间为负,签出来就是过期的
	m := NewManager("test-secret", -time.Hour, -time.Hour)

	pair, err := m.GenerateTokenPair(100, "zhangsan@example.com", "张三")
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestParseTokenWrongSecret(t *testing.T) {
	m1 := NewManager("secret-one", time.Hour, time.Hour)
	m2 := NewManager("secret-two", time.Hour, time.Hour)

	pair, err := m1.GenerateTokenPair(100, "zhangsan@example.com", "张三")
	require.NoError(t, err)

	_, err = m2.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParseGarbageToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)

	_, err := m.ParseToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
