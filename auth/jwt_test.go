package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/auth"
)

func TestJwtRoundTrip(t *testing.T) {
	key := []byte("test-signing-key")
	token, err := auth.GenerateJWT("cli", []string{auth.ScopeEvaluate}, key, time.Hour)
	require.NoError(t, err)

	claims, err := auth.ValidateJWT(token, key)
	require.NoError(t, err)
	require.Equal(t, "cli", claims.Client)
	require.True(t, claims.HasScope(auth.ScopeEvaluate))
	require.False(t, claims.HasScope("admin"))
}

func TestJwtWrongKeyRejected(t *testing.T) {
	token, err := auth.GenerateJWT("cli", []string{auth.ScopeEvaluate}, []byte("key-a"), time.Hour)
	require.NoError(t, err)

	_, err = auth.ValidateJWT(token, []byte("key-b"))
	require.Error(t, err)
}

func TestJwtExpiredRejected(t *testing.T) {
	key := []byte("test-signing-key")
	token, err := auth.GenerateJWT("cli", []string{auth.ScopeEvaluate}, key, -time.Minute)
	require.NoError(t, err)

	_, err = auth.ValidateJWT(token, key)
	require.Error(t, err)
}
