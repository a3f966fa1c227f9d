package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := Generate("secreto", "sess-1", "access_code", "pdv-api", 60)
	require.NoError(t, err)

	claims, err := Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "access_code", claims.Method)
	assert.Equal(t, "pdv-api", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := Generate("secreto", "sess-1", "access_code", "pdv-api", 60)
	require.NoError(t, err)

	_, err = Parse("otro", tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParse_Expired(t *testing.T) {
	tok, err := generateAt(time.Now().Add(-2*time.Hour), "secreto", "sess-1", "access_code", "pdv-api", 60)
	require.NoError(t, err)

	_, err = Parse("secreto", tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", "s", "m", "i", 1)
	assert.Error(t, err)
	_, err = Parse("", "x")
	assert.Error(t, err)
}
