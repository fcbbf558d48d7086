package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokensShareOneJTI(t *testing.T) {
	access := []byte("access-secret")
	refresh := []byte("refresh-secret")
	profileID := uuid.New()

	accessToken, refreshToken, jti, err := GenerateTokens(profileID, access, refresh)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	accessClaims, err := VerifyJWT(accessToken, access)
	require.NoError(t, err)
	refreshClaims, err := VerifyJWT(refreshToken, refresh)
	require.NoError(t, err)

	assert.Equal(t, jti, accessClaims.ID)
	assert.Equal(t, jti, refreshClaims.ID)
	assert.Equal(t, profileID.String(), accessClaims.Subject)
}

func TestVerifyJWTWrongSecret(t *testing.T) {
	accessToken, _, _, err := GenerateTokens(uuid.New(), []byte("right"), []byte("refresh"))
	require.NoError(t, err)

	_, err = VerifyJWT(accessToken, []byte("wrong"))
	assert.Error(t, err)
}

func TestVerifyJWTRejectsUnsignedToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyJWT(unsigned, []byte("secret"))
	assert.Error(t, err)
}
