package infrastructure

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTServiceRejectsExpired(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	issuer := NewJWTService("secret", 24*time.Hour).WithClock(func() time.Time { return past })

	token, err := issuer.GenerateToken(1)
	require.NoError(t, err)

	_, err = NewJWTService("secret", 24*time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTServiceRejectsForeignSignature(t *testing.T) {
	token, err := NewJWTService("other-secret", time.Hour).GenerateToken(1)
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTServiceRejectsTampering(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	token, err := svc.GenerateToken(1)
	require.NoError(t, err)

	forged, err := NewJWTService("secret", time.Hour).GenerateToken(2)
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	spliced := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = svc.ParseToken(spliced)
	assert.Error(t, err)
}

func TestJWTServiceRejectsUnexpectedAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService("secret", time.Hour).ParseToken(unsigned)
	assert.Error(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = NewJWTService("secret", time.Hour).ParseToken(hs512)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTServiceRejectsMalformed(t *testing.T) {
	_, err := NewJWTService("secret", time.Hour).ParseToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}
