package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	credential, err := codec.Issue("a1b2c3")
	require.NoError(t, err)
	require.NotEmpty(t, credential)

	userID, err := codec.Verify(credential)
	require.NoError(t, err)
	require.Equal(t, "a1b2c3", userID)
}

func TestCodec_RejectsMalformed(t *testing.T) {
	codec := NewCodec("test-secret")

	_, err := codec.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.Verify("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_RejectsWrongSecret(t *testing.T) {
	issuer := NewCodec("secret-one")
	verifier := NewCodec("secret-two")

	credential, err := issuer.Issue("a1b2c3")
	require.NoError(t, err)

	_, err = verifier.Verify(credential)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodec_RejectsExpired(t *testing.T) {
	codec := NewCodec("test-secret")

	// Craft a token whose 24h window has already closed.
	issued := time.Now().Add(-TTL - time.Minute)
	claims := jwt.RegisteredClaims{
		Subject:   "a1b2c3",
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(TTL)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(expired)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestCodec_RejectsMissingSubject(t *testing.T) {
	codec := NewCodec("test-secret")

	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
	}
	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Verify(anonymous)
	require.ErrorIs(t, err, ErrInvalidToken)
}
