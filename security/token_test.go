package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndValidate(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("super-secret", "gin-items", time.Hour)
	subject := uuid.New()

	tok, err := tokens.IssueDefault(subject)
	require.NoError(t, err)

	got, err := tokens.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, subject, got)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("secret", "gin-items", time.Hour)
	tok, err := tokens.Issue(uuid.New(), -1*time.Second)
	require.NoError(t, err)

	_, err = tokens.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", "gin-items", time.Hour).IssueDefault(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenManager("wrong-secret", "gin-items", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongIssuer(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("secret", "someone-else", time.Hour).IssueDefault(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "gin-items", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{
		Issuer:    "gin-items",
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	// HS512 with the same secret must still be rejected
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "gin-items", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = NewTokenManager("secret", "gin-items", time.Hour).Validate(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MissingExpiry(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{Issuer: "gin-items", Subject: uuid.NewString()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "gin-items", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_NonUUIDSubject(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{
		Issuer:    "gin-items",
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", "gin-items", time.Hour).Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("secret", "gin-items", time.Hour)
	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := tokens.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tok)
	}
}
