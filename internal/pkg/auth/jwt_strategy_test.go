package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})

	token, err := strategy.IssueToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := strategy.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWTStrategy_RepeatedIssueDecodesToSameSubject(t *testing.T) {
	base := time.Now()
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour, Now: func() time.Time { return base }})

	first, err := strategy.IssueToken(7)
	require.NoError(t, err)

	strategy.now = func() time.Time { return base.Add(time.Second) }
	second, err := strategy.IssueToken(7)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	firstID, err := strategy.ParseToken(first)
	require.NoError(t, err)
	secondID, err := strategy.ParseToken(second)
	require.NoError(t, err)
	assert.Equal(t, firstID, secondID)
}

func TestJWTStrategy_WrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("right-secret", Options{TTL: time.Minute})
	verifier := NewJWTStrategy("wrong-secret", Options{TTL: time.Minute})

	token, err := issuer.IssueToken(7)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTStrategy_Expired(t *testing.T) {
	issued := time.Now()
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute, Now: func() time.Time { return issued }})

	token, err := strategy.IssueToken(7)
	require.NoError(t, err)

	strategy.now = func() time.Time { return issued.Add(time.Minute + time.Second) }
	_, err = strategy.ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTStrategy_Garbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	_, err := strategy.ParseToken("definitely.not.a-token")
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestJWTStrategy_TamperedTokenNeverSucceeds(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(1001)
	require.NoError(t, err)

	raw := []byte(token)
	for i := range raw {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[i] ^= 0x01
		if string(mutated) == token {
			continue
		}
		_, err := strategy.ParseToken(string(mutated))
		assert.ErrorIsf(t, err, ErrInvalidToken, "byte %d: tampered token accepted", i)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	assert.Equal(t, "jwt", strategy.Name())
}
