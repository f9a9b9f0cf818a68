package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-for-jwtx")

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	tokens := New(testSecret, "spendwise", DefaultTTL)

	raw, err := tokens.Issue(42, "alice@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice@x.com", claims.Email)
	require.Equal(t, "spendwise", claims.Issuer)
	require.WithinDuration(t, time.Now().Add(DefaultTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	tokens := New(testSecret, "spendwise", time.Hour)

	// Minted two hours ago with a one hour lifetime.
	raw, err := tokens.IssueAt(7, "old@x.com", time.Now().UTC().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = tokens.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTampering(t *testing.T) {
	t.Parallel()

	tokens := New(testSecret, "spendwise", DefaultTTL)

	raw, err := tokens.Issue(1, "alice@x.com")
	require.NoError(t, err)

	// Flipping any single byte must invalidate the token.
	for i := 0; i < len(raw); i += 7 {
		if raw[i] == '.' {
			continue
		}
		mutated := []byte(raw)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		_, err := tokens.Verify(string(mutated))
		require.ErrorIs(t, err, ErrInvalidToken, "byte %d", i)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := New([]byte("secret-one"), "spendwise", DefaultTTL).Issue(1, "a@x.com")
	require.NoError(t, err)

	_, err = New([]byte("secret-two"), "spendwise", DefaultTTL).Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	t.Parallel()

	tokens := New(testSecret, "spendwise", DefaultTTL)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := tokens.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}
