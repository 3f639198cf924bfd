package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue(42, "ana@x.com", "Ana")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("test-secret", -time.Minute)

	signed, err := issuer.Issue(1, "a@x.com", "A")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := NewIssuer("secret-a", time.Hour).Issue(1, "a@x.com", "A")
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestVerify_Garbage(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue(1, "a@x.com", "A")
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrMalformed)
}
