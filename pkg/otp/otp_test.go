package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		code, err := Generate(6)
		require.NoError(t, err)
		require.Len(t, code, 6)

		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit %q", code, r)
		}
		// Uniform over [100000, 1000000) means no leading zero.
		assert.NotEqual(t, byte('0'), code[0])
	}
}

func TestGenerate_OtherLengths(t *testing.T) {
	t.Parallel()

	code, err := Generate(4)
	require.NoError(t, err)
	assert.Len(t, code, 4)

	code, err = Generate(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
}

func TestNewResetToken(t *testing.T) {
	t.Parallel()

	first, err := NewResetToken()
	require.NoError(t, err)
	// 32 random bytes hex-encoded.
	assert.Len(t, first, 64)

	second, err := NewResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestExpiryFromNow(t *testing.T) {
	t.Parallel()

	expiry := ExpiryFromNow(10)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), expiry, time.Second)
}
