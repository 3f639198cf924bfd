package otp

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"time"
)

// Generate returns a numeric one-time code of the given length, drawn
// uniformly over [10^(length-1), 10^length) so it never has a leading zero.
func Generate(length int) (string, error) {
	min := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length-1)), nil)
	span := new(big.Int).Mul(min, big.NewInt(9))

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return n.Add(n, min).String(), nil
}

// NewResetToken returns an opaque hex-encoded token carrying 256 bits of
// randomness.
func NewResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ExpiryFromNow returns a timestamp the given number of minutes ahead.
func ExpiryFromNow(minutes int) time.Time {
	return time.Now().Add(time.Duration(minutes) * time.Minute)
}
