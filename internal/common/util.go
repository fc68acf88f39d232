package common

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// GenerateOTP returns a six digit code drawn uniformly from [OTPMin, OTPMax].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(OTPMax-OTPMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+OTPMin, 10), nil
}

// WipeByteArray overwrites the contents of b with zeros. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
