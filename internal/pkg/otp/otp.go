package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// Generator produces one-time passcodes.
type Generator interface {
	// Generate returns a fresh passcode.
	Generate() (string, error)
}

// Numeric generates uniform 6-digit numeric codes using crypto/rand.
type Numeric struct{}

// NewNumeric returns a Numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a code in [100000, 999999], so the code is always exactly
// six digits and never needs zero padding.
func (*Numeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
