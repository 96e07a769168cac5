package validate

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const referenceLength = 16

// IsLuhn reports whether s is a well-formed transaction reference:
// exactly referenceLength digits with a valid Luhn check digit.
func IsLuhn(s string) bool {
	if len(s) != referenceLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return goluhn.Validate(s) == nil
}

// NewReference returns a random transaction reference ending in a Luhn check digit.
func NewReference() (string, error) {
	var b strings.Builder
	// a leading zero would be lost by clients that parse references as numbers
	b.WriteString(randomDigit(1, 9))
	for i := 1; i < referenceLength-1; i++ {
		b.WriteString(randomDigit(0, 9))
	}
	_, ref, err := goluhn.Calculate(b.String())
	if err != nil {
		return "", err
	}
	return ref, nil
}

func randomDigit(lo, hi int64) string {
	n, err := rand.Int(rand.Reader, big.NewInt(hi-lo+1))
	if err != nil {
		return "7"
	}
	return string(rune('0' + lo + n.Int64()))
}
