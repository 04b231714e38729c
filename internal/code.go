package internal

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// codeAlphabet is the 62-symbol alphanumeric alphabet verification codes are
// drawn from.
const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateCode produces a random code of the given length, each position
// drawn uniformly from the alphanumeric alphabet using crypto/rand.
func GenerateCode(length int) (string, error) {
	if length < 6 || length > 32 {
		return "", errors.New("invalid code length")
	}

	var b strings.Builder
	b.Grow(length)

	max := big.NewInt(int64(len(codeAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}

	return b.String(), nil
}
