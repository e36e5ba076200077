package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	DefaultShortCodeLength = 7
	alphabet               = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateShortCode returns a random code of the default length.
// Codes are drawn from crypto/rand so they cannot be enumerated from prior outputs.
func GenerateShortCode() (string, error) {
	return GenerateShortCodeWithLength(DefaultShortCodeLength)
}

func GenerateShortCodeWithLength(length int) (string, error) {
	code := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := range code {
		randomIndex, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[randomIndex.Int64()]
	}

	return string(code), nil
}
