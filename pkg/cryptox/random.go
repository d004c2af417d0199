package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var ErrInvalidAlphabet = errors.New("cryptox: alphabet needs at least two symbols")

// RandomString draws n symbols uniformly from alphabet using crypto/rand.
// Selection goes through rand.Int so there is no modulo bias whatever the
// alphabet size.
func RandomString(alphabet string, n int) (string, error) {
	symbols := []rune(alphabet)
	if len(symbols) < 2 {
		return "", ErrInvalidAlphabet
	}
	if n <= 0 {
		return "", fmt.Errorf("cryptox: length must be positive, got %d", n)
	}

	max := big.NewInt(int64(len(symbols)))
	out := make([]rune, n)
	for i := range out {
		k, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("cryptox: read random: %w", err)
		}
		out[i] = symbols[k.Int64()]
	}
	return string(out), nil
}
