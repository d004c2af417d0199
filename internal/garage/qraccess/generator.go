package qraccess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/garage/pkg/cryptox"
)

const (
	// DefaultAlphabet omits 0, O, 1, I and l so codes survive being read
	// aloud or typed from paper.
	DefaultAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	DefaultLength   = 8

	// Separator splits a code into two groups for readability.
	Separator = "-"
)

var ErrBadGenerator = errors.New("qraccess: invalid generator configuration")

// Generator produces human-typeable random codes such as "K7QM-3XPA".
// The zero value uses DefaultAlphabet and DefaultLength.
type Generator struct {
	Alphabet string
	Length   int
}

func (g Generator) alphabet() string {
	if g.Alphabet == "" {
		return DefaultAlphabet
	}
	return g.Alphabet
}

func (g Generator) length() int {
	if g.Length == 0 {
		return DefaultLength
	}
	return g.Length
}

// Validate checks the alphabet and length.
func (g Generator) Validate() error {
	if n := g.length(); n < 2 {
		return fmt.Errorf("%w: length %d", ErrBadGenerator, n)
	}

	a := g.alphabet()
	if strings.Contains(a, Separator) {
		return fmt.Errorf("%w: alphabet contains %q", ErrBadGenerator, Separator)
	}
	seen := make(map[rune]struct{}, len(a))
	for _, r := range a {
		if _, dup := seen[r]; dup {
			return fmt.Errorf("%w: duplicate symbol %q", ErrBadGenerator, r)
		}
		seen[r] = struct{}{}
	}
	if len(seen) < 2 {
		return fmt.Errorf("%w: alphabet needs at least two symbols", ErrBadGenerator)
	}
	return nil
}

// Generate returns a fresh code. It does not check for collisions; see
// Store.Reserve.
func (g Generator) Generate() (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}

	n := g.length()
	raw, err := cryptox.RandomString(g.alphabet(), n)
	if err != nil {
		return "", fmt.Errorf("qraccess: generate code: %w", err)
	}

	runes := []rune(raw)
	half := n / 2
	return string(runes[:half]) + Separator + string(runes[half:]), nil
}
