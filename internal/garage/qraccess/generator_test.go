package qraccess_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/stretchr/testify/require"
)

func TestGenerator_DefaultFormat(t *testing.T) {
	re := regexp.MustCompile(`^[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}$`)

	var g qraccess.Generator
	for range 200 {
		code, err := g.Generate()
		require.NoError(t, err)
		require.Regexp(t, re, code)
		require.NotContainsf(t, code, "0", "ambiguous symbol in %s", code)
		require.NotContains(t, code, "O")
		require.NotContains(t, code, "1")
		require.NotContains(t, code, "I")
	}
}

func TestGenerator_CustomLength(t *testing.T) {
	g := qraccess.Generator{Alphabet: "XYZ", Length: 5}

	code, err := g.Generate()
	require.NoError(t, err)

	head, tail, ok := strings.Cut(code, qraccess.Separator)
	require.True(t, ok)
	require.Len(t, head, 2)
	require.Len(t, tail, 3)
	require.Empty(t, strings.Trim(head+tail, "XYZ"))
}

func TestGenerator_Distinct(t *testing.T) {
	var g qraccess.Generator
	seen := make(map[string]struct{})
	for range 1000 {
		code, err := g.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 32^8 codes; a repeat in 1000 draws would point at a broken source.
	require.Len(t, seen, 1000)
}

func TestGenerator_Validate(t *testing.T) {
	tests := []struct {
		name string
		gen  qraccess.Generator
	}{
		{"length one", qraccess.Generator{Length: 1}},
		{"negative length", qraccess.Generator{Length: -4}},
		{"single symbol", qraccess.Generator{Alphabet: "A"}},
		{"duplicate symbol", qraccess.Generator{Alphabet: "ABA"}},
		{"separator in alphabet", qraccess.Generator{Alphabet: "AB-"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.gen.Generate()
			require.ErrorIs(t, err, qraccess.ErrBadGenerator)
		})
	}
}

func TestRedact(t *testing.T) {
	require.Equal(t, "K7QM-****", qraccess.Redact("K7QM-3XPA"))
	require.Equal(t, "ABCD****", qraccess.Redact("ABCDEFGH"))
	require.Equal(t, "****", qraccess.Redact("AB"))
	require.Equal(t, "", qraccess.Redact(""))
}
