package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Разбор токенов пола: локальные и латинские алиасы, любой регистр,
// внешние пробелы.
func TestParseGender(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"м", "М", "m", "M", " м "} {
		g, ok := ParseGender(text)
		require.True(t, ok, "input %q", text)
		require.Equal(t, GenderMale, g)
	}

	for _, text := range []string{"ж", "Ж", "f", "F"} {
		g, ok := ParseGender(text)
		require.True(t, ok, "input %q", text)
		require.Equal(t, GenderFemale, g)
	}

	for _, text := range []string{"", "x", "мж", "male", "любые"} {
		_, ok := ParseGender(text)
		require.False(t, ok, "input %q", text)
	}
}

func TestParseLookingFor(t *testing.T) {
	t.Parallel()

	cases := map[string]LookingFor{
		"м":      LookingForMale,
		"Ж":      LookingForFemale,
		"любые":  LookingForAny,
		"ЛЮБЫЕ":  LookingForAny,
		"any":    LookingForAny,
		" Any  ": LookingForAny,
	}
	for text, want := range cases {
		got, ok := ParseLookingFor(text)
		require.True(t, ok, "input %q", text)
		require.Equal(t, want, got)
	}

	for _, text := range []string{"", "все", "anyone"} {
		_, ok := ParseLookingFor(text)
		require.False(t, ok, "input %q", text)
	}
}

// Канонические строки БД обратимы.
func TestEnumRoundTrip(t *testing.T) {
	t.Parallel()

	for _, g := range []Gender{GenderUnspecified, GenderMale, GenderFemale} {
		require.Equal(t, g, GenderFromString(g.String()))
	}

	for _, l := range []LookingFor{LookingForUnspecified, LookingForMale, LookingForFemale, LookingForAny} {
		require.Equal(t, l, LookingForFromString(l.String()))
	}
}
