package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestParse(t *testing.T) {
	cases := map[string]Locale{
		"":      Telugu,
		"te":    Telugu,
		"en":    English,
		" EN ":  English,
		"hi":    Hindi,
		"fr":    Telugu,
		"te-IN": Telugu,
	}
	for in, want := range cases {
		assert.Equal(t, want, Parse(in), "Parse(%q)", in)
	}
}

func TestColumnFallsBackToDefault(t *testing.T) {
	for _, f := range Fields() {
		te := Column(f, Telugu)
		require.NotEmpty(t, te, f)
		assert.Equal(t, te, Column(f, Hindi), "hindi has no column for %s", f)
		assert.Equal(t, te, Column(f, Locale("xx")), f)
		assert.Equal(t, te, Column(f, Parse("")), f)
		assert.NotEqual(t, te, Column(f, English), f)
	}
	assert.Equal(t, "", Column(Field("crop.colour"), English))
	assert.Equal(t, "StageName_en", Column(StageName, English))
}

func TestTextResolve(t *testing.T) {
	full := NewText(strp("వరి"), strp("Paddy"))
	assert.Equal(t, "Paddy", *full.Resolve(English))
	assert.Equal(t, "వరి", *full.Resolve(Telugu))
	assert.Equal(t, "వరి", *full.Resolve(Hindi))

	t.Run("absent or unknown locale equals default", func(t *testing.T) {
		assert.Equal(t, full.Resolve(Default), full.Resolve(Parse("")))
		assert.Equal(t, full.Resolve(Default), full.Resolve(Parse("de")))
	})

	t.Run("unset english value falls back", func(t *testing.T) {
		assert.Equal(t, "వరి", *NewText(strp("వరి"), nil).Resolve(English))
		assert.Equal(t, "వరి", *NewText(strp("వరి"), strp("  ")).Resolve(English))
	})

	t.Run("nothing set", func(t *testing.T) {
		assert.Nil(t, Text{}.Resolve(English))
	})
}
