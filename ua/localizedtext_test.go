package ua

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func TestLocalizedTextRoundTripBothPresent(t *testing.T) {
	l := config.Default()
	src := NewLocalizedText("en-US", "Temperature")

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	var out LocalizedText
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))

	require.Equal(t, "en-US", out.Locale.Value())
	require.Equal(t, "Temperature", out.Text.Value())
}

func TestLocalizedTextRoundTripLocaleAbsent(t *testing.T) {
	l := config.Default()
	var src LocalizedText
	src.Init()
	src.Text = NewString("no locale here")

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	var out LocalizedText
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))

	require.True(t, out.Locale.IsNull())
	require.Equal(t, "no locale here", out.Text.Value())
}

func TestLocalizedTextSetAddOrSetLocaleBranches(t *testing.T) {
	s := NewLocalizedTextSet("default text", "fr-FR", "de-DE")

	require.NoError(t, s.AddOrSetLocale("", "new default"))
	require.Equal(t, "new default", s.Default)

	require.NoError(t, s.AddOrSetLocale("fr-FR", "bonjour"))
	got := s.GetPreferredLocale([]string{"fr-FR"})
	require.Equal(t, "bonjour", got.Text.Value())

	require.NoError(t, s.AddOrSetLocale("fr-FR", "bonjour tout le monde"))
	got = s.GetPreferredLocale([]string{"fr-FR"})
	require.Equal(t, "bonjour tout le monde", got.Text.Value())

	require.NoError(t, s.AddOrSetLocale("fr-FR", ""))
	got = s.GetPreferredLocale([]string{"fr-FR"})
	require.Equal(t, "new default", got.Text.Value())
}

func TestLocalizedTextSetAddOrSetLocaleUnknownLocaleErrors(t *testing.T) {
	s := NewLocalizedTextSet("default text", "fr-FR")
	err := s.AddOrSetLocale("de-DE", "hallo")
	require.Error(t, err)
}

func TestLocalizedTextSetAddOrSetLocaleEmptyClearsAll(t *testing.T) {
	s := NewLocalizedTextSet("default text", "fr-FR", "de-DE")
	require.NoError(t, s.AddOrSetLocale("fr-FR", "bonjour"))
	require.NoError(t, s.AddOrSetLocale("de-DE", "hallo"))

	require.NoError(t, s.AddOrSetLocale("", ""))

	require.Equal(t, "", s.Default)
	got := s.GetPreferredLocale([]string{"fr-FR", "de-DE"})
	require.Equal(t, "", got.Locale.Value())
	require.Equal(t, "", got.Text.Value())
}

func TestLocalizedTextSetRemovingDefaultPromotesFirstListEntry(t *testing.T) {
	s := NewLocalizedTextSet("", "fr-FR", "de-DE")
	require.NoError(t, s.AddOrSetLocale("fr-FR", "bonjour"))
	require.NoError(t, s.AddOrSetLocale("de-DE", "hallo"))

	// Removing the (locale-less) default promotes "fr-FR" (the first list
	// entry) into the default slot.
	require.NoError(t, s.AddOrSetLocale("", ""))
	require.Equal(t, "fr-FR", s.defaultLocale)
	require.Equal(t, "bonjour", s.Default)
}

func TestLocalizedTextSetGetPreferredLocaleLanguagePrefixFallback(t *testing.T) {
	s := NewLocalizedTextSet("fallback", "fr-CA")
	require.NoError(t, s.AddOrSetLocale("fr-CA", "allo"))

	got := s.GetPreferredLocale([]string{"fr-FR"})
	require.Equal(t, "fr-CA", got.Locale.Value())
	require.Equal(t, "allo", got.Text.Value())
}

func TestLocalizedTextSetGetPreferredLocaleFallsBackToDefault(t *testing.T) {
	s := NewLocalizedTextSet("fallback text", "de-DE")
	require.NoError(t, s.AddOrSetLocale("de-DE", "hallo"))

	got := s.GetPreferredLocale([]string{"ja-JP"})
	require.Equal(t, "", got.Locale.Value())
	require.Equal(t, "fallback text", got.Text.Value())
}
