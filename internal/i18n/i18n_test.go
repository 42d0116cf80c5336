package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalize(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"en", "id"}, tr.Languages())

	assert.Equal(t, "No products match your search criteria.", tr.Localize(MsgNoResults, nil, "en"))
	assert.Equal(t, "Bear Keychain Pattern ditambahkan ke keranjang!",
		tr.Localize(MsgCartItemAdded, map[string]any{"Title": "Bear Keychain Pattern"}, "id-ID"))
	assert.Equal(t, "Showing 13-14 of 14 products",
		tr.Localize(MsgShowing, map[string]any{"Start": 13, "End": 14, "Total": 14}, "fr", "en"))
}

func TestLocalizeFallsBackToEnglish(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	assert.Equal(t, "No products available.", tr.Localize(MsgCatalogEmpty, nil, "de"))
	assert.Equal(t, "no.such.message", tr.Localize("no.such.message", nil, "en"))
}
