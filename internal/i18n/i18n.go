// Package i18n localizes the storefront messages returned alongside pages.
package i18n

import (
	"embed"
	"encoding/json"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	MsgCatalogEmpty    = "catalog.empty"
	MsgNoResults       = "catalog.no_results"
	MsgShowing         = "catalog.showing"
	MsgCartItemAdded   = "cart.item_added"
	MsgSessionNotFound = "error.session_not_found"
	MsgProductNotFound = "error.product_not_found"
	DefaultLanguage    = "en"
)

//go:embed locales/*.json
var locales embed.FS

type Translator struct {
	bundle *goi18n.Bundle
}

// New loads the bundled locales. English is the fallback for every message.
func New() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(locales, "locales/"+e.Name()); err != nil {
			return nil, err
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Localize renders messageID for the Accept-Language style list langs.
// Messages missing in the requested language fall back to English; an
// unknown message id is returned as is.
func (t *Translator) Localize(messageID string, data map[string]any, langs ...string) string {
	loc := goi18n.NewLocalizer(t.bundle, langs...)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if msg == "" && err != nil {
		return messageID
	}
	return msg
}

func (t *Translator) Languages() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}
