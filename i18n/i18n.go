package i18n

import (
	"embed"
	"encoding/json"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle *goi18n.Bundle
	loaded map[string]bool
)

// Init loads the embedded per-locale message files. Call once at startup.
func Init() error {
	bundle = goi18n.NewBundle(language.Uzbek)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	loaded = make(map[string]bool)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return err
		}
		mf, err := bundle.ParseMessageFileBytes(data, entry.Name())
		if err != nil {
			return err
		}
		loaded[mf.Tag.String()] = true
	}
	return nil
}

// T returns a resolver bound to one locale. A locale without its own message
// file echoes every key back; a loaded locale missing a key falls back to the
// default language, then to the key.
func T(lang string) func(string) string {
	if !loaded[lang] {
		return func(key string) string { return key }
	}
	localizer := goi18n.NewLocalizer(bundle, lang)
	return func(key string) string {
		msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
		if err != nil {
			return key
		}
		return msg
	}
}

// Translate resolves a single key; handy as a template function.
func Translate(lang, key string) string {
	return T(lang)(key)
}
