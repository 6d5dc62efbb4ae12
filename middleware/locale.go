package middleware

import "github.com/gofiber/fiber/v2"

// LangCookie names the cookie holding the visitor's UI language.
const LangCookie = "lang"

// DefaultLang is the site's default locale.
const DefaultLang = "uz"

var supportedLangs = map[string]bool{"uz": true, "ru": true, "en": true}

// SupportedLang reports whether lang is one of the site's locales.
func SupportedLang(lang string) bool {
	return supportedLangs[lang]
}

// Locale resolves the request language from the cookie and stores it in
// request locals for handlers and templates.
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Cookies(LangCookie)
		if !SupportedLang(lang) {
			lang = DefaultLang
		}
		c.Locals("lang", lang)
		return c.Next()
	}
}
