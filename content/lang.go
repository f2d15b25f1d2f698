package content

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang is one of the closed set of display languages.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
	Hindi   Lang = "hi"
	Spanish Lang = "es"
)

// Langs lists the supported languages in selector order.
// The order matches supportedTags.
var Langs = []Lang{English, Arabic, Hindi, Spanish}

var supportedTags = []language.Tag{
	language.English,
	language.Arabic,
	language.Hindi,
	language.Spanish,
}

var tagMatcher = language.NewMatcher(supportedTags)

var langNames = map[Lang]string{
	English: "English",
	Arabic:  "العربية",
	Hindi:   "हिन्दी",
	Spanish: "Español",
}

// Valid reports whether l belongs to the supported set.
func (l Lang) Valid() bool {
	_, ok := langNames[l]
	return ok
}

// Name returns the language's own name, for the language selector.
func (l Lang) Name() string {
	if name, ok := langNames[l]; ok {
		return name
	}
	return string(l)
}

// Dir returns the text direction used when rendering l.
func (l Lang) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Tag returns the BCP 47 tag for l.
func (l Lang) Tag() language.Tag {
	for i, candidate := range Langs {
		if candidate == l {
			return supportedTags[i]
		}
	}
	return language.English
}

// ParseLang resolves free-form input such as a browser locale ("ar-EG",
// "es_MX") to a supported language. Anything unrecognised resolves to English.
func ParseLang(value string) Lang {
	value = strings.TrimSpace(strings.ReplaceAll(value, "_", "-"))
	if value == "" {
		return English
	}
	if l := Lang(strings.ToLower(value)); l.Valid() {
		return l
	}
	tag, err := language.Parse(value)
	if err != nil {
		return English
	}
	_, idx, confidence := tagMatcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(Langs) {
		return English
	}
	return Langs[idx]
}

// Text is a localized field: one display string per language.
type Text map[Lang]string

// In returns the variant for l, falling back to English when that variant
// is absent or empty.
func (t Text) In(l Lang) string {
	if s, ok := t[l]; ok && s != "" {
		return s
	}
	return t[English]
}
