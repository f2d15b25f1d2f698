// Package narration reads section text aloud through the platform speech
// engine.
package narration

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/simukka/recital/content"
)

// Voice is one voice offered by the speech engine.
type Voice struct {
	Name    string
	Lang    string // BCP 47 tag as reported by the engine, e.g. "ar-SA"
	Default bool
}

// Profile is how one language is spoken.
type Profile struct {
	// Locales lists preferred voice locales, best first. A locale without a
	// region matches any voice of that language.
	Locales []string
	Rate    float64
	Pitch   float64
}

// DefaultProfiles holds the speaking profile for each display language.
var DefaultProfiles = map[content.Lang]Profile{
	content.English: {Locales: []string{"en-US", "en-GB", "en"}, Rate: 0.9, Pitch: 1},
	content.Arabic:  {Locales: []string{"ar-SA", "ar-EG", "ar"}, Rate: 0.85, Pitch: 1},
	content.Hindi:   {Locales: []string{"hi-IN", "hi"}, Rate: 0.85, Pitch: 1},
	content.Spanish: {Locales: []string{"es-ES", "es-MX", "es"}, Rate: 0.9, Pitch: 1},
}

// PickVoice chooses the best voice for lang from the engine's list using
// DefaultProfiles. See PickVoiceFor.
func PickVoice(voices []Voice, lang content.Lang) (Voice, bool) {
	return PickVoiceFor(voices, lang, DefaultProfiles)
}

// PickVoiceFor walks the language's preferred locales in order and returns
// the first voice that matches one. Without a match it falls back to an
// English voice; false means the engine default should be used.
func PickVoiceFor(voices []Voice, lang content.Lang, profiles map[content.Lang]Profile) (Voice, bool) {
	if v, ok := matchLocales(voices, profiles[lang].Locales); ok {
		return v, true
	}
	if lang != content.English {
		if v, ok := matchLocales(voices, profiles[content.English].Locales); ok {
			return v, true
		}
	}
	for _, v := range voices {
		if base(v.Lang) == "en" {
			return v, true
		}
	}
	return Voice{}, false
}

func matchLocales(voices []Voice, locales []string) (Voice, bool) {
	for _, locale := range locales {
		want := normalize(locale)
		regional := strings.Contains(want, "-")
		for _, v := range voices {
			got := normalize(v.Lang)
			if got == want {
				return v, true
			}
			if !regional && base(got) == want {
				return v, true
			}
		}
	}
	return Voice{}, false
}

// normalize canonicalises a locale such as "AR_sa" to "ar-SA". Input that
// does not parse is only lower-cased and re-hyphenated.
func normalize(tag string) string {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if parsed, err := language.Parse(tag); err == nil {
		return parsed.String()
	}
	return strings.ToLower(tag)
}

func base(tag string) string {
	tag = normalize(tag)
	if parsed, err := language.Parse(tag); err == nil {
		b, _ := parsed.Base()
		return b.String()
	}
	if i := strings.Index(tag, "-"); i >= 0 {
		return tag[:i]
	}
	return tag
}
