package content

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestText_In_FallsBackToEnglish(t *testing.T) {
	text := Text{English: "hello", Arabic: "مرحبا"}

	assert.Equal(t, "مرحبا", text.In(Arabic))
	assert.Equal(t, "hello", text.In(Hindi))
	assert.Equal(t, "hello", text.In(Lang("fr")))
}

func TestText_In_EmptyVariantFallsBack(t *testing.T) {
	text := Text{English: "hello", Spanish: ""}
	assert.Equal(t, "hello", text.In(Spanish))
}

// Any language absent from a field resolves to the English value.
func TestText_In_AbsentLanguageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		english := rapid.StringN(1, 20, -1).Draw(t, "english")
		text := Text{English: english}
		for _, l := range Langs[1:] {
			if rapid.Bool().Draw(t, "has-"+string(l)) {
				text[l] = rapid.StringN(1, 20, -1).Draw(t, "text-"+string(l))
			}
		}
		for _, l := range Langs {
			if _, ok := text[l]; !ok && text.In(l) != english {
				t.Fatalf("In(%s) = %q, want English %q", l, text.In(l), english)
			}
		}
	})
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
	}{
		{"ar", Arabic},
		{"ar-EG", Arabic},
		{"ar_SA", Arabic},
		{"AR", Arabic},
		{"hi-IN", Hindi},
		{"es-MX", Spanish},
		{"en-GB", English},
		{"", English},
		{"xx", English},
		{"not a tag", English},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLang(tt.in))
		})
	}
}

func TestLang_Dir(t *testing.T) {
	assert.Equal(t, "rtl", Arabic.Dir())
	assert.Equal(t, "ltr", Hindi.Dir())
	assert.Equal(t, "ltr", English.Dir())
}

func TestLang_Tag(t *testing.T) {
	assert.Equal(t, "ar", Arabic.Tag().String())
	assert.Equal(t, "en", Lang("zz").Tag().String())
}

func TestLoad_EmbeddedContent(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	require.NotEmpty(t, lib.Chapters())
	require.NotEmpty(t, lib.Quotes())

	first := lib.Chapters()[0]
	ch, ok := lib.Chapter(first.ID)
	require.True(t, ok)
	assert.Equal(t, first.Title.In(English), ch.Title.In(English))

	sec, ok := lib.Section(first.ID, first.Sections[0].ID)
	require.True(t, ok)
	assert.NotEmpty(t, sec.Body.In(Arabic))

	q, ok := lib.Quote(lib.Quotes()[0].ID)
	require.True(t, ok)
	assert.NotEmpty(t, q.Text.In(English))
}

func TestLibrary_LookupMisses(t *testing.T) {
	lib := MustLoad()

	_, ok := lib.Chapter("missing")
	assert.False(t, ok)
	_, ok = lib.Section("missing", "missing")
	assert.False(t, ok)
	_, ok = lib.Section(lib.Chapters()[0].ID, "missing")
	assert.False(t, ok)
	_, ok = lib.Quote("missing")
	assert.False(t, ok)
}

func TestParse_RejectsDuplicateQuoteIDs(t *testing.T) {
	doc := `
quotes:
  - id: q1
    text: {en: A}
    source: {en: S}
  - id: q1
    text: {en: B}
    source: {en: S}
`
	_, err := Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestParse_RejectsDuplicateSectionIDs(t *testing.T) {
	doc := `
chapters:
  - id: c1
    title: {en: One}
    sections:
      - id: s1
        title: {en: A}
        body: {en: A}
      - id: s1
        title: {en: B}
        body: {en: B}
`
	_, err := Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestParse_RequiresEnglish(t *testing.T) {
	doc := `
quotes:
  - id: q1
    text: {ar: "نص"}
    source: {en: S}
`
	_, err := Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrMissingEnglish)
}

func TestParse_RejectsUnknownLanguage(t *testing.T) {
	doc := `
quotes:
  - id: q1
    text: {en: A, fr: B}
    source: {en: S}
`
	_, err := Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrUnknownLang)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("verses: []\n"))
	require.Error(t, err)
}

func TestParse_EmptyDocument(t *testing.T) {
	lib, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lib.Quotes())
	assert.Empty(t, lib.Chapters())
}

func TestLoadFS_MergesFilesInNameOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"d/b.yaml": {Data: []byte("quotes:\n  - id: q2\n    text: {en: B}\n    source: {en: S2}\n")},
		"d/a.yaml": {Data: []byte("quotes:\n  - id: q1\n    text: {en: A}\n    source: {en: S1}\n")},
	}
	lib, err := LoadFS(fsys, "d")
	require.NoError(t, err)
	require.Len(t, lib.Quotes(), 2)
	assert.Equal(t, "q1", lib.Quotes()[0].ID)
	assert.Equal(t, "q2", lib.Quotes()[1].ID)
}

func TestNew_ValidatesLikeParse(t *testing.T) {
	_, err := New(nil, []Quote{{ID: "", Text: Text{English: "A"}, Source: Text{English: "S"}}})
	require.ErrorIs(t, err, ErrMissingID)
}
