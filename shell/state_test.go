package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simukka/recital/content"
	"github.com/simukka/recital/quote"
)

func text(en, ar string) content.Text {
	t := content.Text{content.English: en}
	if ar != "" {
		t[content.Arabic] = ar
	}
	return t
}

func testLibrary(t *testing.T) *content.Library {
	t.Helper()
	lib, err := content.New([]content.Chapter{
		{ID: "c1", Number: 1, Title: text("One", "واحد"), Sections: []content.Section{
			{ID: "s1", Title: text("First", "الأول"), Body: text("Body one", "النص الأول")},
			{ID: "s2", Title: text("Second", ""), Body: text("Body two", "")},
		}},
		{ID: "empty", Number: 2, Title: text("Empty", "")},
		{ID: "c3", Number: 3, Title: text("Three", ""), Sections: []content.Section{
			{ID: "s3", Title: text("Third", ""), Body: text("Body three", "")},
		}},
	}, nil)
	require.NoError(t, err)
	return lib
}

func TestNewState_OpensFirstSection(t *testing.T) {
	s := NewState(testLibrary(t), content.Lang("fr"))

	assert.Equal(t, content.English, s.Lang())
	ch, sec, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "c1", ch.ID)
	assert.Equal(t, "s1", sec.ID)
}

func TestState_SelectChapterResetsSection(t *testing.T) {
	s := NewState(testLibrary(t), content.English)
	require.True(t, s.SelectSection("s2"))

	require.True(t, s.SelectChapter("c3"))
	_, sec, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "s3", sec.ID)

	assert.False(t, s.SelectChapter("missing"))
	assert.False(t, s.SelectSection("s1"), "s1 belongs to another chapter")
}

func TestState_NextCrossesChaptersAndSkipsEmpty(t *testing.T) {
	s := NewState(testLibrary(t), content.English)

	require.True(t, s.Next())
	_, sec, _ := s.Current()
	assert.Equal(t, "s2", sec.ID)

	require.True(t, s.Next())
	ch, sec, _ := s.Current()
	assert.Equal(t, "c3", ch.ID)
	assert.Equal(t, "s3", sec.ID)

	assert.False(t, s.Next())
}

func TestState_PrevLandsOnLastSection(t *testing.T) {
	s := NewState(testLibrary(t), content.English)
	require.True(t, s.SelectChapter("c3"))

	require.True(t, s.Prev())
	ch, sec, _ := s.Current()
	assert.Equal(t, "c1", ch.ID)
	assert.Equal(t, "s2", sec.ID)

	require.True(t, s.Prev())
	require.False(t, s.Prev())
}

func TestState_EmptyChapterHasNoSection(t *testing.T) {
	s := NewState(testLibrary(t), content.English)
	require.True(t, s.SelectChapter("empty"))

	ch, sec, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, "empty", ch.ID)
	assert.Nil(t, sec)
	assert.Empty(t, s.Narration())
	assert.False(t, s.SelectSection("s1"))

	require.True(t, s.Next())
	_, sec, _ = s.Current()
	assert.Equal(t, "s3", sec.ID)
}

func TestState_SetLang(t *testing.T) {
	s := NewState(testLibrary(t), content.English)
	assert.True(t, s.SetLang(content.Hindi))
	assert.False(t, s.SetLang(content.Lang("fr")))
	assert.Equal(t, content.Hindi, s.Lang())
}

func TestState_Narration(t *testing.T) {
	s := NewState(testLibrary(t), content.Arabic)
	assert.Equal(t, "الأول. النص الأول", s.Narration())

	s.Next()
	assert.Equal(t, "Second. Body two", s.Narration())
}

func TestState_ViewLocalizes(t *testing.T) {
	s := NewState(testLibrary(t), content.Arabic)
	q := quote.Rendered{ID: "q1", Text: "نص", Source: "مصدر"}

	p := s.View(q, true, Status{DroneAvailable: true})

	assert.Equal(t, "ar", p.Lang)
	assert.Equal(t, "rtl", p.Dir)
	assert.Equal(t, "الفصول", p.Labels[LabelChapters])
	assert.Equal(t, "No quote today.", p.Labels[LabelNoQuoteToday])
	assert.Equal(t, "واحد", p.ChapterTitle)
	assert.Equal(t, "الأول", p.SectionTitle)
	assert.Equal(t, "النص الأول", p.Body)
	require.Len(t, p.Chapters, 3)
	assert.True(t, p.Chapters[0].Selected)
	assert.Equal(t, "Empty", p.Chapters[1].Label)
	require.Len(t, p.Sections, 2)
	assert.Equal(t, "Second", p.Sections[1].Label)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)
	require.NotNil(t, p.Quote)
	assert.Equal(t, "q1", p.Quote.ID)

	require.Len(t, p.Langs, len(content.Langs))
	assert.True(t, p.Langs[1].Selected)
}

func TestState_ViewDoesNotMove(t *testing.T) {
	s := NewState(testLibrary(t), content.English)
	s.View(quote.Rendered{}, false, Status{})
	_, sec, _ := s.Current()
	assert.Equal(t, "s1", sec.ID)
}

func TestLabel_UnknownKey(t *testing.T) {
	assert.Equal(t, "nope", Label("nope", content.Arabic))
	assert.Equal(t, "Next", Label(LabelNext, content.Lang("fr")))
}

func TestRender_HidesMissingCapabilities(t *testing.T) {
	s := NewState(testLibrary(t), content.English)

	out, err := RenderString(s.View(quote.Rendered{}, false, Status{}))
	require.NoError(t, err)
	assert.NotContains(t, out, `data-action="drone"`)
	assert.NotContains(t, out, `data-action="narrate"`)
	assert.Contains(t, out, "No quote today.")
	assert.Contains(t, out, `data-action="prev" disabled`)

	out, err = RenderString(s.View(quote.Rendered{}, false, Status{
		DroneAvailable:  true,
		DroneOn:         true,
		SpeechAvailable: true,
	}))
	require.NoError(t, err)
	assert.Contains(t, out, `data-action="drone"`)
	assert.Contains(t, out, "Drone off")
	assert.Contains(t, out, "Listen")
}

func TestRender_EscapesContent(t *testing.T) {
	lib, err := content.New([]content.Chapter{{
		ID:    "c1",
		Title: text("<b>One</b>", ""),
		Sections: []content.Section{
			{ID: "s1", Title: text("T", ""), Body: text("<script>x()</script>", "")},
		},
	}}, nil)
	require.NoError(t, err)

	out, err := RenderString(NewState(lib, content.English).View(quote.Rendered{}, false, Status{}))
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "<script>"))
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRender_RightToLeft(t *testing.T) {
	s := NewState(testLibrary(t), content.Arabic)
	out, err := RenderString(s.View(quote.Rendered{ID: "q", Text: "t", Source: "s"}, true, Status{}))
	require.NoError(t, err)
	assert.Contains(t, out, `dir="rtl"`)
	assert.Contains(t, out, `data-quote="q"`)
}
