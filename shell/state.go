// Package shell is the presentation layer: which chapter, section and
// language are showing, and how that becomes a page.
package shell

import (
	"github.com/simukka/recital/content"
	"github.com/simukka/recital/quote"
)

// State is the reader's position and language.
type State struct {
	lib     *content.Library
	lang    content.Lang
	chapter int
	section int
}

// NewState opens the library at its first section.
func NewState(lib *content.Library, lang content.Lang) *State {
	if !lang.Valid() {
		lang = content.English
	}
	return &State{lib: lib, lang: lang}
}

// Lang returns the display language.
func (s *State) Lang() content.Lang {
	return s.lang
}

// SetLang switches the display language. Unsupported values are ignored.
func (s *State) SetLang(l content.Lang) bool {
	if !l.Valid() {
		return false
	}
	s.lang = l
	return true
}

// Current returns the selected chapter and section.
func (s *State) Current() (*content.Chapter, *content.Section, bool) {
	chapters := s.lib.Chapters()
	if s.chapter >= len(chapters) {
		return nil, nil, false
	}
	ch := &chapters[s.chapter]
	if s.section >= len(ch.Sections) {
		return ch, nil, false
	}
	return ch, &ch.Sections[s.section], true
}

// SelectChapter opens chapter id at its first section.
func (s *State) SelectChapter(id string) bool {
	for i, ch := range s.lib.Chapters() {
		if ch.ID == id {
			s.chapter, s.section = i, 0
			return true
		}
	}
	return false
}

// SelectSection opens section id of the current chapter.
func (s *State) SelectSection(id string) bool {
	ch, _, _ := s.Current()
	if ch == nil {
		return false
	}
	for i, sec := range ch.Sections {
		if sec.ID == id {
			s.section = i
			return true
		}
	}
	return false
}

// Next advances one section, crossing into the next chapter at the end of
// one.
func (s *State) Next() bool {
	chapters := s.lib.Chapters()
	if s.chapter >= len(chapters) {
		return false
	}
	if s.section+1 < len(chapters[s.chapter].Sections) {
		s.section++
		return true
	}
	for c := s.chapter + 1; c < len(chapters); c++ {
		if len(chapters[c].Sections) > 0 {
			s.chapter, s.section = c, 0
			return true
		}
	}
	return false
}

// Prev steps back one section, crossing into the previous chapter's last
// section at the start of one.
func (s *State) Prev() bool {
	chapters := s.lib.Chapters()
	if s.chapter >= len(chapters) {
		return false
	}
	if s.section > 0 {
		s.section--
		return true
	}
	for c := s.chapter - 1; c >= 0; c-- {
		if n := len(chapters[c].Sections); n > 0 {
			s.chapter, s.section = c, n-1
			return true
		}
	}
	return false
}

// Narration returns the text read aloud for the current section.
func (s *State) Narration() string {
	_, sec, ok := s.Current()
	if !ok {
		return ""
	}
	return sec.Title.In(s.lang) + ". " + sec.Body.In(s.lang)
}

// Status carries the live state of the audio features into the view.
type Status struct {
	DroneAvailable  bool
	DroneOn         bool
	SpeechAvailable bool
	Speaking        bool
}

// View builds the page for the current position.
func (s *State) View(q quote.Rendered, hasQuote bool, status Status) Page {
	l := s.lang
	p := Page{
		Lang:   string(l),
		Dir:    l.Dir(),
		Title:  Label(LabelTitle, l),
		Status: status,
		Labels: make(map[string]string, len(labels)),
	}
	for key := range labels {
		p.Labels[key] = Label(key, l)
	}
	for _, candidate := range content.Langs {
		p.Langs = append(p.Langs, Option{ID: string(candidate), Label: candidate.Name(), Selected: candidate == l})
	}

	ch, sec, _ := s.Current()
	for i, c := range s.lib.Chapters() {
		p.Chapters = append(p.Chapters, Option{
			ID:       c.ID,
			Label:    c.Title.In(l),
			Number:   c.Number,
			Selected: i == s.chapter,
		})
	}
	if ch != nil {
		p.ChapterNumber = ch.Number
		p.ChapterTitle = ch.Title.In(l)
		for i, sc := range ch.Sections {
			p.Sections = append(p.Sections, Option{ID: sc.ID, Label: sc.Title.In(l), Number: i + 1, Selected: i == s.section})
		}
	}
	if sec != nil {
		p.SectionTitle = sec.Title.In(l)
		p.Body = sec.Body.In(l)
	}
	p.HasPrev = s.hasPrev()
	p.HasNext = s.hasNext()

	if hasQuote {
		p.Quote = &q
	}
	return p
}

func (s *State) hasPrev() bool {
	probe := *s
	return probe.Prev()
}

func (s *State) hasNext() bool {
	probe := *s
	return probe.Next()
}
