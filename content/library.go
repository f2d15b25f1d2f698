// Package content holds the static, read-only text of the recital: chapters,
// their sections and the pool of daily quotes.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateID    = errors.New("duplicate id")
	ErrMissingID      = errors.New("missing id")
	ErrMissingEnglish = errors.New("missing English variant")
	ErrUnknownLang    = errors.New("unknown language")
)

//go:embed data/*.yaml
var dataFS embed.FS

// Section is one readable passage of a chapter.
type Section struct {
	ID    string `yaml:"id"`
	Title Text   `yaml:"title"`
	Body  Text   `yaml:"body"`
}

// Chapter is an ordered group of sections.
type Chapter struct {
	ID       string    `yaml:"id"`
	Number   int       `yaml:"number"`
	Title    Text      `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

// Section looks up a section of the chapter by id.
func (c *Chapter) Section(id string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// Quote is one entry of the daily quote pool.
type Quote struct {
	ID     string `yaml:"id"`
	Text   Text   `yaml:"text"`
	Source Text   `yaml:"source"`
}

// document is the on-disk shape of one YAML file.
type document struct {
	Chapters []Chapter `yaml:"chapters"`
	Quotes   []Quote   `yaml:"quotes"`
}

// Library is the loaded, validated content set.
type Library struct {
	chapters     []Chapter
	quotes       []Quote
	chapterIndex map[string]int
	quoteIndex   map[string]int
}

// Load parses the embedded content.
func Load() (*Library, error) {
	return LoadFS(dataFS, "data")
}

// MustLoad is Load for program start-up, where broken embedded content is a
// build defect.
func MustLoad() *Library {
	lib, err := Load()
	if err != nil {
		panic(err)
	}
	return lib
}

// LoadFS parses every .yaml file in dir of fsys, in name order.
func LoadFS(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var merged document
	for _, name := range names {
		f, err := fsys.Open(dir + "/" + name)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		doc, err := decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		merged.Chapters = append(merged.Chapters, doc.Chapters...)
		merged.Quotes = append(merged.Quotes, doc.Quotes...)
	}
	return build(merged)
}

// Parse builds a library from a single YAML document.
func Parse(r io.Reader) (*Library, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	return build(doc)
}

// New builds a library from in-memory values, applying the same validation
// as the YAML loaders.
func New(chapters []Chapter, quotes []Quote) (*Library, error) {
	return build(document{Chapters: chapters, Quotes: quotes})
}

func decode(r io.Reader) (document, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return document{}, fmt.Errorf("decode yaml: %w", err)
	}
	return doc, nil
}

func build(doc document) (*Library, error) {
	lib := &Library{
		chapters:     doc.Chapters,
		quotes:       doc.Quotes,
		chapterIndex: make(map[string]int, len(doc.Chapters)),
		quoteIndex:   make(map[string]int, len(doc.Quotes)),
	}
	for i, ch := range doc.Chapters {
		if ch.ID == "" {
			return nil, fmt.Errorf("chapter %d: %w", i, ErrMissingID)
		}
		if _, dup := lib.chapterIndex[ch.ID]; dup {
			return nil, fmt.Errorf("chapter %q: %w", ch.ID, ErrDuplicateID)
		}
		lib.chapterIndex[ch.ID] = i
		if err := checkText(ch.Title); err != nil {
			return nil, fmt.Errorf("chapter %q title: %w", ch.ID, err)
		}
		seen := make(map[string]bool, len(ch.Sections))
		for j, sec := range ch.Sections {
			if sec.ID == "" {
				return nil, fmt.Errorf("chapter %q section %d: %w", ch.ID, j, ErrMissingID)
			}
			if seen[sec.ID] {
				return nil, fmt.Errorf("chapter %q section %q: %w", ch.ID, sec.ID, ErrDuplicateID)
			}
			seen[sec.ID] = true
			if err := checkText(sec.Title); err != nil {
				return nil, fmt.Errorf("section %q title: %w", sec.ID, err)
			}
			if err := checkText(sec.Body); err != nil {
				return nil, fmt.Errorf("section %q body: %w", sec.ID, err)
			}
		}
	}
	for i, q := range doc.Quotes {
		if q.ID == "" {
			return nil, fmt.Errorf("quote %d: %w", i, ErrMissingID)
		}
		if _, dup := lib.quoteIndex[q.ID]; dup {
			return nil, fmt.Errorf("quote %q: %w", q.ID, ErrDuplicateID)
		}
		lib.quoteIndex[q.ID] = i
		if err := checkText(q.Text); err != nil {
			return nil, fmt.Errorf("quote %q text: %w", q.ID, err)
		}
		if err := checkText(q.Source); err != nil {
			return nil, fmt.Errorf("quote %q source: %w", q.ID, err)
		}
	}
	return lib, nil
}

func checkText(t Text) error {
	for l := range t {
		if !l.Valid() {
			return fmt.Errorf("%q: %w", l, ErrUnknownLang)
		}
	}
	if t[English] == "" {
		return ErrMissingEnglish
	}
	return nil
}

// Chapters returns the chapters in reading order.
func (l *Library) Chapters() []Chapter {
	return l.chapters
}

// Chapter looks up a chapter by id.
func (l *Library) Chapter(id string) (*Chapter, bool) {
	i, ok := l.chapterIndex[id]
	if !ok {
		return nil, false
	}
	return &l.chapters[i], true
}

// Section looks up a section by chapter and section id.
func (l *Library) Section(chapterID, sectionID string) (*Section, bool) {
	ch, ok := l.Chapter(chapterID)
	if !ok {
		return nil, false
	}
	return ch.Section(sectionID)
}

// Quotes returns the quote pool in content order.
func (l *Library) Quotes() []Quote {
	return l.quotes
}

// Quote looks up a quote by id.
func (l *Library) Quote(id string) (*Quote, bool) {
	i, ok := l.quoteIndex[id]
	if !ok {
		return nil, false
	}
	return &l.quotes[i], true
}
