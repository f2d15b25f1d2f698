package shell

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/simukka/recital/quote"
)

// Option is one entry of a selector or navigation list.
type Option struct {
	ID       string
	Label    string
	Number   int
	Selected bool
}

// Page is everything the template needs, already localized.
type Page struct {
	Lang   string
	Dir    string
	Title  string
	Labels map[string]string

	Langs    []Option
	Chapters []Option
	Sections []Option

	ChapterNumber int
	ChapterTitle  string
	SectionTitle  string
	Body          string
	HasPrev       bool
	HasNext       bool

	Quote  *quote.Rendered
	Status Status
}

//go:embed page.gohtml
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// Render writes the page markup.
func Render(w io.Writer, p Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderString is Render into a string, for innerHTML.
func RenderString(p Page) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
