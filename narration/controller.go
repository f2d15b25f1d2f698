package narration

import (
	"github.com/simukka/recital/content"
)

// Utterance is one playback request.
type Utterance struct {
	Text  string
	Lang  string // BCP 47 tag
	Voice *Voice // nil lets the engine choose
	Rate  float64
	Pitch float64
}

// Engine is the platform speech synthesizer.
type Engine interface {
	Available() bool
	Voices() []Voice
	// Speak starts playback and returns immediately. done runs once when
	// playback ends, with a non-nil error if it failed or was cancelled.
	Speak(u Utterance, done func(error))
	Cancel()
}

// Controller narrates one utterance at a time. A new request cancels the
// one in flight instead of queueing behind it.
type Controller struct {
	engine   Engine
	profiles map[content.Lang]Profile
	onChange func(speaking bool)
	logf     func(format string, args ...interface{})

	speaking bool
	seq      int
}

// Option configures a Controller.
type Option func(*Controller)

// WithProfiles replaces DefaultProfiles.
func WithProfiles(p map[content.Lang]Profile) Option {
	return func(c *Controller) { c.profiles = p }
}

// WithOnChange is called whenever IsSpeaking changes.
func WithOnChange(fn func(speaking bool)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithLogf receives debug messages about playback errors.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(c *Controller) { c.logf = logf }
}

// NewController creates a controller. engine may be nil, which makes the
// controller inert.
func NewController(engine Engine, opts ...Option) *Controller {
	c := &Controller{
		engine:   engine,
		profiles: DefaultProfiles,
		onChange: func(bool) {},
		logf:     func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether narration can be offered at all.
func (c *Controller) Available() bool {
	return c.engine != nil && c.engine.Available()
}

// IsSpeaking reports whether an utterance is playing.
func (c *Controller) IsSpeaking() bool {
	return c.speaking
}

// Speak cancels whatever is playing and reads text in lang. It reports
// whether playback was started.
func (c *Controller) Speak(text string, lang content.Lang) bool {
	if !c.Available() || text == "" {
		return false
	}
	// Bumping seq first turns the cancelled utterance's callback stale.
	c.seq++
	id := c.seq
	c.engine.Cancel()

	profile, ok := c.profiles[lang]
	if !ok {
		profile = c.profiles[content.English]
	}
	u := Utterance{
		Text:  text,
		Lang:  lang.Tag().String(),
		Rate:  profile.Rate,
		Pitch: profile.Pitch,
	}
	if v, ok := PickVoiceFor(c.engine.Voices(), lang, c.profiles); ok {
		u.Voice = &v
		u.Lang = v.Lang
	}

	c.setSpeaking(true)
	c.engine.Speak(u, func(err error) {
		if err != nil {
			c.logf("narration: utterance %d: %v", id, err)
		}
		if id == c.seq {
			c.setSpeaking(false)
		}
	})
	return true
}

// Toggle stops narration when speaking and otherwise starts reading text.
func (c *Controller) Toggle(text string, lang content.Lang) {
	if c.speaking {
		c.Stop()
		return
	}
	c.Speak(text, lang)
}

// Stop cancels playback.
func (c *Controller) Stop() {
	c.seq++
	if c.Available() {
		c.engine.Cancel()
	}
	c.setSpeaking(false)
}

// Close cancels playback when the page goes away.
func (c *Controller) Close() {
	c.Stop()
}

func (c *Controller) setSpeaking(v bool) {
	if c.speaking == v {
		return
	}
	c.speaking = v
	c.onChange(v)
}
