//go:build js
// +build js

package narration

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"
)

// Speech is the Engine backed by window.speechSynthesis.
type Speech struct {
	synth  *js.Object
	voices map[string]*js.Object
}

// NewSpeech binds to window.speechSynthesis. The result reports
// Available() == false in browsers without speech synthesis.
func NewSpeech() *Speech {
	s := &Speech{voices: make(map[string]*js.Object)}
	synth := js.Global.Get("speechSynthesis")
	ctor := js.Global.Get("SpeechSynthesisUtterance")
	if synth != nil && synth != js.Undefined && ctor != nil && ctor != js.Undefined {
		s.synth = synth
	}
	return s
}

// OnVoicesChanged registers fn for the engine's voiceschanged event, fired
// once voices finish loading.
func (s *Speech) OnVoicesChanged(fn func()) {
	if s.synth == nil {
		return
	}
	s.synth.Call("addEventListener", "voiceschanged", func(*js.Object) { fn() })
}

func (s *Speech) Available() bool {
	return s.synth != nil
}

func (s *Speech) Voices() (out []Voice) {
	if s.synth == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			out = nil
		}
	}()
	list := s.synth.Call("getVoices")
	n := list.Length()
	out = make([]Voice, 0, n)
	for i := 0; i < n; i++ {
		v := list.Index(i)
		voice := Voice{
			Name:    v.Get("name").String(),
			Lang:    v.Get("lang").String(),
			Default: v.Get("default").Bool(),
		}
		s.voices[voice.Name] = v
		out = append(out, voice)
	}
	return out
}

func (s *Speech) Speak(u Utterance, done func(error)) {
	if s.synth == nil {
		done(errors.New("speech synthesis unavailable"))
		return
	}
	defer func() {
		if r := recover(); r != nil {
			done(errors.New("speech synthesis failed"))
		}
	}()
	utt := js.Global.Get("SpeechSynthesisUtterance").New(u.Text)
	utt.Set("lang", u.Lang)
	if u.Rate > 0 {
		utt.Set("rate", u.Rate)
	}
	if u.Pitch > 0 {
		utt.Set("pitch", u.Pitch)
	}
	if u.Voice != nil {
		if v, ok := s.voices[u.Voice.Name]; ok {
			utt.Set("voice", v)
		}
	}
	utt.Set("onend", func(*js.Object) { done(nil) })
	utt.Set("onerror", func(e *js.Object) {
		reason := "speech error"
		if e != nil && e.Get("error") != js.Undefined {
			reason = e.Get("error").String()
		}
		done(errors.New(reason))
	})
	s.synth.Call("speak", utt)
}

func (s *Speech) Cancel() {
	if s.synth == nil {
		return
	}
	defer func() { recover() }()
	s.synth.Call("cancel")
}
