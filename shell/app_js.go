//go:build js
// +build js

package shell

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/recital/content"
	"github.com/simukka/recital/drone"
	"github.com/simukka/recital/narration"
	"github.com/simukka/recital/quote"
)

// App binds the page under a root element to the reader state and the
// audio features.
type App struct {
	root     *js.Object
	state    *State
	quotes   *quote.Selector
	drone    *drone.Synth
	narrator *narration.Controller

	droneAvailable bool
	mounted        bool
	listeners      map[string]func(*js.Object)
}

// NewApp returns an unmounted app. synth may be nil when the browser has no
// Web Audio support.
func NewApp(root *js.Object, state *State, quotes *quote.Selector, synth *drone.Synth, narrator *narration.Controller) *App {
	return &App{
		root:           root,
		state:          state,
		quotes:         quotes,
		drone:          synth,
		narrator:       narrator,
		droneAvailable: synth != nil,
	}
}

// Mount renders the page and starts listening for input.
func (a *App) Mount() {
	if a.mounted {
		return
	}
	a.mounted = true
	a.listeners = map[string]func(*js.Object){
		"click":  a.onClick,
		"change": a.onChange,
	}
	for event, fn := range a.listeners {
		a.root.Call("addEventListener", event, fn)
	}
	js.Global.Call("addEventListener", "pagehide", func() { a.Unmount() })
	a.Render()
}

// Unmount stops the drone and any narration.
func (a *App) Unmount() {
	if !a.mounted {
		return
	}
	a.mounted = false
	for event, fn := range a.listeners {
		a.root.Call("removeEventListener", event, fn)
	}
	a.listeners = nil
	if a.narrator != nil {
		a.narrator.Close()
	}
	if a.drone != nil {
		a.drone.Close()
	}
}

// Render redraws the page from the current state.
func (a *App) Render() {
	q, ok := a.quotes.Today(a.state.Lang())
	status := Status{DroneAvailable: a.droneAvailable}
	if a.drone != nil {
		status.DroneOn = a.drone.IsActive()
	}
	if a.narrator != nil {
		status.SpeechAvailable = a.narrator.Available()
		status.Speaking = a.narrator.IsSpeaking()
	}
	html, err := RenderString(a.state.View(q, ok, status))
	if err != nil {
		DebugWarn("render:", err.Error())
		return
	}
	a.root.Set("innerHTML", html)
	a.root.Get("style").Set("direction", a.state.Lang().Dir())
	js.Global.Get("document").Get("documentElement").Set("lang", string(a.state.Lang()))
}

func (a *App) onClick(event *js.Object) {
	target := event.Get("target").Call("closest", "[data-action]")
	if target == nil || target == js.Undefined {
		return
	}
	action := target.Get("dataset").Get("action").String()
	id := ""
	if v := target.Get("dataset").Get("id"); v != js.Undefined {
		id = v.String()
	}
	a.dispatch(action, id)
}

func (a *App) onChange(event *js.Object) {
	target := event.Get("target")
	if target.Get("dataset").Get("action").String() != "lang" {
		return
	}
	a.dispatch("lang", target.Get("value").String())
}

func (a *App) dispatch(action, value string) {
	switch action {
	case "chapter":
		a.stopNarration()
		a.state.SelectChapter(value)
	case "section":
		a.stopNarration()
		a.state.SelectSection(value)
	case "prev":
		a.stopNarration()
		a.state.Prev()
	case "next":
		a.stopNarration()
		a.state.Next()
	case "lang":
		a.stopNarration()
		a.state.SetLang(content.ParseLang(value))
	case "drone":
		if a.drone != nil {
			a.drone.Toggle()
		}
	case "narrate":
		if a.narrator != nil {
			a.narrator.Toggle(a.state.Narration(), a.state.Lang())
		}
	default:
		Debug("unknown action", action)
		return
	}
	a.Render()
}

func (a *App) stopNarration() {
	if a.narrator != nil && a.narrator.IsSpeaking() {
		a.narrator.Stop()
	}
}
