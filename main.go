//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/recital/common"
	"github.com/simukka/recital/content"
	"github.com/simukka/recital/drone"
	"github.com/simukka/recital/drone/webaudio"
	"github.com/simukka/recital/narration"
	"github.com/simukka/recital/quote"
	"github.com/simukka/recital/shell"
	"github.com/simukka/recital/storage"
)

func main() {
	doc := js.Global.Get("document")
	root := doc.Call("getElementById", "app")
	if root == nil || root == js.Undefined {
		panic("app element not found")
	}

	lib := content.MustLoad()
	rng := common.NewClockRNG()

	local := storage.NewLocal()
	var store storage.Store = local
	if !local.Available() {
		shell.DebugWarn("localStorage unavailable, daily quote will not persist")
		store = storage.NewMemory()
	}
	quotes := quote.NewSelector(lib, store,
		quote.WithSource(rng),
		quote.WithLogf(shell.Debugf),
	)

	var synth *drone.Synth
	if webaudio.Supported() {
		synth = drone.New(webaudio.NewContext,
			drone.WithSource(rng),
			drone.WithLogf(shell.Debugf),
		)
	}

	var app *shell.App
	rerender := func(bool) {
		if app != nil {
			app.Render()
		}
	}
	speech := narration.NewSpeech()
	narrator := narration.NewController(speech,
		narration.WithOnChange(rerender),
		narration.WithLogf(shell.Debugf),
	)
	speech.OnVoicesChanged(func() { rerender(false) })

	lang := content.ParseLang(js.Global.Get("navigator").Get("language").String())
	state := shell.NewState(lib, lang)
	app = shell.NewApp(root, state, quotes, synth, narrator)

	// Console handle for poking at the audio features.
	js.Global.Set("Recital", map[string]interface{}{
		"toggleDrone": func() {
			if synth != nil {
				synth.Toggle()
				app.Render()
			}
		},
		"isDroneActive": func() bool {
			return synth != nil && synth.IsActive()
		},
		"speak": func(text, lang string) bool {
			return narrator.Speak(text, content.ParseLang(lang))
		},
		"stopSpeaking": func() {
			narrator.Stop()
		},
		"todaysQuote": func(lang string) map[string]interface{} {
			q, ok := quotes.Today(content.ParseLang(lang))
			if !ok {
				return nil
			}
			return map[string]interface{}{
				"id":     q.ID,
				"text":   q.Text,
				"source": q.Source,
			}
		},
	})

	js.Global.Call("addEventListener", "beforeunload", func() {
		app.Unmount()
	})

	app.Mount()
	shell.Debugf("recital: %d chapters, %d quotes, lang %s", len(lib.Chapters()), len(lib.Quotes()), lang)

	select {}
}
