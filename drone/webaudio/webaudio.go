//go:build js
// +build js

// Package webaudio implements drone.Context on the browser's Web Audio API.
// Exceptions thrown by the browser are recovered into errors so none reach
// the page.
package webaudio

import (
	"errors"
	"fmt"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/recital/drone"
)

// ErrNoWebAudio is returned when neither AudioContext nor
// webkitAudioContext exists.
var ErrNoWebAudio = errors.New("webaudio: AudioContext not supported")

// Supported reports whether the browser exposes an AudioContext.
func Supported() bool {
	return constructor() != nil
}

func constructor() *js.Object {
	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	if audioCtx == nil || audioCtx == js.Undefined {
		return nil
	}
	return audioCtx
}

// NewContext creates an AudioContext. It matches drone.Factory.
func NewContext() (ctx drone.Context, err error) {
	defer recoverErr(&err)
	audioCtx := constructor()
	if audioCtx == nil {
		return nil, ErrNoWebAudio
	}
	return &Context{obj: audioCtx.New()}, nil
}

// Context wraps an AudioContext.
type Context struct {
	obj *js.Object
}

func (c *Context) State() string {
	return c.obj.Get("state").String()
}

func (c *Context) CurrentTime() float64 {
	return c.obj.Get("currentTime").Float()
}

func (c *Context) Destination() drone.Node {
	return &node{obj: c.obj.Get("destination")}
}

func (c *Context) NewOscillator() (osc drone.Oscillator, err error) {
	defer recoverErr(&err)
	return &oscillator{node{obj: c.obj.Call("createOscillator")}}, nil
}

func (c *Context) NewGain() (g drone.GainNode, err error) {
	defer recoverErr(&err)
	return &gain{node{obj: c.obj.Call("createGain")}}, nil
}

func (c *Context) Resume() error  { return c.transition("resume") }
func (c *Context) Suspend() error { return c.transition("suspend") }
func (c *Context) Close() error   { return c.transition("close") }

// transition fires one of the promise-returning state changes without
// waiting for it. Rejections are dropped.
func (c *Context) transition(method string) (err error) {
	defer recoverErr(&err)
	promise := c.obj.Call(method)
	if promise != nil && promise != js.Undefined && promise.Get("catch") != js.Undefined {
		promise.Call("catch", func(*js.Object) {})
	}
	return nil
}

func (c *Context) After(delay float64, fn func()) {
	js.Global.Call("setTimeout", fn, delay*1000)
}

type node struct {
	obj *js.Object
}

func (n *node) Connect(dst drone.Node) {
	if target, ok := unwrap(dst); ok {
		n.obj.Call("connect", target)
	}
}

func (n *node) ConnectParam(dst drone.Param) {
	if p, ok := dst.(*param); ok {
		n.obj.Call("connect", p.obj)
	}
}

func (n *node) Disconnect() (err error) {
	defer recoverErr(&err)
	n.obj.Call("disconnect")
	return nil
}

func unwrap(n drone.Node) (*js.Object, bool) {
	switch v := n.(type) {
	case *node:
		return v.obj, true
	case *oscillator:
		return v.obj, true
	case *gain:
		return v.obj, true
	}
	return nil, false
}

type oscillator struct {
	node
}

func (o *oscillator) SetType(wave string) {
	o.obj.Set("type", wave)
}

func (o *oscillator) Frequency() drone.Param {
	return &param{obj: o.obj.Get("frequency")}
}

func (o *oscillator) Start() {
	o.obj.Call("start")
}

// Stop throws InvalidStateError in the browser when the oscillator was
// already stopped.
func (o *oscillator) Stop(at float64) (err error) {
	defer recoverErr(&err)
	o.obj.Call("stop", at)
	return nil
}

type gain struct {
	node
}

func (g *gain) Gain() drone.Param {
	return &param{obj: g.obj.Get("gain")}
}

type param struct {
	obj *js.Object
}

func (p *param) Value() float64     { return p.obj.Get("value").Float() }
func (p *param) SetValue(v float64) { p.obj.Set("value", v) }

func (p *param) SetValueAtTime(v, at float64) {
	p.obj.Call("setValueAtTime", v, at)
}

func (p *param) LinearRampToValueAtTime(v, at float64) {
	p.obj.Call("linearRampToValueAtTime", v, at)
}

func (p *param) ExponentialRampToValueAtTime(v, at float64) {
	p.obj.Call("exponentialRampToValueAtTime", v, at)
}

func (p *param) CancelScheduledValues(from float64) {
	p.obj.Call("cancelScheduledValues", from)
}

func recoverErr(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(*js.Error); ok {
			*err = fmt.Errorf("webaudio: %s", jsErr.Error())
			return
		}
		*err = fmt.Errorf("webaudio: %v", r)
	}
}
