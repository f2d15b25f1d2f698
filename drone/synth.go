// Package drone synthesizes the ambient background drone: a few detuned sine
// voices with slow per-voice pitch wobble, faded in and out.
package drone

import (
	"errors"
	"fmt"
	"math"

	"github.com/simukka/recital/common"
)

// ErrUnavailable reports that no audio context could be created.
var ErrUnavailable = errors.New("drone: audio unavailable")

// State is the synth's activity state.
type State int

const (
	Idle State = iota
	Sounding
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sounding:
		return "sounding"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type voice struct {
	freq    float64
	rate    float64
	depth   float64
	osc     Oscillator
	gain    GainNode
	mod     Oscillator
	modGain GainNode
}

func (v *voice) nodes() []Node {
	var nodes []Node
	if v.osc != nil {
		nodes = append(nodes, v.osc)
	}
	if v.gain != nil {
		nodes = append(nodes, v.gain)
	}
	if v.mod != nil {
		nodes = append(nodes, v.mod)
	}
	if v.modGain != nil {
		nodes = append(nodes, v.modGain)
	}
	return nodes
}

// VoiceInfo describes one sounding voice.
type VoiceInfo struct {
	Frequency float64
	ModRate   float64
	ModDepth  float64
}

// Synth is the drone. It is driven from UI events on a single goroutine and
// does no locking.
type Synth struct {
	cfg     Config
	factory Factory
	rng     common.Source
	logf    func(format string, args ...interface{})

	ctx    Context
	state  State
	voices []*voice
	// generation changes on every Start and Stop so a delayed release
	// callback can tell whether it is still the latest transition.
	generation int
}

// Option configures a Synth.
type Option func(*Synth)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(s *Synth) { s.cfg = cfg }
}

// WithSource replaces the random source for modulator rates.
func WithSource(src common.Source) Option {
	return func(s *Synth) { s.rng = src }
}

// WithLogf receives debug messages about swallowed audio failures.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(s *Synth) { s.logf = logf }
}

// New creates an idle synth. No audio context exists until the first Start.
func New(factory Factory, opts ...Option) *Synth {
	s := &Synth{
		cfg:     DefaultConfig,
		factory: factory,
		logf:    func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = common.NewClockRNG()
	}
	return s
}

// IsActive reports whether the drone is sounding.
func (s *Synth) IsActive() bool {
	return s.state == Sounding
}

// State returns the current state.
func (s *Synth) State() State {
	return s.state
}

// Voices describes the active voices.
func (s *Synth) Voices() []VoiceInfo {
	out := make([]VoiceInfo, 0, len(s.voices))
	for _, v := range s.voices {
		out = append(out, VoiceInfo{Frequency: v.freq, ModRate: v.rate, ModDepth: v.depth})
	}
	return out
}

// Toggle starts the drone when idle and stops it when sounding. Start
// failures leave the synth idle.
func (s *Synth) Toggle() {
	if s.state == Sounding {
		s.Stop()
		return
	}
	if err := s.Start(); err != nil {
		s.logf("drone: start: %v", err)
	}
}

// Start builds and fades in a new session. It is a no-op while sounding.
func (s *Synth) Start() error {
	if s.state == Sounding {
		return nil
	}
	ctx, err := s.context()
	if err != nil {
		return err
	}
	if ctx.State() == StateSuspended {
		if err := ctx.Resume(); err != nil {
			s.logf("drone: resume: %v", err)
		}
	}

	voices := make([]*voice, 0, len(s.cfg.Frequencies))
	for i, freq := range s.cfg.Frequencies {
		v, err := s.buildVoice(ctx, i, freq)
		if err != nil {
			if v != nil {
				voices = append(voices, v)
			}
			s.fadeOut(ctx, voices)
			s.disconnect(voices)
			return fmt.Errorf("build voice %d: %w", i, err)
		}
		voices = append(voices, v)
	}

	for _, v := range voices {
		v.osc.Start()
		v.mod.Start()
	}
	now := ctx.CurrentTime()
	for _, v := range voices {
		g := v.gain.Gain()
		g.SetValueAtTime(0, now)
		g.LinearRampToValueAtTime(s.cfg.PeakGain, now+s.cfg.FadeIn)
	}

	s.generation++
	s.voices = voices
	s.state = Sounding
	return nil
}

// Stop fades out the session and lands in Idle immediately. The nodes are
// disconnected and the context suspended once the fade-out tail has played.
// Stop is safe to call at any time.
func (s *Synth) Stop() {
	voices := s.voices
	s.voices = nil
	s.state = Idle
	s.generation++
	ctx := s.ctx
	if ctx == nil {
		return
	}
	if len(voices) == 0 {
		s.suspend(ctx)
		return
	}

	s.fadeOut(ctx, voices)
	gen := s.generation
	ctx.After(s.cfg.FadeOut+s.cfg.StopDelay, func() {
		s.disconnect(voices)
		if s.generation == gen && s.ctx == ctx {
			s.suspend(ctx)
		}
	})
}

// Close stops the drone and closes the audio context for good. A later
// Start creates a new context.
func (s *Synth) Close() {
	voices := s.voices
	s.Stop()
	s.disconnect(voices)
	if s.ctx == nil {
		return
	}
	if err := s.ctx.Close(); err != nil {
		s.logf("drone: close: %v", err)
	}
	s.ctx = nil
}

func (s *Synth) context() (Context, error) {
	if s.ctx != nil && s.ctx.State() != StateClosed {
		return s.ctx, nil
	}
	s.ctx = nil
	if s.factory == nil {
		return nil, ErrUnavailable
	}
	ctx, err := s.factory()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if ctx == nil {
		return nil, ErrUnavailable
	}
	s.ctx = ctx
	return ctx, nil
}

func (s *Synth) suspend(ctx Context) {
	if ctx.State() == StateClosed {
		return
	}
	if err := ctx.Suspend(); err != nil {
		s.logf("drone: suspend: %v", err)
	}
}

// buildVoice wires osc -> gain -> destination and mod -> modGain -> osc.frequency.
// On error the partially built voice is returned for cleanup.
func (s *Synth) buildVoice(ctx Context, i int, freq float64) (*voice, error) {
	v := &voice{
		freq:  freq,
		rate:  common.Range(s.rng, s.cfg.ModRateMin, s.cfg.ModRateMax),
		depth: freq * s.cfg.Spread(i),
	}
	var err error
	if v.osc, err = ctx.NewOscillator(); err != nil {
		return nil, err
	}
	if v.gain, err = ctx.NewGain(); err != nil {
		return v, err
	}
	if v.mod, err = ctx.NewOscillator(); err != nil {
		return v, err
	}
	if v.modGain, err = ctx.NewGain(); err != nil {
		return v, err
	}

	v.osc.SetType(s.cfg.Wave)
	v.osc.Frequency().SetValue(freq)
	v.gain.Gain().SetValue(0)
	v.osc.Connect(v.gain)
	v.gain.Connect(ctx.Destination())

	v.mod.SetType("sine")
	v.mod.Frequency().SetValue(v.rate)
	v.modGain.Gain().SetValue(v.depth)
	v.mod.Connect(v.modGain)
	v.modGain.ConnectParam(v.osc.Frequency())
	return v, nil
}

// fadeOut ramps both gains of every voice to the floor and schedules the
// oscillators to stop after the ramp. Already-stopped oscillators are not an
// error.
func (s *Synth) fadeOut(ctx Context, voices []*voice) {
	now := ctx.CurrentTime()
	end := now + s.cfg.FadeOut
	for _, v := range voices {
		if v.gain != nil {
			s.rampToFloor(v.gain.Gain(), now, end)
		}
		if v.modGain != nil {
			s.rampToFloor(v.modGain.Gain(), now, end)
		}
		for _, o := range []Oscillator{v.osc, v.mod} {
			if o == nil {
				continue
			}
			if err := o.Stop(end + s.cfg.StopDelay); err != nil {
				s.logf("drone: stop oscillator: %v", err)
			}
		}
	}
}

func (s *Synth) disconnect(voices []*voice) {
	for _, v := range voices {
		for _, n := range v.nodes() {
			if err := n.Disconnect(); err != nil {
				s.logf("drone: disconnect: %v", err)
			}
		}
	}
}

// rampToFloor anchors p at its present value and ramps it exponentially to
// the floor. The floor takes the sign of the present value because an
// exponential ramp cannot cross zero.
func (s *Synth) rampToFloor(p Param, now, end float64) {
	current := p.Value()
	p.CancelScheduledValues(now)
	p.SetValueAtTime(current, now)
	p.ExponentialRampToValueAtTime(math.Copysign(s.cfg.Floor, current), end)
}
