package drone

import (
	"errors"
	"fmt"
)

type paramEvent struct {
	kind  string
	value float64
	at    float64
}

type fakeParam struct {
	owner  string
	value  float64
	events []paramEvent
}

func (p *fakeParam) Value() float64     { return p.value }
func (p *fakeParam) SetValue(v float64) { p.value = v }

func (p *fakeParam) SetValueAtTime(v, at float64) {
	p.value = v
	p.events = append(p.events, paramEvent{"set", v, at})
}

func (p *fakeParam) LinearRampToValueAtTime(v, at float64) {
	p.events = append(p.events, paramEvent{"linear", v, at})
}

func (p *fakeParam) ExponentialRampToValueAtTime(v, at float64) {
	p.events = append(p.events, paramEvent{"exponential", v, at})
}

func (p *fakeParam) CancelScheduledValues(from float64) {
	p.events = append(p.events, paramEvent{"cancel", 0, from})
}

func (p *fakeParam) last(kind string) (paramEvent, bool) {
	for i := len(p.events) - 1; i >= 0; i-- {
		if p.events[i].kind == kind {
			return p.events[i], true
		}
	}
	return paramEvent{}, false
}

type fakeNode struct {
	name          string
	targets       []Node
	paramTargets  []Param
	disconnects   int
	disconnectErr error
}

func (n *fakeNode) Connect(dst Node)       { n.targets = append(n.targets, dst) }
func (n *fakeNode) ConnectParam(dst Param) { n.paramTargets = append(n.paramTargets, dst) }

func (n *fakeNode) Disconnect() error {
	n.disconnects++
	return n.disconnectErr
}

type fakeOsc struct {
	fakeNode
	wave    string
	freq    *fakeParam
	started bool
	stops   []float64
	// alreadyStopped makes every Stop fail like the browser does for a
	// second stop.
	alreadyStopped bool
}

func (o *fakeOsc) SetType(wave string) { o.wave = wave }
func (o *fakeOsc) Frequency() Param    { return o.freq }
func (o *fakeOsc) Start()              { o.started = true }

func (o *fakeOsc) Stop(at float64) error {
	if o.alreadyStopped || len(o.stops) > 0 {
		return errors.New("InvalidStateError: cannot call stop more than once")
	}
	o.stops = append(o.stops, at)
	return nil
}

type fakeGain struct {
	fakeNode
	gain *fakeParam
}

func (g *fakeGain) Gain() Param { return g.gain }

type pending struct {
	delay float64
	fn    func()
}

type fakeCtx struct {
	state string
	now   float64
	dest  *fakeNode

	oscs  []*fakeOsc
	gains []*fakeGain

	resumes, suspends, closes int
	resumeErr, suspendErr     error

	// failAfter makes node creation fail once this many nodes exist; <0
	// disables it.
	failAfter      int
	oscAlreadyDone bool

	pending []pending
}

func newFakeCtx() *fakeCtx {
	return &fakeCtx{state: StateRunning, now: 10, dest: &fakeNode{name: "destination"}, failAfter: -1}
}

func (c *fakeCtx) State() string        { return c.state }
func (c *fakeCtx) CurrentTime() float64 { return c.now }
func (c *fakeCtx) Destination() Node    { return c.dest }

func (c *fakeCtx) created() int { return len(c.oscs) + len(c.gains) }

func (c *fakeCtx) NewOscillator() (Oscillator, error) {
	if c.failAfter >= 0 && c.created() >= c.failAfter {
		return nil, errors.New("NotSupportedError")
	}
	name := fmt.Sprintf("osc%d", len(c.oscs))
	o := &fakeOsc{fakeNode: fakeNode{name: name}, freq: &fakeParam{owner: name}, alreadyStopped: c.oscAlreadyDone}
	c.oscs = append(c.oscs, o)
	return o, nil
}

func (c *fakeCtx) NewGain() (GainNode, error) {
	if c.failAfter >= 0 && c.created() >= c.failAfter {
		return nil, errors.New("NotSupportedError")
	}
	name := fmt.Sprintf("gain%d", len(c.gains))
	g := &fakeGain{fakeNode: fakeNode{name: name}, gain: &fakeParam{owner: name, value: 1}}
	c.gains = append(c.gains, g)
	return g, nil
}

func (c *fakeCtx) Resume() error {
	c.resumes++
	if c.resumeErr == nil {
		c.state = StateRunning
	}
	return c.resumeErr
}

func (c *fakeCtx) Suspend() error {
	c.suspends++
	if c.suspendErr == nil {
		c.state = StateSuspended
	}
	return c.suspendErr
}

func (c *fakeCtx) Close() error {
	c.closes++
	c.state = StateClosed
	return nil
}

func (c *fakeCtx) After(delay float64, fn func()) {
	c.pending = append(c.pending, pending{delay, fn})
}

// flush runs every pending callback.
func (c *fakeCtx) flush() {
	for len(c.pending) > 0 {
		p := c.pending[0]
		c.pending = c.pending[1:]
		p.fn()
	}
}

type fakeFactory struct {
	contexts []*fakeCtx
	next     func() *fakeCtx
	err      error
}

func (f *fakeFactory) create() (Context, error) {
	if f.err != nil {
		return nil, f.err
	}
	ctx := newFakeCtx()
	if f.next != nil {
		ctx = f.next()
	}
	f.contexts = append(f.contexts, ctx)
	return ctx, nil
}

func (f *fakeFactory) last() *fakeCtx {
	if len(f.contexts) == 0 {
		return nil
	}
	return f.contexts[len(f.contexts)-1]
}

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
