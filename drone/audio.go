package drone

// The interfaces below are the slice of the Web Audio API the synth uses.
// The browser implementation lives in drone/webaudio; tests use fakes.

// Context states as reported by AudioContext.state.
const (
	StateRunning   = "running"
	StateSuspended = "suspended"
	StateClosed    = "closed"
)

// Param is an automatable value such as a frequency or a gain.
type Param interface {
	Value() float64
	SetValue(v float64)
	SetValueAtTime(v, at float64)
	LinearRampToValueAtTime(v, at float64)
	ExponentialRampToValueAtTime(v, at float64)
	CancelScheduledValues(from float64)
}

// Node is a vertex of the audio graph.
type Node interface {
	Connect(dst Node)
	ConnectParam(dst Param)
	Disconnect() error
}

// Oscillator is a periodic tone generator.
type Oscillator interface {
	Node
	SetType(wave string)
	Frequency() Param
	Start()
	// Stop schedules the end of the oscillator. Stopping twice is an error
	// in the browser.
	Stop(at float64) error
}

// GainNode scales its input.
type GainNode interface {
	Node
	Gain() Param
}

// Context owns the audio graph and its clock.
type Context interface {
	State() string
	CurrentTime() float64
	Destination() Node
	NewOscillator() (Oscillator, error)
	NewGain() (GainNode, error)
	// Resume, Suspend and Close start asynchronous transitions; a returned
	// error only covers failing to start one.
	Resume() error
	Suspend() error
	Close() error
	// After runs fn on the event loop once delay seconds have passed.
	After(delay float64, fn func())
}

// Factory creates an audio context. It is called on first activation only,
// since browsers refuse to start audio before a user gesture.
type Factory func() (Context, error)
