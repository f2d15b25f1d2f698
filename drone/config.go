package drone

// Config holds the drone's tunables. Times are in seconds, rates in Hz.
type Config struct {
	// Voice frequencies; one voice per entry.
	Frequencies []float64
	Wave        string // Oscillator type for voices and modulators

	PeakGain  float64 // Per-voice gain after the fade-in
	FadeIn    float64 // Linear ramp from 0 to PeakGain
	FadeOut   float64 // Exponential ramp from current gain to Floor
	StopDelay float64 // Oscillators stop this long after the fade-out ends
	Floor     float64 // Exponential ramps cannot reach zero

	// Pitch wobble
	ModRateMin float64 // Modulator rate is drawn from [ModRateMin, ModRateMax)
	ModRateMax float64
	Spreads    []float64 // Wobble depth as a fraction of voice frequency, by voice index parity
}

// DefaultConfig is a D-A-D triad with the A doubled.
var DefaultConfig = Config{
	Frequencies: []float64{146.83, 220, 293.66, 220},
	Wave:        "sine",

	PeakGain:  0.08,
	FadeIn:    2,
	FadeOut:   0.5,
	StopDelay: 0.1,
	Floor:     0.0001,

	ModRateMin: 0.1,
	ModRateMax: 0.3,
	Spreads:    []float64{0.1, -0.08},
}

// Spread returns the wobble fraction for voice i: Spreads alternate by index
// so neighbouring voices move against each other.
func (c Config) Spread(i int) float64 {
	if len(c.Spreads) == 0 {
		return 0
	}
	return c.Spreads[i%len(c.Spreads)]
}
