package drone

import (
	"math"

	"github.com/simukka/recital/common"
)

// Render synthesizes seconds of the drone offline as mono samples: every
// voice's sine with its sine pitch wobble, a linear fade-in and, over the
// final FadeOut seconds, the exponential fade to Floor. Modulator rates are
// drawn from src in voice order, as Start draws them.
func Render(cfg Config, src common.Source, seconds float64, sampleRate int) []float32 {
	if seconds <= 0 || sampleRate <= 0 {
		return nil
	}
	n := int(seconds * float64(sampleRate))
	out := make([]float32, n)
	if n == 0 || len(cfg.Frequencies) == 0 {
		return out
	}

	type osc struct {
		freq, rate, depth float64
		phase             float64
	}
	oscs := make([]osc, len(cfg.Frequencies))
	for i, f := range cfg.Frequencies {
		oscs[i] = osc{
			freq:  f,
			rate:  common.Range(src, cfg.ModRateMin, cfg.ModRateMax),
			depth: f * cfg.Spread(i),
		}
	}

	dt := 1 / float64(sampleRate)
	fadeOutStart := seconds - cfg.FadeOut
	for i := 0; i < n; i++ {
		t := float64(i) * dt
		env := envelope(cfg, t, fadeOutStart)
		var sum float64
		for j := range oscs {
			o := &oscs[j]
			inst := o.freq + o.depth*math.Sin(2*math.Pi*o.rate*t)
			o.phase += 2 * math.Pi * inst * dt
			if o.phase > 2*math.Pi {
				o.phase = math.Mod(o.phase, 2*math.Pi)
			}
			sum += math.Sin(o.phase)
		}
		out[i] = float32(sum * env)
	}
	return out
}

// envelope is the per-voice gain at time t.
func envelope(cfg Config, t, fadeOutStart float64) float64 {
	g := cfg.PeakGain
	if cfg.FadeIn > 0 && t < cfg.FadeIn {
		g = cfg.PeakGain * t / cfg.FadeIn
	}
	if cfg.FadeOut > 0 && t >= fadeOutStart && fadeOutStart >= 0 && g > 0 {
		floor := cfg.Floor
		if floor <= 0 || floor >= g {
			return g
		}
		progress := (t - fadeOutStart) / cfg.FadeOut
		if progress > 1 {
			progress = 1
		}
		g = g * math.Pow(floor/g, progress)
	}
	return g
}
