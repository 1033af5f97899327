// Package audio plays a low rumble whenever an impact detonates.
package audio

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/impact/internal/effect"
)

const sampleRate = beep.SampleRate(48000)

// Rumble shaping.
const (
	minRumble      = 1500 * time.Millisecond
	maxRumble      = 6 * time.Second
	rumbleFreq     = 45.0 // Hz, base of the low sine under the noise
	minVolume      = 0.25
	maxVolume      = 0.9
	attackDuration = 40 * time.Millisecond
)

// RumbleDuration grows with the logarithm of the impact energy.
func RumbleDuration(p effect.Params) time.Duration {
	energy := math.Max(p.EnergyMegatons, 0)
	d := minRumble + time.Duration(math.Log10(1+energy)*float64(time.Second))
	return min(d, maxRumble)
}

// RumbleVolume is the linear playback gain for an impact.
func RumbleVolume(p effect.Params) float64 {
	energy := math.Max(p.EnergyMegatons, 0)
	return math.Min(minVolume+0.2*math.Log10(1+energy), maxVolume)
}

// rumbleGenerator mixes filtered noise with a low sine under an
// exponential decay.
type rumbleGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	decay float64
	rng   *rand.Rand
	last  float64
}

func (g *rumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * g.decay)
		if attack := g.sr.N(attackDuration); g.pos < attack {
			envelope *= float64(g.pos) / float64(attack)
		}

		// One-pole low-pass keeps the noise in the bass range.
		g.last += 0.05 * (g.rng.Float64()*2 - 1 - g.last)
		sine := math.Sin(2 * math.Pi * rumbleFreq * t)

		sample := envelope * (0.6*g.last + 0.4*sine)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *rumbleGenerator) Err() error { return nil }

// RumbleStream builds the rumble for p at rate, already gain-adjusted.
func RumbleStream(p effect.Params, rate beep.SampleRate, seed uint64) beep.Streamer {
	d := RumbleDuration(p)
	gen := &rumbleGenerator{
		sr:    rate,
		total: rate.N(d),
		decay: 4 / d.Seconds(),
		rng:   rand.New(rand.NewPCG(seed, seed+1)),
	}
	vol := RumbleVolume(p)
	if vol <= 0 {
		return &effects.Volume{Streamer: gen, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: gen, Base: 2, Volume: math.Log2(vol)}
}

// Rumble owns the speaker and mixes detonation sounds into it.
type Rumble struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	plays       uint64
}

// NewRumble creates an uninitialized player. Play is a no-op until Init.
func NewRumble() *Rumble {
	return &Rumble{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (r *Rumble) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(r.mixer)
	r.initialized = true
	return nil
}

// Play starts a rumble sized for p. Safe to pass as sim.Options.OnDetonate.
func (r *Rumble) Play(p effect.Params) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return
	}
	r.plays++
	s := RumbleStream(p, sampleRate, r.plays)

	speaker.Lock()
	r.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (r *Rumble) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return
	}
	speaker.Lock()
	r.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	r.initialized = false
}
