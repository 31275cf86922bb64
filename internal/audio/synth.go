package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSaw
)

// Tone describes a single oscillator note with a frequency sweep and a gain
// envelope. Exponential ramps need strictly positive endpoints.
type Tone struct {
	Wave     Wave
	From, To float64 // Frequency in Hz
	ExpFreq  bool
	Duration time.Duration

	Attack   time.Duration // Linear rise from silence to GainFrom
	GainFrom float64
	GainTo   float64
	ExpGain  bool
}

// Streamer returns a streamer that plays the tone once at rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		tone:   t,
		rate:   rate,
		total:  rate.N(t.Duration),
		attack: rate.N(t.Attack),
	}
}

type toneStreamer struct {
	tone   Tone
	rate   beep.SampleRate
	total  int
	attack int
	pos    int
	phase  float64
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		frac := float64(s.pos) / float64(s.total)
		freq := ramp(s.tone.From, s.tone.To, frac, s.tone.ExpFreq)

		gain := s.tone.GainFrom
		if s.pos < s.attack {
			gain *= float64(s.pos) / float64(s.attack)
		} else if rest := s.total - s.attack; rest > 0 {
			gain = ramp(s.tone.GainFrom, s.tone.GainTo, float64(s.pos-s.attack)/float64(rest), s.tone.ExpGain)
		}

		val := gain * waveAt(s.tone.Wave, s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// waveAt evaluates a wave at phase in [0, 1).
func waveAt(w Wave, phase float64) float64 {
	switch w {
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// ramp interpolates from a to b. Exponential ramps fall back to linear when
// either endpoint is not positive.
func ramp(a, b, frac float64, exponential bool) float64 {
	frac = math.Max(0, math.Min(1, frac))
	if exponential && a > 0 && b > 0 {
		return a * math.Pow(b/a, frac)
	}
	return a + (b-a)*frac
}

// whoosh is low-passed white noise whose cutoff opens while the gain decays.
type whoosh struct {
	rate     beep.SampleRate
	rng      *rand.Rand
	total    int
	sweepLen int
	pos      int
	lp       float64
}

// Whoosh cutoff and gain shape.
const (
	whooshCutoffFrom = 400.0
	whooshCutoffTo   = 1200.0
	whooshGainFrom   = 0.1
	whooshGainTo     = 0.01
)

// NewWhoosh creates a wind noise burst of the given length. The cutoff sweeps
// up over the first two thirds.
func NewWhoosh(rate beep.SampleRate, d time.Duration, seed int64) beep.Streamer {
	total := rate.N(d)
	return &whoosh{
		rate:     rate,
		rng:      rand.New(rand.NewSource(seed)),
		total:    total,
		sweepLen: total * 2 / 3,
	}
}

func (w *whoosh) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if w.pos >= w.total {
			return i, i > 0
		}

		cutoff := whooshCutoffTo
		if w.sweepLen > 0 && w.pos < w.sweepLen {
			cutoff = ramp(whooshCutoffFrom, whooshCutoffTo, float64(w.pos)/float64(w.sweepLen), false)
		}
		// One-pole low-pass
		alpha := 1 - math.Exp(-2*math.Pi*cutoff/float64(w.rate))
		w.lp += alpha * (w.rng.Float64()*2 - 1 - w.lp)

		gain := ramp(whooshGainFrom, whooshGainTo, float64(w.pos)/float64(w.total), true)
		val := gain * w.lp
		samples[i][0] = val
		samples[i][1] = val
		w.pos++
	}
	return len(samples), true
}

func (w *whoosh) Err() error { return nil }

// newVolume scales a streamer by a linear gain. Zero gain is silent because
// effects.Volume works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// ShootSound is a rising triangle zap layered over a wind whoosh.
func ShootSound(rate beep.SampleRate, seed int64) beep.Streamer {
	zap := Tone{
		Wave: WaveTriangle, From: 400, To: 800, ExpFreq: true,
		Duration: 100 * time.Millisecond,
		GainFrom: 0.5, GainTo: 0.01, ExpGain: true,
	}
	return beep.Mix(zap.Streamer(rate), NewWhoosh(rate, 300*time.Millisecond, seed))
}

// HitSound is a short rising sine chirp.
func HitSound(rate beep.SampleRate) beep.Streamer {
	return Tone{
		Wave: WaveSine, From: 800, To: 1200, ExpFreq: true,
		Duration: 150 * time.Millisecond,
		GainFrom: 0.5, GainTo: 0.01, ExpGain: true,
	}.Streamer(rate)
}

// arpeggioNotes is an A major triad.
var arpeggioNotes = []float64{440, 554, 659}

// PerfectSound plays the triad as a rolled chord, one note every 50 ms.
func PerfectSound(rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(arpeggioNotes))
	for i, freq := range arpeggioNotes {
		note := Tone{
			Wave: WaveSine, From: freq, To: freq,
			Duration: 400 * time.Millisecond,
			Attack:   50 * time.Millisecond,
			GainFrom: 0.3, GainTo: 0.01, ExpGain: true,
		}
		delay := rate.N(time.Duration(i) * 50 * time.Millisecond)
		voices = append(voices, beep.Seq(beep.Silence(delay), note.Streamer(rate)))
	}
	return beep.Mix(voices...)
}

// FailSound is a falling sawtooth.
func FailSound(rate beep.SampleRate) beep.Streamer {
	return Tone{
		Wave: WaveSaw, From: 200, To: 50,
		Duration: 300 * time.Millisecond,
		GainFrom: 0.5, GainTo: 0.01,
	}.Streamer(rate)
}

// WinSound reuses the perfect chord.
func WinSound(rate beep.SampleRate) beep.Streamer {
	return PerfectSound(rate)
}
