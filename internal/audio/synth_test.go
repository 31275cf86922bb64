package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()

	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("sample %d is not finite: %v", total, v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			if err := s.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	tone := Tone{Wave: WaveSine, From: 440, To: 440, Duration: 100 * time.Millisecond, GainFrom: 0.5, GainTo: 0.5}

	n, peak := drain(t, tone.Streamer(sampleRate))
	if want := sampleRate.N(100 * time.Millisecond); n != want {
		t.Errorf("streamed %d samples, expected %d", n, want)
	}
	if peak > 0.5+1e-9 || peak < 0.45 {
		t.Errorf("peak = %v, expected about 0.5", peak)
	}
}

func TestToneAttackStartsSilent(t *testing.T) {
	tone := Tone{Wave: WaveSaw, From: 300, To: 300, Duration: 200 * time.Millisecond,
		Attack: 50 * time.Millisecond, GainFrom: 0.3, GainTo: 0.01, ExpGain: true}

	buf := make([][2]float64, 1)
	tone.Streamer(sampleRate).Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence", buf[0][0])
	}
}

func TestWaveRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveTriangle, WaveSaw} {
		for i := 0; i < 100; i++ {
			v := waveAt(w, float64(i)/100)
			if v < -1 || v > 1 {
				t.Fatalf("wave %d at %d = %v, out of range", w, i, v)
			}
		}
	}
}

func TestRamp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, f float64
		exp     bool
		want    float64
	}{
		{"linear mid", 200, 50, 0.5, false, 125},
		{"exp mid", 400, 800, 0.5, true, 400 * math.Sqrt2},
		{"exp end", 0.5, 0.01, 1, true, 0.01},
		{"clamped", 1, 2, 3, false, 2},
		{"exp through zero falls back", 0, 1, 0.5, true, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ramp(tc.a, tc.b, tc.f, tc.exp); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ramp() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSoundEffects(t *testing.T) {
	tests := []struct {
		name string
		s    beep.Streamer
		dur  time.Duration
	}{
		{"shoot", ShootSound(sampleRate, 1), 300 * time.Millisecond},
		{"hit", HitSound(sampleRate), 150 * time.Millisecond},
		{"perfect", PerfectSound(sampleRate), 500 * time.Millisecond},
		{"fail", FailSound(sampleRate), 300 * time.Millisecond},
		{"win", WinSound(sampleRate), 500 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, peak := drain(t, tc.s)
			if n < sampleRate.N(tc.dur)-1 {
				t.Errorf("streamed %d samples, expected at least %d", n, sampleRate.N(tc.dur))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, expected within (0, 1]", peak)
			}
		})
	}
}

func TestWhooshDeterministic(t *testing.T) {
	a := NewWhoosh(sampleRate, 50*time.Millisecond, 7)
	b := NewWhoosh(sampleRate, 50*time.Millisecond, 7)

	bufA := make([][2]float64, 100)
	bufB := make([][2]float64, 100)
	a.Stream(bufA)
	b.Stream(bufB)
	for i := range bufA {
		if bufA[i] != bufB[i] {
			t.Fatalf("sample %d differs between equal seeds", i)
		}
	}
}

func TestNewVolumeSilent(t *testing.T) {
	s := newVolume(HitSound(sampleRate), 0)
	buf := make([][2]float64, 100)
	s.Stream(buf)
	for i, smp := range buf {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, smp)
		}
	}
}

func TestSoundManagerSilentWhenUninitialized(t *testing.T) {
	sm := NewSoundManager(DefaultVolume, true, nil)

	// None of these may panic or block without a speaker.
	sm.Shoot()
	sm.Hit()
	sm.Perfect()
	sm.Fail()
	sm.Win()
	sm.SetVolume(0.5)
	sm.SetEnabled(false)
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, expected 0", sm.mixer.Len())
	}
}
