// Package audio synthesizes ringshot's sound cues with beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultVolume is the master gain used when no setting is stored.
	DefaultVolume = 0.3
)

// SoundManager plays cues through the system speaker. It is safe for
// concurrent use; the speaker streams from its own goroutine.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool
	seed        int64
	logger      *log.Logger
}

// NewSoundManager creates a sound manager. Nothing plays until Initialize succeeds.
func NewSoundManager(volume float64, enabled bool, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
		seed:    time.Now().UnixNano(),
		logger:  logger,
	}
}

// Initialize opens the speaker. On failure the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", int(sampleRate), "volume", sm.volume)
	return nil
}

// Cleanup stops everything that is playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume sets the master gain in [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = v
}

// SetEnabled mutes or unmutes future cues.
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = enabled
}

// play queues a one-shot streamer on the mixer.
func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled || sm.volume <= 0 {
		return
	}

	s := newVolume(build(), sm.volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Shoot plays the launch cue.
func (sm *SoundManager) Shoot() {
	sm.play(func() beep.Streamer {
		sm.seed++
		return ShootSound(sampleRate, sm.seed)
	})
}

// Hit plays the normal hit cue.
func (sm *SoundManager) Hit() {
	sm.play(func() beep.Streamer { return HitSound(sampleRate) })
}

// Perfect plays the perfect hit cue.
func (sm *SoundManager) Perfect() {
	sm.play(func() beep.Streamer { return PerfectSound(sampleRate) })
}

// Fail plays the miss cue.
func (sm *SoundManager) Fail() {
	sm.play(func() beep.Streamer { return FailSound(sampleRate) })
}

// Win plays the sector clear cue.
func (sm *SoundManager) Win() {
	sm.play(func() beep.Streamer { return WinSound(sampleRate) })
}
