// Package audio synthesizes the game's sound effects and background drone
// with beep. It listens to simulation events and never blocks them.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/arena/events"
	"github.com/pthm-cable/arena/persist"
)

const (
	sampleRate = beep.SampleRate(44100)
	droneRoot  = 55.0 // A1
)

// SoundManager mixes one-shot effects and the music drone. It implements
// events.Sink: any event carrying a Sound key plays that effect when sound
// effects are enabled.
//
// Without Initialize the manager still mixes into its own mixer, which is
// simply never drained by a speaker.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	settings    persist.Settings
	initialized bool
}

// NewSoundManager creates a manager honoring the given settings.
func NewSoundManager(settings persist.Settings) *SoundManager {
	sm := &SoundManager{
		rate:     sampleRate,
		mixer:    &beep.Mixer{},
		settings: settings,
	}
	sm.music = &beep.Ctrl{
		Streamer: newVolume(newDrone(droneRoot, sm.rate), 1),
		Paused:   !settings.MusicEnabled,
	}
	sm.mixer.Add(sm.music)
	return sm
}

// Initialize opens the audio device and starts playback. Safe to call twice.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.locked(func() {
		sm.music.Paused = true
		sm.mixer.Clear()
	})
	if sm.initialized {
		speaker.Clear()
		sm.initialized = false
	}
}

// Handle implements events.Sink.
func (sm *SoundManager) Handle(e events.Event) {
	if e.Sound == "" {
		return
	}
	sm.Play(e.Sound)
}

// Play starts the effect for key. It returns false when effects are off or
// the key is unknown.
func (sm *SoundManager) Play(key string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.settings.SFXEnabled {
		return false
	}
	s := Effect(key, sm.rate)
	if s == nil {
		slog.Debug("unknown sound key", "key", key)
		return false
	}
	sm.locked(func() { sm.mixer.Add(s) })
	return true
}

// Apply switches sound effects and music on or off.
func (sm *SoundManager) Apply(st persist.Settings) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.settings = st
	sm.locked(func() {
		sm.music.Paused = !st.MusicEnabled
		if sm.mixer.Len() == 0 {
			sm.mixer.Add(sm.music)
		}
	})
}

// Settings returns the settings currently applied.
func (sm *SoundManager) Settings() persist.Settings {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.settings
}

// Active returns the number of streamers in the mix, music included.
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	var n int
	sm.locked(func() { n = sm.mixer.Len() })
	return n
}

// locked runs fn while holding the speaker lock, if the speaker is running.
// Caller holds sm.mu.
func (sm *SoundManager) locked(fn func()) {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
