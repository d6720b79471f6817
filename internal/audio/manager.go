package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager plays game-event sounds through a shared mixer.
// Safe for use from the TUI update loop; all methods are no-ops until
// Initialize succeeds or when audio is disabled in the config.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cfg         config.AudioConfig
	muted       bool
	initialized bool
}

// NewSoundManager creates a manager with the given audio settings.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		cfg:   cfg,
	}
}

// Initialize opens the speaker and starts the mixer. Does nothing when
// audio is disabled. A failed speaker init leaves the manager silent
// rather than failing the game.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// ToggleMute flips the mute state and reports the new value.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// PlayEvent plays the sound mapped to a game event.
func (sm *SoundManager) PlayEvent(ev core.GameEvent) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	vol := sm.cfg.MasterVolume
	var s beep.Streamer
	switch ev {
	case core.EventEat:
		s = CreateEatSound(sampleRate, vol)
	case core.EventBonus:
		s = CreateBonusSound(sampleRate, vol)
	case core.EventPowerUpCollected:
		s = CreatePowerUpSound(sampleRate, vol)
	case core.EventPowerUpExpired:
		s = CreateExpireSound(sampleRate, vol)
	case core.EventTeleport:
		s = CreateTeleportSound(sampleRate, vol)
	case core.EventGameOver:
		s = CreateGameOverSound(sampleRate, vol)
	case core.EventLevelComplete:
		s = CreateLevelCompleteSound(sampleRate, vol)
	}
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
