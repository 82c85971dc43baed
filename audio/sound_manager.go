package audio

import (
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/flappy/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager manages all game audio
// Every method is a no-op until Initialize succeeds, so the game runs silent
// on machines without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
	sm.applyVolume(volume)
	return sm
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLatency)); err != nil {
		return err
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
}

// SetVolume changes the master volume, clamped to [0, 1]
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.applyVolume(volume)
}

// Volume returns the master volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

func (sm *SoundManager) applyVolume(volume float64) {
	volume = min(max(volume, 0), 1)
	sm.volume = volume
	if volume == 0 {
		sm.master.Silent = true
		sm.master.Volume = 0
		return
	}
	sm.master.Silent = false
	sm.master.Volume = math.Log2(volume)
}

// Play queues a one-shot sound on the mixer
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := GetSoundEffect(soundType, sampleRate)
	if err != nil {
		log.Printf("audio: %s: %v", soundType, err)
		return
	}
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayFlap plays the wing beat chirp
func (sm *SoundManager) PlayFlap() { sm.Play(SoundFlap) }

// PlayPoint plays the score chime
func (sm *SoundManager) PlayPoint() { sm.Play(SoundPoint) }

// PlayHit plays the collision thump
func (sm *SoundManager) PlayHit() { sm.Play(SoundHit) }

// PlayDie plays the falling sweep
func (sm *SoundManager) PlayDie() { sm.Play(SoundDie) }
