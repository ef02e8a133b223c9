// pkg/audio/sound_manager.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-pursuit/pkg/event"
)

// eventSounds maps game events to the effect they trigger
var eventSounds = map[event.Type]SoundType{
	event.FootstepTaken:         SoundFootstep,
	event.EnemyShot:             SoundShot,
	event.ProjectileHitObstacle: SoundImpact,
	event.ProjectileHitPlayer:   SoundHit,
	event.LevelCompleted:        SoundComplete,
}

// Speaker retry policy: after speakerMaxFailures consecutive failures the
// breaker opens and no reopen is tried for speakerRetryTimeout.
const (
	speakerMaxFailures  = 3
	speakerRetryTimeout = 30 * time.Second
)

// SoundManager plays effects through a single mixer on the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool

	// failed is set once opening the speaker has failed; Play then keeps
	// retrying through the breaker.
	failed  bool
	breaker *gobreaker.CircuitBreaker
	open    func(rate beep.SampleRate, mixer beep.Streamer) error
}

// NewSoundManager creates a sound manager. Nothing plays until Initialize.
func NewSoundManager(cfg *Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "audio-speaker",
			MaxRequests: 1,
			Timeout:     speakerRetryTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= speakerMaxFailures
			},
		}),
		open: openSpeaker,
	}
}

func openSpeaker(rate beep.SampleRate, mixer beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// Initialize opens the speaker. It is a no-op when audio is disabled.
// After a failure, Play retries until the breaker opens.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	return sm.openLocked()
}

func (sm *SoundManager) openLocked() error {
	_, err := sm.breaker.Execute(func() (interface{}, error) {
		return nil, sm.open(beep.SampleRate(sm.cfg.SampleRate), sm.mixer)
	})
	if err != nil {
		sm.failed = true
		return fmt.Errorf("open speaker: %w", err)
	}

	sm.failed = false
	sm.initialized = true
	return nil
}

// State returns the speaker breaker's state
func (sm *SoundManager) State() gobreaker.State {
	return sm.breaker.State()
}

// Cleanup silences every active sound and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play starts a sound effect
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		if !sm.failed || sm.openLocked() != nil {
			return
		}
	}

	if s := Effect(sound, sm.cfg); s != nil {
		sm.add(s)
	}
}

// add hands a streamer to the mixer. The speaker goroutine reads the mixer,
// so it is locked while running.
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Attach subscribes the manager to game events and returns a function that
// detaches it again.
func (sm *SoundManager) Attach(bus *event.Bus) func() {
	subs := make([]*event.Subscription, 0, len(eventSounds))
	for typ, sound := range eventSounds {
		subs = append(subs, bus.Subscribe(typ, func(event.Event) {
			sm.Play(sound)
		}))
	}

	return func() {
		for _, sub := range subs {
			sub.Cancel()
		}
	}
}
