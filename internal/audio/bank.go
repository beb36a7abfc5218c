// Package audio synthesizes the hull's sound effects and ambient loops and
// plays them through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/trawler-hull/trawler/internal/logger"
)

const sampleRate = beep.SampleRate(44100)

// SoundBank plays named sounds and keeps ambient loops running by id.
// It is safe for concurrent use; the speaker pulls from its mixer on its own
// goroutine.
type SoundBank struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       map[string]*beep.Ctrl
	initialized bool
}

func NewSoundBank() *SoundBank {
	return &SoundBank{
		mixer: &beep.Mixer{},
		loops: make(map[string]*beep.Ctrl),
	}
}

// Initialize opens the speaker. Without an audio device it returns an error
// and every other method stays a no-op.
func (b *SoundBank) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Cleanup stops every sound. The bank can be initialized again afterwards.
func (b *SoundBank) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	for id, ctrl := range b.loops {
		ctrl.Streamer = nil
		delete(b.loops, id)
	}
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// Play starts a one-shot sound. Unknown names are logged once and ignored.
func (b *SoundBank) Play(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	build, ok := recipes[name]
	if !ok {
		logger.Once(logger.Log.WithField("sound", name), logrus.DebugLevel, "no recipe for sound "+name)
		return
	}
	speaker.Lock()
	b.mixer.Add(build(sampleRate))
	speaker.Unlock()
}

// StartLoop runs the ambient sound name under id until StopLoop. Starting an
// id that is already playing replaces it.
func (b *SoundBank) StartLoop(id, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	build, ok := recipes[name]
	if !ok {
		logger.Once(logger.Log.WithField("sound", name), logrus.DebugLevel, "no recipe for loop "+name)
		return
	}
	speaker.Lock()
	if old, ok := b.loops[id]; ok {
		old.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: build(sampleRate)}
	b.loops[id] = ctrl
	b.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopLoop silences the loop running under id.
func (b *SoundBank) StopLoop(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ctrl, ok := b.loops[id]
	if !ok {
		return
	}
	// A Ctrl without a streamer ends and drops out of the mixer.
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()
	delete(b.loops, id)
}

// Loops returns the number of running loops.
func (b *SoundBank) Loops() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.loops)
}
