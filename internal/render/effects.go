package render

import (
	"fmt"
	"maps"
	"time"

	"github.com/trawler-hull/trawler/internal/hull"
	"github.com/trawler-hull/trawler/internal/logger"
)

// SoundPlayer plays named sounds. *audio.SoundBank satisfies it.
type SoundPlayer interface {
	Play(name string)
	StartLoop(id, name string)
	StopLoop(id string)
}

// LiveSprite is a sprite on screen and the time it appeared.
type LiveSprite struct {
	hull.Sprite
	Born time.Duration
}

// Effects is the hull's presentation layer: it keeps the live sprites and
// ambient sound emitters and forwards sounds to a SoundPlayer.
type Effects struct {
	sounds  SoundPlayer
	now     time.Duration
	sprites []LiveSprite
	ambient map[hull.Vec2]string
}

// NewEffects creates an empty presentation layer. sounds may be nil.
func NewEffects(sounds SoundPlayer) *Effects {
	return &Effects{sounds: sounds, ambient: make(map[hull.Vec2]string)}
}

func (e *Effects) PlaySound(name string) {
	logger.Log.WithField("sound", name).Trace("play sound")
	if e.sounds != nil {
		e.sounds.Play(name)
	}
}

// AddSprite shows s. A keyed sprite replaces any live sprite with the same key.
func (e *Effects) AddSprite(s hull.Sprite) {
	if s.Key != "" {
		e.removeKey(s.Key)
	}
	e.sprites = append(e.sprites, LiveSprite{Sprite: s, Born: e.now})
}

// BroadcastSprite shows s to everyone watching. There is a single local view,
// so it is the same as AddSprite.
func (e *Effects) BroadcastSprite(s hull.Sprite) {
	e.AddSprite(s)
}

func (e *Effects) HasSprite(key string) bool {
	for _, s := range e.sprites {
		if s.Key == key {
			return true
		}
	}
	return false
}

func (e *Effects) removeKey(key string) {
	e.sprites = removeSprites(e.sprites, func(s LiveSprite) bool { return s.Key == key })
}

func (e *Effects) AddAmbientSound(pos hull.Vec2, name string) {
	if e.ambient[pos] == name {
		return
	}
	e.ambient[pos] = name
	if e.sounds != nil {
		e.sounds.StartLoop(ambientID(pos), name)
	}
}

func (e *Effects) RemoveAmbientSound(pos hull.Vec2) {
	if _, ok := e.ambient[pos]; !ok {
		return
	}
	delete(e.ambient, pos)
	if e.sounds != nil {
		e.sounds.StopLoop(ambientID(pos))
	}
}

// Ambient returns a copy of the active ambient emitters.
func (e *Effects) Ambient() map[hull.Vec2]string {
	return maps.Clone(e.ambient)
}

// Stop silences every ambient emitter and drops all sprites.
func (e *Effects) Stop() {
	for pos := range e.ambient {
		e.RemoveAmbientSound(pos)
	}
	e.sprites = nil
}

// Update advances the clock by dt and drops expired sprites.
func (e *Effects) Update(dt time.Duration) {
	e.now += dt
	e.sprites = removeSprites(e.sprites, func(s LiveSprite) bool {
		life, forever := lifetime(s.Sprite)
		return !forever && e.now-s.Born >= life
	})
}

// Now is the effects clock.
func (e *Effects) Now() time.Duration {
	return e.now
}

// Sprites returns the live sprites, oldest first.
func (e *Effects) Sprites() []LiveSprite {
	return e.sprites
}

// Frame is the animation frame s shows right now.
func (e *Effects) Frame(s LiveSprite) int {
	if s.Frames <= 1 || s.Interval <= 0 {
		return 0
	}
	n := int((e.now - s.Born) / s.Interval)
	if s.Loop || s.Duration > 0 {
		return n % s.Frames
	}
	return min(n, s.Frames-1)
}

// lifetime is how long s stays on screen. Looping sprites without a duration
// stay until replaced.
func lifetime(s hull.Sprite) (time.Duration, bool) {
	switch {
	case s.Duration > 0:
		return s.Duration, false
	case s.Loop:
		return 0, true
	default:
		return s.Interval * time.Duration(max(s.Frames, 1)), false
	}
}

func removeSprites(in []LiveSprite, drop func(LiveSprite) bool) []LiveSprite {
	out := in[:0]
	for _, s := range in {
		if !drop(s) {
			out = append(out, s)
		}
	}
	return out
}

func ambientID(pos hull.Vec2) string {
	return fmt.Sprintf("ambient@%.2f,%.2f", pos.X, pos.Y)
}
