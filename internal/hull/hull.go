// Package hull simulates the trawler's lower deck: hull planks that spring
// leaks, the flood water those leaks let in, and the coal-fired engine.
//
// A Simulation owns the hull's tile map for its lifetime. Leak state lives in
// the Simulation; the map only ever shows a projection of it.
package hull

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/trawler-hull/trawler/internal/item"
	"github.com/trawler-hull/trawler/internal/logger"
	"github.com/trawler-hull/trawler/internal/world"
)

// Levels are percentages.
const (
	MinLevel    = 0
	MaxLevel    = 100
	DefaultFuel = 100

	// NoOverride asks RecalculateWaterLevel to derive the level from the leaks.
	NoOverride = -1
)

// Grid is the tile map the hull reads tags from and projects its state onto.
type Grid interface {
	LayerSize(layer string) (int, int)
	TileAt(loc world.Location, layer string) *world.Tile
	Property(loc world.Location, layer, key string) string
	ActionAt(loc world.Location) world.Action
	SetStaticTile(loc world.Location, layer string, index, sheet int, props world.Properties)
	SetAnimatedTile(loc world.Location, layer string, frames []int, interval time.Duration, sheet int, props world.Properties)
	Opacity(layer string) float32
	SetOpacity(layer string, v float32)
}

// Vec2 is a position in tile units. Fractions place a sprite inside a tile.
type Vec2 struct {
	X float64
	Y float64
}

// Sprite is a temporary animated visual requested from the presentation layer.
type Sprite struct {
	Key      string // non-empty keys can be looked up with HasSprite
	Texture  string
	Frames   int
	Interval time.Duration // per frame
	Duration time.Duration // total lifetime; zero means one pass through Frames
	Loop     bool
	Position Vec2
	Velocity Vec2 // tiles per second
	Shake    float64
}

// Presenter plays sounds and shows sprites on behalf of the hull.
type Presenter interface {
	PlaySound(name string)
	AddSprite(s Sprite)
	HasSprite(key string) bool
	BroadcastSprite(s Sprite)
	AddAmbientSound(pos Vec2, name string)
	RemoveAmbientSound(pos Vec2)
}

// Actor is whoever is interacting with the hull, usually the player.
type Actor interface {
	Tile() world.Location
	FindItem(kind item.Kind) (slot int, ok bool)
	AddItem(s item.Stack) (slot int, ok bool)
	IncrementItem(slot, amount int)
	HeldItem() (item.Stack, bool)
	RemoveHeldItem()
	SelectSlot(slot int)
	ShowMessage(text string)
}

// RandomSource picks leak sites and board variants. *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Localizer turns message keys into player-facing text.
type Localizer interface {
	Get(key string, vars ...any) string
}

// Affordance describes how the cursor should look over a tile.
type Affordance struct {
	Actionable bool
	OutOfRange bool // actionable, but the actor must move closer first
}

// Fallback handles tiles the hull has no handler for.
type Fallback interface {
	CheckAction(loc world.Location, who Actor) bool
	IsActionableTile(loc world.Location, who Actor) Affordance
}

// Options carries the collaborators of a Simulation. Nil fields get no-op
// or process-wide defaults.
type Options struct {
	Random    RandomSource
	Presenter Presenter
	Fallback  Fallback
	Text      Localizer
	Log       *logrus.Entry
}

// Simulation is the hull state: leaks, water level and engine fuel.
type Simulation struct {
	ID           string
	LeaksEnabled bool
	WeakHull     bool

	grid Grid
	rng  RandomSource
	fx   Presenter
	base Fallback
	text Localizer
	log  *logrus.Entry

	// Registries are filled once by New and never change afterwards.
	holes   []world.Location
	coal    []world.Location
	refills []world.Location
	state   map[world.Location]LeakState

	handlers map[world.Action]handler

	waterLevel int
	fuelLevel  int

	lastTouch world.Location
	touched   bool
}

// New scans the Buildings layer of grid for tagged cells and builds a hull
// with no leaks, no water, and a full engine.
func New(grid Grid, opts Options) *Simulation {
	s := &Simulation{
		ID:           uuid.NewString(),
		LeaksEnabled: true,
		grid:         grid,
		rng:          opts.Random,
		fx:           opts.Presenter,
		base:         opts.Fallback,
		text:         opts.Text,
		state:        make(map[world.Location]LeakState),
		fuelLevel:    DefaultFuel,
	}
	if s.rng == nil {
		s.rng = sharedRandom{}
	}
	if s.fx == nil {
		s.fx = nopPresenter{}
	}
	if s.base == nil {
		s.base = nopFallback{}
	}
	if s.text == nil {
		s.text = keyText{}
	}
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logger.Log)
	}
	s.log = log.WithField("hull", s.ID)

	s.scan()
	s.handlers = map[world.Action]handler{
		world.ActionHullHole:     {check: s.checkHullHole, affordance: s.leakAffordance},
		world.ActionGetCoal:      {check: s.gatherCoal, affordance: s.nearAffordance},
		world.ActionRefillEngine: {check: s.refillEngine, affordance: s.nearAffordance},
		world.ActionStairs:       {check: s.useStairs, affordance: s.stairsAffordance},
	}

	s.log.WithFields(logrus.Fields{
		"holes":   len(s.holes),
		"coal":    len(s.coal),
		"refills": len(s.refills),
	}).Debug("hull registries built")
	return s
}

// scan classifies every tagged Buildings cell into one registry. A cell has a
// single CustomAction value, so it can never land in two registries.
func (s *Simulation) scan() {
	w, h := s.grid.LayerSize(world.LayerBuildings)

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			loc := world.Location{X: x, Y: y}
			if s.grid.TileAt(loc, world.LayerBuildings) == nil {
				continue
			}
			switch world.Action(s.grid.Property(loc, world.LayerBuildings, world.PropCustomAction)) {
			case world.ActionHullHole:
				s.holes = append(s.holes, loc)
				s.state[loc] = Patched
			case world.ActionGetCoal:
				s.coal = append(s.coal, loc)
			case world.ActionRefillEngine:
				s.refills = append(s.refills, loc)
			}
		}
	}
}

// LeakLocations returns every registered hull hole, leaking or not.
func (s *Simulation) LeakLocations() []world.Location {
	return append([]world.Location(nil), s.holes...)
}

// CoalLocations returns every coal pile.
func (s *Simulation) CoalLocations() []world.Location {
	return append([]world.Location(nil), s.coal...)
}

// RefillLocations returns every engine furnace.
func (s *Simulation) RefillLocations() []world.Location {
	return append([]world.Location(nil), s.refills...)
}

func clampLevel(v int) int {
	return min(max(v, MinLevel), MaxLevel)
}

// addLevel adds delta to a level in [0, 100]. delta is limited first so the
// sum cannot overflow.
func addLevel(level, delta int) int {
	delta = min(max(delta, -MaxLevel), MaxLevel)
	return clampLevel(level + delta)
}

type sharedRandom struct{}

func (sharedRandom) IntN(n int) int { return rand.IntN(n) }

type nopPresenter struct{}

func (nopPresenter) PlaySound(string)             {}
func (nopPresenter) AddSprite(Sprite)             {}
func (nopPresenter) HasSprite(string) bool        { return false }
func (nopPresenter) BroadcastSprite(Sprite)       {}
func (nopPresenter) AddAmbientSound(Vec2, string) {}
func (nopPresenter) RemoveAmbientSound(Vec2)      {}

type nopFallback struct{}

func (nopFallback) CheckAction(world.Location, Actor) bool            { return false }
func (nopFallback) IsActionableTile(world.Location, Actor) Affordance { return Affordance{} }

type keyText struct{}

func (keyText) Get(key string, _ ...any) string { return key }
