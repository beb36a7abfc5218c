package game

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/mlange-42/ark/ecs"
	"github.com/sirupsen/logrus"

	"github.com/trawler-hull/trawler/internal/hull"
	"github.com/trawler-hull/trawler/internal/logger"
	"github.com/trawler-hull/trawler/internal/world"
)

// Tick intervals (at 60 TPS)
const (
	leakInterval     = 600 // a plank may give way every 10 sec
	weakLeakInterval = 300 // twice as often on a weak hull
	leakChance       = 2   // 1 in N chance at each leak interval
	waterInterval    = 180 // open leaks let more water in every 3 sec
	fuelInterval     = 300 // engine burns 1 fuel every 5 sec
	engineInterval   = 30  // engine shake and hum refresh
	warningInterval  = 300 // check warnings every 5 sec

	lowFuelLevel = 20
)

// Message keys.
const (
	msgWelcome     = "game_message.hull.welcome"
	msgLeakSprung  = "game_message.hull.leak_sprung"
	msgLeakPatched = "game_message.hull.leak_patched"
	msgFlooding    = "game_message.hull.flooding"
	msgFlooded     = "game_message.hull.flooded"
	msgLowFuel     = "game_message.engine.low_fuel"
	msgFailing     = "game_message.engine.failing"
	msgRefueled    = "game_message.engine.refueled"
	msgPickedUp    = "game_message.coal_clump.picked_up"
	msgClimb       = "game_message.stairs.climb"
	msgNothing     = "game_message.nothing_here"
)

// Options configures a session.
type Options struct {
	Seed      int64
	Leaks     bool
	WeakHull  bool
	Text      hull.Localizer
	Presenter hull.Presenter
	Log       *logrus.Entry
}

// Warp is a pending move to another location, read from a tile's Action
// property ("Warp <location> <x> <y>").
type Warp struct {
	Location string
	X, Y     int
}

// Sim is the game session. It owns the hull and the player.
type Sim struct {
	ECS    *ecs.World
	Map    *world.TileMap
	Hull   *hull.Simulation
	Player *Player
	Log    *MessageLog
	Text   hull.Localizer
	Ticks  uint64

	// Warp is set once the player takes the stairs.
	Warp *Warp

	WeakHull bool

	rng    *rand.Rand
	log    *logrus.Entry
	player ecs.Entity
	posMap *ecs.Map[Position]
}

// NewSim creates a session on a hull map. The player starts on the map's
// spawn tile.
func NewSim(m *world.TileMap, opts Options) *Sim {
	w := ecs.NewWorld(64)
	posMap := ecs.NewMap[Position](w)

	player := ecs.NewMap2[Position, PlayerControlled](w).NewEntity(
		&Position{X: m.Spawn.X, Y: m.Spawn.Y},
		&PlayerControlled{},
	)

	seed := uint64(opts.Seed)
	entry := opts.Log
	if entry == nil {
		entry = logrus.NewEntry(logger.Log)
	}
	entry = entry.WithField("map", m.Name)

	s := &Sim{
		ECS:      w,
		Map:      m,
		Log:      NewMessageLog(50),
		Text:     opts.Text,
		WeakHull: opts.WeakHull,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log:      entry,
		player:   player,
		posMap:   posMap,
	}
	if s.Text == nil {
		s.Text = plainText{}
	}
	s.Player = &Player{Inv: NewInventory(), entity: player, posMap: posMap, log: s.Log}

	s.Hull = hull.New(m, hull.Options{
		Random:    s.rng,
		Presenter: opts.Presenter,
		Fallback:  s,
		Text:      s.Text,
		Log:       entry,
	})
	s.Hull.LeaksEnabled = opts.Leaks
	s.Hull.WeakHull = opts.WeakHull
	s.Hull.EnterLocation()

	s.Log.Add(s.Text.Get(msgWelcome), MsgInfo)
	return s
}

// PlayerPos returns the player's current tile coordinates.
func (s *Sim) PlayerPos() (int, int) {
	pos := s.posMap.Get(s.player)
	return pos.X, pos.Y
}

// TryMovePlayer attempts to move the player by (dx, dy). Wading into flood
// water splashes.
func (s *Sim) TryMovePlayer(dx, dy int) bool {
	pos := s.posMap.Get(s.player)
	to := world.Location{X: pos.X + dx, Y: pos.Y + dy}
	if !s.Map.IsWalkable(to) {
		return false
	}
	pos.X, pos.Y = to.X, to.Y
	s.Hull.TouchTile(s.Player)
	return true
}

// Tick advances the session by one step.
func (s *Sim) Tick() {
	s.Ticks++
	s.tickLeaks()
	if s.Ticks%waterInterval == 0 && s.Hull.HasLeak() {
		s.Hull.RecalculateWaterLevel(hull.NoOverride)
	}
	if s.Ticks%fuelInterval == 0 {
		s.Hull.AdjustFuelLevel(-1)
	}
	if s.Ticks%engineInterval == 0 {
		s.Hull.AnimateEngine()
	}
	if s.Ticks%warningInterval == 0 {
		s.checkWarnings()
	}
}

func (s *Sim) tickLeaks() {
	interval := uint64(leakInterval)
	if s.WeakHull {
		interval = weakLeakInterval
	}
	if s.Ticks%interval != 0 || s.rng.IntN(leakChance) != 0 {
		return
	}
	if s.Hull.AttemptCreateLeak() {
		s.Log.Add(s.Text.Get(msgLeakSprung), MsgCritical)
	}
}

func (s *Sim) checkWarnings() {
	switch {
	case s.Hull.HasFlooded():
		s.Log.Add(s.Text.Get(msgFlooded), MsgCritical)
	case s.Hull.IsFlooding() && s.Hull.HasLeak():
		s.Log.Add(s.Text.Get(msgFlooding), MsgWarning)
	}

	switch fuel := s.Hull.FuelLevel(); {
	case s.Hull.IsEngineFailing():
		s.Log.Add(s.Text.Get(msgFailing), MsgCritical)
	case fuel <= lowFuelLevel:
		s.Log.Add(s.Text.Get(msgLowFuel), MsgWarning)
	}
}

// Interact handles the player pressing E. A leaking hole in reach is boarded
// up first; otherwise the first usable tile around the player is used.
func (s *Sim) Interact() bool {
	for _, loc := range s.Hull.LeakLocations() {
		if s.Hull.IsLeaking(loc) && s.PlugLeak(loc) {
			return true
		}
	}

	p := s.Player.Tile()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			loc := world.Location{X: p.X + dx, Y: p.Y + dy}
			if s.Map.ActionAt(loc) == world.ActionHullHole {
				continue
			}
			aff := s.Hull.IsActionableTile(loc, s.Player)
			if aff.Actionable && !aff.OutOfRange {
				return s.UseTile(loc)
			}
		}
	}
	s.Log.Add(s.Text.Get(msgNothing), MsgSocial)
	return false
}

// PlugLeak boards up the hole at loc if the player can reach it.
func (s *Sim) PlugLeak(loc world.Location) bool {
	if !s.Hull.AttemptPlugLeak(loc, s.Player, false) {
		return false
	}
	s.Log.Add(s.Text.Get(msgLeakPatched), MsgInfo)
	return true
}

// UseTile runs the hull interaction at loc and reports the outcome in the log.
func (s *Sim) UseTile(loc world.Location) bool {
	action := s.Map.ActionAt(loc)
	if !s.Hull.CheckAction(loc, s.Player) {
		return false
	}
	switch action {
	case world.ActionGetCoal:
		if held, ok := s.Player.HeldItem(); ok {
			s.Log.Add(s.Text.Get(msgPickedUp, held.Count), MsgInfo)
		}
	case world.ActionRefillEngine:
		s.Log.Add(s.Text.Get(msgRefueled, s.Hull.FuelLevel()), MsgInfo)
		s.Hull.AnimateEngine()
	}
	return true
}

// Click handles a mouse click on loc: leaking holes get plugged, anything
// else is used as if the player pressed E on it.
func (s *Sim) Click(loc world.Location) bool {
	if s.Map.ActionAt(loc) == world.ActionHullHole {
		return s.Hull.IsLeaking(loc) && s.PlugLeak(loc)
	}
	return s.UseTile(loc)
}

// CheckAction is the base behavior for tiles the hull has no handler of its
// own for. Only warp tiles do anything.
func (s *Sim) CheckAction(loc world.Location, who hull.Actor) bool {
	warp, ok := ParseWarp(s.Map.Property(loc, world.LayerBuildings, world.PropAction))
	if !ok {
		return false
	}
	s.Warp = &warp
	s.Log.Add(s.Text.Get(msgClimb), MsgInfo)
	s.log.WithFields(logrus.Fields{"to": warp.Location, "x": warp.X, "y": warp.Y}).Info("player left the hull")
	return true
}

// IsActionableTile reports nothing actionable for tiles the hull does not know.
func (s *Sim) IsActionableTile(world.Location, hull.Actor) hull.Affordance {
	return hull.Affordance{}
}

// ParseWarp reads an Action property of the form "Warp <location> <x> <y>".
func ParseWarp(action string) (Warp, bool) {
	f := strings.Fields(action)
	if len(f) != 4 || f[0] != "Warp" {
		return Warp{}, false
	}
	x, errX := strconv.Atoi(f[2])
	y, errY := strconv.Atoi(f[3])
	if errX != nil || errY != nil {
		return Warp{}, false
	}
	return Warp{Location: f[1], X: x, Y: y}, true
}

type plainText struct{}

func (plainText) Get(key string, _ ...any) string { return key }
