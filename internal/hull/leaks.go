package hull

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trawler-hull/trawler/internal/logger"
	"github.com/trawler-hull/trawler/internal/world"
)

// LeakState is the condition of a single hull hole.
type LeakState uint8

const (
	Patched LeakState = iota // boarded up (initial)
	Leaking                  // broken open, letting water in
)

func (st LeakState) String() string {
	if st == Leaking {
		return "leaking"
	}
	return "patched"
}

// Hull geometry and tilesheet layout.
const (
	TrawlerSheet = 3

	TopHullRow   = 1 // breaches on this row use the top breach animation
	WaterlineRow = 4 // last row a breach animates down to; drawn on WaterSplash
	LeakReachRow = 4 // the deck row an actor must stand on to reach a hole

	LeakWaterPerHole = 2

	topBreachStart   = 401
	lowerBreachStart = 377
	breachFrames     = 6
	breachInterval   = 60 * time.Millisecond

	boardTileBase     = 371
	boardTileVariants = 5

	soundBreak = "barrelBreak"
	soundBoard = "crafting"
)

// IsLeaking reports whether the hole at loc is broken open. Coordinates that
// are not registered hull holes report false.
func (s *Simulation) IsLeaking(loc world.Location) bool {
	st, ok := s.state[loc]
	if !ok || world.Action(s.grid.Property(loc, world.LayerBuildings, world.PropCustomAction)) != world.ActionHullHole {
		logger.Once(s.log, logrus.TraceLevel, "IsLeaking called on a tile that is not a registered hull hole, returning false")
		return false
	}
	return st == Leaking
}

// LeakingCount returns the number of holes currently leaking.
func (s *Simulation) LeakingCount() int {
	n := 0
	for _, loc := range s.holes {
		if s.state[loc] == Leaking {
			n++
		}
	}
	return n
}

// HasLeak returns true if any hole is leaking.
func (s *Simulation) HasLeak() bool {
	return s.LeakingCount() > 0
}

// AllHolesLeaking returns true if every registered hole is leaking.
// A hull with no holes counts as all leaking.
func (s *Simulation) AllHolesLeaking() bool {
	return s.LeakingCount() == len(s.holes)
}

func (s *Simulation) patchedHoles() []world.Location {
	var out []world.Location
	for _, loc := range s.holes {
		if s.state[loc] == Patched {
			out = append(out, loc)
		}
	}
	return out
}

// RandomPatchedHole picks a patched hole uniformly at random.
// Returns false when every hole is leaking.
func (s *Simulation) RandomPatchedHole() (world.Location, bool) {
	patched := s.patchedHoles()
	if len(patched) == 0 {
		return world.Location{}, false
	}
	return patched[s.rng.IntN(len(patched))], true
}

// AttemptCreateLeak breaks open a random patched hole.
// Returns false if leaks are disabled or no hole is patched.
func (s *Simulation) AttemptCreateLeak() bool {
	if !s.LeaksEnabled {
		return false
	}
	loc, ok := s.RandomPatchedHole()
	if !ok {
		return false
	}
	s.breakOpen(loc)
	return true
}

// AttemptCreateLeakAt breaks open the hole at loc. It fails without changing
// anything if leaks are disabled or loc is not a patched hole.
func (s *Simulation) AttemptCreateLeakAt(loc world.Location) bool {
	if !s.LeaksEnabled {
		return false
	}
	if st, ok := s.state[loc]; !ok || st != Patched {
		return false
	}
	s.breakOpen(loc)
	return true
}

func (s *Simulation) breakOpen(loc world.Location) {
	s.state[loc] = Leaking
	s.projectBreach(loc)
	s.fx.PlaySound(soundBreak)
	s.log.WithField("tile", loc).Debug("hull hole broke open")
	s.RecalculateWaterLevel(NoOverride)
}

// AttemptPlugLeak boards up the leaking hole at loc. Unless force is set, who
// must be standing within reach of the hole.
func (s *Simulation) AttemptPlugLeak(loc world.Location, who Actor, force bool) bool {
	if !force {
		if who == nil || !s.IsActionableTile(loc, who).Actionable || !s.withinLeakRange(loc, who) {
			return false
		}
	}
	if world.Action(s.grid.Property(loc, world.LayerBuildings, world.PropCustomAction)) != world.ActionHullHole {
		return false
	}
	if st, ok := s.state[loc]; !ok || st != Leaking {
		return false
	}

	s.state[loc] = Patched
	s.projectBoard(loc)
	s.fx.PlaySound(soundBoard)
	s.log.WithFields(logrus.Fields{"tile": loc, "forced": force}).Debug("hull hole boarded up")
	s.RecalculateWaterLevel(NoOverride)
	return true
}

// Reset refuels the engine, boards up every leak and drains the hull.
func (s *Simulation) Reset() {
	s.fuelLevel = DefaultFuel
	for _, loc := range s.holes {
		if s.state[loc] == Leaking {
			s.AttemptPlugLeak(loc, nil, true)
		}
	}
	s.RecalculateWaterLevel(0)
}

func (s *Simulation) withinLeakRange(loc world.Location, who Actor) bool {
	p := who.Tile()
	return p.Y == LeakReachRow && abs(p.X-loc.X) <= 1
}

// columnLayer returns the layer holding row y of a breach column.
func columnLayer(y int) string {
	if y == WaterlineRow {
		return world.LayerWaterSplash
	}
	return world.LayerBuildings
}

func breachFrameRun(start int) []int {
	frames := make([]int, breachFrames)
	for i := range frames {
		frames[i] = start + i
	}
	return frames
}

// holeProps returns the tags for a hole tile with the leaking flag mirrored in.
func (s *Simulation) holeProps(loc world.Location, leaking bool) world.Properties {
	var props world.Properties
	if t := s.grid.TileAt(loc, world.LayerBuildings); t != nil {
		props = t.Props.Clone()
	}
	if props == nil {
		props = world.Properties{}
	}
	props[world.PropCustomAction] = string(world.ActionHullHole)
	props[world.PropIsLeaking] = strconv.FormatBool(leaking)
	return props
}

// projectBreach animates the column from the hole down to the waterline.
func (s *Simulation) projectBreach(loc world.Location) {
	start := lowerBreachStart
	if loc.Y == TopHullRow {
		start = topBreachStart
	}
	s.grid.SetAnimatedTile(loc, world.LayerBuildings, breachFrameRun(start), breachInterval, TrawlerSheet, s.holeProps(loc, true))

	for y := loc.Y + 1; y <= WaterlineRow; y++ {
		cell := world.Location{X: loc.X, Y: y}
		layer := columnLayer(y)
		t := s.grid.TileAt(cell, layer)
		if t == nil {
			logger.Once(s.log, logrus.TraceLevel, fmt.Sprintf("breach column at %v has no tile on %s", cell, layer))
			continue
		}
		s.grid.SetAnimatedTile(cell, layer, breachFrameRun(t.Index+1), breachInterval, TrawlerSheet, t.Props)
	}
}

// projectBoard puts a board over the hole and stills the water below it.
func (s *Simulation) projectBoard(loc world.Location) {
	board := boardTileBase + s.rng.IntN(boardTileVariants)
	s.grid.SetStaticTile(loc, world.LayerBuildings, board, TrawlerSheet, s.holeProps(loc, false))

	for y := loc.Y + 1; y <= WaterlineRow; y++ {
		cell := world.Location{X: loc.X, Y: y}
		layer := columnLayer(y)
		t := s.grid.TileAt(cell, layer)
		if t == nil || !t.Animated() {
			continue
		}
		s.grid.SetStaticTile(cell, layer, t.Frames[0]-1, TrawlerSheet, t.Props)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
