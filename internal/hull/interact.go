package hull

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trawler-hull/trawler/internal/item"
	"github.com/trawler-hull/trawler/internal/logger"
	"github.com/trawler-hull/trawler/internal/world"
)

// MsgMustHoldCoal is shown when an actor tries to refuel empty-handed.
const MsgMustHoldCoal = "game_message.coal_clump.must_be_holding"

// StairsSpot is the only tile the stairs can be used from.
var StairsSpot = world.Location{X: 9, Y: 6}

const (
	splashTexture  = "TileSheets/animations"
	splashFrames   = 9
	splashInterval = 50 * time.Millisecond
)

// handler is one row of the interaction table.
type handler struct {
	check      func(loc world.Location, who Actor) bool
	affordance func(loc world.Location, who Actor) Affordance
}

// CheckAction performs the interaction of the tile at loc for who.
// Returns true if the interaction took effect.
func (s *Simulation) CheckAction(loc world.Location, who Actor) bool {
	if who == nil {
		return false
	}
	if h, ok := s.handlers[s.grid.ActionAt(loc)]; ok {
		return h.check(loc, who)
	}
	return s.base.CheckAction(loc, who)
}

// IsActionableTile reports whether who can interact with the tile at loc and
// whether they first need to move closer. It never changes state.
func (s *Simulation) IsActionableTile(loc world.Location, who Actor) Affordance {
	if who == nil {
		return Affordance{}
	}
	if h, ok := s.handlers[s.grid.ActionAt(loc)]; ok {
		return h.affordance(loc, who)
	}
	return s.base.IsActionableTile(loc, who)
}

// withinRange is a Chebyshev distance check around loc.
func withinRange(loc, p world.Location, rx, ry int) bool {
	return abs(p.X-loc.X) <= rx && abs(p.Y-loc.Y) <= ry
}

// Plugging a hole goes through AttemptPlugLeak; clicking one only tells the
// caller whether the hole can be worked on.
func (s *Simulation) checkHullHole(loc world.Location, who Actor) bool {
	return s.IsActionableTile(loc, who).Actionable
}

func (s *Simulation) leakAffordance(loc world.Location, who Actor) Affordance {
	return Affordance{Actionable: true, OutOfRange: !s.withinLeakRange(loc, who)}
}

func (s *Simulation) nearAffordance(loc world.Location, who Actor) Affordance {
	return Affordance{Actionable: true, OutOfRange: !withinRange(loc, who.Tile(), 1, 1)}
}

func (s *Simulation) stairsAffordance(_ world.Location, who Actor) Affordance {
	return Affordance{Actionable: true, OutOfRange: who.Tile() != StairsSpot}
}

func (s *Simulation) gatherCoal(loc world.Location, who Actor) bool {
	if !withinRange(loc, who.Tile(), 1, 1) {
		return false
	}
	slot, ok := who.FindItem(item.KindCoalClump)
	if ok {
		who.IncrementItem(slot, 1)
	} else if slot, ok = who.AddItem(item.NewCoalClump(1)); !ok {
		return false
	}
	who.SelectSlot(slot)
	return true
}

func (s *Simulation) refillEngine(loc world.Location, who Actor) bool {
	if !withinRange(loc, who.Tile(), 1, 1) {
		return false
	}
	held, ok := who.HeldItem()
	if !ok || !item.IsCoalClump(held) {
		who.ShowMessage(s.text.Get(MsgMustHoldCoal))
		return false
	}
	s.AdjustFuelLevel(RefuelAmount(held.Count))
	who.RemoveHeldItem()
	s.log.WithFields(logrus.Fields{"coal": held.Count, "fuel": s.fuelLevel}).Debug("engine refueled")
	return true
}

func (s *Simulation) useStairs(loc world.Location, who Actor) bool {
	if who.Tile() != StairsSpot {
		return false
	}
	return s.base.CheckAction(loc, who)
}

// TouchTile runs the flood water touch action under who. It fires once per
// tile entered, and only while the flood water is visible.
func (s *Simulation) TouchTile(who Actor) {
	if who == nil || s.grid.Opacity(world.LayerFloodWater) <= 0 {
		return
	}
	pos := who.Tile()
	if s.touched && pos == s.lastTouch {
		return
	}
	s.lastTouch, s.touched = pos, true

	if s.grid.Property(pos, world.LayerFloodWater, world.PropCustomTouchAction) != world.TouchPlaySound {
		return
	}
	sound := s.grid.Property(pos, world.LayerFloodWater, world.PropPlaySound)
	if sound == "" {
		logger.Once(s.log, logrus.TraceLevel, fmt.Sprintf("tile at %v is missing PlaySound property on %s layer", pos, world.LayerFloodWater))
		return
	}

	s.fx.BroadcastSprite(Sprite{
		Texture:  splashTexture,
		Frames:   splashFrames,
		Interval: splashInterval,
		Position: Vec2{X: float64(pos.X), Y: float64(pos.Y)},
	})
	s.fx.PlaySound(sound)
}
