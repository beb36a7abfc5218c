package hull

import "github.com/trawler-hull/trawler/internal/world"

// Water level thresholds for the flood layers.
const (
	FloorThreshold = 5  // flood water becomes visible
	ItemsThreshold = 20 // floating debris becomes visible
)

// RecalculateWaterLevel sets the water level to override when it is not
// NoOverride. Otherwise it raises the level by LeakWaterPerHole for every
// leaking hole. The increase is applied on every call, not recomputed from
// scratch.
func (s *Simulation) RecalculateWaterLevel(override int) {
	if override > NoOverride {
		s.waterLevel = clampLevel(override)
		s.projectFlood()
		return
	}
	s.ChangeWaterLevel(LeakWaterPerHole * s.LeakingCount())
}

// ChangeWaterLevel adds delta to the water level, clamped to [0, 100].
func (s *Simulation) ChangeWaterLevel(delta int) {
	s.waterLevel = addLevel(s.waterLevel, delta)
	s.projectFlood()
}

// WaterLevel returns the flood level in percent.
func (s *Simulation) WaterLevel() int {
	return s.waterLevel
}

// IsFlooding returns true once flood water is visible.
func (s *Simulation) IsFlooding() bool {
	return s.grid.Opacity(world.LayerFloodWater) > 0
}

// HasFlooded returns true when the hull is completely full.
func (s *Simulation) HasFlooded() bool {
	return s.waterLevel >= MaxLevel
}

// FloodOpacity is the FloodWater layer opacity for a water level.
func FloodOpacity(level int) float32 {
	if level < FloorThreshold {
		return 0
	}
	return float32(level)*0.01 + 0.1
}

// ItemsOpacity is the FloodItems layer opacity for a water level.
func ItemsOpacity(level int) float32 {
	if level >= ItemsThreshold {
		return 1
	}
	return 0
}

func (s *Simulation) projectFlood() {
	s.grid.SetOpacity(world.LayerFloodWater, FloodOpacity(s.waterLevel))
	s.grid.SetOpacity(world.LayerFloodItems, ItemsOpacity(s.waterLevel))
}
