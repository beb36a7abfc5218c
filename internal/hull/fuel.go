package hull

import "time"

const (
	soundEngine = "engine"
	soundBrook  = "babblingBrook"

	engineShakeKey = "engine_shake"
	hullTexture    = "Maps/TrawlerHull.png"
	engineShakeFor = 7 * time.Second
)

var (
	enginePosition      = Vec2{X: 1.45, Y: 5.45}
	engineSoundPosition = Vec2{X: 1.5, Y: 5.5}
	brookPositions      = []Vec2{{X: 7, Y: 0}, {X: 13, Y: 0}}
)

// AdjustFuelLevel adds delta to the engine fuel, clamped to [0, 100].
func (s *Simulation) AdjustFuelLevel(delta int) {
	s.fuelLevel = addLevel(s.fuelLevel, delta)
}

// FuelLevel returns the engine fuel in percent.
func (s *Simulation) FuelLevel() int {
	return s.fuelLevel
}

// IsEngineFailing returns true when the engine has run dry.
func (s *Simulation) IsEngineFailing() bool {
	return s.fuelLevel == 0
}

// RefuelAmount is the fuel gained from burning a coal clump of size n.
// A full clump of three burns a little hotter.
func RefuelAmount(n int) int {
	bonus := 0
	if n == 3 {
		bonus = 5
	}
	return 10*n + bonus
}

// AnimateEngine keeps the engine shaking and humming while it has fuel and
// silences it once it runs dry.
func (s *Simulation) AnimateEngine() {
	if s.FuelLevel() > 0 && !s.fx.HasSprite(engineShakeKey) {
		s.addEngineShake()
		s.fx.AddAmbientSound(engineSoundPosition, soundEngine)
		return
	}
	if s.FuelLevel() == 0 {
		s.fx.RemoveAmbientSound(engineSoundPosition)
	}
}

func (s *Simulation) addEngineShake() {
	s.fx.AddSprite(Sprite{
		Key:      engineShakeKey,
		Texture:  hullTexture,
		Frames:   1,
		Duration: engineShakeFor,
		Position: enginePosition,
		Shake:    1,
	})
}

// EnterLocation sets up the ambient sounds and visuals of the hull. It is
// called every time an actor walks in.
func (s *Simulation) EnterLocation() {
	s.touched = false
	for _, pos := range brookPositions {
		s.fx.AddAmbientSound(pos, soundBrook)
	}
	s.fx.AddAmbientSound(engineSoundPosition, soundEngine)
	s.addEngineShake()
}
