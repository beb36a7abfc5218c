package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/trawler-hull/trawler/assets"
	"github.com/trawler-hull/trawler/internal/audio"
	"github.com/trawler-hull/trawler/internal/config"
	"github.com/trawler-hull/trawler/internal/game"
	"github.com/trawler-hull/trawler/internal/item"
	"github.com/trawler-hull/trawler/internal/locale"
	"github.com/trawler-hull/trawler/internal/logger"
	"github.com/trawler-hull/trawler/internal/render"
	"github.com/trawler-hull/trawler/internal/world"
)

const (
	screenWidth  = 1024
	screenHeight = 576
	title        = "Trawler"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 64
	gridRows   = screenHeight / cellHeight // 36

	tickDuration = time.Second / 60
)

const (
	// Hull origin on screen.
	mapX = 2
	mapY = 3

	panelX   = 22 // gauges and inventory, right of the hull
	logRow   = 14
	logLines = 12
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	fx       *render.Effects
	sounds   *audio.SoundBank
	sim      *game.Sim
	hover    world.Location
}

func NewGame(cfg config.Config) (*Game, error) {
	catalog, err := locale.Load(assets.Locale, cfg.Language)
	if err != nil {
		return nil, err
	}

	data, err := assets.Hulls.ReadFile("hulls/" + cfg.MapFile)
	if err != nil {
		return nil, fmt.Errorf("read hull map: %w", err)
	}
	m, err := world.LoadTileMap(data)
	if err != nil {
		return nil, err
	}

	g := &Game{
		renderer: render.NewGridRenderer(render.NewFontAtlas(), cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
	}
	if cfg.Audio {
		g.sounds = audio.NewSoundBank()
		if err := g.sounds.Initialize(); err != nil {
			logger.Log.WithError(err).Warn("audio disabled")
			g.sounds = nil
		}
	}
	if g.sounds != nil {
		g.fx = render.NewEffects(g.sounds)
	} else {
		g.fx = render.NewEffects(nil)
	}

	g.sim = game.NewSim(m, game.Options{
		Seed:      cfg.Seed,
		Leaks:     cfg.Leaks,
		WeakHull:  cfg.WeakHull,
		Text:      catalog,
		Presenter: g.fx,
		Log:       logrus.NewEntry(logger.Log),
	})

	logger.Log.WithFields(logrus.Fields{
		"map":   m.Name,
		"seed":  cfg.Seed,
		"lang":  catalog.Language,
		"hull":  g.sim.Hull.ID,
		"leaks": cfg.Leaks,
	}).Info("session started")

	g.drawScreen()
	return g, nil
}

func (g *Game) drawScreen() {
	buf := g.buffer
	buf.Clear()
	h := g.sim.Hull

	buf.WriteString(2, 0, title, render.ColorWhite, render.ColorBlack)
	buf.WriteString(10, 0, fmt.Sprintf("[ %s ]", g.sim.Map.Name), render.ColorLightCyan, render.ColorBlack)

	render.RenderHull(buf, g.sim.Map, g.fx.Now(), mapX, mapY)
	px, py := g.sim.PlayerPos()
	buf.SetGlyph(mapX+px, mapY+py, '@', render.ColorWhite)

	buf.WriteString(panelX, mapY, "--- Hull ---", render.ColorLightCyan, render.ColorBlack)
	buf.DrawGauge(panelX, mapY+1, "Water", h.WaterLevel(), 20, render.FloodColor(h.WaterLevel()))
	buf.DrawGauge(panelX, mapY+2, "Fuel ", h.FuelLevel(), 20, render.LevelColor(h.FuelLevel()))
	leaks := fmt.Sprintf("Leaks: %d / %d", h.LeakingCount(), len(h.LeakLocations()))
	leakClr := uint8(render.ColorLightGray)
	if h.HasLeak() {
		leakClr = render.ColorLightRed
	}
	buf.WriteString(panelX, mapY+3, leaks, leakClr, render.ColorBlack)

	inv := &g.sim.Player.Inv
	hands := fmt.Sprintf("--- Hands %d/%d  Coal %d ---", inv.UsedSlots(), game.MaxInventorySlots, inv.Count(item.KindCoalClump))
	buf.WriteString(panelX, mapY+5, hands, render.ColorLightCyan, render.ColorBlack)
	for i, slot := range inv.Slots {
		clr := uint8(render.ColorDarkGray)
		if i == inv.Held {
			clr = render.ColorYellow
		}
		label := fmt.Sprintf("%d %s", i+1, item.Name(slot.Kind))
		if !slot.Empty() && slot.Count > 1 {
			label += fmt.Sprintf(" x%d", slot.Count)
		}
		buf.WriteString(panelX+(i%2)*18, mapY+6+i/2, label, clr, render.ColorBlack)
	}

	buf.WriteString(2, logRow, "--- Log ---", render.ColorLightCyan, render.ColorBlack)
	for i, msg := range g.sim.Log.Recent(logLines) {
		buf.WriteString(2, logRow+1+i, msg.Line(), msgColor(msg.Priority), render.ColorBlack)
	}

	if g.sim.Warp != nil {
		buf.WriteString(2, gridRows-3, fmt.Sprintf("Up on %s. ESC to quit.", g.sim.Warp.Location), render.ColorYellow, render.ColorBlack)
	}
	buf.WriteString(2, gridRows-1, "WASD: Move  E: Use  Click: Plug/Use  1-6: Hold  ESC: Quit", render.ColorDarkGray, render.ColorBlack)
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return render.ColorLightRed
	case game.MsgWarning:
		return render.ColorYellow
	case game.MsgSocial:
		return render.ColorWhite
	default:
		return render.ColorCyan
	}
}

var slotKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.fx.Stop()
		if g.sounds != nil {
			g.sounds.Cleanup()
		}
		return ebiten.Termination
	}

	dx, dy := 0, 0
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		dy = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		dy = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		dx = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		dx = 1
	}
	if (dx != 0 || dy != 0) && g.sim.Warp == nil {
		g.sim.TryMovePlayer(dx, dy)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.sim.Interact()
	}
	for i, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.sim.Player.SelectSlot(i)
		}
	}

	mx, my := ebiten.CursorPosition()
	g.hover = world.Location{X: mx/cellWidth - mapX, Y: my/cellHeight - mapY}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.Click(g.hover)
	}

	g.sim.Tick()
	g.fx.Update(tickDuration)

	g.drawScreen()
	g.updateHoverInfo()
	return nil
}

// updateHoverInfo describes the tile under the mouse and whether the player
// can use it from where they stand.
func (g *Game) updateHoverInfo() {
	const infoY = 1
	for x := 0; x < gridCols; x++ {
		g.buffer.Set(x, infoY, ' ', render.ColorBlack, render.ColorBlack)
	}

	if g.hover == g.sim.Player.Tile() {
		g.buffer.WriteString(2, infoY, "@ You - deckhand, below deck", render.ColorWhite, render.ColorBlack)
		return
	}
	desc := g.sim.Map.Describe(g.hover)
	if desc == "" {
		g.buffer.WriteString(2, infoY, "Hover over the hull to inspect", render.ColorDarkGray, render.ColorBlack)
		return
	}

	clr := uint8(render.ColorYellow)
	aff := g.sim.Hull.IsActionableTile(g.hover, g.sim.Player)
	switch {
	case aff.Actionable && aff.OutOfRange:
		desc += " (too far)"
		clr = render.ColorDarkGray
	case aff.Actionable:
		clr = render.ColorLightGreen
	}
	if g.sim.Map.ActionAt(g.hover) == world.ActionHullHole && g.sim.Hull.IsLeaking(g.hover) {
		desc += " - LEAKING"
		clr = render.ColorLightRed
	}
	g.buffer.WriteString(2, infoY, fmt.Sprintf("%s  [%d,%d]", desc, g.hover.X, g.hover.Y), clr, render.ColorBlack)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.buffer)
	g.renderer.DrawSprites(screen, g.fx, mapX, mapY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Log.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g, err := NewGame(cfg)
	if err != nil {
		logger.Log.Fatalf("start: %v", err)
	}
	if err := ebiten.RunGame(g); err != nil {
		logger.Log.Fatal(err)
	}
}
