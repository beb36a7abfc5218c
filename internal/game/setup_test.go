package game

import (
	"os"
	"testing"

	"github.com/trawler-hull/trawler/assets"
	"github.com/trawler-hull/trawler/internal/logger"
	"github.com/trawler-hull/trawler/internal/world"
)

func TestMain(m *testing.M) {
	logger.Init("warn", "text")
	os.Exit(m.Run())
}

func newTestSim(t *testing.T, opts Options) *Sim {
	t.Helper()
	data, err := assets.Hulls.ReadFile("hulls/trawler_hull.json")
	if err != nil {
		t.Fatalf("read hull: %v", err)
	}
	m, err := world.LoadTileMap(data)
	if err != nil {
		t.Fatalf("load hull: %v", err)
	}
	if opts.Seed == 0 {
		opts.Seed = 42
	}
	return NewSim(m, opts)
}

// place teleports the player, skipping walkability checks.
func place(s *Sim, x, y int) {
	pos := s.posMap.Get(s.player)
	pos.X, pos.Y = x, y
}

func lastMessage(s *Sim) string {
	if len(s.Log.Messages) == 0 {
		return ""
	}
	return s.Log.Messages[len(s.Log.Messages)-1].Text
}
