package item

import "testing"

func TestNewCoalClumpClamps(t *testing.T) {
	for in, want := range map[int]int{-2: 1, 0: 1, 1: 1, 2: 2, 3: 3, 9: 3} {
		if got := NewCoalClump(in).Count; got != want {
			t.Errorf("NewCoalClump(%d).Count = %d, want %d", in, got, want)
		}
	}
}

func TestStackGrow(t *testing.T) {
	coal := NewCoalClump(1)
	if got := coal.Grow(1); got != 2 {
		t.Errorf("Grow = %d, want 2", got)
	}
	if got := coal.Grow(5); got != MaxCoalStack {
		t.Errorf("Grow past the limit = %d, want %d", got, MaxCoalStack)
	}
}

func TestIsCoalClump(t *testing.T) {
	tests := []struct {
		name string
		s    Stack
		want bool
	}{
		{"single", Stack{Kind: KindCoalClump, Count: 1}, true},
		{"full", Stack{Kind: KindCoalClump, Count: 3}, true},
		{"empty", Stack{Kind: KindCoalClump, Count: 0}, false},
		{"oversized", Stack{Kind: KindCoalClump, Count: 4}, false},
		{"nothing", Stack{}, false},
	}
	for _, tt := range tests {
		if got := IsCoalClump(tt.s); got != tt.want {
			t.Errorf("%s: IsCoalClump = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if Name(KindCoalClump) != "Coal Clump" || Name(KindNone) != "Empty" {
		t.Error("unexpected item names")
	}
	if Name(KindCount+3) != "Unknown" {
		t.Error("out of range kind should be Unknown")
	}
}
