package engine

import "testing"

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"initial position", InitialFEN, false},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"king and knight", "4k3/8/8/8/8/8/8/1N2K3 b - - 0 1", true},
		{"bishops on same colour", "2b1k3/8/8/8/8/8/8/3BK3 w - - 0 1", true},
		{"bishops on opposite colours", "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false},
		{"two knights", "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", false},
		{"knight each", "1n2k3/8/8/8/8/8/8/1N2K3 w - - 0 1", false},
		{"lone pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"lone rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasInsufficientMaterial(mustFEN(t, tt.fen)); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLightSquare(t *testing.T) {
	light := []string{"a8", "h1", "b7", "d1", "e8"}
	dark := []string{"a1", "h8", "c1", "d8", "e1"}
	for _, s := range light {
		if !isLightSquare(sq(s)) {
			t.Errorf("%s should be light", s)
		}
	}
	for _, s := range dark {
		if isLightSquare(sq(s)) {
			t.Errorf("%s should be dark", s)
		}
	}
}
