package types

import (
	"math"
	"testing"
)

func TestTokenRoundTripsAllMoves(t *testing.T) {
	seen := make(map[uint8]bool)
	for _, f := range Faces {
		for _, tr := range Turns {
			m := Move{Face: f, Turn: tr}
			tok := m.Token()
			if seen[tok] {
				t.Errorf("duplicate token %d for %s", tok, m)
			}
			seen[tok] = true
			if got := MoveFromToken(tok); got != m {
				t.Errorf("MoveFromToken(%d) = %s, want %s", tok, got, m)
			}
		}
	}
	if len(seen) != 18 {
		t.Errorf("expected 18 tokens, got %d", len(seen))
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		in, want Move
	}{
		{Move{FaceR, TurnCW}, Move{FaceR, TurnCCW}},
		{Move{FaceU, TurnCCW}, Move{FaceU, TurnCW}},
		{Move{FaceB, Turn180}, Move{FaceB, Turn180}},
	}
	for _, tt := range tests {
		if got := tt.in.Inverse(); got != tt.want {
			t.Errorf("%s.Inverse() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTokenPanicsOutsideAlphabet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown face")
		}
	}()
	Move{Face: "M", Turn: TurnCW}.Token()
}

func TestQuarterTurns(t *testing.T) {
	tests := []struct {
		angle float64
		want  int
	}{
		{math.Pi / 2, 1},
		{math.Pi, 2},
		{-math.Pi, 2},
		{-math.Pi / 2, 3},
		{3 * math.Pi / 2, 3},
		{0, 0},
	}
	for _, tt := range tests {
		r := Rotation{Axis: AxisY, Layer: 1, Angle: tt.angle}
		if got := r.QuarterTurns(); got != tt.want {
			t.Errorf("QuarterTurns(%v) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}
