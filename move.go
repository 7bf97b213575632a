package gocube

import (
	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// Face represents a cube face in standard notation.
type Face = types.Face

const (
	FaceR = types.FaceR // Right
	FaceL = types.FaceL // Left
	FaceU = types.FaceU // Up
	FaceD = types.FaceD // Down
	FaceF = types.FaceF // Front
	FaceB = types.FaceB // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn = types.Turn

const (
	CW     = types.TurnCW  // Clockwise (90 degrees)
	CCW    = types.TurnCCW // Counter-clockwise (90 degrees)
	Double = types.Turn180 // Half turn (180 degrees)
)

// Move is a single face turn.
type Move = types.Move

// Axis is a rotation axis: X points right, Y up, Z toward the viewer.
type Axis = types.Axis

// Rotation is a decoded move: axis, layer (-1 or +1) and angle in radians,
// clockwise as seen from the positive end of the axis.
type Rotation = types.Rotation

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, u, U`
func ParseMove(s string) (Move, error) {
	return notation.Parse(s)
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return notation.Format(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return notation.Invert(moves)
}

// Decode converts a move to the layer rotation it performs.
func Decode(m Move) Rotation {
	return notation.Decode(m)
}
