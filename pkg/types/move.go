// Package types contains shared type definitions for the gocube animator.
package types

import "fmt"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six addressable faces in token order.
var Faces = [6]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Turns lists the three modifiers in token order.
var Turns = [3]Turn{TurnCCW, TurnCW, Turn180}

// Move represents a single cube move with face and turn direction.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// Turn180 is its own inverse
	}
	return inv
}

// Token encodes the move as a single byte.
// Encoding: face*3 + turn_code where:
//   - face: R=0, L=1, U=2, D=3, F=4, B=5
//   - turn_code: CCW=0, CW=1, 180=2
//
// Token panics on a face or turn outside the notation alphabet.
func (m Move) Token() uint8 {
	faceCode := -1
	for i, f := range Faces {
		if f == m.Face {
			faceCode = i
		}
	}
	turnCode := -1
	for i, t := range Turns {
		if t == m.Turn {
			turnCode = i
		}
	}
	if faceCode < 0 || turnCode < 0 {
		panic(fmt.Sprintf("types: move %q outside notation alphabet", m.Notation()))
	}
	return uint8(faceCode*3 + turnCode)
}

// MoveFromToken decodes a token back into a Move.
func MoveFromToken(token uint8) Move {
	if int(token) >= len(Faces)*len(Turns) {
		panic(fmt.Sprintf("types: token %d outside notation alphabet", token))
	}
	return Move{Face: Faces[token/3], Turn: Turns[token%3]}
}
