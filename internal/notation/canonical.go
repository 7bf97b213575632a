// Package notation provides move notation parsing, formatting and decoding.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// ErrInvalidNotation is returned when a token is not a face letter with an
// optional modifier.
var ErrInvalidNotation = errors.New("gocube: invalid move notation")

// Parse parses a standard cube notation string into a Move.
// Examples: R, R', R2, U, U', U2
func Parse(s string) (types.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	// Extract face
	var face types.Face
	switch s[0] {
	case 'R', 'r':
		face = types.FaceR
	case 'L', 'l':
		face = types.FaceL
	case 'U', 'u':
		face = types.FaceU
	case 'D', 'd':
		face = types.FaceD
	case 'F', 'f':
		face = types.FaceF
	case 'B', 'b':
		face = types.FaceB
	default:
		return types.Move{}, fmt.Errorf("%w: unknown face in %q", ErrInvalidNotation, s)
	}

	// Extract turn
	turn := types.TurnCW // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = types.TurnCCW
		case "2", "2'", "2`":
			turn = types.Turn180
		default:
			return types.Move{}, fmt.Errorf("%w: unknown modifier in %q", ErrInvalidNotation, s)
		}
	}

	return types.Move{Face: face, Turn: turn}, nil
}

// MustParse is like Parse but panics on an invalid token.
func MustParse(s string) types.Move {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseSequence parses a space-separated sequence of moves.
// Unlike a recorded solve, an externally supplied move list is a protocol
// input, so the first invalid token fails the whole sequence.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		m, err := Parse(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// Format formats a slice of moves as a space-separated notation string.
func Format(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// Invert returns the sequence that undoes moves.
func Invert(moves []types.Move) []types.Move {
	out := make([]types.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
