package cube

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_animator/internal/notation"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// quarterTurn holds, per axis, the clockwise quarter turn seen from the
// positive end of that axis. It is a right-handed rotation of -90°.
var quarterTurn = [3]Orientation{
	types.AxisX: {{1, 0, 0}, {0, 0, 1}, {0, -1, 0}},
	types.AxisY: {{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	types.AxisZ: {{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
}

// turnMatrix returns the rotation for quarterTurns clockwise quarter turns.
func turnMatrix(axis types.Axis, quarterTurns int) Orientation {
	m := Identity
	for i := 0; i < quarterTurns; i++ {
		m = quarterTurn[axis].Mul(m)
	}
	return m
}

// Apply turns the layer at coordinate layer along axis by quarterTurns
// clockwise quarter turns seen from the positive end of the axis. Three
// quarter turns is one counter-clockwise turn.
//
// Apply panics if axis is invalid or if the layer holds no pieces.
func (s *State) Apply(axis types.Axis, layer int, quarterTurns int) {
	if !axis.Valid() {
		panic(fmt.Errorf("%w: apply on invalid axis %d", types.ErrContractViolation, axis))
	}
	q := ((quarterTurns % 4) + 4) % 4

	var selected []int
	for i, p := range s.pieces {
		if p.Position[axis] == layer {
			selected = append(selected, i)
		}
	}
	if len(selected) == 0 {
		panic(fmt.Errorf("%w: layer %s=%d selects no pieces", types.ErrContractViolation, axis, layer))
	}
	if q == 0 {
		return
	}

	m := turnMatrix(axis, q)
	for _, i := range selected {
		delete(s.slots, s.pieces[i].Position)
	}
	for _, i := range selected {
		p := &s.pieces[i]
		p.Position = m.Apply(p.Position)
		p.Orientation = m.Mul(p.Orientation)
		s.slots[p.Position] = i
	}
}

// ApplyRotation applies a decoded rotation.
func (s *State) ApplyRotation(r types.Rotation) {
	s.Apply(r.Axis, r.Layer, r.QuarterTurns())
}

// ApplyMove applies a notation move.
func (s *State) ApplyMove(m types.Move) {
	s.ApplyRotation(notation.Decode(m))
}

// ApplyMoves applies a sequence of moves.
func (s *State) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		s.ApplyMove(m)
	}
}
