package types

import (
	"fmt"
	"math"
)

// Axis identifies one of the three rotation axes of the cube.
type Axis int

const (
	AxisX Axis = 0 // Right is +X
	AxisY Axis = 1 // Up is +Y
	AxisZ Axis = 2 // Front is +Z
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Valid reports whether a is one of the three cube axes.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Rotation is the geometric form of a move: which layer turns and how far.
//
// Angle is measured clockwise as seen from the positive end of Axis looking
// toward the origin. Layer is -1 or +1.
type Rotation struct {
	Axis  Axis
	Layer int
	Angle float64
}

// QuarterTurns returns the rotation as a count of clockwise quarter turns
// seen from the positive end of the axis, in the range [0, 3].
func (r Rotation) QuarterTurns() int {
	q := int(math.Round(r.Angle / (math.Pi / 2)))
	return ((q % 4) + 4) % 4
}

func (r Rotation) String() string {
	return fmt.Sprintf("%s=%+d %+.0f°", r.Axis, r.Layer, r.Angle*180/math.Pi)
}
