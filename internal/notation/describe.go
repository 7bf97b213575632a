package notation

import (
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// faceNames are the long names shown next to a move in the status line.
var faceNames = map[types.Face]string{
	types.FaceR: "Right",
	types.FaceL: "Left",
	types.FaceU: "Up",
	types.FaceD: "Down",
	types.FaceF: "Front",
	types.FaceB: "Back",
}

// Describe converts a Move to a plain-language description.
// Reference frame: White on top, Green in front, facing the cube.
//
// Mapping:
//
//	R  -> "Right clockwise"   R' -> "Right anti-clockwise"   R2 -> "Right half turn"
//	U  -> "Up clockwise"      U' -> "Up anti-clockwise"      U2 -> "Up half turn"
func Describe(m types.Move) string {
	name, ok := faceNames[m.Face]
	if !ok {
		return m.Notation()
	}
	switch m.Turn {
	case types.TurnCW:
		return name + " clockwise"
	case types.TurnCCW:
		return name + " anti-clockwise"
	case types.Turn180:
		return name + " half turn"
	}
	return m.Notation()
}

// DescribeSequence describes each move of a sequence.
func DescribeSequence(moves []types.Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = Describe(m)
	}
	return result
}
