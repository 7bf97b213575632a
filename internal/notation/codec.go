package notation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// faceAxis maps each face to its rotation axis and outer layer.
var faceAxis = map[types.Face]struct {
	axis  types.Axis
	layer int
}{
	types.FaceR: {types.AxisX, 1},
	types.FaceL: {types.AxisX, -1},
	types.FaceU: {types.AxisY, 1},
	types.FaceD: {types.AxisY, -1},
	types.FaceF: {types.AxisZ, 1},
	types.FaceB: {types.AxisZ, -1},
}

// Decode maps a move to the layer it turns and the signed angle in radians.
//
// Angles are clockwise as seen from the positive end of the axis. A plain
// turn of a positive-end face (R, U, F) is +π/2; a plain turn of a
// negative-end face (L, D, B) is clockwise seen from outside that face and
// therefore -π/2. Prime negates the angle and the double modifier doubles it.
//
// Decode panics on a face or turn outside the notation alphabet.
func Decode(m types.Move) types.Rotation {
	fa, ok := faceAxis[m.Face]
	if !ok {
		panic(fmt.Errorf("%w: unknown face %q", types.ErrContractViolation, m.Face))
	}

	var quarters float64
	switch m.Turn {
	case types.TurnCW:
		quarters = 1
	case types.TurnCCW:
		quarters = -1
	case types.Turn180:
		quarters = 2
	default:
		panic(fmt.Errorf("%w: unknown turn %d on face %s", types.ErrContractViolation, m.Turn, m.Face))
	}

	return types.Rotation{
		Axis:  fa.axis,
		Layer: fa.layer,
		Angle: float64(fa.layer) * quarters * math.Pi / 2,
	}
}

// Random draws a face and a modifier uniformly at random. If previous is
// non-nil, draws are rejected until the face differs from previous.Face.
func Random(rng *rand.Rand, previous *types.Move) types.Move {
	m, _ := draw(rng, previous)
	return m
}

// draw implements Random and reports how many draws it took.
func draw(rng *rand.Rand, previous *types.Move) (types.Move, int) {
	attempts := 0
	for {
		attempts++
		m := types.Move{
			Face: types.Faces[rng.IntN(len(types.Faces))],
			Turn: types.Turns[rng.IntN(len(types.Turns))],
		}
		if previous != nil && m.Face == previous.Face {
			continue
		}
		return m, attempts
	}
}
