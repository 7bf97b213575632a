package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform is a rigid transform: rotate, then translate.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Rotation: mgl64.QuatIdent()}
}

// Translation returns a transform that only translates.
func Translation(p mgl64.Vec3) Transform {
	return Transform{Position: p, Rotation: mgl64.QuatIdent()}
}

// Mul composes a and b so that a.Mul(b).Apply(v) == a.Apply(b.Apply(v)).
func (a Transform) Mul(b Transform) Transform {
	return Transform{
		Position: a.Position.Add(a.Rotation.Rotate(b.Position)),
		Rotation: a.Rotation.Mul(b.Rotation).Normalize(),
	}
}

// Inverse returns the transform that undoes t.
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Inverse()
	return Transform{
		Position: inv.Rotate(t.Position).Mul(-1),
		Rotation: inv,
	}
}

// Apply transforms a point.
func (t Transform) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(v))
}

// VecWithin reports whether every component of a and b differs by at most
// eps.
func VecWithin(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether a and b describe the same pose: positions
// within eps per component, rotations within eps of 1-|q·r|.
// q and -q are the same orientation.
func (a Transform) ApproxEqual(b Transform, eps float64) bool {
	if !VecWithin(a.Position, b.Position, eps) {
		return false
	}
	return 1-math.Abs(a.Rotation.Dot(b.Rotation)) <= eps
}

// latticeRotations are the 24 rotations that map the cube grid onto itself.
var latticeRotations = buildLattice()

func buildLattice() []mgl64.Quat {
	gens := []mgl64.Quat{
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0}),
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
		mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
	}
	out := []mgl64.Quat{mgl64.QuatIdent()}
	for i := 0; i < len(out); i++ {
		for _, g := range gens {
			q := g.Mul(out[i]).Normalize()
			dup := false
			for _, e := range out {
				if 1-math.Abs(q.Dot(e)) < 1e-9 {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, q)
			}
		}
	}
	return out
}

// Snapped returns t with its position rounded to multiples of spacing and its
// rotation replaced by the nearest grid-preserving rotation.
func (t Transform) Snapped(spacing float64) Transform {
	var p mgl64.Vec3
	for i := 0; i < 3; i++ {
		p[i] = math.Round(t.Position[i]/spacing) * spacing
	}

	best, bestDot := mgl64.QuatIdent(), -1.0
	for _, q := range latticeRotations {
		if d := math.Abs(t.Rotation.Dot(q)); d > bestDot {
			best, bestDot = q, d
		}
	}
	return Transform{Position: p, Rotation: best}
}
