package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndChildren(t *testing.T) {
	g := New()
	a, err := g.Add("a", g.Root(), Identity())
	require.NoError(t, err)
	b, err := g.Add("b", g.Root(), Identity())
	require.NoError(t, err)

	assert.Equal(t, []NodeID{a, b}, g.Children(g.Root()))
	assert.Equal(t, g.Root(), g.Parent(a))
	assert.Equal(t, None, g.Parent(g.Root()))
	assert.Equal(t, "a", g.Name(a))
}

func TestAddUnknownParent(t *testing.T) {
	g := New()
	_, err := g.Add("x", 42, Identity())
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestWorldComposesParents(t *testing.T) {
	g := New()
	parent, _ := g.Add("parent", g.Root(), Transform{
		Position: mgl64.Vec3{0, 0, 5},
		Rotation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
	})
	child, _ := g.Add("child", parent, Translation(mgl64.Vec3{1, 0, 0}))

	// +90° about Y sends +X to -Z.
	w := g.World(child)
	assert.True(t, VecWithin(w.Position, mgl64.Vec3{0, 0, 4}, 1e-9), "got %v", w.Position)
}

func TestAddChildKeepsLocal(t *testing.T) {
	g := New()
	moved, _ := g.Add("moved", g.Root(), Translation(mgl64.Vec3{3, 0, 0}))
	child, _ := g.Add("child", g.Root(), Translation(mgl64.Vec3{1, 0, 0}))

	require.NoError(t, g.AddChild(moved, child))
	assert.Equal(t, []NodeID{moved}, g.Children(g.Root()))
	assert.Equal(t, moved, g.Parent(child))
	assert.True(t, VecWithin(g.World(child).Position, mgl64.Vec3{4, 0, 0}, 1e-9))
}

func TestAttachPreservesWorld(t *testing.T) {
	g := New()
	pivot, _ := g.Add("pivot", g.Root(), Transform{
		Position: mgl64.Vec3{0.5, -2, 1},
		Rotation: mgl64.QuatRotate(0.7, mgl64.Vec3{1, 1, 0}.Normalize()),
	})
	child, _ := g.Add("child", g.Root(), Transform{
		Position: mgl64.Vec3{1, 1, 1},
		Rotation: mgl64.QuatRotate(-0.3, mgl64.Vec3{0, 0, 1}),
	})

	before := g.World(child)
	require.NoError(t, g.Attach(pivot, child))
	assert.Equal(t, pivot, g.Parent(child))
	assert.True(t, before.ApproxEqual(g.World(child), 1e-9))

	require.NoError(t, g.Attach(g.Root(), child))
	assert.True(t, before.ApproxEqual(g.World(child), 1e-9))
	assert.True(t, before.ApproxEqual(g.Local(child), 1e-9))
}

func TestRemoveChild(t *testing.T) {
	g := New()
	a, _ := g.Add("a", g.Root(), Identity())
	b, _ := g.Add("b", a, Identity())

	assert.ErrorIs(t, g.RemoveChild(g.Root(), b), ErrNotChild)
	require.NoError(t, g.RemoveChild(a, b))
	assert.Empty(t, g.Children(a))
	assert.Equal(t, None, g.Parent(b))
}

func TestAddChildRejectsCycle(t *testing.T) {
	g := New()
	a, _ := g.Add("a", g.Root(), Identity())
	b, _ := g.Add("b", a, Identity())
	assert.ErrorIs(t, g.AddChild(b, a), ErrCycle)
	assert.ErrorIs(t, g.AddChild(a, a), ErrCycle)
}

func TestTransformInverse(t *testing.T) {
	tr := Transform{
		Position: mgl64.Vec3{1, 2, 3},
		Rotation: mgl64.QuatRotate(1.1, mgl64.Vec3{0, 1, 0}),
	}
	assert.True(t, tr.Mul(tr.Inverse()).ApproxEqual(Identity(), 1e-9))
	assert.True(t, tr.Inverse().Mul(tr).ApproxEqual(Identity(), 1e-9))
}

func TestApproxEqualIsAbsolute(t *testing.T) {
	// Round-off next to zero is still equal.
	assert.True(t, Translation(mgl64.Vec3{2.2e-16, 0, 4}).ApproxEqual(Translation(mgl64.Vec3{0, 0, 4}), 1e-9))
	// Large coordinates get no relative slack.
	assert.False(t, Translation(mgl64.Vec3{1000, 0, 0}).ApproxEqual(Translation(mgl64.Vec3{1000.001, 0, 0}), 1e-6))
	assert.True(t, VecWithin(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1.0005, 2, 3}, 1e-3))

	turned := Transform{Rotation: mgl64.QuatRotate(0.1, mgl64.Vec3{1, 0, 0})}
	assert.False(t, Identity().ApproxEqual(turned, 1e-9))
	flipped := Transform{Rotation: mgl64.QuatIdent().Scale(-1)}
	assert.True(t, Identity().ApproxEqual(flipped, 1e-12))
}

func TestLatticeHas24Rotations(t *testing.T) {
	assert.Len(t, latticeRotations, 24)
}

func TestSnapped(t *testing.T) {
	drifted := Transform{
		Position: mgl64.Vec3{1.0500001, -0.0000003, 2.0999998},
		Rotation: mgl64.QuatRotate(math.Pi/2+1e-6, mgl64.Vec3{0, 1, 0}),
	}
	s := drifted.Snapped(1.05)
	assert.True(t, VecWithin(s.Position, mgl64.Vec3{1.05, 0, 2.1}, 1e-12), "got %v", s.Position)

	want := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	assert.InDelta(t, 1.0, math.Abs(s.Rotation.Dot(want)), 1e-12)
}
