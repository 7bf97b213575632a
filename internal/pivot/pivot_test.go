package pivot

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_animator/internal/render"
	"github.com/SeamusWaldron/gocube_animator/internal/scene"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

const frame = 16 * time.Millisecond

func setup(t *testing.T, opts ...Option) (*scene.Graph, *render.Model, *Pivot) {
	t.Helper()
	g := scene.New()
	m, err := render.NewModel(g, 1)
	require.NoError(t, err)
	p, err := New(g, g.Root(), opts...)
	require.NoError(t, err)
	return g, m, p
}

func worlds(g *scene.Graph, nodes []scene.NodeID) map[scene.NodeID]scene.Transform {
	out := make(map[scene.NodeID]scene.Transform, len(nodes))
	for _, n := range nodes {
		out[n] = g.World(n)
	}
	return out
}

func runToCompletion(t *testing.T, p *Pivot, done <-chan struct{}) int {
	t.Helper()
	for i := 1; i < 1000; i++ {
		p.Tick(frame)
		select {
		case <-done:
			return i
		default:
		}
	}
	t.Fatal("rotation never completed")
	return 0
}

func assertContractViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, types.ErrContractViolation) {
			t.Errorf("expected contract violation panic, got %v", r)
		}
	}()
	fn()
}

func TestGroupSelectsLayerWithoutMovingIt(t *testing.T) {
	g, m, p := setup(t)
	before := worlds(g, m.Nodes())

	selected := p.Group(types.AxisY, 1, m.Nodes())
	assert.Len(t, selected, 9)
	assert.Equal(t, Grouped, p.State())
	assert.ElementsMatch(t, selected, g.Children(p.Node()))

	for _, n := range selected {
		assert.InDelta(t, 1.0, g.World(n).Position[1], 1e-9)
	}
	for n, w := range before {
		assert.True(t, w.ApproxEqual(g.World(n), 1e-9), "node %s jumped on group", g.Name(n))
	}
	assert.Len(t, g.Children(m.Container), 17)
}

func TestFullCycleTurnsLayer(t *testing.T) {
	g, m, p := setup(t)

	selected := p.Group(types.AxisY, 1, m.Nodes())
	done := p.Rotate(types.AxisY, math.Pi/2)
	assert.Equal(t, Rotating, p.State())
	assert.False(t, p.Finished())

	runToCompletion(t, p, done)
	assert.True(t, p.Finished())
	assert.Equal(t, math.Pi/2, p.Angle())
	assert.Equal(t, 1.0, p.Progress())

	atEnd := worlds(g, selected)
	p.Ungroup(m.Container)
	assert.Equal(t, Idle, p.State())
	assert.Empty(t, g.Children(p.Node()))
	assert.Len(t, g.Children(m.Container), 26)
	for n, w := range atEnd {
		assert.True(t, w.ApproxEqual(g.World(n), 1e-9), "node %s jumped on ungroup", g.Name(n))
	}

	p.ResetPivot()
	assert.True(t, g.Local(p.Node()).ApproxEqual(scene.Identity(), 1e-12))

	// Clockwise seen from above: the front edge moves to the left.
	var frontEdge render.Cubelet
	for _, c := range m.Cubelets {
		if c.Home == [3]int{0, 1, 1} {
			frontEdge = c
		}
	}
	assert.True(t, scene.VecWithin(g.World(frontEdge.Node).Position, mgl64.Vec3{-1, 1, 0}, 1e-9),
		"front edge at %v", g.World(frontEdge.Node).Position)
}

func TestDoneFiresOnceAfterFinalFrame(t *testing.T) {
	_, m, p := setup(t, WithDuration(100*time.Millisecond))
	p.Group(types.AxisX, 1, m.Nodes())
	done := p.Rotate(types.AxisX, -math.Pi)

	for i := 0; i < 6; i++ {
		p.Tick(frame)
		select {
		case <-done:
			t.Fatalf("done fired after %d frames, before the target", i+1)
		default:
		}
		assert.Greater(t, p.Angle(), -math.Pi)
	}
	p.Tick(frame)
	select {
	case <-done:
	default:
		t.Fatal("done did not fire on the final frame")
	}
	assert.Equal(t, -math.Pi, p.Angle())

	// Extra ticks after completion are harmless and do not close twice.
	p.Tick(frame)
	p.Tick(frame)
}

func TestAngleIsMonotonic(t *testing.T) {
	_, m, p := setup(t)
	p.Group(types.AxisZ, -1, m.Nodes())
	done := p.Rotate(types.AxisZ, -math.Pi/2)
	prev := 0.0
	for {
		p.Tick(frame)
		assert.LessOrEqual(t, p.Angle(), prev)
		prev = p.Angle()
		select {
		case <-done:
			return
		default:
		}
	}
}

func TestDoubleGroupPanics(t *testing.T) {
	_, m, p := setup(t)
	p.Group(types.AxisY, 1, m.Nodes())
	assertContractViolation(t, func() { p.Group(types.AxisX, 1, m.Nodes()) })
}

func TestGroupBeforeResetPanics(t *testing.T) {
	_, m, p := setup(t)
	p.Group(types.AxisY, 1, m.Nodes())
	runToCompletion(t, p, p.Rotate(types.AxisY, math.Pi/2))
	p.Ungroup(m.Container)
	assertContractViolation(t, func() { p.Group(types.AxisY, 1, m.Nodes()) })
}

func TestEmptyLayerPanics(t *testing.T) {
	_, m, p := setup(t)
	assertContractViolation(t, func() { p.Group(types.AxisY, 3, m.Nodes()) })
}

func TestRotateWithoutGroupPanics(t *testing.T) {
	_, _, p := setup(t)
	assertContractViolation(t, func() { p.Rotate(types.AxisY, math.Pi/2) })
}

func TestUngroupMidRotationPanics(t *testing.T) {
	_, m, p := setup(t)
	p.Group(types.AxisY, 1, m.Nodes())
	p.Rotate(types.AxisY, math.Pi/2)
	p.Tick(frame)
	assertContractViolation(t, func() { p.Ungroup(m.Container) })
}

func TestResetWhileHoldingPanics(t *testing.T) {
	_, m, p := setup(t)
	p.Group(types.AxisY, -1, m.Nodes())
	assertContractViolation(t, func() { p.ResetPivot() })
}

func TestSelectionUsesLiveTransforms(t *testing.T) {
	_, m, p := setup(t)

	// Turn the right layer a quarter so the top layer's membership changes.
	p.Group(types.AxisX, 1, m.Nodes())
	runToCompletion(t, p, p.Rotate(types.AxisX, math.Pi/2))
	p.Ungroup(m.Container)
	p.ResetPivot()

	selected := p.Group(types.AxisY, 1, m.Nodes())
	assert.Len(t, selected, 9)
	homes := make(map[[3]int]bool)
	for _, c := range m.Cubelets {
		for _, n := range selected {
			if c.Node == n {
				homes[c.Home] = true
			}
		}
	}
	// R brings the front-right edge up to the top layer.
	assert.True(t, homes[[3]int{1, 0, 1}])
	assert.False(t, homes[[3]int{1, 1, 0}])
}

func TestSnapRemovesDrift(t *testing.T) {
	g, m, p := setup(t, WithSnap(true))
	for i := 0; i < 40; i++ {
		p.Group(types.AxisY, 1, m.Nodes())
		runToCompletion(t, p, p.Rotate(types.AxisY, math.Pi/2))
		p.Ungroup(m.Container)
		p.ResetPivot()
	}
	for _, c := range m.Cubelets {
		pos := g.Local(c.Node).Position
		for i := 0; i < 3; i++ {
			assert.Equal(t, math.Round(pos[i]), pos[i])
		}
	}
}
