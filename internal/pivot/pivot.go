// Package pivot rotates one layer of cubelets as a rigid body by parenting
// them to a temporary pivot node, turning the pivot, and handing them back.
package pivot

import (
	"fmt"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_animator/internal/scene"
	"github.com/SeamusWaldron/gocube_animator/internal/tween"
	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// State is the pivot's position in its per-move cycle.
type State int

const (
	Idle     State = iota // holds nothing, ready for Group
	Grouped               // holds a layer, not yet turning
	Rotating              // turning, or finished turning and awaiting Ungroup
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Grouped:
		return "grouped"
	case Rotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// axisVectors are the unit vectors of each axis.
var axisVectors = [3]mgl64.Vec3{
	types.AxisX: {1, 0, 0},
	types.AxisY: {0, 1, 0},
	types.AxisZ: {0, 0, 1},
}

// Pivot is the temporary parent used to rotate a layer.
//
// Pivot is not safe for concurrent use. The caller runs one move at a time:
// Group, Rotate, Tick until done, Ungroup, ResetPivot.
type Pivot struct {
	graph *scene.Graph
	node  scene.NodeID
	cfg   config

	state State
	axis  types.Axis
	angle float64
	held  []scene.NodeID
	tw    *tween.Tween
	done  chan struct{}
	dirty bool // rotation left over from the last move
}

// New adds a pivot node under parent.
func New(g *scene.Graph, parent scene.NodeID, opts ...Option) (*Pivot, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	id, err := g.Add("pivot", parent, scene.Identity())
	if err != nil {
		return nil, fmt.Errorf("failed to add pivot node: %w", err)
	}
	return &Pivot{graph: g, node: id, cfg: cfg}, nil
}

// Node returns the pivot's scene node.
func (p *Pivot) Node() scene.NodeID { return p.node }

// State returns the current state.
func (p *Pivot) State() State { return p.state }

// Angle returns the pivot's current angle, clockwise from the positive end
// of the active axis.
func (p *Pivot) Angle() float64 { return p.angle }

// Axis returns the axis of the current or last move.
func (p *Pivot) Axis() types.Axis { return p.axis }

// Held returns the nodes currently parented to the pivot.
func (p *Pivot) Held() []scene.NodeID {
	out := make([]scene.NodeID, len(p.held))
	copy(out, p.held)
	return out
}

// Progress returns how far the active rotation has run, in [0, 1].
func (p *Pivot) Progress() float64 {
	switch {
	case p.state != Rotating:
		return 0
	case p.tw == nil:
		return 1
	default:
		return p.tw.Progress()
	}
}

func violation(format string, args ...any) {
	panic(fmt.Errorf("%w: pivot: %s", types.ErrContractViolation, fmt.Sprintf(format, args...)))
}

// Group re-parents to the pivot every renderable whose live position along
// axis is layer grid units from the pivot, keeping each one's world pose.
// It returns the selected nodes.
//
// Group panics if the pivot is not idle, was not reset after the last move,
// or if no renderable lies on the layer.
func (p *Pivot) Group(axis types.Axis, layer int, renderables []scene.NodeID) []scene.NodeID {
	if p.state != Idle {
		violation("group while %s", p.state)
	}
	if p.dirty {
		violation("group before ResetPivot")
	}
	if !axis.Valid() {
		violation("group on invalid axis %d", axis)
	}

	toPivot := p.graph.World(p.node).Inverse()
	target := float64(layer) * p.cfg.spacing
	var selected []scene.NodeID
	for _, n := range renderables {
		pos := toPivot.Apply(p.graph.World(n).Position)
		if math.Abs(pos[axis]-target) < p.cfg.spacing/2 {
			selected = append(selected, n)
		}
	}
	if len(selected) == 0 {
		violation("layer %s=%d selects no renderables", axis, layer)
	}

	for _, n := range selected {
		if err := p.graph.Attach(p.node, n); err != nil {
			violation("attach %s: %v", p.graph.Name(n), err)
		}
	}
	p.held = selected
	p.axis = axis
	p.state = Grouped
	return selected
}

// Rotate starts turning the pivot about axis from its current angle to
// target. The returned channel is closed once, by the Tick that commits the
// final frame at exactly target.
func (p *Pivot) Rotate(axis types.Axis, target float64) <-chan struct{} {
	if p.state != Grouped {
		violation("rotate while %s", p.state)
	}
	if axis != p.axis {
		violation("rotate about %s after grouping on %s", axis, p.axis)
	}
	p.tw = tween.New(p.angle, target, p.cfg.duration, p.cfg.ease)
	p.done = make(chan struct{})
	p.state = Rotating
	p.dirty = true
	return p.done
}

// Tick advances the active rotation by one frame of length dt.
// It does nothing unless a rotation is running.
func (p *Pivot) Tick(dt time.Duration) {
	if p.state != Rotating || p.tw == nil {
		return
	}
	v, finished := p.tw.Update(dt)
	p.setAngle(v)
	if finished {
		p.tw = nil
		close(p.done)
	}
}

// Finished reports whether the active rotation has committed its last frame.
func (p *Pivot) Finished() bool {
	return p.state == Rotating && p.tw == nil
}

func (p *Pivot) setAngle(a float64) {
	p.angle = a
	local := p.graph.Local(p.node)
	// Clockwise seen from the positive end is a negative right-handed turn.
	local.Rotation = mgl64.QuatRotate(-a, axisVectors[p.axis])
	if err := p.graph.SetLocal(p.node, local); err != nil {
		violation("set rotation: %v", err)
	}
}

// Ungroup hands every held node back to parent, keeping its world pose.
// With snapping enabled the node's new local transform is rounded onto the
// grid to stop floating-point drift building up over many moves.
//
// Ungroup panics while a rotation is still running.
func (p *Pivot) Ungroup(parent scene.NodeID) {
	switch {
	case p.state == Idle:
		violation("ungroup while idle")
	case p.state == Rotating && p.tw != nil:
		violation("ungroup before rotation finished")
	}
	for _, n := range p.held {
		if err := p.graph.Attach(parent, n); err != nil {
			violation("attach %s: %v", p.graph.Name(n), err)
		}
		if p.cfg.snap {
			_ = p.graph.SetLocal(n, p.graph.Local(n).Snapped(p.cfg.spacing))
		}
	}
	p.held = nil
	p.state = Idle
}

// ResetPivot returns the pivot to the identity rotation. It must be called
// after Ungroup and before the next Group.
func (p *Pivot) ResetPivot() {
	if len(p.held) != 0 {
		violation("reset while holding %d nodes", len(p.held))
	}
	p.angle = 0
	local := p.graph.Local(p.node)
	local.Rotation = mgl64.QuatIdent()
	if err := p.graph.SetLocal(p.node, local); err != nil {
		violation("reset rotation: %v", err)
	}
	p.dirty = false
}
