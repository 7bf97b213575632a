// Package scene is a minimal transform hierarchy: an arena of nodes addressed
// by stable handles, each with a local rigid transform relative to its parent.
//
// It provides just what the animation engine needs from a renderer's scene
// graph: adding and removing children, enumerating them, reading and writing
// local transforms, deriving world transforms, and re-parenting a node while
// preserving its world pose.
package scene

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownNode = errors.New("scene: unknown node")
	ErrNotChild    = errors.New("scene: node is not a child of parent")
	ErrCycle       = errors.New("scene: re-parenting would create a cycle")
)

// NodeID is a stable handle to a node in a Graph.
type NodeID int

// None is the parent of the root and of detached nodes.
const None NodeID = -1

type node struct {
	name     string
	local    Transform
	parent   NodeID
	children []NodeID
}

// Graph owns every node. A node has at most one parent at any time.
type Graph struct {
	nodes []node
}

// New creates a graph holding only the root node.
func New() *Graph {
	return &Graph{nodes: []node{{name: "scene", local: Identity(), parent: None}}}
}

// Root returns the root node.
func (g *Graph) Root() NodeID {
	return 0
}

// Len returns the number of nodes ever created.
func (g *Graph) Len() int {
	return len(g.nodes)
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func (g *Graph) check(ids ...NodeID) error {
	for _, id := range ids {
		if !g.valid(id) {
			return fmt.Errorf("%w: %d", ErrUnknownNode, id)
		}
	}
	return nil
}

// Add creates a node under parent with the given local transform.
func (g *Graph) Add(name string, parent NodeID, local Transform) (NodeID, error) {
	if err := g.check(parent); err != nil {
		return None, err
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, node{name: name, local: local, parent: parent})
	g.nodes[parent].children = append(g.nodes[parent].children, id)
	return id, nil
}

// Name returns the node's name.
func (g *Graph) Name(id NodeID) string {
	if !g.valid(id) {
		return ""
	}
	return g.nodes[id].name
}

// Parent returns the node's parent, or None.
func (g *Graph) Parent(id NodeID) NodeID {
	if !g.valid(id) {
		return None
	}
	return g.nodes[id].parent
}

// Children returns a copy of the node's children in insertion order.
func (g *Graph) Children(id NodeID) []NodeID {
	if !g.valid(id) {
		return nil
	}
	out := make([]NodeID, len(g.nodes[id].children))
	copy(out, g.nodes[id].children)
	return out
}

// Local returns the node's transform relative to its parent.
func (g *Graph) Local(id NodeID) Transform {
	if !g.valid(id) {
		return Identity()
	}
	return g.nodes[id].local
}

// SetLocal replaces the node's transform relative to its parent.
func (g *Graph) SetLocal(id NodeID, t Transform) error {
	if err := g.check(id); err != nil {
		return err
	}
	g.nodes[id].local = t
	return nil
}

// World returns the node's transform relative to the root.
func (g *Graph) World(id NodeID) Transform {
	w := Identity()
	for cur := id; g.valid(cur); cur = g.nodes[cur].parent {
		w = g.nodes[cur].local.Mul(w)
	}
	return w
}

// isAncestor reports whether a is b or an ancestor of b.
func (g *Graph) isAncestor(a, b NodeID) bool {
	for cur := b; g.valid(cur); cur = g.nodes[cur].parent {
		if cur == a {
			return true
		}
	}
	return false
}

// detach unlinks id from its current parent.
func (g *Graph) detach(id NodeID) {
	p := g.nodes[id].parent
	if !g.valid(p) {
		return
	}
	siblings := g.nodes[p].children
	for i, c := range siblings {
		if c == id {
			g.nodes[p].children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	g.nodes[id].parent = None
}

// AddChild moves child under parent keeping its local transform, so its world
// pose changes with the new parent. A child already under another parent is
// removed from it first.
func (g *Graph) AddChild(parent, child NodeID) error {
	if err := g.check(parent, child); err != nil {
		return err
	}
	if g.isAncestor(child, parent) {
		return fmt.Errorf("%w: %s under %s", ErrCycle, g.Name(child), g.Name(parent))
	}
	g.detach(child)
	g.nodes[child].parent = parent
	g.nodes[parent].children = append(g.nodes[parent].children, child)
	return nil
}

// RemoveChild detaches child from parent. The child is kept in the arena with
// no parent until it is added somewhere else.
func (g *Graph) RemoveChild(parent, child NodeID) error {
	if err := g.check(parent, child); err != nil {
		return err
	}
	if g.nodes[child].parent != parent {
		return fmt.Errorf("%w: %s not under %s", ErrNotChild, g.Name(child), g.Name(parent))
	}
	g.detach(child)
	return nil
}

// Attach moves child under parent and recomputes its local transform from its
// current world transform, so the node does not move on screen.
func (g *Graph) Attach(parent, child NodeID) error {
	if err := g.check(parent, child); err != nil {
		return err
	}
	world := g.World(child)
	if err := g.AddChild(parent, child); err != nil {
		return err
	}
	g.nodes[child].local = g.World(parent).Inverse().Mul(world)
	return nil
}
