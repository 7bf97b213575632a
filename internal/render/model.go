// Package render builds the cubelet nodes of the scene graph and projects
// them back onto a facelet net for display.
package render

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/gocube_animator/internal/cube"
	"github.com/SeamusWaldron/gocube_animator/internal/scene"
)

// Cubelet is the renderable of one piece.
type Cubelet struct {
	Node scene.NodeID
	Home cube.Coord
}

// Model is the renderable cube: a container node holding 26 cubelets laid
// out on a grid with the given spacing.
type Model struct {
	Graph     *scene.Graph
	Container scene.NodeID
	Spacing   float64
	Cubelets  []Cubelet
}

// NewModel adds a solved cube under the graph root.
func NewModel(g *scene.Graph, spacing float64) (*Model, error) {
	if spacing <= 0 {
		return nil, fmt.Errorf("spacing must be positive, got %v", spacing)
	}
	container, err := g.Add("cube", g.Root(), scene.Identity())
	if err != nil {
		return nil, fmt.Errorf("failed to add cube container: %w", err)
	}

	m := &Model{Graph: g, Container: container, Spacing: spacing}
	for _, p := range cube.New().Pieces() {
		pos := mgl64.Vec3{
			float64(p.Home[0]) * spacing,
			float64(p.Home[1]) * spacing,
			float64(p.Home[2]) * spacing,
		}
		id, err := g.Add(fmt.Sprintf("cubelet%+d%+d%+d", p.Home[0], p.Home[1], p.Home[2]), container, scene.Translation(pos))
		if err != nil {
			return nil, fmt.Errorf("failed to add cubelet %v: %w", p.Home, err)
		}
		m.Cubelets = append(m.Cubelets, Cubelet{Node: id, Home: p.Home})
	}
	return m, nil
}

// Nodes returns the cubelet node handles.
func (m *Model) Nodes() []scene.NodeID {
	out := make([]scene.NodeID, len(m.Cubelets))
	for i, c := range m.Cubelets {
		out[i] = c.Node
	}
	return out
}

// GridPosition returns the cubelet's world position in grid units, rounded.
func (m *Model) GridPosition(c Cubelet) cube.Coord {
	p := m.Graph.World(c.Node).Position
	var out cube.Coord
	for i := 0; i < 3; i++ {
		out[i] = int(math.Round(p[i] / m.Spacing))
	}
	return out
}

// GridOrientation returns the cubelet's world rotation rounded to the
// nearest integer rotation matrix.
func (m *Model) GridOrientation(c Cubelet) cube.Orientation {
	q := m.Graph.World(c.Node).Rotation
	var o cube.Orientation
	basis := [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for j, e := range basis {
		col := q.Rotate(e)
		for i := 0; i < 3; i++ {
			o[i][j] = int(math.Round(col[i]))
		}
	}
	return o
}

// Facelets projects every sticker onto the face its world normal points at.
// Mid-rotation cubelets are snapped to the nearest grid cell.
func (m *Model) Facelets() cube.Facelets {
	var fl cube.Facelets
	for _, c := range m.Cubelets {
		pos := m.GridPosition(c)
		o := m.GridOrientation(c)
		for _, st := range cube.Stickers(c.Home) {
			face, ok := cube.FaceFromNormal(o.Apply(st.Normal))
			if !ok {
				continue
			}
			idx := cube.FaceletIndex(face, pos)
			if idx < 0 || idx > 8 {
				continue
			}
			fl[face][idx] = st.Color
		}
	}
	return fl
}
