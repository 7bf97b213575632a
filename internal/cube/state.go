package cube

import (
	"fmt"
	"sort"
)

// Coord is a grid coordinate with components in {-1, 0, 1}.
// Index 0 is X (right), 1 is Y (up), 2 is Z (front).
type Coord [3]int

// Orientation is a proper rotation matrix with integer entries. It maps a
// direction in the piece's home frame to its current direction.
type Orientation [3][3]int

// Identity is the orientation of an unturned piece.
var Identity = Orientation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Apply returns o * v.
func (o Orientation) Apply(v Coord) Coord {
	var out Coord
	for i := 0; i < 3; i++ {
		out[i] = o[i][0]*v[0] + o[i][1]*v[1] + o[i][2]*v[2]
	}
	return out
}

// Mul returns o * p.
func (o Orientation) Mul(p Orientation) Orientation {
	var out Orientation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = o[i][0]*p[0][j] + o[i][1]*p[1][j] + o[i][2]*p[2][j]
		}
	}
	return out
}

// Piece is one of the 26 visible cubelets.
type Piece struct {
	Home        Coord       // Where the piece sits when solved; its identity
	Position    Coord       // Where the piece sits now
	Orientation Orientation // How the piece is turned relative to home
}

// Kind returns "corner", "edge" or "center" by counting non-zero components
// of the home coordinate.
func (p Piece) Kind() string {
	n := 0
	for _, v := range p.Home {
		if v != 0 {
			n++
		}
	}
	switch n {
	case 3:
		return "corner"
	case 2:
		return "edge"
	default:
		return "center"
	}
}

// State owns the mapping from grid coordinate to piece.
// The core (0,0,0) never moves and is not tracked.
type State struct {
	pieces []Piece
	slots  map[Coord]int // current coordinate -> index into pieces
}

// New creates a solved cube state.
func New() *State {
	s := &State{
		pieces: make([]Piece, 0, 26),
		slots:  make(map[Coord]int, 26),
	}
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				c := Coord{x, y, z}
				if c == (Coord{}) {
					continue
				}
				s.slots[c] = len(s.pieces)
				s.pieces = append(s.pieces, Piece{Home: c, Position: c, Orientation: Identity})
			}
		}
	}
	return s
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	clone := &State{
		pieces: make([]Piece, len(s.pieces)),
		slots:  make(map[Coord]int, len(s.slots)),
	}
	copy(clone.pieces, s.pieces)
	for c, i := range s.slots {
		clone.slots[c] = i
	}
	return clone
}

// Pieces returns a copy of all pieces, ordered by home coordinate.
func (s *State) Pieces() []Piece {
	out := make([]Piece, len(s.pieces))
	copy(out, s.pieces)
	return out
}

// At returns the piece currently at c.
func (s *State) At(c Coord) (Piece, bool) {
	i, ok := s.slots[c]
	if !ok {
		return Piece{}, false
	}
	return s.pieces[i], true
}

// Locate returns the piece whose home coordinate is home.
func (s *State) Locate(home Coord) (Piece, bool) {
	for _, p := range s.pieces {
		if p.Home == home {
			return p, true
		}
	}
	return Piece{}, false
}

// Validate checks that every occupied coordinate holds exactly one piece and
// every piece is reachable through its coordinate.
func (s *State) Validate() error {
	if len(s.slots) != len(s.pieces) {
		return fmt.Errorf("slot count %d does not match piece count %d", len(s.slots), len(s.pieces))
	}
	seen := make(map[Coord]Coord, len(s.pieces))
	for i, p := range s.pieces {
		for _, v := range p.Position {
			if v < -1 || v > 1 {
				return fmt.Errorf("piece %v at out-of-grid coordinate %v", p.Home, p.Position)
			}
		}
		if p.Position == (Coord{}) {
			return fmt.Errorf("piece %v moved into the core", p.Home)
		}
		if other, dup := seen[p.Position]; dup {
			return fmt.Errorf("pieces %v and %v both at %v", other, p.Home, p.Position)
		}
		seen[p.Position] = p.Home
		if j, ok := s.slots[p.Position]; !ok || j != i {
			return fmt.Errorf("slot %v does not point at piece %v", p.Position, p.Home)
		}
	}
	return nil
}

// Facelets derives the sticker net from piece positions and orientations.
func (s *State) Facelets() Facelets {
	var fl Facelets
	for _, p := range s.pieces {
		for _, st := range Stickers(p.Home) {
			n := p.Orientation.Apply(st.Normal)
			face, ok := FaceFromNormal(n)
			if !ok {
				continue
			}
			fl[face][FaceletIndex(face, p.Position)] = st.Color
		}
	}
	return fl
}

// IsSolved returns true if every face shows a single color.
func (s *State) IsSolved() bool {
	return s.Facelets().IsSolved()
}

// Moved returns the home coordinates of pieces not at home, sorted.
func (s *State) Moved() []Coord {
	var out []Coord
	for _, p := range s.pieces {
		if p.Position != p.Home {
			out = append(out, p.Home)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

// String returns a text representation of the cube.
func (s *State) String() string {
	return s.Facelets().String()
}

// Sticker is one colored face of a piece, in the piece's home frame.
type Sticker struct {
	Normal Coord
	Color  Color
}

// Stickers returns the stickers carried by the piece whose home is home.
func Stickers(home Coord) []Sticker {
	var out []Sticker
	for axis := 0; axis < 3; axis++ {
		if home[axis] == 0 {
			continue
		}
		var n Coord
		n[axis] = home[axis]
		face, _ := FaceFromNormal(n)
		out = append(out, Sticker{Normal: n, Color: SolvedColor(face)})
	}
	return out
}
