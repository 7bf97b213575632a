// Package cube provides the logical 3x3x3 cube model: which piece sits at
// which grid coordinate and how it is turned.
package cube

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face of the facelet net.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved.
func SolvedColor(f Face) Color {
	return Color(f)
}

// FaceFromNormal returns the face whose outward normal is n.
// ok is false if n is not a unit axis vector.
func FaceFromNormal(n Coord) (Face, bool) {
	switch n {
	case Coord{0, 1, 0}:
		return U, true
	case Coord{0, -1, 0}:
		return D, true
	case Coord{0, 0, 1}:
		return F, true
	case Coord{0, 0, -1}:
		return B, true
	case Coord{1, 0, 0}:
		return R, true
	case Coord{-1, 0, 0}:
		return L, true
	}
	return 0, false
}

// FaceletIndex returns the net index of the sticker at grid coordinate c on
// face f. Each face is indexed as seen from outside:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is seen with F at the bottom, D with F at the top, and the side faces
// with U at the top.
func FaceletIndex(f Face, c Coord) int {
	x, y, z := c[0], c[1], c[2]
	switch f {
	case U:
		return (z+1)*3 + (x + 1)
	case D:
		return (1-z)*3 + (x + 1)
	case F:
		return (1-y)*3 + (x + 1)
	case B:
		return (1-y)*3 + (1 - x)
	case R:
		return (1-y)*3 + (1 - z)
	case L:
		return (1-y)*3 + (z + 1)
	}
	return -1
}

// Facelets is the 6x9 sticker net of a cube.
// Facelets[face][position] = color
type Facelets [6][9]Color

// SolvedFacelets returns the net of a solved cube.
func SolvedFacelets() Facelets {
	var fl Facelets
	for face := Face(0); face < 6; face++ {
		for i := 0; i < 9; i++ {
			fl[face][i] = SolvedColor(face)
		}
	}
	return fl
}

// IsSolved returns true if every face shows a single color.
func (fl Facelets) IsSolved() bool {
	for face := 0; face < 6; face++ {
		for i := 1; i < 9; i++ {
			if fl[face][i] != fl[face][0] {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the net.
func (fl Facelets) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(fl[U][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				b.WriteString(fl[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(fl[D][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
