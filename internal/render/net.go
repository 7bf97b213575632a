package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_animator/internal/cube"
)

// stickerColors are the terminal colors of each sticker.
var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("255"),
	cube.Yellow: lipgloss.Color("226"),
	cube.Green:  lipgloss.Color("34"),
	cube.Blue:   lipgloss.Color("27"),
	cube.Red:    lipgloss.Color("196"),
	cube.Orange: lipgloss.Color("208"),
}

// Net draws facelets as a colored cross: U on top, L F R B across, D below.
// cell is the width of one sticker in terminal columns.
func Net(fl cube.Facelets, cell int) string {
	if cell < 1 {
		cell = 1
	}
	blank := strings.Repeat(" ", cell*3+1)
	styles := make(map[cube.Color]lipgloss.Style, len(stickerColors))
	for c, col := range stickerColors {
		styles[c] = lipgloss.NewStyle().Background(col)
	}
	sticker := func(c cube.Color) string {
		return styles[c].Render(strings.Repeat(" ", cell))
	}
	row := func(face cube.Face, r int) string {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(fl[face][r*3+col]))
		}
		b.WriteString(" ")
		return b.String()
	}

	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(blank + row(cube.U, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			b.WriteString(row(face, r))
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(blank + row(cube.D, r) + "\n")
	}
	return b.String()
}
