package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// resizeDebounce is how long the terminal size must hold still before the
// layout follows it.
const resizeDebounce = 150 * time.Millisecond

type resizeSettledMsg struct{ gen int }

// viewport tracks the terminal size. Bursts of resize events collapse into
// one layout change; only the last size of a burst is applied.
type viewport struct {
	width, height int

	pendingWidth, pendingHeight int
	gen                         int
}

// request records a new size and returns the command that confirms it once
// no newer size has arrived. The first size is applied at once.
func (v *viewport) request(width, height int) tea.Cmd {
	v.gen++
	v.pendingWidth, v.pendingHeight = width, height
	if v.width == 0 && v.height == 0 {
		v.width, v.height = width, height
		return nil
	}
	gen := v.gen
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeSettledMsg{gen: gen}
	})
}

// settle applies the pending size if msg belongs to the latest request.
func (v *viewport) settle(msg resizeSettledMsg) bool {
	if msg.gen != v.gen {
		return false
	}
	v.width, v.height = v.pendingWidth, v.pendingHeight
	return true
}

// wide reports whether the net and the status panel fit side by side.
func (v *viewport) wide() bool {
	return v.width >= 80
}
