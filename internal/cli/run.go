package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_animator"
	"github.com/SeamusWaldron/gocube_animator/internal/logging"
	"github.com/SeamusWaldron/gocube_animator/internal/notation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Animate the cube in the terminal",
	Long: `Start the interactive animation. Each move turns one layer of the cube;
the logical cube is updated before the layer starts to turn.

Keyboard shortcuts:
  space   - Pause / resume
  q/Esc   - Quit (waits for the turning layer to land)`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	panelStyle = lipgloss.NewStyle().
			PaddingLeft(4)
)

const recentMoves = 12

// Messages
type frameMsg time.Time

// Model
type runModel struct {
	anim *gocube.Animator
	fps  int

	lastFrame time.Time
	paused    bool
	stopping  bool // quit requested, waiting for the move boundary
	quitting  bool

	recent []string
	view   viewport

	// journalErr reports the first journal write failure, if any.
	journalErr func() error
	err        error
}

func newRunModel(anim *gocube.Animator, fps int) *runModel {
	m := &runModel{anim: anim, fps: fps}
	anim.OnMove(func(ev gocube.MoveEvent) {
		if ev.Kind != gocube.MoveCompleted {
			return
		}
		m.recent = append(m.recent, ev.Move.Notation())
		if len(m.recent) > recentMoves {
			m.recent = m.recent[len(m.recent)-recentMoves:]
		}
	})
	return m
}

func (m *runModel) Init() tea.Cmd {
	return m.frameCmd()
}

func (m *runModel) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.anim.AtBoundary() {
				m.quitting = true
				return m, tea.Quit
			}
			m.stopping = true
			m.paused = false

		case " ":
			if !m.stopping {
				m.paused = !m.paused
			}
		}

	case tea.WindowSizeMsg:
		return m, m.view.request(msg.Width, msg.Height)

	case resizeSettledMsg:
		m.view.settle(msg)

	case frameMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now

		if !m.paused {
			m.anim.Tick(dt)
		}
		if m.err == nil && m.journalErr != nil {
			m.err = m.journalErr()
		}
		if m.stopping && m.anim.AtBoundary() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.frameCmd()
	}

	return m, nil
}

func (m *runModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Stopped after %d moves.\n", m.anim.Count())
	}

	net := m.anim.Net(2)
	panel := m.statusPanel()

	var b strings.Builder
	b.WriteString(titleStyle.Render("GoCube Animator"))
	b.WriteString("\n\n")
	if m.view.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, net, panelStyle.Render(panel)))
	} else {
		b.WriteString(net)
		b.WriteString("\n")
		b.WriteString(panel)
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("space: pause • q: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *runModel) statusPanel() string {
	var b strings.Builder

	phase := m.anim.Phase()
	switch {
	case m.stopping:
		phase = "stopping"
	case m.paused:
		phase = "paused"
	}
	b.WriteString(phaseStyle.Render(strings.ToUpper(phase)))
	b.WriteString("\n")

	if m.anim.Count() > 0 || m.anim.Phase() == "rotating" {
		mv, rot := m.anim.Current()
		b.WriteString(fmt.Sprintf("Move #%d: %s (%s)\n",
			m.anim.Count()+1, moveStyle.Render(mv.Notation()), notation.Describe(mv)))
		b.WriteString(statusStyle.Render(rot.String()))
		b.WriteString("\n")
		b.WriteString(progressBar(m.anim.Progress(), 20))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("Completed: %d  Elapsed: %s",
		m.anim.Count(), m.anim.Elapsed().Truncate(time.Second))))
	b.WriteString("\n")
	if m.anim.Solved() && m.anim.Count() > 0 {
		b.WriteString(phaseStyle.Render("SOLVED!"))
		b.WriteString("\n")
	}

	if len(m.recent) > 0 {
		b.WriteString("\nRecent: ")
		b.WriteString(moveStyle.Render(strings.Join(m.recent, " ")))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	return b.String()
}

func progressBar(p float64, width int) string {
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; only file logging survives it.
	logger := logging.Discard()
	if cfg.Logging.Output == "file" {
		logger, err = logging.New(cfg.Logging, version)
		if err != nil {
			return err
		}
		defer logger.Close()
	}

	s, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	model := newRunModel(s.anim, cfg.Animation.FPS)
	if s.rec != nil {
		model.journalErr = s.rec.Err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, runErr := p.Run()
	closeErr := s.Close()
	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	if closeErr != nil {
		return closeErr
	}

	fmt.Printf("Stopped after %d moves.\n", s.anim.Count())
	return nil
}
