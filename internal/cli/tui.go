package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

const (
	// gridTop is the number of header lines above the grid.
	gridTop = 2

	// cellWidth is the number of terminal columns per grid cell.
	cellWidth = 2

	speedStep   = 5
	wallDensity = 0.3
)

// Cell styles, matching the exported frames.
var cellStyles = map[engine.Cell]lipgloss.Style{
	engine.CellFree:   lipgloss.NewStyle().Background(lipgloss.Color("#ffffff")),
	engine.CellWall:   lipgloss.NewStyle().Background(lipgloss.Color("#808080")),
	engine.CellClosed: lipgloss.NewStyle().Background(lipgloss.Color("#0000ff")),
	engine.CellOpen:   lipgloss.NewStyle().Background(lipgloss.Color("#00ffff")),
	engine.CellPath:   lipgloss.NewStyle().Background(lipgloss.Color("#ffff00")),
	engine.CellTarget: lipgloss.NewStyle().Background(lipgloss.Color("#00ff00")),
	engine.CellSource: lipgloss.NewStyle().Background(lipgloss.Color("#ff0000")),
}

var (
	styleCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Bold(true)
	styleHelp   = lipgloss.NewStyle().Foreground(colorDim)
)

// stepMsg reports a step taken by the driver.
type stepMsg struct {
	done bool
	err  error
}

// dragMode is what a held mouse button does to the cells it passes.
type dragMode int

const (
	dragNone dragMode = iota
	dragSource
	dragTarget
	dragAddWall
	dragRemoveWall
)

// gridModel is the bubbletea model of the interactive visualizer. The
// driver steps the engine on its own goroutine; the model edits the engine
// between steps and redraws from snapshots.
type gridModel struct {
	driver *engine.Driver
	steps  <-chan stepMsg

	snap   engine.Snapshot
	cursor grid.Coord
	drag   dragMode
	seed   uint64
	status string
	err    error
}

// newGridModel wires a driver to a model. The returned callback must be
// passed to the driver as its step hook; ctx bounds pending sends.
func newGridModel(ctx context.Context, e *engine.Engine, seed uint64) (gridModel, engine.DriverOption) {
	steps := make(chan stepMsg)
	onStep := func(done bool, err error) {
		select {
		case steps <- stepMsg{done: done, err: err}:
		case <-ctx.Done():
		}
	}
	m := gridModel{
		steps:  steps,
		cursor: e.Grid().Source(),
		seed:   seed,
		status: "Draw walls, then press space to start",
	}
	return m, engine.WithOnStep(onStep)
}

func (m gridModel) withDriver(d *engine.Driver) gridModel {
	m.driver = d
	m.snap = d.Engine().Snapshot()
	return m
}

func (m gridModel) waitForStep() tea.Msg {
	return <-m.steps
}

func (m gridModel) Init() tea.Cmd {
	return m.waitForStep
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.driver.Pause()
			return m, tea.Quit
		}
		m.err = nil
		m.handleKey(msg.String())
	case tea.MouseMsg:
		m.handleMouse(msg)
	case stepMsg:
		if msg.err != nil {
			m.err = msg.err
		} else if msg.done {
			m.status = m.result()
		}
		cmd = m.waitForStep
	}
	m.snap = m.driver.Engine().Snapshot()
	return m, cmd
}

func (m *gridModel) handleKey(key string) {
	e := m.driver.Engine()
	switch key {
	case "up", "k":
		m.moveCursor(0, -1)
	case "down", "j":
		m.moveCursor(0, 1)
	case "left", "h":
		m.moveCursor(-1, 0)
	case "right", "l":
		m.moveCursor(1, 0)
	case "enter", "x":
		_, m.err = e.ToggleWall(m.cursor)
	case "s":
		m.err = m.moveEndpoint(e.SetSource)
	case "t":
		m.err = m.moveEndpoint(e.SetTarget)
	case "c":
		m.err = e.ClearWalls()
	case "g":
		m.seed++
		m.err = e.GenerateWalls(wallDensity, m.seed)
	case "m":
		m.seed++
		m.err = e.GenerateMaze(m.seed)
	case "tab":
		m.driver.Pause()
		entry := e.Cycle()
		m.status = "Algorithm: " + entry.Name
	case " ":
		if m.err = m.driver.Toggle(); m.err == nil {
			m.status = m.playStatus()
		}
	case "n":
		var done bool
		if done, m.err = m.driver.StepOnce(); done && m.err == nil {
			m.status = m.result()
		}
	case "r":
		m.driver.Reset()
		m.status = "Reset"
	case "+", "=":
		m.err = m.driver.SetSpeed(min(e.Speed()+speedStep, errors.MaxSpeed))
	case "-", "_":
		m.err = m.driver.SetSpeed(max(e.Speed()-speedStep, errors.MinSpeed))
	}
}

func (m *gridModel) moveCursor(dx, dy int) {
	next := m.cursor.Add(grid.C(dx, dy))
	if next.X >= 0 && next.Y >= 0 && next.X < m.snap.Width && next.Y < m.snap.Height {
		m.cursor = next
	}
}

// moveEndpoint places the source or target under the cursor, clearing a
// wall there first.
func (m *gridModel) moveEndpoint(set func(grid.Coord) error) error {
	e := m.driver.Engine()
	if _, err := e.RemoveWall(m.cursor); err != nil {
		return err
	}
	return set(m.cursor)
}

func (m *gridModel) handleMouse(msg tea.MouseMsg) {
	at := grid.C(msg.X/cellWidth, msg.Y-gridTop)
	inside := at.X >= 0 && at.Y >= 0 && at.X < m.snap.Width && at.Y < m.snap.Height
	e := m.driver.Engine()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return
		}
		m.cursor = at
		m.err = nil
		switch at {
		case m.snap.Source:
			m.drag = dragSource
		case m.snap.Target:
			m.drag = dragTarget
		default:
			added, err := e.ToggleWall(at)
			if err != nil {
				m.err = err
				return
			}
			m.drag = dragRemoveWall
			if added {
				m.drag = dragAddWall
			}
		}
	case tea.MouseActionMotion:
		if m.drag == dragNone || !inside {
			return
		}
		m.cursor = at
		// Endpoints may not land on walls and walls may not cover
		// endpoints; those moves are skipped silently while dragging.
		switch m.drag {
		case dragSource:
			if !m.isWall(at) {
				_ = e.SetSource(at)
			}
		case dragTarget:
			if !m.isWall(at) {
				_ = e.SetTarget(at)
			}
		case dragAddWall:
			_ = e.AddWall(at)
		case dragRemoveWall:
			_, _ = e.RemoveWall(at)
		}
	case tea.MouseActionRelease:
		m.drag = dragNone
	}
}

func (m gridModel) isWall(c grid.Coord) bool {
	for _, w := range m.snap.Walls {
		if w == c {
			return true
		}
	}
	return false
}

func (m gridModel) playStatus() string {
	switch {
	case m.snap.Phase == engine.PhaseDone:
		return m.result()
	case m.driver.Playing():
		return "Running"
	default:
		return "Paused"
	}
}

func (m gridModel) result() string {
	s := m.driver.Engine().Snapshot()
	if !s.Found {
		return fmt.Sprintf("No path (%d steps)", s.Iterations)
	}
	return fmt.Sprintf("Path found: cost %s in %d steps", formatCost(s.Cost), s.Iterations)
}

func (m gridModel) View() string {
	s := m.snap
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Pathfinder"))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(s.Algorithm))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · %d iterations · speed %d", s.Phase, s.Iterations, s.Speed)))
	b.WriteString("\n\n")

	for y, row := range s.Cells() {
		for x, c := range row {
			style, glyph := cellStyles[c], strings.Repeat(" ", cellWidth)
			if grid.C(x, y) == m.cursor {
				style, glyph = style.Inherit(styleCursor), "[]"
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(StyleError.Render(iconError + " " + errors.UserMessage(m.err)))
	} else {
		b.WriteString(StyleDim.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(styleHelp.Render("arrows move · x wall · s/t source/target · c clear · g walls · m maze · tab algorithm · space run · n step · r reset · +/- speed · q quit"))
	return b.String()
}
