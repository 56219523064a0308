package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
	"github.com/SeamusWaldron/nxncube/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive mode for the active cube",
	Long: `Start an interactive TUI that applies moves to the active cube as you type
them. Every accepted line is saved to the session.

Keyboard shortcuts:
  Enter   - Apply the typed moves
  Ctrl+Z  - Undo the last move
  Ctrl+R  - Reset to solved (clears the move log)
  Esc     - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// historyTail is how many past moves the TUI shows.
const historyTail = 16

// sessionSink persists what the play model does to its cube.
type sessionSink interface {
	Commit(cube *nxncube.Cube, moves []nxncube.Move) error
	PopMove(cube *nxncube.Cube) error
	Replace(cube *nxncube.Cube) error
}

// repoSink writes to one stored session.
type repoSink struct {
	repo *storage.SessionRepository
	id   string
}

func (r repoSink) Commit(cube *nxncube.Cube, moves []nxncube.Move) error {
	return r.repo.Commit(r.id, cube, moves)
}

func (r repoSink) PopMove(cube *nxncube.Cube) error {
	return r.repo.PopMove(r.id, cube)
}

func (r repoSink) Replace(cube *nxncube.Cube) error {
	return r.repo.Replace(r.id, cube, "")
}

// Messages
type solvedMsg struct{ moves int }

// Model
type playModel struct {
	tracker *nxncube.Tracker
	sink    sessionSink
	label   string

	input    string
	last     []nxncube.Move
	solvedIn int // move count of the latest transition into solved, 0 if none
	err      error
	quitting bool
}

func newPlayModel(tr *nxncube.Tracker, sink sessionSink, label string) *playModel {
	return &playModel{tracker: tr, sink: sink, label: label}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case solvedMsg:
		m.solvedIn = msg.moves
	}
	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m, m.submit()
	case tea.KeyCtrlZ:
		return m, m.undo()
	case tea.KeyCtrlR:
		m.reset()
		return m, nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// submit parses and applies the input line. Nothing is applied unless
// every move in the line is valid for the cube.
func (m *playModel) submit() tea.Cmd {
	line := strings.TrimSpace(m.input)
	m.input = ""
	if line == "" {
		return nil
	}

	cube := m.tracker.Cube()
	moves, err := nxncube.ParseMoves(line, cube.Size())
	if err != nil {
		m.err = err
		return nil
	}
	if err := cube.Clone().Apply(moves...); err != nil {
		m.err = err
		return nil
	}

	wasSolved := m.tracker.IsSolved()
	if err := m.tracker.ApplyMoves(moves); err != nil {
		m.err = err
		return nil
	}
	m.last = moves
	m.err = nil

	if m.sink != nil {
		if err := m.sink.Commit(cube, moves); err != nil {
			m.err = fmt.Errorf("failed to save moves: %w", err)
		}
	}

	if !wasSolved && m.tracker.IsSolved() {
		n := m.tracker.MoveCount()
		return func() tea.Msg { return solvedMsg{moves: n} }
	}
	return nil
}

func (m *playModel) undo() tea.Cmd {
	wasSolved := m.tracker.IsSolved()
	mv, err := m.tracker.Undo()
	if err != nil {
		m.err = err
		return nil
	}
	m.last = []nxncube.Move{mv.Inverse()}
	m.err = nil

	if m.sink != nil {
		if err := m.sink.PopMove(m.tracker.Cube()); err != nil {
			m.err = fmt.Errorf("failed to save undo: %w", err)
		}
	}

	if !wasSolved && m.tracker.IsSolved() {
		n := m.tracker.MoveCount()
		return func() tea.Msg { return solvedMsg{moves: n} }
	}
	return nil
}

func (m *playModel) reset() {
	m.tracker.Reset()
	m.last = nil
	m.solvedIn = 0
	m.err = nil
	if m.sink != nil {
		if err := m.sink.Replace(m.tracker.Cube()); err != nil {
			m.err = fmt.Errorf("failed to save reset: %w", err)
		}
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	cube := m.tracker.Cube()

	b.WriteString(titleStyle.Render(fmt.Sprintf("nxncube %d×%d×%d", cube.Size(), cube.Size(), cube.Size())))
	if m.label != "" {
		b.WriteString("  " + labelStyle.Render(m.label))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Moves: %d   %s", m.tracker.MoveCount(), solvedLabel(m.tracker.IsSolved()))
	if m.solvedIn > 0 && m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render(fmt.Sprintf("  in %d moves", m.solvedIn)))
	}
	b.WriteString("\n")

	if len(m.last) > 0 {
		b.WriteString("Last:  " + moveStyle.Render(nxncube.FormatMoves(m.last)) + "\n")
	}

	history := m.tracker.Moves()
	if len(history) > historyTail {
		history = history[len(history)-historyTail:]
	}
	if len(history) > 0 {
		b.WriteString(labelStyle.Render("History: ") + nxncube.FormatMoves(history) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(renderCube(cube))
	b.WriteString("\n> " + m.input + "_\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter: apply • ctrl+z: undo • ctrl+r: reset • esc: quit"))
	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	sess, tr, err := s.activeTracker()
	if err != nil {
		return err
	}

	model := newPlayModel(tr, repoSink{repo: s.sessions, id: sess.SessionID}, shortID(sess.SessionID))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}
