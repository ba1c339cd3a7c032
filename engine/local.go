package engine

import (
	"io"
	"strings"

	"deathroll/game"
	"deathroll/meta"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// --- Styles ---
var (
	heading = lipgloss.NewStyle().Bold(true)
	warning = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type Option func(l *Local)

// WithEngine plays on an existing game engine instead of a fresh one.
func WithEngine(e *game.Engine) Option {
	return func(l *Local) {
		if e != nil {
			l.game = e
		}
	}
}

// Local is the terminal shell over a single game engine. It renders one
// screen per phase and forwards key presses to the engine.
type Local struct {
	game  *game.Engine
	input textinput.Model // Pending starting value
	in    io.Reader
	out   io.Writer
}

func NewLocal(in io.Reader, out io.Writer, options ...Option) *Local {
	ti := textinput.New()
	ti.Placeholder = "100"
	ti.CharLimit = 20
	ti.Focus()

	l := &Local{
		input: ti,
		in:    in,
		out:   out,
	}
	for _, option := range options {
		option(l)
	}
	if l.game == nil {
		l.game = game.NewEngine()
	}
	return l
}

// Run blocks until the player quits.
func (l *Local) Run() error {
	p := tea.NewProgram(l, tea.WithInput(l.in), tea.WithOutput(l.out))
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run terminal program")
	}
	return nil
}

func (l *Local) Init() tea.Cmd {
	log.Debug().Stringer("phase", l.game.Phase()).Msg("session started")
	return textinput.Blink
}

func (l *Local) quit() (tea.Model, tea.Cmd) {
	log.Debug().Stringer("phase", l.game.Phase()).Msg("player quit")
	return l, tea.Quit
}

func (l *Local) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return l.updateInput(msg)
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return l.quit()
	}

	switch l.game.Phase() {
	case game.StartMenu:
		return l.updateStartMenu(key)
	case game.InProgress:
		return l.updateInProgress(key)
	case game.GameOver:
		return l.updateGameOver(key)
	}
	return l, nil
}

func (l *Local) updateStartMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type != tea.KeyEnter {
		return l.updateInput(key)
	}
	err := l.game.Start(l.input.Value())
	var validationErr *game.ValidationError
	if errors.As(err, &validationErr) {
		// Still shown by View, nothing to do
		return l, nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("start rejected")
	}
	return l, nil
}

func (l *Local) updateInProgress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter", "r":
		l.game.Roll()
	case "q":
		return l.quit()
	}
	return l, nil
}

func (l *Local) updateGameOver(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter", "r":
		l.game.Restart()
		l.input.Reset()
	case "q":
		return l.quit()
	}
	return l, nil
}

func (l *Local) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if l.game.Phase() != game.StartMenu {
		return l, nil
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *Local) View() string {
	var b strings.Builder

	switch l.game.Phase() {
	case game.StartMenu:
		writeLines(&b, heading.Render(meta.Name), meta.StartPrompt, l.input.View())
		// Validation is live: re-checked on every render
		if _, err := game.ParseStart(l.input.Value()); err != nil {
			writeLines(&b, warning.Render(err.Error()))
		}
		writeLines(&b, "", dim.Render(meta.StartHelp))
	case game.InProgress:
		writeLines(&b, heading.Render(meta.Name), meta.RollPrompt, "", meta.HistoryLabel)
		writeLines(&b, l.game.History()...)
		writeLines(&b, "", dim.Render(meta.PlayHelp))
	case game.GameOver:
		writeLines(&b, heading.Render(meta.GameOverHeading), meta.RestartPrompt, "", meta.HistoryLabel)
		writeLines(&b, l.game.History()...)
		writeLines(&b, "", dim.Render(meta.PlayHelp))
	}

	return b.String()
}

func writeLines(b *strings.Builder, lines ...string) {
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
}
