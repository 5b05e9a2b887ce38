// Package tui is the interactive terminal game built on bubbletea.
//
// The model walks through three screens: settings (disk count), playing
// (board plus move prompt) and solved (summary plus replay prompt). All state
// lives in the model and is only touched from the bubbletea event loop.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"svw.info/hanoi/internal/config"
	"svw.info/hanoi/internal/game"
	"svw.info/hanoi/internal/render"
	"svw.info/hanoi/internal/usecase"
)

type screen int

const (
	screenSettings screen = iota
	screenPlaying
	screenSolved
)

// Model is the bubbletea model for a play session.
type Model struct {
	ctx    context.Context
	svc    *usecase.Service
	limits config.GameConfig
	log    *slog.Logger
	now    func() time.Time

	input  textinput.Model
	screen screen

	game    *game.Game
	started time.Time
	took    time.Duration
	played  int

	notice   string
	isError  bool
	quitting bool
}

// New builds the model. A disks value inside the configured range skips the
// settings screen for the first game.
func New(ctx context.Context, svc *usecase.Service, limits config.GameConfig, logger *slog.Logger, disks int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 8
	ti.Width = 20
	ti.Focus()

	m := Model{
		ctx:    ctx,
		svc:    svc,
		limits: limits,
		log:    logger,
		now:    time.Now,
		input:  ti,
	}
	m.toSettings()
	if limits.CheckDisks(disks) == nil {
		m.startGame(disks)
	}
	return m
}

// Played is the number of games solved in this session.
func (m Model) Played() int { return m.played }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			return m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenSettings:
		n, err := strconv.Atoi(line)
		if err != nil || m.limits.CheckDisks(n) != nil {
			m.setError(fmt.Sprintf("Please enter a number of disks (%d-%d).", m.limits.MinDisks, m.limits.MaxDisks))
			return m, nil
		}
		m.startGame(n)

	case screenPlaying:
		if line == "?" {
			m.showHint()
			return m, nil
		}
		mv, err := game.ParseMove(line)
		if err == nil {
			err = m.game.Move(mv.From, mv.To)
		}
		if err != nil {
			m.log.Debug("move rejected", "session", m.game.ID(), "input", line, "err", err)
			m.setError(render.MoveErrorMessage(err))
			return m, nil
		}
		m.notice = ""
		m.log.Debug("move", "session", m.game.ID(), "from", mv.From, "to", mv.To, "moves", m.game.MoveCount())
		if m.game.IsSolved() {
			m.finish()
		}

	case screenSolved:
		if strings.EqualFold(line, "y") {
			m.toSettings()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) toSettings() {
	m.screen = screenSettings
	m.game = nil
	m.notice = ""
	m.input.Placeholder = fmt.Sprintf("%d-%d", m.limits.MinDisks, m.limits.MaxDisks)
}

func (m *Model) startGame(n int) {
	g, err := m.svc.NewGame(n)
	if err != nil {
		m.setError(err.Error())
		return
	}
	m.game = g
	m.screen = screenPlaying
	m.notice = ""
	m.started = m.now()
	m.input.Placeholder = "13"
	m.log.Info("game started", "session", g.ID(), "disks", n)
}

func (m *Model) finish() {
	m.took = m.now().Sub(m.started)
	m.played++
	m.screen = screenSolved
	m.input.Placeholder = "y/n"
	m.log.Info("game solved",
		"session", m.game.ID(),
		"moves", m.game.MoveCount(),
		"minimum", m.game.MinimumMoves(),
		"elapsed", m.took.Round(time.Millisecond),
	)
}

func (m *Model) showHint() {
	h, found, err := m.svc.Hint(m.ctx, m.game)
	switch {
	case err != nil:
		m.log.Error("hint failed", "session", m.game.ID(), "err", err)
		m.setError(err.Error())
	case found:
		m.notice = h.Message
		m.isError = false
	}
}

func (m *Model) setError(msg string) {
	m.notice = msg
	m.isError = true
}

func (m Model) View() string {
	if m.quitting {
		return render.Styles.Success.Render("[ THANKS FOR PLAYING! ]") + "\n"
	}

	var b strings.Builder
	b.WriteString(render.Styles.Title.Render("TOWER OF HANOI"))
	b.WriteString("\n")
	b.WriteString(render.Rule())
	b.WriteString("\n")

	switch m.screen {
	case screenSettings:
		b.WriteString(render.Rules())
		b.WriteString("\n")
		b.WriteString(render.Rule())
		b.WriteString("\n")
		b.WriteString(render.Section("SETTINGS"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Please enter a number of disks (%d-%d):\n", m.limits.MinDisks, m.limits.MaxDisks))

	case screenPlaying:
		b.WriteString(render.Styles.Box.Render(render.Board(m.game.Board())))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Moves: %s | Enter a move (e.g. 13, ? for a hint):\n", render.Count(m.game.MoveCount())))

	case screenSolved:
		b.WriteString(render.Styles.Box.Render(render.Board(m.game.Board())))
		b.WriteString("\n")
		b.WriteString(render.Summary(m.game.Disks(), m.game.MoveCount(), m.game.MinimumMoves(), m.took))
		b.WriteString("\nPlay again? (y/n)\n")
	}

	if m.notice != "" {
		if m.isError {
			b.WriteString(render.Styles.Error.Render("[ ERROR ] " + m.notice))
		} else {
			b.WriteString(render.Styles.Muted.Render("[ HINT ] " + m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(render.Styles.Muted.Render("esc/ctrl+c to quit"))
	return b.String()
}
