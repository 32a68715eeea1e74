package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/abyssus/internal/encounter"
	"github.com/tatianab/abyssus/internal/engine"
)

type model struct {
	ctx       context.Context
	game      *engine.Game
	out       *bytes.Buffer // the game writes here; drained into gameLog
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
	ready     bool
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true)
	loseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D75F5F")).Bold(true)
)

// NewModel wraps a game whose output goes to out. It plays the opening
// immediately so the first frame already shows the station.
func NewModel(ctx context.Context, game *engine.Game, out *bytes.Buffer) model {
	ti := textinput.New()
	ti.Placeholder = "go north, help, quit..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	m := model{
		ctx:       ctx,
		game:      game,
		out:       out,
		textInput: ti,
	}
	game.Start(ctx)
	if game.Status() == engine.Playing {
		game.Look()
	}
	m.drain()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.game.Status() != engine.Playing {
				return m, tea.Quit
			}
			action := strings.TrimSpace(m.textInput.Value())
			if action == "" {
				return m, nil
			}
			m.textInput.Reset()

			m.gameLog += "\n" + userStyle.Width(m.logWidth()).Render("> "+action) + "\n"
			if m.game.Handle(m.ctx, action) == engine.Playing {
				m.game.Look()
			} else {
				m.textInput.Blur()
				m.textInput.Placeholder = ""
			}
			m.drain()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.logWidth(), msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}

	if m.game.Status() == engine.Playing {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// drain moves whatever the game printed into the scrollback.
func (m *model) drain() {
	if m.out.Len() == 0 {
		return
	}
	text := m.out.String()
	m.out.Reset()
	if m.width > 0 {
		text = gameStyle.Width(m.logWidth()).Render(text)
	}
	m.gameLog += text
	if m.ready {
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) View() string {
	if !m.ready {
		return "\n  Powering up the station...\n"
	}

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	var help string
	switch m.game.Status() {
	case engine.Playing:
		help = helpStyle.Render("Commands: go <direction>, inventory, help, quit. Esc leaves at any time.")
	default:
		help = helpStyle.Render("The mission is over. Press Enter to leave.")
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		mainView,
		"\n"+m.textInput.View(),
		"\n"+help,
	) + "\n"
}

func (m model) renderState() string {
	g := m.game

	location := titleStyle.Render("LOCATION") + "\n" + g.Player().CurrentRoom() + "\n\n"

	exits := titleStyle.Render("EXITS") + "\n"
	if dirs := g.Exits(); len(dirs) > 0 {
		exits += strings.Join(dirs, ", ") + "\n\n"
	} else {
		exits += "(none)\n\n"
	}

	invTitle := titleStyle.Render("INVENTORY") + "\n"
	inventory := ""
	names := g.InventoryNames()
	if len(names) == 0 {
		inventory = "(empty)\n"
	} else {
		for _, name := range names {
			inventory += "- " + name + "\n"
		}
	}

	objective := "\n" + titleStyle.Render("OBJECTIVE") + "\n" +
		fmt.Sprintf("%d / %d items\n", len(names), g.Condition().Required())

	switch g.Outcome() {
	case encounter.Success:
		objective += "\n" + winStyle.Render("MARROW DISABLED")
	case encounter.Failure:
		objective += "\n" + loseStyle.Render("STATION LOST")
	}

	content := location + exits + invTitle + inventory + objective

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

// Run drives the game full-screen until the player leaves.
func Run(ctx context.Context, game *engine.Game, out *bytes.Buffer) error {
	p := tea.NewProgram(NewModel(ctx, game, out), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
