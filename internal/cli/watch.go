package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/flowtik/flowtik/internal/cli/formatter"
	"github.com/flowtik/flowtik/internal/contract"
)

// watchTickMsg triggers a re-read of the active timer.
type watchTickMsg time.Time

// watchViewMsg carries the refreshed view (nil when no timer is running).
type watchViewMsg struct {
	view *contract.ActiveTimerView
	err  error
}

type watchKeyMap struct {
	Quit key.Binding
}

var watchKeys = watchKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// watchModel is the live timer view: it polls the active timer once per
// second and redraws the elapsed time.
type watchModel struct {
	app    *App
	userID int64

	spin spinner.Model
	view *contract.ActiveTimerView
	err  error
}

func newWatchModel(app *App, userID int64) watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	return watchModel{app: app, userID: userID, spin: s}
}

func runWatch(app *App, userID int64) error {
	p := tea.NewProgram(newWatchModel(app, userID))
	_, err := p.Run()
	return err
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refresh, watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) refresh() tea.Msg {
	view, err := m.app.Timers.ActiveTimer(context.Background(), m.userID)
	return watchViewMsg{view: view, err: err}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, watchKeys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.refresh, watchTick())

	case watchViewMsg:
		m.view = msg.view
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.view == nil {
		return m.spin.View() + formatter.Dim(" waiting for a timer to start... (q to quit)") + "\n"
	}
	return formatter.FormatActiveTimer(m.view) + "\n" + formatter.Dim("q to quit") + "\n"
}
