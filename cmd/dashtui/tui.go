package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pollInterval = 5 * time.Second

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498db"))
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2ecc71"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type dashMsg struct {
	dash *dashboard
}

type dashErrMsg struct {
	err error
}

type tickMsg struct{}

type model struct {
	client  *apiClient
	roundID string

	dashSpinner spinner.Model
	counters    table.Model
	score       int
	loaded      bool
	lastUpdate  time.Time
	fetchErr    error
}

func initialModel(client *apiClient, roundID string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	columns := []table.Column{
		{Title: "Type", Width: 16},
		{Title: "Pending", Width: 8},
		{Title: "AC", Width: 6},
		{Title: "WA", Width: 6},
		{Title: "Left", Width: 6},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
	)

	return model{
		client:      client,
		roundID:     roundID,
		dashSpinner: s,
		counters:    t,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.dashSpinner.Tick, m.fetch())
}

func (m model) fetch() tea.Cmd {
	return func() tea.Msg {
		dash, err := m.client.getDashboard(m.roundID)
		if err != nil {
			return dashErrMsg{err: err}
		}
		return dashMsg{dash: dash}
	}
}

func schedulePoll() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, m.fetch()
		}

	case dashMsg:
		m.loaded = true
		m.fetchErr = nil
		m.score = msg.dash.Score
		m.lastUpdate = time.Now()
		rows := make([]table.Row, 0, len(msg.dash.Types))
		for _, tp := range msg.dash.Types {
			rows = append(rows, table.Row{
				tp.TypeCode,
				fmt.Sprintf("%d", tp.Pending),
				fmt.Sprintf("%d", tp.Accepted),
				fmt.Sprintf("%d", tp.Wrong),
				fmt.Sprintf("%d", tp.Remaining),
			})
		}
		m.counters.SetRows(rows)
		return m, schedulePoll()

	case dashErrMsg:
		m.fetchErr = msg.err
		return m, schedulePoll()

	case tickMsg:
		return m, m.fetch()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.dashSpinner, cmd = m.dashSpinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.counters, cmd = m.counters.Update(msg)
	return m, cmd
}

func (m model) View() string {
	s := titleStyle.Render("Teamwork Challenge") + "\n\n"

	if !m.loaded {
		if m.fetchErr != nil {
			s += errStyle.Render(fmt.Sprintf("Error: %v", m.fetchErr)) + "\n"
		} else {
			s += fmt.Sprintf("%s Loading dashboard...\n", m.dashSpinner.View())
		}
		s += helpStyle.Render("Press q to quit.")
		return s
	}

	s += tableStyle.Render(m.counters.View()) + "\n\n"
	s += scoreStyle.Render(fmt.Sprintf("Score: %d", m.score)) + "\n"
	s += helpStyle.Render(fmt.Sprintf("Updated %s.",
		m.lastUpdate.Format("15:04:05")))
	if m.fetchErr != nil {
		s += "\n" + errStyle.Render(fmt.Sprintf("Last refresh failed: %v", m.fetchErr))
	}
	s += "\n" + helpStyle.Render("Press r to refresh, q to quit.")
	return s
}
