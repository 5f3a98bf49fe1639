package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"watchtrainer/internal/ui/components"
	"watchtrainer/internal/ui/theme"
	coachview "watchtrainer/internal/ui/views/coach"
	goalsview "watchtrainer/internal/ui/views/goals"
	statsview "watchtrainer/internal/ui/views/stats"
	workoutview "watchtrainer/internal/ui/views/workout"
)

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabWorkout tabID = iota
	tabGoals
	tabStats
	tabCoach
	tabCount
)

var tabLabels = [tabCount]string{
	"Workout", "Goals", "Stats", "Coach",
}

// paletteHints must stay in sync with the switch in executePalette.
var paletteHints = []string{
	"workout:start",
	"workout:stop",
	"workout:resume",
	"workout:end [notes]",
	"workout:type <walking|running|cycling|strength|yoga|other>",
	"goal:create <type> <target>",
	"goal:refresh",
	"stats:period <today|week|month|all_time>",
	"coach:message",
	"coach:tip [type]",
	"coach:quote",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Pause   key.Binding
	End     key.Binding
	Refresh key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start workout")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause/resume")),
		End:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end workout")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Start, k.Pause, k.End},
		{k.Refresh},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the command palette; each tab's view talks to its own port.
type Model struct {
	workoutView workoutview.Model
	goalsView   goalsview.Model
	statsView   statsview.Model
	coachView   coachview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(workout workoutview.Port, goals goalsview.Port, stats statsview.Port, coach coachview.Port) Model {
	return Model{
		workoutView: workoutview.New(workout),
		goalsView:   goalsview.New(goals),
		statsView:   statsview.New(stats),
		coachView:   coachview.New(coach),
		activeTab:   tabWorkout,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(paletteHints),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.workoutView.Init(),
		m.goalsView.Init(),
		m.statsView.Init(),
		m.coachView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case workoutview.TransitionMsg:
		m.status = summarize(msg.Summary, msg.Err)
		if msg.Ended != nil {
			var gCmd tea.Cmd
			m.goalsView, gCmd = m.goalsView.Update(goalsview.ChangedMsg{})
			cmds = append(cmds, gCmd, m.statsView.Reload())
		}

	case goalsview.ChangedMsg:
		if msg.Summary != "" || msg.Err != nil {
			m.status = summarize(msg.Summary, msg.Err)
		}

	case components.CommandMsg:
		return m.executePalette(msg.Line)

	case components.DismissMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		// Yield to the goals list while its filter is open.
		if m.activeTab == tabGoals && m.goalsView.Filtering() {
			return m, m.updateActive(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
		return m, m.updateActive(msg)
	}

	// Everything else is addressed by type, so every view sees it.
	cmds = append(cmds, m.updateAll(msg))
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabWorkout:
		return m.workoutView.View()
	case tabGoals:
		return m.goalsView.View()
	case tabStats:
		return m.statsView.View()
	case tabCoach:
		return m.coachView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := " " + tabLabels[i] + " "
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(label)
		} else {
			parts[i] = theme.Muted.Render(label)
		}
	}
	bar := "watchtrainer  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  ::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "workout:start":
		m.activeTab = tabWorkout
		return m, m.workoutView.StartCmd()
	case "workout:stop":
		return m, m.workoutView.StopCmd()
	case "workout:resume":
		return m, m.workoutView.ResumeCmd()
	case "workout:end":
		return m, m.workoutView.EndCmd(rest)
	case "workout:type":
		if len(parts) != 2 {
			m.status = "usage: workout:type <type>"
			return m, nil
		}
		return m, m.workoutView.SetTypeCmd(parts[1])

	case "goal:create":
		if len(parts) != 3 {
			m.status = "usage: goal:create <type> <target>"
			return m, nil
		}
		target, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			m.status = "invalid target"
			return m, nil
		}
		m.activeTab = tabGoals
		return m, m.goalsView.CreateCmd(parts[1], target)
	case "goal:refresh":
		m.activeTab = tabGoals
		return m, m.goalsView.RefreshCmd()

	case "stats:period":
		if len(parts) != 2 {
			m.status = "usage: stats:period <today|week|month|all_time>"
			return m, nil
		}
		m.activeTab = tabStats
		cmd := m.statsView.SetPeriod(parts[1])
		if cmd == nil {
			m.status = "unknown period: " + parts[1]
		}
		return m, cmd

	case "coach:message":
		m.activeTab = tabCoach
		return m, m.coachView.MessageCmd()
	case "coach:tip":
		m.activeTab = tabCoach
		return m, m.coachView.TipCmd(rest)
	case "coach:quote":
		m.activeTab = tabCoach
		return m, m.coachView.QuoteCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabWorkout:
		m.workoutView, cmd = m.workoutView.Update(msg)
	case tabGoals:
		m.goalsView, cmd = m.goalsView.Update(msg)
	case tabStats:
		m.statsView, cmd = m.statsView.Update(msg)
	case tabCoach:
		m.coachView, cmd = m.coachView.Update(msg)
	}
	return cmd
}

func (m *Model) updateAll(msg tea.Msg) tea.Cmd {
	var wCmd, gCmd, sCmd, cCmd tea.Cmd
	m.workoutView, wCmd = m.workoutView.Update(msg)
	m.goalsView, gCmd = m.goalsView.Update(msg)
	m.statsView, sCmd = m.statsView.Update(msg)
	m.coachView, cCmd = m.coachView.Update(msg)
	return tea.Batch(wCmd, gCmd, sCmd, cCmd)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.workoutView, _ = m.workoutView.Update(sz)
	m.goalsView, _ = m.goalsView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
	m.coachView, _ = m.coachView.Update(sz)
}

func summarize(summary string, err error) string {
	if err != nil {
		return theme.Bad.Render(err.Error())
	}
	return summary
}
