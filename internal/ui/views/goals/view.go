package goals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "watchtrainer/internal/modules/goal/dto"
	"watchtrainer/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Create(ctx context.Context, goalType string, target float64, deadline *time.Time) (goaldto.GoalOutput, error)
	List(ctx context.Context, all bool) ([]goaldto.GoalOutput, error)
	Refresh(ctx context.Context) (goaldto.RefreshOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type GoalsLoadedMsg struct {
	Goals []goaldto.GoalOutput
	Err   error
}

// ChangedMsg follows a create or refresh; Summary is shown in the status bar.
type ChangedMsg struct {
	Summary string
	Err     error
}

// ─── list item ───────────────────────────────────────────────────────────────

type goalItem struct {
	goal goaldto.GoalOutput
}

func (i goalItem) Title() string { return strings.ReplaceAll(i.goal.Type, "_", " ") }
func (i goalItem) Description() string {
	if !i.goal.Active {
		return "done  " + i.goal.Summary
	}
	return fmt.Sprintf("%.0f%%  %s", i.goal.Progress*100, i.goal.Summary)
}
func (i goalItem) FilterValue() string { return i.goal.Type }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	list    list.Model
	bar     progress.Model
	spinner spinner.Model
	showAll bool
	loading bool
	width   int
	height  int
}

func New(port Port) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Goals"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		bar:     progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green))),
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case GoalsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Goals: " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Goals"
		items := make([]list.Item, len(msg.Goals))
		for i, g := range msg.Goals {
			items[i] = goalItem{goal: g}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case ChangedMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.loadCmd())
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "a":
				m.showAll = !m.showAll
				return m, m.loadCmd()
			case "r":
				return m, m.RefreshCmd()
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading goals…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := theme.Pane.
		Width(max(detailW-2, 10)).
		Height(max(m.height-2, 1)).
		Render(m.renderDetail())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) CreateCmd(goalType string, target float64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Create(context.Background(), goalType, target, nil)
		return ChangedMsg{Summary: fmt.Sprintf("created goal %d: %s", out.ID, out.Summary), Err: err}
	}
}

func (m Model) RefreshCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Refresh(context.Background())
		if err != nil {
			return ChangedMsg{Err: err}
		}
		summary := fmt.Sprintf("refreshed %d goals", len(out.Goals))
		if n := len(out.Completed); n > 0 {
			summary += fmt.Sprintf(", %d completed", n)
		}
		return ChangedMsg{Summary: summary}
	}
}

func (m Model) loadCmd() tea.Cmd {
	all := m.showAll
	return func() tea.Msg {
		goals, err := m.port.List(context.Background(), all)
		return GoalsLoadedMsg{Goals: goals, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	m.list.SetSize(listW, m.height)
	m.bar.Width = max(m.width-listW-8, 10)
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(goalItem)
	if !ok {
		return theme.Muted.Render("No goals yet. Press : and run goal:create daily_steps 8000")
	}
	g := item.goal
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(item.Title()) + "\n\n")
	sb.WriteString(m.bar.ViewAs(g.Progress) + "\n\n")
	sb.WriteString(theme.Muted.Render("progress: ") + g.Summary + "\n")
	sb.WriteString(theme.Muted.Render("created:  ") + g.CreatedAt.Format(time.DateOnly) + "\n")
	if g.Deadline != nil {
		sb.WriteString(theme.Muted.Render("deadline: ") + g.Deadline.Format(time.DateOnly))
		if g.DaysLeft != nil {
			sb.WriteString(fmt.Sprintf(" (%d days left)", *g.DaysLeft))
		}
		sb.WriteString("\n")
	}
	if g.CompletedAt != nil {
		sb.WriteString(theme.Good.Render("completed "+g.CompletedAt.Format("2006-01-02 15:04")) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("r: refresh  a: toggle completed"))
	return sb.String()
}
