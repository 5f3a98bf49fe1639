package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	statsdto "watchtrainer/internal/modules/stats/dto"
	"watchtrainer/internal/ui/theme"
)

var periods = []string{"today", "week", "month", "all_time"}

const barWidth = 30

type Port interface {
	Show(ctx context.Context, period string) (statsdto.PeriodStatsOutput, error)
	Week(ctx context.Context) ([]statsdto.DailyProgressOutput, error)
}

type LoadedMsg struct {
	Stats statsdto.PeriodStatsOutput
	Week  []statsdto.DailyProgressOutput
	Err   error
}

type Model struct {
	port   Port
	period int
	stats  statsdto.PeriodStatsOutput
	week   []statsdto.DailyProgressOutput
	err    error
	width  int
	height int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.stats = msg.Stats
			m.week = msg.Week
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.period = (m.period + len(periods) - 1) % len(periods)
			return m, m.loadCmd()
		case "right", "l":
			m.period = (m.period + 1) % len(periods)
			return m, m.loadCmd()
		case "r":
			return m, m.loadCmd()
		}
	}
	return m, nil
}

// SetPeriod selects a period by name and reloads; unknown names are ignored.
func (m *Model) SetPeriod(name string) tea.Cmd {
	for i, p := range periods {
		if p == name {
			m.period = i
			return m.loadCmd()
		}
	}
	return nil
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Bad.Render("stats: " + m.err.Error())
	}
	var tabs []string
	for i, p := range periods {
		label := " " + strings.ReplaceAll(p, "_", " ") + " "
		if i == m.period {
			tabs = append(tabs, theme.Hot.Render(label))
		} else {
			tabs = append(tabs, theme.Muted.Render(label))
		}
	}

	s := m.stats
	var left strings.Builder
	left.WriteString(strings.Join(tabs, theme.Muted.Render("│")) + "\n\n")
	left.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("workouts: "), s.TotalWorkouts))
	left.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("steps:    "), s.TotalSteps))
	left.WriteString(fmt.Sprintf("%s%.0f kcal\n", theme.Muted.Render("calories: "), s.TotalCalories))
	left.WriteString(theme.Muted.Render("time:     ") + formatMS(s.TotalDurationMS) + "\n")
	left.WriteString(theme.Muted.Render("average:  ") + formatMS(s.AverageDurationMS) + "\n")
	left.WriteString(theme.Muted.Render("favourite:") + " " + s.MostFrequentType + "\n")
	left.WriteString("\n" + theme.Muted.Render("←/→: period  r: reload"))

	half := max(m.width/2-2, 20)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Pane.Width(half).Render(left.String()),
		theme.Pane.Width(half).Render(m.renderWeek()),
	)
}

func (m Model) renderWeek() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Last 7 days") + "\n\n")
	peak := 0
	for _, d := range m.week {
		peak = max(peak, d.Steps)
	}
	for _, d := range m.week {
		n := 0
		if peak > 0 {
			n = d.Steps * barWidth / peak
		}
		sb.WriteString(fmt.Sprintf("%s %s %d\n", d.Weekday, theme.Bar.Render(strings.Repeat("█", n)), d.Steps))
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	period := periods[m.period]
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := m.port.Show(ctx, period)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		week, err := m.port.Week(ctx)
		return LoadedMsg{Stats: stats, Week: week, Err: err}
	}
}

func formatMS(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).Round(time.Second).String()
}

func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}
