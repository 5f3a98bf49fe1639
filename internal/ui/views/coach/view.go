package coach

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	coachdto "watchtrainer/internal/modules/coach/dto"
	"watchtrainer/internal/ui/theme"
)

type Port interface {
	Message(ctx context.Context) (coachdto.CoachOutput, error)
	Tip(ctx context.Context, workoutType string) (coachdto.CoachOutput, error)
	Quote(ctx context.Context) (coachdto.CoachOutput, error)
}

type AnswerMsg struct {
	Out coachdto.CoachOutput
	Err error
}

type Model struct {
	port    Port
	answers []coachdto.CoachOutput
	err     error
	waiting bool
	spinner spinner.Model
	width   int
	height  int
}

const keep = 5

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case AnswerMsg:
		m.waiting = false
		m.err = msg.Err
		if msg.Err == nil {
			m.answers = append([]coachdto.CoachOutput{msg.Out}, m.answers...)
			if len(m.answers) > keep {
				m.answers = m.answers[:keep]
			}
		}
	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			return m.ask(m.MessageCmd())
		case "t":
			return m.ask(m.TipCmd(""))
		case "o":
			return m.ask(m.QuoteCmd())
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Coach") + "\n\n")
	if m.waiting {
		sb.WriteString(m.spinner.View() + " thinking…\n\n")
	}
	if m.err != nil {
		sb.WriteString(theme.Bad.Render(m.err.Error()) + "\n\n")
	}
	if len(m.answers) == 0 && !m.waiting {
		sb.WriteString(theme.Muted.Render("Ask for a message, a tip or a quote.") + "\n\n")
	}
	for i, a := range m.answers {
		style := theme.Muted
		if i == 0 {
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		tag := theme.Muted.Render("[" + a.Kind + ", " + a.Source + "] ")
		sb.WriteString(tag + style.Render(a.Text) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("m: message  t: tip  o: quote"))
	return theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
}

func (m Model) ask(cmd tea.Cmd) (Model, tea.Cmd) {
	m.waiting = true
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) MessageCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Message(context.Background())
		return AnswerMsg{Out: out, Err: err}
	}
}

func (m Model) TipCmd(workoutType string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Tip(context.Background(), workoutType)
		return AnswerMsg{Out: out, Err: err}
	}
}

func (m Model) QuoteCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Quote(context.Background())
		return AnswerMsg{Out: out, Err: err}
	}
}
