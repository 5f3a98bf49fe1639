package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"watchtrainer/internal/ui/theme"
)

const maxSuggestions = 6

// CommandMsg carries a confirmed palette line.
type CommandMsg struct{ Line string }

// DismissMsg is sent when the palette closes without a command.
type DismissMsg struct{}

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Green).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
	selectedStyle   = lipgloss.NewStyle().Foreground(theme.Green).Bold(true)
)

// Palette is a one-line command prompt with tab completion over a fixed set
// of commands and up/down recall of earlier lines.
type Palette struct {
	input    textinput.Model
	commands []string
	history  []string
	recall   int
	visible  bool
	width    int
}

func NewPalette(commands []string) Palette {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "workout:start, goal:create daily_steps 8000 …"
	in.CharLimit = 120
	return Palette{input: in, commands: commands}
}

func (p Palette) Visible() bool { return p.visible }

func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.recall = len(p.history)
	p.input.Reset()
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

// Suggestions lists the commands whose name starts with the first word typed.
func (p Palette) Suggestions() []string {
	word, _, _ := strings.Cut(strings.TrimSpace(p.input.Value()), " ")
	word = strings.ToLower(word)
	out := make([]string, 0, maxSuggestions)
	for _, c := range p.commands {
		if strings.HasPrefix(c, word) {
			out = append(out, c)
		}
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	switch key.String() {
	case "esc":
		p.close()
		return p, func() tea.Msg { return DismissMsg{} }
	case "enter":
		line := strings.TrimSpace(p.input.Value())
		p.close()
		if line == "" {
			return p, func() tea.Msg { return DismissMsg{} }
		}
		p.history = append(p.history, line)
		return p, func() tea.Msg { return CommandMsg{Line: line} }
	case "tab":
		if s := p.Suggestions(); len(s) > 0 && !strings.Contains(p.input.Value(), " ") {
			p.input.SetValue(firstWord(s[0]) + " ")
			p.input.CursorEnd()
		}
		return p, nil
	case "up":
		if p.recall > 0 {
			p.recall--
			p.input.SetValue(p.history[p.recall])
			p.input.CursorEnd()
		}
		return p, nil
	case "down":
		if p.recall < len(p.history)-1 {
			p.recall++
			p.input.SetValue(p.history[p.recall])
		} else {
			p.recall = len(p.history)
			p.input.Reset()
		}
		p.input.CursorEnd()
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render("Command") + "\n")
	b.WriteString(p.input.View() + "\n")
	for i, s := range p.Suggestions() {
		if i == 0 {
			b.WriteString("\n" + selectedStyle.Render("⇥ "+s) + "\n")
			continue
		}
		b.WriteString(suggestionStyle.Render("  "+s) + "\n")
	}
	w := p.width
	if w < 24 {
		w = 60
	}
	return frameStyle.Width(w - 2).Render(strings.TrimRight(b.String(), "\n"))
}

func firstWord(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return word
}
