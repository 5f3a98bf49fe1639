package workout

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	workoutdto "watchtrainer/internal/modules/workout/dto"
	"watchtrainer/internal/ui/theme"
)

const refreshInterval = time.Second

var workoutTypes = []string{"walking", "running", "cycling", "strength", "yoga", "other"}

// Port is the slice of the workout CLI handler this view drives.
type Port interface {
	Start(ctx context.Context) (workoutdto.SessionOutput, error)
	Stop(ctx context.Context) (workoutdto.SessionOutput, error)
	Resume(ctx context.Context) (workoutdto.SessionOutput, error)
	End(ctx context.Context, notes string) (workoutdto.EndOutput, error)
	SetType(ctx context.Context, workoutType string) (workoutdto.StatusOutput, error)
	Status(ctx context.Context) (workoutdto.StatusOutput, error)
}

type StatusMsg struct {
	Status workoutdto.StatusOutput
	Err    error
}

// TransitionMsg reports the outcome of a user action; the app shows Summary.
type TransitionMsg struct {
	Summary string
	Ended   *workoutdto.EndOutput
	Err     error
}

type tickMsg struct{}

type Model struct {
	port    Port
	status  workoutdto.StatusOutput
	loaded  bool
	lastEnd *workoutdto.EndOutput
	err     error
	width   int
	height  int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStatusCmd(), tick())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Batch(m.loadStatusCmd(), tick())

	case StatusMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.status = msg.Status
			m.loaded = true
		}

	case TransitionMsg:
		if msg.Ended != nil {
			m.lastEnd = msg.Ended
		}
		return m, m.loadStatusCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, m.StartCmd()
		case "p":
			if m.status.State == "paused" {
				return m, m.ResumeCmd()
			}
			return m, m.StopCmd()
		case "e":
			return m, m.EndCmd("")
		case "[", "]":
			if m.status.State == "idle" {
				return m, m.SetTypeCmd(cycleType(m.status.SelectedType, msg.String() == "]"))
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		if m.err != nil {
			return theme.Bad.Render("workout status: " + m.err.Error())
		}
		return theme.Muted.Render("Loading workout…")
	}
	s := m.status
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Workout") + "\n\n")
	sb.WriteString(theme.Muted.Render("state:    ") + theme.State(s.State) + "\n")
	sb.WriteString(theme.Muted.Render("type:     ") + s.SelectedType + "\n")
	if s.Session != nil {
		elapsed := (time.Duration(s.Session.ElapsedMS) * time.Millisecond).Round(time.Second)
		sb.WriteString(theme.Muted.Render("elapsed:  ") + theme.Hot.Render(elapsed.String()) + "\n")
		sb.WriteString(theme.Muted.Render("started:  ") + s.Session.StartTime.Format(time.Kitchen) + "\n")
	}
	sb.WriteString("\n" + theme.Title.Render("Live") + "\n")
	sb.WriteString(fmt.Sprintf("%s%d\n", theme.Muted.Render("steps:    "), s.Snapshot.Steps))
	sb.WriteString(fmt.Sprintf("%s%d bpm\n", theme.Muted.Render("heart:    "), s.Snapshot.HeartRate))
	sb.WriteString(fmt.Sprintf("%s%.0f kcal\n", theme.Muted.Render("calories: "), s.Snapshot.Calories))
	sb.WriteString(fmt.Sprintf("%s%.0f m\n", theme.Muted.Render("distance: "), s.Snapshot.Distance))

	if e := m.lastEnd; e != nil {
		sb.WriteString("\n" + theme.Title.Render("Last session") + "\n")
		sb.WriteString(fmt.Sprintf("%s, %s, %d steps, avg %d bpm, %.0f kcal\n",
			e.WorkoutType, (time.Duration(e.DurationMS) * time.Millisecond).Round(time.Second), e.TotalSteps, e.AverageHR, e.CaloriesBurned))
		for _, g := range e.CompletedGoals {
			sb.WriteString(theme.Good.Render("goal completed: "+g) + "\n")
		}
		if e.GoalsStale {
			sb.WriteString(theme.Warn.Render("goal progress not updated, press r on Goals") + "\n")
		}
	}
	if m.err != nil {
		sb.WriteString("\n" + theme.Bad.Render(m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("s: start  p: pause/resume  e: end  [ ]: change type"))

	return theme.Pane.Width(max(m.width-4, 20)).Render(sb.String())
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) StartCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Start(context.Background())
		return TransitionMsg{Summary: "started " + out.WorkoutType, Err: err}
	}
}

func (m Model) StopCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Stop(context.Background())
		return TransitionMsg{Summary: "paused " + out.WorkoutType, Err: err}
	}
}

func (m Model) ResumeCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Resume(context.Background())
		return TransitionMsg{Summary: "resumed " + out.WorkoutType, Err: err}
	}
}

func (m Model) EndCmd(notes string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.End(context.Background(), notes)
		if err != nil {
			return TransitionMsg{Err: err}
		}
		return TransitionMsg{Summary: fmt.Sprintf("recorded %s: %d steps", out.WorkoutType, out.TotalSteps), Ended: &out}
	}
}

func (m Model) SetTypeCmd(workoutType string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.SetType(context.Background(), workoutType)
		return TransitionMsg{Summary: "selected " + out.SelectedType, Err: err}
	}
}

func (m Model) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Status(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func cycleType(current string, forward bool) string {
	idx := 0
	for i, t := range workoutTypes {
		if t == current {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(workoutTypes)
	} else {
		idx = (idx + len(workoutTypes) - 1) % len(workoutTypes)
	}
	return workoutTypes[idx]
}
