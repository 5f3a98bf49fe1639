package bootstrap

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	uiapp "watchtrainer/internal/ui/app"
)

func RunTUI(ctx context.Context, app *App) error {
	model := uiapp.NewModel(app.WorkoutCLI, app.GoalCLI, app.StatsCLI, app.CoachCLI)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
