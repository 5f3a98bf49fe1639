package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	historydomain "watchtrainer/internal/modules/history/domain"
	"watchtrainer/internal/modules/workout/domain"
	workoutout "watchtrainer/internal/modules/workout/port/out"
	"watchtrainer/internal/platform/fsutil"
	"watchtrainer/internal/platform/markdown"
)

const recentLimit = 10

var recentBlock = markdown.Block{Name: "recent-workouts"}

type journalMeta struct {
	SchemaVersion    int     `yaml:"schema_version"`
	ID               string  `yaml:"id"`
	WorkoutType      string  `yaml:"workout_type"`
	StartTime        string  `yaml:"start_time"`
	EndTime          string  `yaml:"end_time"`
	DurationMinutes  int     `yaml:"duration_minutes"`
	TotalSteps       int     `yaml:"total_steps"`
	AverageHeartRate int     `yaml:"average_heart_rate"`
	CaloriesBurned   float64 `yaml:"calories_burned"`
	Distance         float64 `yaml:"distance_m"`
}

// MarkdownJournal writes one note per workout under
// <dir>/YYYY/MM/DD/HHMMSS-<type>-<short id>.md and keeps index.md current.
type MarkdownJournal struct {
	dir string
}

func NewMarkdownJournal(dir string) workoutout.Journal {
	return &MarkdownJournal{dir: dir}
}

func (j *MarkdownJournal) Write(_ context.Context, session historydomain.Session) (string, error) {
	start := session.StartTime
	dir := filepath.Join(j.dir, start.Format("2006"), start.Format("01"), start.Format("02"))
	path := filepath.Join(dir, fmt.Sprintf("%s-%s-%s.md", start.Format("150405"), session.WorkoutType, shortID(session.ID)))

	meta := journalMeta{
		SchemaVersion:    domain.SchemaVersion,
		ID:               session.ID,
		WorkoutType:      string(session.WorkoutType),
		StartTime:        session.StartTime.Format(time.RFC3339),
		EndTime:          session.EndTime.Format(time.RFC3339),
		DurationMinutes:  int(session.Duration().Minutes()),
		TotalSteps:       session.TotalSteps,
		AverageHeartRate: session.AverageHeartRate,
		CaloriesBurned:   session.CaloriesBurned,
		Distance:         session.Distance,
	}
	rendered, err := markdown.Render(meta, noteBody(session))
	if err != nil {
		return "", err
	}
	if err := fsutil.WriteFileAtomic(path, []byte(rendered)); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	if err := j.updateIndex(session, path); err != nil {
		return path, err
	}
	return path, nil
}

// shortID keeps the alphanumerics of id, cut to eight characters when the
// id is longer than twelve (a UUID).
func shortID(id string) string {
	clean := strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			return r
		}
		return -1
	}, id)
	if len(clean) > 12 {
		return clean[:8]
	}
	return clean
}

func noteBody(s historydomain.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s workout, %s\n\n", s.WorkoutType.Label(), s.StartTime.Format("Mon 2 Jan 2006 15:04"))
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Duration | %s |\n", s.Duration().Round(time.Second))
	fmt.Fprintf(&b, "| Steps | %d |\n", s.TotalSteps)
	fmt.Fprintf(&b, "| Average heart rate | %d bpm |\n", s.AverageHeartRate)
	fmt.Fprintf(&b, "| Calories | %.0f kcal |\n", s.CaloriesBurned)
	fmt.Fprintf(&b, "| Distance | %.2f km |\n", s.Distance/1000)
	if s.Notes != "" {
		fmt.Fprintf(&b, "\n## Notes\n\n%s\n", s.Notes)
	}
	return b.String()
}

func (j *MarkdownJournal) updateIndex(s historydomain.Session, notePath string) error {
	indexPath := filepath.Join(j.dir, "index.md")
	body := "# Workout journal\n"
	raw, err := os.ReadFile(indexPath)
	switch {
	case err == nil:
		body = string(raw)
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read journal index: %w", err)
	}

	rel, err := filepath.Rel(j.dir, notePath)
	if err != nil {
		rel = notePath
	}
	line := fmt.Sprintf("- %s [%s](%s): %d steps, %.0f kcal, %s",
		s.StartTime.Format("2006-01-02 15:04"), s.WorkoutType.Label(), filepath.ToSlash(rel),
		s.TotalSteps, s.CaloriesBurned, s.Duration().Round(time.Second))

	lines := []string{line}
	if current, ok := recentBlock.Contents(body); ok {
		for _, existing := range strings.Split(current, "\n") {
			if strings.TrimSpace(existing) == "" || len(lines) >= recentLimit {
				continue
			}
			lines = append(lines, existing)
		}
	}
	updated := recentBlock.Replace(body, strings.Join(lines, "\n"))
	if err := fsutil.WriteFileAtomic(indexPath, []byte(updated)); err != nil {
		return fmt.Errorf("write journal index: %w", err)
	}
	return nil
}
