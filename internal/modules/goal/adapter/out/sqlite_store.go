package out

import (
	"context"
	"database/sql"
	"time"

	"watchtrainer/internal/modules/goal/domain"
	goalout "watchtrainer/internal/modules/goal/port/out"
	apperrors "watchtrainer/internal/platform/errors"
	"watchtrainer/internal/platform/tx"
)

type SQLiteGoalStore struct {
	db  *sql.DB
	loc *time.Location
}

func NewSQLiteGoalStore(ctx context.Context, db *sql.DB, loc *time.Location) (goalout.GoalStore, error) {
	if loc == nil {
		loc = time.Local
	}
	store := &SQLiteGoalStore{db: db, loc: loc}
	const ddl = `
CREATE TABLE IF NOT EXISTS workout_goals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  goal_type TEXT NOT NULL,
  target_value REAL NOT NULL,
  current_value REAL NOT NULL DEFAULT 0,
  deadline INTEGER,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at INTEGER NOT NULL,
  completed_at INTEGER
);
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, apperrors.Storage("create workout_goals table", err)
	}
	return store, nil
}

func (s *SQLiteGoalStore) Create(ctx context.Context, goal domain.Goal) (domain.Goal, error) {
	res, err := tx.From(ctx, s.db).ExecContext(ctx, `
INSERT INTO workout_goals (goal_type, target_value, current_value, deadline, is_active, created_at)
VALUES (?, ?, ?, ?, ?, ?);
`, string(goal.Type), goal.TargetValue, goal.CurrentValue, nullableMillis(goal.Deadline), boolInt(goal.Active), goal.CreatedAt.UnixMilli())
	if err != nil {
		return domain.Goal{}, apperrors.Storage("insert goal", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Goal{}, apperrors.Storage("read goal id", err)
	}
	goal.ID = id
	return goal, nil
}

func (s *SQLiteGoalStore) ListActive(ctx context.Context) ([]domain.Goal, error) {
	return s.list(ctx, `WHERE is_active = 1`)
}

func (s *SQLiteGoalStore) ListAll(ctx context.Context) ([]domain.Goal, error) {
	return s.list(ctx, ``)
}

func (s *SQLiteGoalStore) UpdateProgress(ctx context.Context, id int64, value float64) error {
	if _, err := tx.From(ctx, s.db).ExecContext(ctx,
		`UPDATE workout_goals SET current_value = ? WHERE id = ? AND is_active = 1`, value, id); err != nil {
		return apperrors.Storage("update goal progress", err)
	}
	return nil
}

func (s *SQLiteGoalStore) Complete(ctx context.Context, id int64, value float64, at time.Time) (bool, error) {
	res, err := tx.From(ctx, s.db).ExecContext(ctx, `
UPDATE workout_goals SET current_value = ?, is_active = 0, completed_at = ?
WHERE id = ? AND completed_at IS NULL;
`, value, at.UnixMilli(), id)
	if err != nil {
		return false, apperrors.Storage("complete goal", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.Storage("complete goal", err)
	}
	return n == 1, nil
}

func (s *SQLiteGoalStore) list(ctx context.Context, where string) ([]domain.Goal, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, `
SELECT id, goal_type, target_value, current_value, deadline, is_active, created_at, completed_at
FROM workout_goals `+where+`
ORDER BY id ASC;
`)
	if err != nil {
		return nil, apperrors.Storage("query goals", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		var (
			goal                  domain.Goal
			goalType              string
			active                int
			createdMS             int64
			deadlineMS, completed sql.NullInt64
		)
		if err := rows.Scan(&goal.ID, &goalType, &goal.TargetValue, &goal.CurrentValue, &deadlineMS, &active, &createdMS, &completed); err != nil {
			return nil, apperrors.Storage("scan goal", err)
		}
		goal.Type = domain.GoalType(goalType)
		goal.Active = active == 1
		goal.CreatedAt = time.UnixMilli(createdMS).In(s.loc)
		goal.Deadline = s.timePtr(deadlineMS)
		goal.CompletedAt = s.timePtr(completed)
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("iterate goals", err)
	}
	return goals, nil
}

func (s *SQLiteGoalStore) timePtr(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).In(s.loc)
	return &t
}

func nullableMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
