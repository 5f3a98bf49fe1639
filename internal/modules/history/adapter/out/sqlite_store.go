package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"watchtrainer/internal/modules/history/domain"
	historyout "watchtrainer/internal/modules/history/port/out"
	apperrors "watchtrainer/internal/platform/errors"
	"watchtrainer/internal/platform/tx"
)

type SQLiteSessionStore struct {
	db  *sql.DB
	loc *time.Location
}

// NewSQLiteSessionStore stores sessions in the workouts table. Timestamps are
// persisted as unix milliseconds and read back in loc.
func NewSQLiteSessionStore(ctx context.Context, db *sql.DB, loc *time.Location) (historyout.SessionStore, error) {
	if loc == nil {
		loc = time.Local
	}
	store := &SQLiteSessionStore{db: db, loc: loc}
	if err := store.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS workouts (
  id TEXT PRIMARY KEY,
  start_time INTEGER NOT NULL,
  end_time INTEGER NOT NULL,
  workout_type TEXT NOT NULL,
  duration_ms INTEGER NOT NULL,
  total_steps INTEGER NOT NULL DEFAULT 0,
  average_heart_rate INTEGER NOT NULL DEFAULT 0,
  calories_burned REAL NOT NULL DEFAULT 0,
  distance REAL NOT NULL DEFAULT 0,
  notes TEXT NOT NULL DEFAULT '',
  schema_version INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return apperrors.Storage("create workouts table", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_workouts_start_time ON workouts(start_time)`); err != nil {
		return apperrors.Storage("create workouts index", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Append(ctx context.Context, session domain.Session) error {
	const stmt = `
INSERT INTO workouts (id, start_time, end_time, workout_type, duration_ms, total_steps, average_heart_rate, calories_burned, distance, notes, schema_version)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		session.ID,
		session.StartTime.UnixMilli(),
		session.EndTime.UnixMilli(),
		string(session.WorkoutType),
		session.Duration().Milliseconds(),
		session.TotalSteps,
		session.AverageHeartRate,
		session.CaloriesBurned,
		session.Distance,
		session.Notes,
		domain.SchemaVersion,
	)
	if err != nil {
		return apperrors.Storage("append workout", err)
	}
	return nil
}

const selectColumns = `SELECT id, start_time, end_time, workout_type, total_steps, average_heart_rate, calories_burned, distance, notes FROM workouts`

func (s *SQLiteSessionStore) Get(ctx context.Context, id string) (domain.Session, error) {
	row := tx.From(ctx, s.db).QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	session, err := s.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, fmt.Errorf("%w: workout %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Session{}, apperrors.Storage("get workout", err)
	}
	return session, nil
}

func (s *SQLiteSessionStore) QueryBetween(ctx context.Context, start, end time.Time) ([]domain.Session, error) {
	const query = selectColumns + `
WHERE start_time BETWEEN ? AND ?
ORDER BY start_time DESC, id ASC;
`
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, query, start.UnixMilli(), end.UnixMilli())
	if err != nil {
		return nil, apperrors.Storage("query workouts", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		session, err := s.scan(rows)
		if err != nil {
			return nil, apperrors.Storage("scan workout", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("iterate workouts", err)
	}
	return sessions, nil
}

func (s *SQLiteSessionStore) SumStepsSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	if err := s.scalar(ctx, `SELECT COALESCE(SUM(total_steps), 0) FROM workouts WHERE start_time >= ?`, since, &total); err != nil {
		return 0, apperrors.Storage("sum steps", err)
	}
	return total, nil
}

func (s *SQLiteSessionStore) SumCaloriesSince(ctx context.Context, since time.Time) (float64, error) {
	var total float64
	if err := s.scalar(ctx, `SELECT COALESCE(SUM(calories_burned), 0.0) FROM workouts WHERE start_time >= ?`, since, &total); err != nil {
		return 0, apperrors.Storage("sum calories", err)
	}
	return total, nil
}

func (s *SQLiteSessionStore) SumDurationSince(ctx context.Context, since time.Time) (time.Duration, error) {
	var totalMS int64
	if err := s.scalar(ctx, `SELECT COALESCE(SUM(duration_ms), 0) FROM workouts WHERE start_time >= ?`, since, &totalMS); err != nil {
		return 0, apperrors.Storage("sum duration", err)
	}
	return time.Duration(totalMS) * time.Millisecond, nil
}

func (s *SQLiteSessionStore) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	if err := s.scalar(ctx, `SELECT COUNT(*) FROM workouts WHERE start_time >= ?`, since, &count); err != nil {
		return 0, apperrors.Storage("count workouts", err)
	}
	return count, nil
}

func (s *SQLiteSessionStore) scalar(ctx context.Context, query string, since time.Time, dest any) error {
	return tx.From(ctx, s.db).QueryRowContext(ctx, query, since.UnixMilli()).Scan(dest)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SQLiteSessionStore) scan(row rowScanner) (domain.Session, error) {
	var (
		session        domain.Session
		startMS, endMS int64
		workoutType    string
	)
	if err := row.Scan(
		&session.ID,
		&startMS,
		&endMS,
		&workoutType,
		&session.TotalSteps,
		&session.AverageHeartRate,
		&session.CaloriesBurned,
		&session.Distance,
		&session.Notes,
	); err != nil {
		return domain.Session{}, err
	}
	session.StartTime = time.UnixMilli(startMS).In(s.loc)
	session.EndTime = time.UnixMilli(endMS).In(s.loc)
	session.WorkoutType = domain.WorkoutType(workoutType)
	return session, nil
}
