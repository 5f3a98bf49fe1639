package service

import (
	"time"

	historydomain "watchtrainer/internal/modules/history/domain"
	"watchtrainer/internal/modules/workout/domain"
	"watchtrainer/internal/platform/clock"
	"watchtrainer/internal/platform/id"
)

type WorkoutService struct {
	clock clock.Clock
	idGen id.Generator
	mode  domain.SnapshotMode
}

func NewWorkoutService(clk clock.Clock, idGen id.Generator, mode domain.SnapshotMode) *WorkoutService {
	if mode == "" {
		mode = domain.SnapshotCumulative
	}
	return &WorkoutService{clock: clk, idGen: idGen, mode: mode}
}

func (s *WorkoutService) Now() time.Time {
	return s.clock.Now()
}

func (s *WorkoutService) Start(workoutType historydomain.WorkoutType, baseline domain.Snapshot) domain.ActiveSession {
	return domain.ActiveSession{
		ID:            s.idGen.New(),
		State:         domain.StateActive,
		WorkoutType:   workoutType,
		StartTime:     s.clock.Now(),
		StartSnapshot: baseline,
	}
}

func (s *WorkoutService) Finish(active domain.ActiveSession, latest domain.Snapshot, notes string) historydomain.Session {
	return domain.Finish(active, s.clock.Now(), latest, s.mode, notes)
}

func (s *WorkoutService) Elapsed(active domain.ActiveSession) time.Duration {
	elapsed := s.clock.Now().Sub(active.StartTime)
	if elapsed < 0 {
		return 0
	}
	return elapsed.Truncate(time.Millisecond)
}
