package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"watchtrainer/internal/modules/goal/domain"
	goalout "watchtrainer/internal/modules/goal/port/out"
	"watchtrainer/internal/platform/clock"
	"watchtrainer/internal/platform/tx"
)

type GoalService struct {
	clock      clock.Clock
	store      goalout.GoalStore
	aggregates goalout.Aggregates
	txm        tx.Manager

	// refreshes are serialized so two concurrent refreshes cannot both
	// observe a goal as incomplete.
	mu sync.Mutex
}

type RefreshResult struct {
	Goals     []domain.Goal
	Completed []domain.Goal
}

func NewGoalService(clk clock.Clock, store goalout.GoalStore, aggregates goalout.Aggregates, txm tx.Manager) *GoalService {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	return &GoalService{clock: clk, store: store, aggregates: aggregates, txm: txm}
}

func (s *GoalService) Create(ctx context.Context, goalType domain.GoalType, target float64, deadline *time.Time) (domain.Goal, error) {
	goal, err := domain.NewGoal(goalType, target, deadline, s.clock.Now())
	if err != nil {
		return domain.Goal{}, err
	}
	created, err := s.store.Create(ctx, goal)
	if err != nil {
		return domain.Goal{}, err
	}
	log.WithFields(log.Fields{"goal_id": created.ID, "type": created.Type, "target": created.TargetValue}).Info("goal created")
	return created, nil
}

func (s *GoalService) ListActive(ctx context.Context) ([]domain.Goal, error) {
	return s.store.ListActive(ctx)
}

func (s *GoalService) ListAll(ctx context.Context) ([]domain.Goal, error) {
	return s.store.ListAll(ctx)
}

// Refresh recomputes every active goal from recorded workouts in a single
// transaction. Goals whose aggregate cannot be read keep their stored value.
func (s *GoalService) Refresh(ctx context.Context) (RefreshResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	result := RefreshResult{Goals: []domain.Goal{}, Completed: []domain.Goal{}}
	err := s.txm.Within(ctx, func(ctx context.Context) error {
		goals, err := s.store.ListActive(ctx)
		if err != nil {
			return err
		}
		for _, goal := range goals {
			value, err := s.measure(ctx, goal.Type, now)
			if err != nil {
				log.WithError(err).WithField("goal_id", goal.ID).Warn("goal refresh skipped")
				result.Goals = append(result.Goals, goal)
				continue
			}
			goal.CurrentValue = value
			if goal.Reached(value) {
				completed, err := s.store.Complete(ctx, goal.ID, value, now)
				if err != nil {
					return err
				}
				if completed {
					at := now
					goal.Active = false
					goal.CompletedAt = &at
					result.Completed = append(result.Completed, goal)
					log.WithFields(log.Fields{"goal_id": goal.ID, "type": goal.Type, "value": value}).Info("goal completed")
				}
				continue
			}
			if err := s.store.UpdateProgress(ctx, goal.ID, value); err != nil {
				return err
			}
			result.Goals = append(result.Goals, goal)
		}
		return nil
	})
	if err != nil {
		return RefreshResult{}, fmt.Errorf("refresh goals: %w", err)
	}
	return result, nil
}

func (s *GoalService) measure(ctx context.Context, goalType domain.GoalType, now time.Time) (float64, error) {
	since := goalType.Window().Start(now)
	switch goalType.Metric() {
	case domain.MetricSteps:
		steps, err := s.aggregates.SumStepsSince(ctx, since)
		return float64(steps), err
	case domain.MetricCalories:
		return s.aggregates.SumCaloriesSince(ctx, since)
	case domain.MetricActiveMinutes:
		duration, err := s.aggregates.SumDurationSince(ctx, since)
		return domain.ActiveMinutes(duration), err
	case domain.MetricWorkouts:
		count, err := s.aggregates.CountSince(ctx, since)
		return float64(count), err
	default:
		return 0, fmt.Errorf("goal type %q has no metric", goalType)
	}
}
