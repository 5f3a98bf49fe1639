package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pgregory.net/rapid"

	"watchtrainer/internal/modules/workout/domain"
	workoutdto "watchtrainer/internal/modules/workout/dto"
	apperrors "watchtrainer/internal/platform/errors"
)

func TestControllerFollowsTransitionTable(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		h := newHarness(domain.SnapshotCumulative)
		model := domain.StateIdle
		recorded := 0

		expect := func(rt *rapid.T, event domain.Event, err error) {
			next, wantErr := domain.Next(model, event)
			if wantErr != nil {
				if !errors.Is(err, apperrors.ErrInvalidState) {
					rt.Fatalf("%s from %s: expected invalid state, got %v", event, model, err)
				}
				return
			}
			if err != nil {
				rt.Fatalf("%s from %s: unexpected error %v", event, model, err)
			}
			model = next
		}

		rt.Repeat(map[string]func(*rapid.T){
			"start": func(rt *rapid.T) {
				_, err := h.uc.Start(ctx)
				expect(rt, domain.EventStart, err)
			},
			"stop": func(rt *rapid.T) {
				_, err := h.uc.Stop(ctx)
				expect(rt, domain.EventStop, err)
			},
			"resume": func(rt *rapid.T) {
				_, err := h.uc.Resume(ctx)
				expect(rt, domain.EventResume, err)
			},
			"end": func(rt *rapid.T) {
				before := model
				_, err := h.uc.End(ctx, workoutdto.EndInput{})
				expect(rt, domain.EventEnd, err)
				if err == nil && before != domain.StateIdle {
					recorded++
				}
			},
			"type": func(rt *rapid.T) {
				workoutType := rapid.SampledFrom([]string{"walking", "running", "cycling", "strength", "yoga", "other"}).Draw(rt, "type")
				status, err := h.uc.SetWorkoutType(ctx, workoutType)
				if err != nil {
					rt.Fatalf("set type: %v", err)
				}
				if status.State != string(model) {
					rt.Fatalf("set type must not change state: %s vs %s", status.State, model)
				}
			},
			"tick": func(rt *rapid.T) {
				h.clock.Advance(time.Duration(rapid.Int64Range(0, 3600).Draw(rt, "seconds")) * time.Second)
			},
			"": func(rt *rapid.T) {
				status, err := h.uc.Status(ctx)
				if err != nil {
					rt.Fatalf("status: %v", err)
				}
				if status.State != string(model) {
					rt.Fatalf("controller in %s, model in %s", status.State, model)
				}
				if (status.Session == nil) != (model == domain.StateIdle) {
					rt.Fatalf("session presence must match state %s", model)
				}
				if h.history.count() != recorded {
					rt.Fatalf("expected %d recorded sessions, got %d", recorded, h.history.count())
				}
				for _, record := range h.history.appended {
					if record.EndTime.Before(record.StartTime) {
						rt.Fatalf("record %s ends before it starts", record.ID)
					}
				}
			},
		})
	})
}
