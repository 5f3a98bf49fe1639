package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	goalin "watchtrainer/internal/modules/goal/port/in"
	historydomain "watchtrainer/internal/modules/history/domain"
	historydto "watchtrainer/internal/modules/history/dto"
	historyin "watchtrainer/internal/modules/history/port/in"
	"watchtrainer/internal/modules/workout/domain"
	workoutdto "watchtrainer/internal/modules/workout/dto"
	workoutin "watchtrainer/internal/modules/workout/port/in"
	workoutout "watchtrainer/internal/modules/workout/port/out"
	"watchtrainer/internal/modules/workout/service"
	apperrors "watchtrainer/internal/platform/errors"
)

type Dependencies struct {
	Service     *service.WorkoutService
	Store       workoutout.StateStore
	Snapshots   workoutout.SnapshotSource
	History     historyin.Usecase
	Goals       goalin.Usecase
	Journal     workoutout.Journal
	Observers   []workoutout.Observer
	DefaultType historydomain.WorkoutType
}

// Interactor is the session lifecycle controller. Every transition runs in
// one critical section against the persisted tracker, held across processes
// by the state store lock.
type Interactor struct {
	mu          sync.Mutex
	svc         *service.WorkoutService
	store       workoutout.StateStore
	snapshots   workoutout.SnapshotSource
	history     historyin.Usecase
	goals       goalin.Usecase
	journal     workoutout.Journal
	observers   []workoutout.Observer
	defaultType historydomain.WorkoutType
}

func NewInteractor(deps Dependencies) workoutin.Usecase {
	defaultType := deps.DefaultType
	if defaultType == "" {
		defaultType = historydomain.WorkoutWalking
	}
	return &Interactor{
		svc:         deps.Service,
		store:       deps.Store,
		snapshots:   deps.Snapshots,
		history:     deps.History,
		goals:       deps.Goals,
		journal:     deps.Journal,
		observers:   deps.Observers,
		defaultType: defaultType,
	}
}

func (i *Interactor) Start(ctx context.Context) (workoutdto.SessionOutput, error) {
	release, err := i.lock(ctx)
	if err != nil {
		return workoutdto.SessionOutput{}, err
	}
	defer release()

	tracker, err := i.load(ctx)
	if err != nil {
		return workoutdto.SessionOutput{}, err
	}
	if _, err := domain.Next(tracker.State(), domain.EventStart); err != nil {
		return workoutdto.SessionOutput{}, err
	}
	active := i.svc.Start(tracker.SelectedType, i.latest(ctx))
	tracker.Session = &active
	if err := i.store.Save(ctx, tracker); err != nil {
		return workoutdto.SessionOutput{}, err
	}
	i.transitioned(domain.StateIdle, domain.StateActive, active.WorkoutType)
	return i.sessionOutput(active), nil
}

func (i *Interactor) Stop(ctx context.Context) (workoutdto.SessionOutput, error) {
	return i.move(ctx, domain.EventStop)
}

func (i *Interactor) Resume(ctx context.Context) (workoutdto.SessionOutput, error) {
	return i.move(ctx, domain.EventResume)
}

func (i *Interactor) move(ctx context.Context, event domain.Event) (workoutdto.SessionOutput, error) {
	release, err := i.lock(ctx)
	if err != nil {
		return workoutdto.SessionOutput{}, err
	}
	defer release()

	tracker, err := i.load(ctx)
	if err != nil {
		return workoutdto.SessionOutput{}, err
	}
	from := tracker.State()
	to, err := domain.Next(from, event)
	if err != nil {
		return workoutdto.SessionOutput{}, err
	}
	tracker.Session.State = to
	if err := i.store.Save(ctx, tracker); err != nil {
		return workoutdto.SessionOutput{}, err
	}
	i.transitioned(from, to, tracker.Session.WorkoutType)
	return i.sessionOutput(*tracker.Session), nil
}

// End finalizes the current session. When the history append fails the
// session stays current so End can be retried. A retry after the append
// succeeded reuses the stored record instead of appending it again.
func (i *Interactor) End(ctx context.Context, input workoutdto.EndInput) (workoutdto.EndOutput, error) {
	release, err := i.lock(ctx)
	if err != nil {
		return workoutdto.EndOutput{}, err
	}
	defer release()

	tracker, err := i.load(ctx)
	if err != nil {
		return workoutdto.EndOutput{}, err
	}
	from := tracker.State()
	if _, err := domain.Next(from, domain.EventEnd); err != nil {
		return workoutdto.EndOutput{}, err
	}

	session, err := i.record(ctx, *tracker.Session, input.Notes)
	if err != nil {
		return workoutdto.EndOutput{}, err
	}

	out := toEndOutput(session)
	if i.goals != nil {
		refresh, err := i.goals.RefreshProgress(ctx)
		if err != nil {
			log.WithError(err).WithField("session_id", session.ID).Warn("goal refresh after workout failed")
			out.GoalsStale = true
		}
		for _, goal := range refresh.Completed {
			out.CompletedGoals = append(out.CompletedGoals, goal.Type)
		}
	}

	tracker.Session = nil
	if err := i.store.Save(ctx, tracker); err != nil {
		return workoutdto.EndOutput{}, fmt.Errorf("clear active workout %s: %w", session.ID, err)
	}

	if i.journal != nil {
		path, err := i.journal.Write(ctx, session)
		if err != nil {
			log.WithError(err).WithField("session_id", session.ID).Warn("write workout journal")
		}
		out.JournalPath = path
	}

	i.transitioned(from, domain.StateIdle, session.WorkoutType)
	for _, observer := range i.observers {
		observer.Completed(session)
	}
	return out, nil
}

// record appends the finished session to history, or returns the stored copy
// when an earlier End got as far as the append.
func (i *Interactor) record(ctx context.Context, active domain.ActiveSession, notes string) (historydomain.Session, error) {
	stored, err := i.history.Get(ctx, active.ID)
	switch {
	case err == nil:
		log.WithField("session_id", active.ID).Info("workout already recorded, clearing active session")
		return fromStored(stored), nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return historydomain.Session{}, err
	}

	latest, err := i.snapshots.Latest(ctx)
	if err != nil {
		return historydomain.Session{}, fmt.Errorf("read health snapshot: %w", err)
	}
	session := i.svc.Finish(active, latest, notes)
	if _, err := i.history.Append(ctx, toAppendInput(session)); err != nil {
		return historydomain.Session{}, err
	}
	return session, nil
}

func (i *Interactor) SetWorkoutType(ctx context.Context, raw string) (workoutdto.StatusOutput, error) {
	workoutType, err := historydomain.ParseWorkoutType(raw)
	if err != nil {
		return workoutdto.StatusOutput{}, err
	}

	release, err := i.lock(ctx)
	if err != nil {
		return workoutdto.StatusOutput{}, err
	}
	defer release()

	tracker, err := i.load(ctx)
	if err != nil {
		return workoutdto.StatusOutput{}, err
	}
	tracker.SelectedType = workoutType
	if tracker.Session != nil {
		tracker.Session.WorkoutType = workoutType
	}
	if err := i.store.Save(ctx, tracker); err != nil {
		return workoutdto.StatusOutput{}, err
	}
	return i.status(ctx, tracker), nil
}

func (i *Interactor) Status(ctx context.Context) (workoutdto.StatusOutput, error) {
	release, err := i.lock(ctx)
	if err != nil {
		return workoutdto.StatusOutput{}, err
	}
	defer release()

	tracker, err := i.load(ctx)
	if err != nil {
		return workoutdto.StatusOutput{}, err
	}
	return i.status(ctx, tracker), nil
}

// lock serializes transitions within this process and, through the state
// store, with every other controller sharing the same state.
func (i *Interactor) lock(ctx context.Context) (func(), error) {
	i.mu.Lock()
	unlock, err := i.store.Lock(ctx)
	if err != nil {
		i.mu.Unlock()
		return nil, err
	}
	return func() {
		unlock()
		i.mu.Unlock()
	}, nil
}

func (i *Interactor) load(ctx context.Context) (domain.Tracker, error) {
	tracker, err := i.store.Load(ctx)
	if err != nil {
		return domain.Tracker{}, err
	}
	if tracker.SelectedType == "" {
		tracker.SelectedType = i.defaultType
	}
	return tracker, nil
}

// latest is best effort: a missing reading only affects the delta baseline.
func (i *Interactor) latest(ctx context.Context) domain.Snapshot {
	snapshot, err := i.snapshots.Latest(ctx)
	if err != nil {
		log.WithError(err).Warn("health snapshot unavailable")
		return domain.Snapshot{}
	}
	return snapshot
}

func (i *Interactor) transitioned(from, to domain.State, workoutType historydomain.WorkoutType) {
	for _, observer := range i.observers {
		observer.Transitioned(from, to, workoutType)
	}
}

func (i *Interactor) status(ctx context.Context, tracker domain.Tracker) workoutdto.StatusOutput {
	snapshot := i.latest(ctx)
	out := workoutdto.StatusOutput{
		State:        string(tracker.State()),
		SelectedType: string(tracker.SelectedType),
		Snapshot: workoutdto.SnapshotOutput{
			Steps:     snapshot.Steps,
			HeartRate: snapshot.HeartRate,
			Calories:  snapshot.Calories,
			Distance:  snapshot.Distance,
		},
	}
	if tracker.Session != nil {
		session := i.sessionOutput(*tracker.Session)
		out.Session = &session
	}
	return out
}

func (i *Interactor) sessionOutput(active domain.ActiveSession) workoutdto.SessionOutput {
	return workoutdto.SessionOutput{
		ID:          active.ID,
		State:       string(active.State),
		WorkoutType: string(active.WorkoutType),
		StartTime:   active.StartTime,
		ElapsedMS:   i.svc.Elapsed(active).Milliseconds(),
	}
}

func toAppendInput(s historydomain.Session) historydto.AppendInput {
	return historydto.AppendInput{
		ID:               s.ID,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		WorkoutType:      string(s.WorkoutType),
		TotalSteps:       s.TotalSteps,
		AverageHeartRate: s.AverageHeartRate,
		CaloriesBurned:   s.CaloriesBurned,
		Distance:         s.Distance,
		Notes:            s.Notes,
	}
}

func fromStored(s historydto.SessionOutput) historydomain.Session {
	return historydomain.Session{
		ID:               s.ID,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		WorkoutType:      historydomain.WorkoutType(s.WorkoutType),
		TotalSteps:       s.TotalSteps,
		AverageHeartRate: s.AverageHeartRate,
		CaloriesBurned:   s.CaloriesBurned,
		Distance:         s.Distance,
		Notes:            s.Notes,
	}
}

func toEndOutput(s historydomain.Session) workoutdto.EndOutput {
	return workoutdto.EndOutput{
		ID:             s.ID,
		WorkoutType:    string(s.WorkoutType),
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		DurationMS:     s.Duration().Milliseconds(),
		TotalSteps:     s.TotalSteps,
		AverageHR:      s.AverageHeartRate,
		CaloriesBurned: s.CaloriesBurned,
		Distance:       s.Distance,
		Notes:          s.Notes,
		CompletedGoals: []string{},
	}
}
