package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	coachinadapter "watchtrainer/internal/modules/coach/adapter/in"
	coachoutadapter "watchtrainer/internal/modules/coach/adapter/out"
	coachservice "watchtrainer/internal/modules/coach/service"
	coachusecase "watchtrainer/internal/modules/coach/usecase"
	feedinadapter "watchtrainer/internal/modules/feed/adapter/in"
	feedoutadapter "watchtrainer/internal/modules/feed/adapter/out"
	feedin "watchtrainer/internal/modules/feed/port/in"
	feedservice "watchtrainer/internal/modules/feed/service"
	feedusecase "watchtrainer/internal/modules/feed/usecase"
	goalinadapter "watchtrainer/internal/modules/goal/adapter/in"
	goaloutadapter "watchtrainer/internal/modules/goal/adapter/out"
	goalservice "watchtrainer/internal/modules/goal/service"
	goalusecase "watchtrainer/internal/modules/goal/usecase"
	historyinadapter "watchtrainer/internal/modules/history/adapter/in"
	historyoutadapter "watchtrainer/internal/modules/history/adapter/out"
	historydomain "watchtrainer/internal/modules/history/domain"
	historyservice "watchtrainer/internal/modules/history/service"
	historyusecase "watchtrainer/internal/modules/history/usecase"
	placesinadapter "watchtrainer/internal/modules/places/adapter/in"
	placesoutadapter "watchtrainer/internal/modules/places/adapter/out"
	placesservice "watchtrainer/internal/modules/places/service"
	placesusecase "watchtrainer/internal/modules/places/usecase"
	statsinadapter "watchtrainer/internal/modules/stats/adapter/in"
	statsoutadapter "watchtrainer/internal/modules/stats/adapter/out"
	statsservice "watchtrainer/internal/modules/stats/service"
	statsusecase "watchtrainer/internal/modules/stats/usecase"
	weatherinadapter "watchtrainer/internal/modules/weather/adapter/in"
	weatheroutadapter "watchtrainer/internal/modules/weather/adapter/out"
	weatherin "watchtrainer/internal/modules/weather/port/in"
	weatherservice "watchtrainer/internal/modules/weather/service"
	weatherusecase "watchtrainer/internal/modules/weather/usecase"
	workoutinadapter "watchtrainer/internal/modules/workout/adapter/in"
	workoutoutadapter "watchtrainer/internal/modules/workout/adapter/out"
	workoutdomain "watchtrainer/internal/modules/workout/domain"
	workoutout "watchtrainer/internal/modules/workout/port/out"
	workoutservice "watchtrainer/internal/modules/workout/service"
	workoutusecase "watchtrainer/internal/modules/workout/usecase"
	"watchtrainer/internal/platform/clock"
	"watchtrainer/internal/platform/config"
	"watchtrainer/internal/platform/id"
	"watchtrainer/internal/platform/sqlitedb"
	"watchtrainer/internal/platform/tx"
	"watchtrainer/internal/server"
	"watchtrainer/internal/telemetry/metrics"
)

type App struct {
	Config   config.Config
	Metrics  *metrics.Manager
	Registry *prometheus.Registry

	WorkoutCLI workoutinadapter.CLIHandler
	GoalCLI    goalinadapter.CLIHandler
	StatsCLI   statsinadapter.CLIHandler
	HistoryCLI historyinadapter.CLIHandler
	FeedCLI    feedinadapter.CLIHandler
	WeatherCLI weatherinadapter.CLIHandler
	PlacesCLI  placesinadapter.CLIHandler
	CoachCLI   coachinadapter.CLIHandler

	HTTP server.Handlers

	db      *sql.DB
	feed    feedin.Usecase
	weather weatherin.Usecase
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	clk := clock.SystemClock{Location: cfg.Location}
	registry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("watchtrainer", "app", registry)

	db, err := sqlitedb.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	historyStore, err := historyoutadapter.NewSQLiteSessionStore(ctx, db, cfg.Location)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("new session store: %w", err)
	}
	historyUC := historyusecase.NewInteractor(historyservice.NewHistoryService(historyStore))

	goalStore, err := goaloutadapter.NewSQLiteGoalStore(ctx, db, cfg.Location)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("new goal store: %w", err)
	}
	goalUC := goalusecase.NewInteractor(
		goalservice.NewGoalService(clk, goalStore, goaloutadapter.NewHistoryAggregates(historyUC), tx.NewSQLManager(db)),
		clk,
	)

	statsUC := statsusecase.NewInteractor(statsservice.NewStatsService(clk, statsoutadapter.NewHistorySource(historyUC)))

	feedUC := feedusecase.NewInteractor(feedservice.NewFeedService(clk, feedoutadapter.NewJSONSnapshotStore(cfg.FeedPath)))

	weatherUC := weatherusecase.NewInteractor(weatherservice.NewWeatherService(
		clk,
		weatheroutadapter.NewOpenWeather(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.CacheTTL, &http.Client{Timeout: 10 * time.Second}),
		cfg.Weather.City,
	))

	mode, err := workoutdomain.ParseSnapshotMode(cfg.SnapshotMode)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	defaultType, err := historydomain.ParseWorkoutType(cfg.DefaultWorkoutType)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("default_workout_type: %w", err)
	}
	workoutUC := workoutusecase.NewInteractor(workoutusecase.Dependencies{
		Service:     workoutservice.NewWorkoutService(clk, id.UUID{}, mode),
		Store:       workoutoutadapter.NewFileStateStore(cfg.ActiveSessionPath),
		Snapshots:   workoutoutadapter.NewFeedSnapshots(feedUC),
		History:     historyUC,
		Goals:       goalUC,
		Journal:     workoutoutadapter.NewMarkdownJournal(cfg.JournalDir),
		Observers:   []workoutout.Observer{workoutoutadapter.NewLogObserver(), workoutoutadapter.NewMetricsObserver(metricsManager)},
		DefaultType: defaultType,
	})

	placesUC := placesusecase.NewInteractor(placesservice.NewPlacesService(placesoutadapter.NewWeatherConditions(weatherUC)))

	coachOpts := coachservice.Options{
		Timeout:  cfg.Coach.Timeout,
		Recorder: coachoutadapter.NewMetricsRecorder(metricsManager),
	}
	if cfg.Coach.Plugin != "" {
		coachOpts.Generator = coachoutadapter.NewGRPCGenerator(cfg.Coach.Plugin)
	}
	coachUC := coachusecase.NewInteractor(coachservice.NewCoachService(coachOpts), coachusecase.Sources{
		Activity: coachoutadapter.NewWorkoutActivity(workoutUC),
		Health:   coachoutadapter.NewFeedHealth(feedUC),
		Weather:  coachoutadapter.NewLatestWeather(weatherUC),
	})

	return &App{
		Config:   cfg,
		Metrics:  metricsManager,
		Registry: registry,

		WorkoutCLI: workoutinadapter.NewCLIHandler(workoutUC),
		GoalCLI:    goalinadapter.NewCLIHandler(goalUC),
		StatsCLI:   statsinadapter.NewCLIHandler(statsUC),
		HistoryCLI: historyinadapter.NewCLIHandler(historyUC),
		FeedCLI:    feedinadapter.NewCLIHandler(feedUC),
		WeatherCLI: weatherinadapter.NewCLIHandler(weatherUC),
		PlacesCLI:  placesinadapter.NewCLIHandler(placesUC),
		CoachCLI:   coachinadapter.NewCLIHandler(coachUC),

		HTTP: server.Handlers{
			Workout: workoutinadapter.NewHTTPHandler(workoutUC),
			Goal:    goalinadapter.NewHTTPHandler(goalUC),
			Stats:   statsinadapter.NewHTTPHandler(statsUC),
			History: historyinadapter.NewHTTPHandler(historyUC, clk.Now),
			Feed:    feedinadapter.NewHTTPHandler(feedUC),
			Weather: weatherinadapter.NewHTTPHandler(weatherUC),
			Places:  placesinadapter.NewHTTPHandler(placesUC),
			Coach:   coachinadapter.NewHTTPHandler(coachUC),
		},

		db:      db,
		feed:    feedUC,
		weather: weatherUC,
	}, nil
}

// Serve runs the HTTP API, the feed file watcher and the weather poller until
// ctx is cancelled or one of them fails.
func (a *App) Serve(ctx context.Context) error {
	srv := server.New(server.Params{
		Addr:           a.Config.HTTP.Addr,
		AllowedOrigins: a.Config.HTTP.AllowedOrigins,
		Metrics:        a.Metrics,
		Registry:       a.Registry,
	}, a.HTTP)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return feedinadapter.NewWatcher(a.feed, a.Config.FeedPath).Run(gctx) })
	g.Go(func() error { return weatherinadapter.NewPoller(a.weather, a.Config.Weather.PollInterval).Run(gctx) })
	return g.Wait()
}

func (a *App) Close() error {
	log.Debug("closing app")
	a.feed.Close()
	a.weather.Close()
	var err error
	if a.db != nil {
		err = multierr.Append(err, a.db.Close())
	}
	return err
}
