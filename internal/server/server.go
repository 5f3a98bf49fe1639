package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	coachinadapter "watchtrainer/internal/modules/coach/adapter/in"
	feedinadapter "watchtrainer/internal/modules/feed/adapter/in"
	goalinadapter "watchtrainer/internal/modules/goal/adapter/in"
	historyinadapter "watchtrainer/internal/modules/history/adapter/in"
	placesinadapter "watchtrainer/internal/modules/places/adapter/in"
	statsinadapter "watchtrainer/internal/modules/stats/adapter/in"
	weatherinadapter "watchtrainer/internal/modules/weather/adapter/in"
	workoutinadapter "watchtrainer/internal/modules/workout/adapter/in"
	"watchtrainer/internal/telemetry/metrics"
)

const shutdownTimeout = 15 * time.Second

// Handlers holds the HTTP adapters; a nil handler leaves its routes unregistered.
type Handlers struct {
	Workout *workoutinadapter.HTTPHandler
	Goal    *goalinadapter.HTTPHandler
	Stats   *statsinadapter.HTTPHandler
	History *historyinadapter.HTTPHandler
	Feed    *feedinadapter.HTTPHandler
	Weather *weatherinadapter.HTTPHandler
	Places  *placesinadapter.HTTPHandler
	Coach   *coachinadapter.HTTPHandler
}

type Params struct {
	Addr           string
	AllowedOrigins []string
	Metrics        *metrics.Manager
	Registry       *prometheus.Registry
}

type Server struct {
	params     Params
	httpServer *http.Server
}

func New(params Params, handlers Handlers) *Server {
	router := NewRouter(handlers, params.Metrics, params.Registry)
	c := cors.New(cors.Options{
		AllowedOrigins: params.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	})
	s := &Server{params: params}
	s.httpServer = &http.Server{
		Addr:         params.Addr,
		Handler:      c.Handler(router),
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		ConnState:    s.connStateMetrics,
	}
	return s
}

func NewRouter(h Handlers, metricsManager *metrics.Manager, registry *prometheus.Registry) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	if h.Workout != nil {
		api.HandleFunc("/workout", h.Workout.HandleStatus).Methods(http.MethodGet).Name("workout-status")
		api.HandleFunc("/workout/start", h.Workout.HandleStart).Methods(http.MethodPost).Name("workout-start")
		api.HandleFunc("/workout/stop", h.Workout.HandleStop).Methods(http.MethodPost).Name("workout-stop")
		api.HandleFunc("/workout/resume", h.Workout.HandleResume).Methods(http.MethodPost).Name("workout-resume")
		api.HandleFunc("/workout/end", h.Workout.HandleEnd).Methods(http.MethodPost).Name("workout-end")
		api.HandleFunc("/workout/type", h.Workout.HandleSetType).Methods(http.MethodPut).Name("workout-type")
	}
	if h.Goal != nil {
		api.HandleFunc("/goals", h.Goal.HandleList).Methods(http.MethodGet).Name("goal-list")
		api.HandleFunc("/goals", h.Goal.HandleCreate).Methods(http.MethodPost).Name("goal-create")
		api.HandleFunc("/goals/refresh", h.Goal.HandleRefresh).Methods(http.MethodPost).Name("goal-refresh")
	}
	if h.Stats != nil {
		api.HandleFunc("/stats", h.Stats.HandleStats).Methods(http.MethodGet).Name("stats")
		api.HandleFunc("/stats/week", h.Stats.HandleWeek).Methods(http.MethodGet).Name("stats-week")
	}
	if h.History != nil {
		api.HandleFunc("/sessions", h.History.HandleList).Methods(http.MethodGet).Name("history-list")
	}
	if h.Feed != nil {
		api.HandleFunc("/feed", h.Feed.HandleLatest).Methods(http.MethodGet).Name("feed-latest")
		api.HandleFunc("/feed", h.Feed.HandlePublish).Methods(http.MethodPost).Name("feed-publish")
	}
	if h.Weather != nil {
		api.HandleFunc("/weather", h.Weather.HandleCurrent).Methods(http.MethodGet).Name("weather")
	}
	if h.Places != nil {
		api.HandleFunc("/places", h.Places.HandleSuggest).Methods(http.MethodGet).Name("places")
	}
	if h.Coach != nil {
		api.HandleFunc("/coach/message", h.Coach.HandleMessage).Methods(http.MethodGet).Name("coach-message")
		api.HandleFunc("/coach/tip", h.Coach.HandleTip).Methods(http.MethodGet).Name("coach-tip")
		api.HandleFunc("/coach/quote", h.Coach.HandleQuote).Methods(http.MethodGet).Name("coach-quote")
	}

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet).Name("metrics")
	}
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet).Name("healthz")

	r.Use(PanicRecovery(metricsManager))
	r.Use(LogRequest())
	if metricsManager != nil {
		r.Use(RequestMetrics(metricsManager))
	}
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.params.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("server listening on: [%s]", listener.Addr())
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Debug("graceful shutdown initiated")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server shut down")
	return <-errCh
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	if s.params.Metrics == nil {
		return
	}
	switch state {
	case http.StateNew:
		s.params.Metrics.GaugeRequests.Add(1)
	case http.StateClosed:
		s.params.Metrics.GaugeRequests.Add(-1)
	}
}
