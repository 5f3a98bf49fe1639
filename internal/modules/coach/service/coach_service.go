package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"watchtrainer/internal/modules/coach/domain"
	coachout "watchtrainer/internal/modules/coach/port/out"
)

const DefaultTimeout = 5 * time.Second

type Result struct {
	Kind   domain.Kind
	Text   string
	Source domain.Source
}

type Options struct {
	// Generator may be nil; every request then uses the built-in text.
	Generator coachout.Generator
	Timeout   time.Duration
	Recorder  coachout.FallbackRecorder
	// Pick chooses a quote index in [0, n).
	Pick func(n int) int
}

type CoachService struct {
	generator coachout.Generator
	timeout   time.Duration
	recorder  coachout.FallbackRecorder
	pick      func(n int) int
}

func NewCoachService(opts Options) *CoachService {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Pick == nil {
		opts.Pick = rand.IntN
	}
	return &CoachService{
		generator: opts.Generator,
		timeout:   opts.Timeout,
		recorder:  opts.Recorder,
		pick:      opts.Pick,
	}
}

func (s *CoachService) Message(ctx context.Context, c domain.Context) Result {
	return s.generate(ctx, domain.KindMessage, c, domain.FallbackMessage(c))
}

func (s *CoachService) Tip(ctx context.Context, workoutType string) Result {
	return s.generate(ctx, domain.KindTip, domain.Context{WorkoutType: workoutType}, domain.DefaultTip(workoutType))
}

func (s *CoachService) Quote(ctx context.Context) Result {
	return s.generate(ctx, domain.KindQuote, domain.Context{}, domain.Quote(s.pick))
}

func (s *CoachService) generate(ctx context.Context, kind domain.Kind, c domain.Context, fallback string) Result {
	if s.generator == nil {
		return s.fallback(kind, fallback)
	}
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(callCtx, domain.Request{Kind: kind, Prompt: domain.Prompt(kind, c), Context: c})
	if err != nil {
		log.WithError(err).WithField("kind", kind).Debug("coach: generator failed, using built-in text")
		return s.fallback(kind, fallback)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.WithField("kind", kind).Debug("coach: generator returned no text, using built-in text")
		return s.fallback(kind, fallback)
	}
	return Result{Kind: kind, Text: text, Source: domain.SourcePlugin}
}

func (s *CoachService) fallback(kind domain.Kind, text string) Result {
	if s.recorder != nil {
		s.recorder.Fallback(kind)
	}
	return Result{Kind: kind, Text: text, Source: domain.SourceFallback}
}
