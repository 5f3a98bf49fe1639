package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	historydomain "watchtrainer/internal/modules/history/domain"
	"watchtrainer/internal/modules/places/domain"
	placesout "watchtrainer/internal/modules/places/port/out"
)

type Suggestion struct {
	WorkoutType historydomain.WorkoutType
	Indoor      bool
	Weather     string
	VenueTypes  []string
	Places      []domain.Place
}

type PlacesService struct {
	conditions placesout.ConditionsSource
}

func NewPlacesService(conditions placesout.ConditionsSource) *PlacesService {
	return &PlacesService{conditions: conditions}
}

func (s *PlacesService) Suggest(ctx context.Context, workoutType historydomain.WorkoutType) Suggestion {
	suggestion := Suggestion{WorkoutType: workoutType, Weather: "unknown"}
	if s.conditions != nil {
		conditions, summary, err := s.conditions.Current(ctx)
		if err != nil {
			log.WithError(err).Warn("places: weather unavailable, assuming outdoor conditions")
		} else {
			suggestion.Indoor = domain.ShouldGoIndoor(conditions)
			suggestion.Weather = summary
		}
	}
	suggestion.VenueTypes = domain.VenueTypes(string(workoutType), suggestion.Indoor)
	suggestion.Places = domain.Offline(string(workoutType))
	return suggestion
}
