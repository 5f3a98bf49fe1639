package usecase

import (
	"context"

	historydomain "watchtrainer/internal/modules/history/domain"
	placesdto "watchtrainer/internal/modules/places/dto"
	placesin "watchtrainer/internal/modules/places/port/in"
	"watchtrainer/internal/modules/places/service"
)

type Interactor struct {
	svc *service.PlacesService
}

func NewInteractor(svc *service.PlacesService) placesin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Suggest(ctx context.Context, rawType string) (placesdto.SuggestionOutput, error) {
	workoutType, err := historydomain.ParseWorkoutType(rawType)
	if err != nil {
		return placesdto.SuggestionOutput{}, err
	}
	suggestion := i.svc.Suggest(ctx, workoutType)
	out := placesdto.SuggestionOutput{
		WorkoutType: string(suggestion.WorkoutType),
		Indoor:      suggestion.Indoor,
		Weather:     suggestion.Weather,
		VenueTypes:  suggestion.VenueTypes,
		Places:      make([]placesdto.PlaceOutput, 0, len(suggestion.Places)),
	}
	for _, p := range suggestion.Places {
		out.Places = append(out.Places, placesdto.PlaceOutput{
			Name:    p.Name,
			Address: p.Address,
			Type:    string(p.Type),
			Indoor:  p.Indoor,
			Reason:  p.Reason,
		})
	}
	return out, nil
}
