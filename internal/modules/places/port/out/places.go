package out

import (
	"context"

	"watchtrainer/internal/modules/places/domain"
)

type ConditionsSource interface {
	// Current returns the conditions and a one-line description of them.
	Current(ctx context.Context) (domain.Conditions, string, error)
}
