package out

import (
	"context"

	"watchtrainer/internal/modules/weather/domain"
)

type Provider interface {
	Current(ctx context.Context, city string) (domain.Weather, error)
}
