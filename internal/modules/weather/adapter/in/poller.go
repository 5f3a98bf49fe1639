package in

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	weatherin "watchtrainer/internal/modules/weather/port/in"
)

// Poller refreshes the weather stream on a fixed interval.
type Poller struct {
	usecase  weatherin.Usecase
	interval time.Duration
}

func NewPoller(usecase weatherin.Usecase, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Poller{usecase: usecase, interval: interval}
}

// Run fetches immediately, then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		current, err := p.usecase.Current(ctx)
		if err != nil {
			log.WithError(err).Warn("weather poll failed")
		} else {
			log.WithFields(log.Fields{"city": current.City, "temp": current.Temperature, "condition": current.Condition}).Debug("weather polled")
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
