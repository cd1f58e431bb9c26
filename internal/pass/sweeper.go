package pass

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/anygymuk/anygymAPI/internal/logger"
)

const sweepSchedule = "@every 1m"

// Sweeper transitions overdue passes to expired on a fixed schedule. It is
// the only writer of pass status. A failed sweep is logged and retried on
// the next tick.
type Sweeper struct {
	service Service
	cron    *cron.Cron
}

func NewSweeper(service Service) *Sweeper {
	return &Sweeper{
		service: service,
		cron:    cron.New(cron.WithLocation(time.UTC)),
	}
}

func (s *Sweeper) Start() error {
	_, err := s.cron.AddFunc(sweepSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		expired, err := s.service.SweepExpiredPasses(ctx)
		if err != nil {
			logger.Errorf("Pass expiration sweep failed: %v", err)
			return
		}
		if expired > 0 {
			logger.Infof("Expired %d overdue passes", expired)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("Pass expiration sweeper started")
	return nil
}

func (s *Sweeper) Stop() {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(2 * time.Second):
	}
	logger.Info("Pass expiration sweeper stopped")
}
