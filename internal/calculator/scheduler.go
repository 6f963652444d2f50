package calculator

import (
	"context"
	"errors"
	"sync"
	"time"

	"poeconv/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultRefreshInterval = 5 * time.Minute
	refreshTimeout         = 30 * time.Second
)

type CatalogRefresher interface {
	RefreshCatalog(ctx context.Context) (bool, error)
}

// Scheduler periodically refetches the catalog of the active league.
type Scheduler struct {
	refresher CatalogRefresher
	interval  time.Duration

	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func(jobCtx context.Context) {
			RefreshActiveCatalog(jobCtx, uuid.NewString(), s.refresher)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

// RefreshActiveCatalog runs one refresh. A session that is not ready yet is skipped quietly.
func RefreshActiveCatalog(ctx context.Context, execID string, refresher CatalogRefresher) {
	runCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	applied, err := refresher.RefreshCatalog(runCtx)
	switch {
	case errors.Is(err, domain.ErrSessionNotReady):
		logrus.Debugf("Catalog refresh skipped, session not ready; execID: %s", execID)
	case err != nil:
		logrus.WithError(err).WithField("exec_id", execID).Error("Catalog refresh failed")
	case !applied:
		logrus.Infof("Catalog refresh not applied, league changed or upstream failed; execID: %s", execID)
	default:
		logrus.Infof("Catalog refreshed; execID: %s", execID)
	}
}

func NewScheduler(refresher CatalogRefresher, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Scheduler{refresher: refresher, interval: interval}
}
