package sweeper

import (
	"context"
	"log"
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"coworking-reservation-backend/config"
	"coworking-reservation-backend/internal/notification"
	"coworking-reservation-backend/internal/store"
)

// Service periodically looks for rooms whose reservations have just ended and
// notifies their watchers that the room is free again.
type Service struct {
	cfg       *config.Config
	store     store.Store
	pool      *notification.WorkerPool
	lastSweep time.Time
}

// NewService creates and initializes a new sweeper service.
func NewService(cfg *config.Config, s store.Store) *Service {
	webpushOptions := webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	return &Service{
		cfg:       cfg,
		store:     s,
		pool:      notification.NewWorkerPool(cfg.WorkerPool.Size, s.DB(), &webpushOptions),
		lastSweep: time.Now(),
	}
}

// Run starts the sweep loop. It blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Sweeper.Enabled {
		log.Println("Sweeper is disabled. Not starting.")
		return
	}
	log.Println("Starting sweeper service...")

	s.pool.Start(ctx)

	ticker := time.NewTicker(s.cfg.Sweeper.Interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.SweepOnce(ctx, now)
		case <-ctx.Done():
			log.Println("Sweeper stopped.")
			return
		}
	}
}

// SweepOnce dispatches a notification for every room that had a reservation
// end since the previous sweep.
func (s *Service) SweepOnce(ctx context.Context, now time.Time) {
	roomIDs, err := s.store.ListRoomsFreedBetween(ctx, s.lastSweep, now)
	if err != nil {
		log.Printf("Sweep failed: %v", err)
		return
	}
	s.lastSweep = now

	for _, id := range roomIDs {
		s.pool.Dispatch(id)
	}
}

// Pool exposes the notification pool for testing.
func (s *Service) Pool() *notification.WorkerPool {
	return s.pool
}
