package usecase

import (
	"context"
	"time"

	"github.com/davidNdantsi/DSA-Assignment2-2025/internal/pkg/logger"
	"github.com/davidNdantsi/DSA-Assignment2-2025/services/ticketing"
)

const defaultSweepInterval = 5 * time.Minute

// Sweeper periodically expires stale tickets
type Sweeper struct {
	ticketUC ticketing.TicketUC
	interval time.Duration
}

// NewSweeper creates a sweeper running every interval
func NewSweeper(ticketUC ticketing.TicketUC, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{ticketUC: ticketUC, interval: interval}
}

// Run sweeps on every tick until ctx is done
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Info("Ticket expiry sweeper started", logger.Duration("interval", s.interval))
	for {
		select {
		case <-ticker.C:
			if _, err := s.ticketUC.ExpireStale(ctx); err != nil {
				logger.Error("Scheduled ticket sweep failed", logger.Err(err))
			}
		case <-ctx.Done():
			logger.Info("Ticket expiry sweeper stopped")
			return
		}
	}
}
