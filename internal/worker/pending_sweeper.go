package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Ledger exposes the subset of application functionality required by the sweeper.
type Ledger interface {
	SweepPendingTransactions(ctx context.Context, cutoff time.Time) (int64, error)
}

// PendingSweeper periodically expires staged payment transactions whose payer
// never returned from the gateway redirect. Without it the ledger grows
// without bound.
type PendingSweeper struct {
	ledger   Ledger
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPendingSweeper constructs the sweeper.
func NewPendingSweeper(ledger Ledger, interval, ttl time.Duration, logger *slog.Logger) *PendingSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &PendingSweeper{
		ledger:   ledger,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

// Start launches background sweeping.
func (s *PendingSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweeper to finish.
func (s *PendingSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *PendingSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *PendingSweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.ttl)
	swept, err := s.ledger.SweepPendingTransactions(ctx, cutoff)
	if err != nil {
		s.logger.Error("pending transaction sweep failed", slog.String("error", err.Error()))
		return
	}
	if swept > 0 {
		s.logger.Info("expired pending transactions swept", slog.Int64("count", swept))
	}
}
