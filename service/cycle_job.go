package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartCycleJob drives the engine: once per interval it runs a
// clearing cycle, truncates the journal past the drained batch and
// advances the period window. advance may be nil when the period
// lifecycle is driven elsewhere.
//
// A failed cycle is logged and counted, never retried: settlement for
// the periods already processed stands, and the surrounding system
// owns the retry/fatal decision.
func (s *ClearingService) StartCycleJob(
	ctx context.Context,
	interval time.Duration,
	advance func(),
) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-t.C:
				if err := s.RunCycle(); err != nil {
					cycleFailures.Inc()
					s.log.Error("clearing cycle failed", zap.Error(err))
					continue
				}
				s.checkpointJournal()
				if advance != nil {
					advance()
				}
			}
		}
	}()
}
