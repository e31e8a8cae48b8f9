package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"freyr/domain/auction"
	"freyr/infra/sequence"
	"freyr/infra/wal"
)

/*
ClearingService is the ONLY write entry point into the engine.

All coordination between:
- domain (auction)
- infra (wal, sequence)
- collaborators (registry, ledger, publisher)
happens here.

Submissions may arrive concurrently from any number of callers;
everything after the drain runs single-threaded and deterministic.
*/

var (
	ErrZeroQuantity = errors.New("order quantity must be nonzero")
	ErrPeriodClosed = errors.New("period not open for submission")
)

type ClearingService struct {
	in intake

	registry PeriodRegistry
	ledger   Ledger
	pub      Publisher
	params   auction.Params

	journal *wal.WAL // nil disables journaling (tests)
	seq     *sequence.Sequencer

	// submitMu orders sequence assignment, the journal append and the
	// buffer append as one unit, so journal records are strictly
	// seq-ordered on disk. Replay rejects a non-monotonic journal.
	submitMu sync.Mutex

	now func() time.Time
	log *zap.Logger

	// enabled is the set of periods eligible for clearing, snapshotted
	// at the END of the previous cycle. The one-cycle lag is deliberate:
	// a period that closes mid-cycle is still cleared once more.
	enabled []auction.Period

	// lastDrained is the highest submission sequence consumed by the
	// most recent cycle; the journal is truncated up to it. Written
	// only by RunCycle.
	lastDrained uint64

	booksMu sync.RWMutex
	books   map[auction.Period]*auction.OrderBook
}

// NewClearingService wires all dependencies. No globals.
func NewClearingService(
	registry PeriodRegistry,
	ledger Ledger,
	pub Publisher,
	params auction.Params,
	journal *wal.WAL,
	seq *sequence.Sequencer,
	log *zap.Logger,
) *ClearingService {
	return &ClearingService{
		registry: registry,
		ledger:   ledger,
		pub:      pub,
		params:   params,
		journal:  journal,
		seq:      seq,
		now:      time.Now,
		log:      log,
		books:    make(map[auction.Period]*auction.OrderBook),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Submit validates, journals and buffers an incoming order. Rejection
// is synchronous and leaves no trace; acceptance returns the assigned
// sequence. FIFO order per caller is preserved by the buffer.
func (s *ClearingService) Submit(o auction.Order) (uint64, error) {
	if o.Quantity == 0 {
		ordersRejected.Inc()
		return 0, ErrZeroQuantity
	}
	if !s.registry.IsOpen(o.Period) {
		ordersRejected.Inc()
		return 0, fmt.Errorf("%w: period %d", ErrPeriodClosed, o.Period)
	}

	s.submitMu.Lock()
	o.SeqID = s.seq.Next()

	if s.journal != nil {
		rec := wal.NewRecord(wal.RecordSubmit, o.SeqID, encodeSubmit(o))
		if err := s.journal.Append(rec); err != nil {
			s.submitMu.Unlock()
			return 0, fmt.Errorf("journal append: %w", err)
		}
	}

	s.in.append(o)
	s.submitMu.Unlock()

	ordersAccepted.Inc()
	return o.SeqID, nil
}

// restore re-buffers a journaled order during replay. No journaling,
// no fresh sequence. Orders whose period has since closed are dropped.
func (s *ClearingService) restore(o auction.Order) {
	if o.Quantity == 0 || !s.registry.IsOpen(o.Period) {
		s.log.Debug("dropping stale journal entry",
			zap.Uint64("seq", o.SeqID),
			zap.Int64("period", int64(o.Period)))
		return
	}
	s.in.append(o)
}

// RunCycle executes one clearing cycle: drain, partition, rank, and
// clear every eligible period. A collaborator failure aborts the cycle
// and propagates; periods already settled stay settled (there is no
// partial-cycle rollback).
func (s *ClearingService) RunCycle() error {
	batch := s.in.drain()
	for i := range batch {
		if batch[i].SeqID > s.lastDrained {
			s.lastDrained = batch[i].SeqID
		}
	}

	byPeriod := auction.Partition(batch)
	for _, b := range byPeriod {
		auction.Rank(b.Bids)
		auction.Rank(b.Asks)
	}
	s.log.Debug("cycle start",
		zap.Int("orders", len(batch)),
		zap.Int("periods", len(byPeriod)))

	if s.enabled == nil {
		s.enabled = snapshotPeriods(s.registry)
	}
	for _, p := range s.enabled {
		if err := s.clearPeriod(p, byPeriod[p]); err != nil {
			return fmt.Errorf("clear period %d: %w", p, err)
		}
	}

	// Refresh the eligibility snapshot for the NEXT cycle.
	s.enabled = snapshotPeriods(s.registry)
	cyclesRun.Inc()
	return nil
}

func (s *ClearingService) clearPeriod(p auction.Period, b *auction.Batch) error {
	if b == nil {
		// No orders at all for this period: nothing to match, nothing
		// to publish.
		return nil
	}
	s.log.Info("clearing period",
		zap.Int64("period", int64(p)),
		zap.Int("bids", len(b.Bids)),
		zap.Int("asks", len(b.Asks)))

	res := auction.Match(b.Bids, b.Asks)

	var clearingPrice *float64
	if len(res.Trades) > 0 {
		price := auction.ResolvePrice(res.BidMarginal, res.AskMarginal, s.params)
		clearingPrice = &price
	}

	for _, t := range res.Trades {
		if err := s.ledger.Append(t.Seller, p, -t.Quantity, *clearingPrice); err != nil {
			return fmt.Errorf("ledger: %w", err)
		}
		if err := s.ledger.Append(t.Buyer, p, t.Quantity, -*clearingPrice); err != nil {
			return fmt.Errorf("ledger: %w", err)
		}
	}
	tradesCleared.Add(float64(len(res.Trades)))
	volumeCleared.Add(res.TotalVolume)

	book := auction.BuildBook(p, clearingPrice, res.Bids, res.Asks)
	s.booksMu.Lock()
	s.books[p] = book
	s.booksMu.Unlock()

	if err := s.pub.PublishOrderBook(book); err != nil {
		return fmt.Errorf("publish order book: %w", err)
	}
	if res.TotalVolume > 0 {
		summary := &auction.TradeSummary{
			Period:    p,
			Volume:    res.TotalVolume,
			Price:     *clearingPrice,
			ClearedAt: s.now(),
		}
		s.log.Info("period cleared",
			zap.Int64("period", int64(p)),
			zap.Float64("volume", summary.Volume),
			zap.Float64("price", summary.Price))
		if err := s.pub.PublishTradeSummary(summary); err != nil {
			return fmt.Errorf("publish trade summary: %w", err)
		}
	}
	return nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// LatestBook returns the most recent residual order book published for
// p, if any cycle has produced one.
func (s *ClearingService) LatestBook(p auction.Period) (*auction.OrderBook, bool) {
	s.booksMu.RLock()
	defer s.booksMu.RUnlock()
	book, ok := s.books[p]
	return book, ok
}

// LastDrainedSeq is the highest submission sequence consumed so far.
func (s *ClearingService) LastDrainedSeq() uint64 {
	return s.lastDrained
}

// checkpointJournal journals the drained watermark after a completed
// cycle, then garbage-collects fully cleared segments. The watermark
// record is what keeps restarts exact: cleared submissions still
// sitting in the current segment are dropped on replay.
func (s *ClearingService) checkpointJournal() {
	if s.journal == nil {
		return
	}

	s.submitMu.Lock()
	rec := wal.NewRecord(wal.RecordCycle, s.seq.Next(), encodeCycleMark(s.lastDrained))
	err := s.journal.Append(rec)
	s.submitMu.Unlock()
	if err != nil {
		s.log.Warn("journal checkpoint failed", zap.Error(err))
		return
	}

	if err := s.journal.TruncateBefore(s.lastDrained); err != nil {
		s.log.Warn("journal truncate failed", zap.Error(err))
	}
}

//
// ──────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────
//

func snapshotPeriods(r PeriodRegistry) []auction.Period {
	return append([]auction.Period(nil), r.Open()...)
}

// Journal payload formats:
// submit: participant|period|qty|limit  (limit empty for market orders)
// cycle:  drained watermark in decimal

func encodeCycleMark(watermark uint64) []byte {
	return []byte(strconv.FormatUint(watermark, 10))
}

func decodeCycleMark(data []byte) (uint64, error) {
	return strconv.ParseUint(string(data), 10, 64)
}

func encodeSubmit(o auction.Order) []byte {
	limit := ""
	if o.LimitPrice != nil {
		limit = strconv.FormatFloat(*o.LimitPrice, 'g', -1, 64)
	}
	return []byte(fmt.Sprintf("%s|%d|%s|%s",
		o.Participant,
		o.Period,
		strconv.FormatFloat(o.Quantity, 'g', -1, 64),
		limit,
	))
}

func decodeSubmit(data []byte) (auction.Order, error) {
	parts := strings.Split(string(data), "|")
	if len(parts) != 4 {
		return auction.Order{}, fmt.Errorf("invalid journal payload: %s", string(data))
	}

	period, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return auction.Order{}, err
	}
	qty, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return auction.Order{}, err
	}

	o := auction.Order{
		Participant: parts[0],
		Period:      auction.Period(period),
		Quantity:    qty,
	}
	if parts[3] != "" {
		limit, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return auction.Order{}, err
		}
		o.LimitPrice = &limit
	}
	return o, nil
}
