package outbox

import (
	"encoding/json"
	"testing"
	"time"

	"freyr/domain/auction"
	"freyr/infra/sequence"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	box, err := Open(t.TempDir(), sequence.New(0))
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { box.Close() })
	return box
}

func pendingSeqs(t *testing.T, box *Outbox) []uint64 {
	t.Helper()
	var seqs []uint64
	if err := box.ScanPending(func(seq uint64, _ Record) error {
		seqs = append(seqs, seq)
		return nil
	}); err != nil {
		t.Fatalf("scan pending: %v", err)
	}
	return seqs
}

func TestPutAndScanPending(t *testing.T) {
	box := openTestOutbox(t)

	if err := box.Put(KindOrderBook, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := box.Put(KindTradeSummary, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	seqs := pendingSeqs(t, box)
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 2 {
		t.Errorf("expected pending seqs [1 2], got %v", seqs)
	}

	rec, err := box.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew || rec.Kind != KindOrderBook {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestStateTransitions(t *testing.T) {
	box := openTestOutbox(t)

	if err := box.Put(KindOrderBook, []byte("payload")); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := box.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, err := box.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateSent {
		t.Errorf("expected SENT, got %s", rec.State)
	}
	if rec.Retries != 1 || rec.LastAttempt == 0 {
		t.Error("attempt bookkeeping missing")
	}
	if rec.LastAttempt > time.Now().UnixNano() {
		t.Error("attempt timestamp in the future")
	}

	// SENT events stay pending until acked.
	if got := pendingSeqs(t, box); len(got) != 1 {
		t.Errorf("sent event should still be pending, got %v", got)
	}

	if err := box.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	if got := pendingSeqs(t, box); len(got) != 0 {
		t.Errorf("acked event must not be pending, got %v", got)
	}

	rec, err = box.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Retries != 1 {
		t.Errorf("ack must not count as an attempt, retries = %d", rec.Retries)
	}
}

func TestTruncateAcked(t *testing.T) {
	box := openTestOutbox(t)

	for i := 0; i < 3; i++ {
		if err := box.Put(KindTradeSummary, []byte("p")); err != nil {
			t.Fatalf("put: %v", err)
		}
	}
	if err := box.MarkSent(2); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if err := box.MarkAcked(2); err != nil {
		t.Fatalf("mark acked: %v", err)
	}

	if err := box.TruncateAcked(); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := box.Get(2); err == nil {
		t.Error("acked record should be gone")
	}
	seqs := pendingSeqs(t, box)
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 3 {
		t.Errorf("expected survivors [1 3], got %v", seqs)
	}
}

func TestRecordCodecRoundTrip(t *testing.T) {
	in := Record{
		State:       StateSent,
		Retries:     3,
		LastAttempt: 1234567890,
		Kind:        KindOrderBook,
		Payload:     []byte(`{"v":1,"period":7}`),
	}
	out, err := decodeRecord(encodeRecord(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.State != in.State || out.Retries != in.Retries ||
		out.LastAttempt != in.LastAttempt || out.Kind != in.Kind ||
		string(out.Payload) != string(in.Payload) {
		t.Errorf("round trip mismatch: %+v vs %+v", in, out)
	}
}

func TestPublisherStagesEvents(t *testing.T) {
	box := openTestOutbox(t)
	pub := NewPublisher(box)

	price := 50.0
	limit := -60.0
	book := &auction.OrderBook{
		Period:        7,
		ClearingPrice: &price,
		Bids:          []auction.BookEntry{{Quantity: 4, LimitPrice: &limit}},
	}
	if err := pub.PublishOrderBook(book); err != nil {
		t.Fatalf("publish book: %v", err)
	}

	summary := &auction.TradeSummary{Period: 7, Volume: 10, Price: 50, ClearedAt: time.Unix(0, 42)}
	if err := pub.PublishTradeSummary(summary); err != nil {
		t.Fatalf("publish summary: %v", err)
	}

	rec, err := box.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Kind != KindOrderBook {
		t.Errorf("expected orderbook kind, got %s", rec.Kind)
	}
	var ev OrderBookEvent
	if err := json.Unmarshal(rec.Payload, &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ev.Period != 7 || ev.ClearingPrice == nil || *ev.ClearingPrice != 50 || len(ev.Bids) != 1 {
		t.Errorf("unexpected book event %+v", ev)
	}

	rec, err = box.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Kind != KindTradeSummary {
		t.Errorf("expected summary kind, got %s", rec.Kind)
	}
	var sev TradeSummaryEvent
	if err := json.Unmarshal(rec.Payload, &sev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sev.Volume != 10 || sev.ClearedAt != 42 {
		t.Errorf("unexpected summary event %+v", sev)
	}
}
