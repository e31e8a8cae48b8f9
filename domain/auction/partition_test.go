package auction

import "testing"

func TestPartitionByPeriodAndSide(t *testing.T) {
	orders := []Order{
		{Participant: "a", Period: 1, Quantity: 10, LimitPrice: fp(-50)},
		{Participant: "b", Period: 1, Quantity: -5, LimitPrice: fp(30)},
		{Participant: "c", Period: 2, Quantity: 3},
		{Participant: "d", Period: 1, Quantity: 7, LimitPrice: fp(-45)},
	}

	batches := Partition(orders)
	if len(batches) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(batches))
	}

	b1 := batches[1]
	if len(b1.Bids) != 2 || len(b1.Asks) != 1 {
		t.Fatalf("period 1: expected 2 bids / 1 ask, got %d/%d", len(b1.Bids), len(b1.Asks))
	}
	if b1.Bids[0].Participant != "a" || b1.Bids[1].Participant != "d" {
		t.Error("submission order within a side must be preserved")
	}

	b2 := batches[2]
	if len(b2.Bids) != 1 || len(b2.Asks) != 0 {
		t.Fatalf("period 2: expected 1 bid / 0 asks, got %d/%d", len(b2.Bids), len(b2.Asks))
	}
	if b2.Bids[0].Executed != 0 {
		t.Error("working orders must start with zero executed quantity")
	}
}

func TestPartitionEmpty(t *testing.T) {
	if got := Partition(nil); len(got) != 0 {
		t.Errorf("expected empty map, got %d entries", len(got))
	}
}
