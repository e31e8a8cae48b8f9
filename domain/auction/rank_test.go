package auction

import "testing"

func fp(v float64) *float64 { return &v }

func wo(participant string, qty float64, limit *float64) *WorkingOrder {
	return &WorkingOrder{Order: Order{Participant: participant, Period: 1, Quantity: qty, LimitPrice: limit}}
}

func TestRankMarketOrdersFirst(t *testing.T) {
	side := []*WorkingOrder{
		wo("a", 10, fp(-50)),
		wo("b", 10, nil),
		wo("c", 10, fp(-60)),
	}
	Rank(side)

	if !side[0].IsMarketOrder() {
		t.Error("market order should rank first")
	}
	if side[1].Participant != "c" || side[2].Participant != "a" {
		t.Errorf("priced orders should sort ascending by stored limit, got %s,%s",
			side[1].Participant, side[2].Participant)
	}
}

func TestRankMarketOrdersFirstReversedInput(t *testing.T) {
	side := []*WorkingOrder{
		wo("a", -10, fp(40)),
		wo("b", -10, fp(30)),
		wo("c", -10, nil),
	}
	Rank(side)

	if side[0].Participant != "c" {
		t.Error("market order should rank first regardless of input order")
	}
	if side[1].Participant != "b" || side[2].Participant != "a" {
		t.Error("asks should sort cheapest first")
	}
}

func TestRankStableOnTies(t *testing.T) {
	side := []*WorkingOrder{
		wo("first", 10, fp(-50)),
		wo("second", 10, fp(-50)),
		wo("m1", 10, nil),
		wo("m2", 10, nil),
	}
	Rank(side)

	if side[0].Participant != "m1" || side[1].Participant != "m2" {
		t.Error("tied market orders should keep submission order")
	}
	if side[2].Participant != "first" || side[3].Participant != "second" {
		t.Error("tied priced orders should keep submission order")
	}
}
