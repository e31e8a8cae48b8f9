package auction

import (
	"math"
	"testing"
)

func TestMatchOneSidedLists(t *testing.T) {
	bids := []*WorkingOrder{wo("b", 10, fp(-60))}

	res := Match(bids, nil)
	if len(res.Trades) != 0 {
		t.Error("no asks: expected zero trades")
	}
	if len(res.Bids) != 1 || res.Bids[0].Executed != 0 {
		t.Error("residual bids should be untouched")
	}

	res = Match(nil, []*WorkingOrder{wo("s", -10, fp(40))})
	if len(res.Trades) != 0 || len(res.Asks) != 1 {
		t.Error("no bids: expected zero trades and untouched asks")
	}
}

func TestMatchNoCross(t *testing.T) {
	bids := []*WorkingOrder{wo("b", 10, fp(-30))} // willing to pay 30
	asks := []*WorkingOrder{wo("s", -10, fp(40))} // wants at least 40

	res := Match(bids, asks)
	if len(res.Trades) != 0 {
		t.Error("uncrossed heads should not trade")
	}
	if res.BidMarginal != nil || res.AskMarginal != nil {
		t.Error("marginals should stay absent when nothing crossed")
	}
	if len(res.Bids) != 1 || len(res.Asks) != 1 {
		t.Error("both lists should survive intact")
	}
}

func TestMatchFullFill(t *testing.T) {
	bids := []*WorkingOrder{wo("buyer", 10, fp(-60))}
	asks := []*WorkingOrder{wo("seller", -10, fp(40))}

	res := Match(bids, asks)
	if len(res.Trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(res.Trades))
	}
	tr := res.Trades[0]
	if tr.Seller != "seller" || tr.Buyer != "buyer" || tr.Quantity != 10 {
		t.Errorf("unexpected trade %+v", tr)
	}
	if res.TotalVolume != 10 {
		t.Errorf("expected volume 10, got %v", res.TotalVolume)
	}
	if res.BidMarginal == nil || *res.BidMarginal != -60 {
		t.Error("bid marginal should be the stored bid limit")
	}
	if res.AskMarginal == nil || *res.AskMarginal != 40 {
		t.Error("ask marginal should be the ask limit")
	}
	if len(res.Bids) != 0 || len(res.Asks) != 0 {
		t.Error("fully executed heads should be removed")
	}
}

func TestMatchPartialFill(t *testing.T) {
	bids := []*WorkingOrder{wo("buyer", 10, fp(-60))}
	asks := []*WorkingOrder{wo("seller", -4, fp(40))}

	res := Match(bids, asks)
	if len(res.Trades) != 1 || res.Trades[0].Quantity != 4 {
		t.Fatalf("expected one trade of 4, got %+v", res.Trades)
	}
	if len(res.Asks) != 0 {
		t.Error("exhausted ask should be removed")
	}
	if len(res.Bids) != 1 {
		t.Fatal("partially filled bid should remain")
	}
	if rem := res.Bids[0].Remaining(); rem != 6 {
		t.Errorf("expected bid remainder 6, got %v", rem)
	}
}

func TestMatchMarketOrdersOnly(t *testing.T) {
	bids := []*WorkingOrder{wo("buyer", 5, nil)}
	asks := []*WorkingOrder{wo("seller", -5, nil)}

	res := Match(bids, asks)
	if len(res.Trades) != 1 || res.Trades[0].Quantity != 5 {
		t.Fatal("two market orders must always cross")
	}
	if res.BidMarginal != nil || res.AskMarginal != nil {
		t.Error("market-order heads leave both marginals absent")
	}
}

func TestMatchFinalPairSetsMarginals(t *testing.T) {
	bids := []*WorkingOrder{
		wo("b1", 10, fp(-60)),
		wo("b2", 10, fp(-50)),
	}
	asks := []*WorkingOrder{wo("s", -20, fp(40))}
	Rank(bids)
	Rank(asks)

	res := Match(bids, asks)
	if res.TotalVolume != 20 {
		t.Fatalf("expected volume 20, got %v", res.TotalVolume)
	}
	// b2 was the last bid matched, so it anchors the marginal.
	if res.BidMarginal == nil || *res.BidMarginal != -50 {
		t.Errorf("expected final bid marginal -50, got %v", res.BidMarginal)
	}
	if res.AskMarginal == nil || *res.AskMarginal != 40 {
		t.Errorf("expected ask marginal 40, got %v", res.AskMarginal)
	}
}

func TestMatchStopsWhenCrossingFails(t *testing.T) {
	bids := []*WorkingOrder{
		wo("b1", 10, fp(-60)),
		wo("b2", 10, fp(-35)),
	}
	asks := []*WorkingOrder{
		wo("s1", -10, fp(40)),
		wo("s2", -10, fp(45)),
	}
	Rank(bids)
	Rank(asks)

	res := Match(bids, asks)
	if res.TotalVolume != 10 {
		t.Fatalf("only the first pair crosses, got volume %v", res.TotalVolume)
	}
	// Loop exit invariant: the surviving heads must not cross.
	if len(res.Bids) > 0 && len(res.Asks) > 0 && crosses(res.Bids[0], res.Asks[0]) {
		t.Error("residual heads still cross after matching stopped")
	}
}

func TestMatchNeverOverdraws(t *testing.T) {
	bids := []*WorkingOrder{
		wo("b1", 3, fp(-60)),
		wo("b2", 7, fp(-55)),
		wo("b3", 2, nil),
	}
	asks := []*WorkingOrder{
		wo("s1", -5, fp(30)),
		wo("s2", -4, fp(35)),
	}
	Rank(bids)
	Rank(asks)

	res := Match(bids, asks)
	for _, tr := range res.Trades {
		if tr.Quantity <= 0 {
			t.Errorf("non-positive trade quantity %v", tr.Quantity)
		}
	}
	var bought, sold float64
	for _, tr := range res.Trades {
		bought += tr.Quantity
		sold += tr.Quantity
	}
	if bought > 12+Epsilon || sold > 9+Epsilon {
		t.Errorf("matched more than either side offered: bought=%v sold=%v", bought, sold)
	}
	if math.Abs(res.TotalVolume-9) > Epsilon {
		t.Errorf("expected the full ask side (9) to clear, got %v", res.TotalVolume)
	}
}

func TestMatchEpsilonResidualTreatedAsFilled(t *testing.T) {
	bids := []*WorkingOrder{wo("b", 10+Epsilon/2, fp(-60))}
	asks := []*WorkingOrder{wo("s", -10, fp(40))}

	res := Match(bids, asks)
	if len(res.Bids) != 0 {
		t.Error("residual within epsilon should count as fully executed")
	}
}
