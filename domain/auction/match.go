package auction

import "math"

// Epsilon is the tolerance below which a residual quantity is treated
// as fully executed. Settlement imprecision is therefore bounded by
// Epsilon per order per cycle; it is accepted here and must not be
// corrected elsewhere.
const Epsilon = 1e-6

// MatchResult is the outcome of crossing one period's ranked lists.
type MatchResult struct {
	Trades      []PendingTrade
	TotalVolume float64

	// BidMarginal and AskMarginal are the stored limit prices of the
	// heads of the final crossing pair. Either is nil when that head
	// was a market order, or when no pair crossed at all.
	BidMarginal *float64
	AskMarginal *float64

	// Residual lists after matching; heads executed to within Epsilon
	// have been removed.
	Bids []*WorkingOrder
	Asks []*WorkingOrder
}

// crosses reports whether the two heads can trade: either is a market
// order, or the bid's actual willingness to pay (negation of its
// stored limit) covers the ask's minimum price.
func crosses(bid, ask *WorkingOrder) bool {
	if bid.IsMarketOrder() || ask.IsMarketOrder() {
		return true
	}
	return -*bid.LimitPrice >= *ask.LimitPrice
}

// Match greedily pairs quantity between the ranked bid and ask lists
// until either list empties or the heads no longer cross. Both input
// lists must already be in crossing order (see Rank). The marginal
// prices are overwritten on every pairing, so the final crossing pair
// determines them.
func Match(bids, asks []*WorkingOrder) MatchResult {
	res := MatchResult{}

	for len(bids) > 0 && len(asks) > 0 && crosses(bids[0], asks[0]) {
		bid, ask := bids[0], asks[0]
		res.BidMarginal = bid.LimitPrice
		res.AskMarginal = ask.LimitPrice

		// Transfer the minimum of the two remaining magnitudes.
		transfer := math.Min(bid.Remaining(), -ask.Remaining())
		if transfer > 0 {
			res.Trades = append(res.Trades, PendingTrade{
				Seller:   ask.Participant,
				Buyer:    bid.Participant,
				Quantity: transfer,
			})
			res.TotalVolume += transfer
			bid.Executed += transfer
			ask.Executed -= transfer
		}

		if math.Abs(bid.Remaining()) <= Epsilon {
			bids = bids[1:]
		}
		if math.Abs(ask.Remaining()) <= Epsilon {
			asks = asks[1:]
		}
	}

	res.Bids = bids
	res.Asks = asks
	return res
}
