package auction

// Params are the cycle-wide clearing parameters. They are loaded before
// the first cycle and immutable while the engine runs.
type Params struct {
	// DefaultMargin is applied when only one side of the final crossing
	// pair carried a limit price.
	DefaultMargin float64
	// DefaultClearingPrice is used when the final crossing pair was two
	// market orders.
	DefaultClearingPrice float64
	// SellerSurplusRatio is the fraction of the bid/ask gap awarded to
	// the seller.
	SellerSurplusRatio float64
}

// ResolvePrice computes the single uniform clearing price for a period
// from the marginal prices of the final crossing pair. bidMarginal is
// the STORED bid limit (negated willingness to pay); askMarginal is the
// literal ask limit. Either may be nil when the respective head was a
// market order.
//
//	bid, ask        -> ask + ratio * (-bid - ask)
//	bid only        -> -bid / (1 + margin)
//	ask only        -> ask * (1 + margin)
//	neither         -> default clearing price
func ResolvePrice(bidMarginal, askMarginal *float64, p Params) float64 {
	if bidMarginal != nil {
		if askMarginal != nil {
			return *askMarginal + p.SellerSurplusRatio*(-*bidMarginal-*askMarginal)
		}
		return -*bidMarginal / (1.0 + p.DefaultMargin)
	}
	if askMarginal != nil {
		return *askMarginal * (1.0 + p.DefaultMargin)
	}
	return p.DefaultClearingPrice
}
