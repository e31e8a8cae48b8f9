package auction

// Period identifies a future delivery interval orders are submitted
// against. Serial numbers are assigned by the period registry.
type Period int64

// Order is a pure domain entity. Quantity is signed: positive is a bid
// (demand), negative is an ask (supply). LimitPrice is nil for market
// orders. For bids the stored limit is the NEGATIVE of the maximum
// price the participant will pay; for asks it is the literal minimum
// acceptable price. The same comparator therefore ranks both sides.
type Order struct {
	Participant string
	Period      Period
	Quantity    float64
	LimitPrice  *float64

	SeqID uint64
}

func (o *Order) IsBid() bool {
	return o.Quantity > 0
}

func (o *Order) IsMarketOrder() bool {
	return o.LimitPrice == nil
}

// WorkingOrder wraps an Order with the executed-quantity accumulator
// used during a single clearing pass. Working orders are created fresh
// at cycle start and discarded at cycle end; they are never shared
// across cycles.
type WorkingOrder struct {
	Order

	// Executed carries the order's sign convention: it grows positive
	// for bids and negative for asks.
	Executed float64
}

// Remaining is the unexecuted quantity, signed like Quantity.
func (w *WorkingOrder) Remaining() float64 {
	return w.Quantity - w.Executed
}

// PendingTrade is an intra-cycle record consumed by settlement.
// Quantity is a magnitude.
type PendingTrade struct {
	Seller   string
	Buyer    string
	Quantity float64
}
