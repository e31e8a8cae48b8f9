package auction

import "time"

// BookEntry is one residual order in a published order book: remaining
// quantity (signed like the order) and the stored limit price, nil for
// market orders.
type BookEntry struct {
	Quantity   float64
	LimitPrice *float64
}

// OrderBook is the post-clearing residual book for one period. It is
// rebuilt fresh every cycle; the latest snapshot per period persists
// for external query until the next cycle overwrites it.
// ClearingPrice is nil when the cycle produced no trades for the
// period, which is observably distinct from any computed fallback.
type OrderBook struct {
	Period        Period
	ClearingPrice *float64
	Bids          []BookEntry
	Asks          []BookEntry
}

// TradeSummary is emitted once per period per cycle, only when traded
// volume is strictly positive.
type TradeSummary struct {
	Period    Period
	Volume    float64
	Price     float64
	ClearedAt time.Time
}

// BuildBook assembles the residual order book from whatever the
// matcher left in the two lists.
func BuildBook(period Period, clearingPrice *float64, bids, asks []*WorkingOrder) *OrderBook {
	book := &OrderBook{
		Period:        period,
		ClearingPrice: clearingPrice,
	}
	for _, b := range bids {
		book.Bids = append(book.Bids, BookEntry{
			Quantity:   b.Remaining(),
			LimitPrice: b.LimitPrice,
		})
	}
	for _, a := range asks {
		book.Asks = append(book.Asks, BookEntry{
			Quantity:   a.Remaining(),
			LimitPrice: a.LimitPrice,
		})
	}
	return book
}
