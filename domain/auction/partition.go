package auction

// Batch holds one period's working orders, split by side.
type Batch struct {
	Bids []*WorkingOrder
	Asks []*WorkingOrder
}

// Partition groups a drained submission batch by period and side and
// wraps every order in a fresh WorkingOrder with a zero executed
// accumulator. Side is determined solely by the sign of Quantity.
// Relative submission order within each list is preserved; the ranker
// relies on that for tie-breaking.
func Partition(orders []Order) map[Period]*Batch {
	byPeriod := make(map[Period]*Batch)

	for i := range orders {
		w := &WorkingOrder{Order: orders[i]}

		b := byPeriod[w.Period]
		if b == nil {
			b = &Batch{}
			byPeriod[w.Period] = b
		}
		if w.IsBid() {
			b.Bids = append(b.Bids, w)
		} else {
			b.Asks = append(b.Asks, w)
		}
	}
	return byPeriod
}
