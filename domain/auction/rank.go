package auction

import "sort"

// rankBefore is the crossing order used on both sides: a market order
// precedes any priced order, two market orders are equal, priced orders
// compare by stored limit ascending. Because bid limits are stored
// negated, ascending order yields "most willing to pay first" on the
// bid side and "cheapest seller first" on the ask side.
func rankBefore(a, b *WorkingOrder) bool {
	if a.IsMarketOrder() {
		return !b.IsMarketOrder()
	}
	if b.IsMarketOrder() {
		return false
	}
	return *a.LimitPrice < *b.LimitPrice
}

// Rank sorts a side into crossing order. The sort is stable so that
// equal orders keep their submission order.
func Rank(side []*WorkingOrder) {
	sort.SliceStable(side, func(i, j int) bool {
		return rankBefore(side[i], side[j])
	})
}
