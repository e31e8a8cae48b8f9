package service

import "freyr/domain/auction"

// PeriodRegistry answers which delivery periods currently accept
// submissions. The scheduler advancing the window lives outside the
// service.
type PeriodRegistry interface {
	Open() []auction.Period
	IsOpen(p auction.Period) bool
}

// Ledger records one settlement leg. Quantity and unitPrice are signed
// from the participant's point of view.
type Ledger interface {
	Append(participant string, period auction.Period, quantity, unitPrice float64) error
}

// Publisher hands cycle results to the outbound pipeline.
type Publisher interface {
	PublishOrderBook(book *auction.OrderBook) error
	PublishTradeSummary(summary *auction.TradeSummary) error
}
