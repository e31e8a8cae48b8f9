package outbox

import (
	"encoding/json"

	"freyr/domain/auction"
)

// Event kinds. The broadcaster routes each kind to its own topic.
const (
	KindOrderBook    = "orderbook"
	KindTradeSummary = "summary"
)

type BookEntryEvent struct {
	Quantity   float64  `json:"qty"`
	LimitPrice *float64 `json:"limit,omitempty"`
}

type OrderBookEvent struct {
	V             int              `json:"v"`
	Period        int64            `json:"period"`
	ClearingPrice *float64         `json:"clearing_price,omitempty"`
	Bids          []BookEntryEvent `json:"bids"`
	Asks          []BookEntryEvent `json:"asks"`
}

type TradeSummaryEvent struct {
	V         int     `json:"v"`
	Period    int64   `json:"period"`
	Volume    float64 `json:"volume"`
	Price     float64 `json:"price"`
	ClearedAt int64   `json:"cleared_at"`
}

// Publisher implements the service's Publisher port by staging events
// in the outbox. Actual delivery is the broadcaster job's business.
type Publisher struct {
	box *Outbox
}

func NewPublisher(box *Outbox) *Publisher {
	return &Publisher{box: box}
}

func (p *Publisher) PublishOrderBook(book *auction.OrderBook) error {
	ev := OrderBookEvent{
		V:             1,
		Period:        int64(book.Period),
		ClearingPrice: book.ClearingPrice,
		Bids:          make([]BookEntryEvent, 0, len(book.Bids)),
		Asks:          make([]BookEntryEvent, 0, len(book.Asks)),
	}
	for _, b := range book.Bids {
		ev.Bids = append(ev.Bids, BookEntryEvent{Quantity: b.Quantity, LimitPrice: b.LimitPrice})
	}
	for _, a := range book.Asks {
		ev.Asks = append(ev.Asks, BookEntryEvent{Quantity: a.Quantity, LimitPrice: a.LimitPrice})
	}

	payload, err := json.Marshal(&ev)
	if err != nil {
		return err
	}
	return p.box.Put(KindOrderBook, payload)
}

func (p *Publisher) PublishTradeSummary(s *auction.TradeSummary) error {
	payload, err := json.Marshal(&TradeSummaryEvent{
		V:         1,
		Period:    int64(s.Period),
		Volume:    s.Volume,
		Price:     s.Price,
		ClearedAt: s.ClearedAt.UnixNano(),
	})
	if err != nil {
		return err
	}
	return p.box.Put(KindTradeSummary, payload)
}
