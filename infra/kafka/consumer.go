package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"freyr/domain/auction"
	"freyr/service"
)

// Submission is the inbound wire format on the orders topic. The
// engine itself defines no wire format; this one belongs to the Kafka
// transport.
type Submission struct {
	Participant string   `json:"participant"`
	Period      int64    `json:"period"`
	Quantity    float64  `json:"qty"`
	LimitPrice  *float64 `json:"limit,omitempty"`
}

// Consumer feeds orders from a Kafka topic into the clearing service.
// It shares the intake buffer with the gRPC path; both preserve
// per-caller FIFO order.
type Consumer struct {
	reader *kafka.Reader
	svc    *service.ClearingService
	log    *zap.Logger
}

func NewConsumer(
	brokers []string,
	topic, group string,
	svc *service.ClearingService,
	log *zap.Logger,
) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: group,
		}),
		svc: svc,
		log: log,
	}
}

// Run consumes until ctx is cancelled. Malformed or rejected
// submissions are logged and skipped; the transport owes the caller a
// rejection notice, not the engine.
func (c *Consumer) Run(ctx context.Context) {
	c.log.Info("kafka consumer started", zap.String("topic", c.reader.Config().Topic))

	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.log.Warn("kafka read failed", zap.Error(err))
			continue
		}

		var sub Submission
		if err := json.Unmarshal(m.Value, &sub); err != nil {
			c.log.Warn("malformed submission", zap.Error(err))
			continue
		}

		_, err = c.svc.Submit(auction.Order{
			Participant: sub.Participant,
			Period:      auction.Period(sub.Period),
			Quantity:    sub.Quantity,
			LimitPrice:  sub.LimitPrice,
		})
		if err != nil {
			c.log.Warn("submission rejected",
				zap.String("participant", sub.Participant),
				zap.Int64("period", sub.Period),
				zap.Error(err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
