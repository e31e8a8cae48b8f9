package broadcaster

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"freyr/infra/outbox"
)

// Topics routes event kinds to their Kafka topics and NATS subjects.
type Topics struct {
	OrderBooks string
	Summaries  string
}

type Broadcaster struct {
	box      *outbox.Outbox
	producer sarama.SyncProducer
	nc       *nats.Conn // optional live fanout, may be nil
	topics   Topics
	interval time.Duration
	log      *zap.Logger
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	box *outbox.Outbox,
	brokers []string,
	topics Topics,
	nc *nats.Conn,
	interval time.Duration,
	log *zap.Logger,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		box:      box,
		producer: producer,
		nc:       nc,
		topics:   topics,
		interval: interval,
		log:      log,
	}, nil
}

// ------------------------------------------------
// RUN LOOP
// ------------------------------------------------

func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("broadcaster started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			b.flushOnce()
			_ = b.box.TruncateAcked()
		}
	}
}

// ------------------------------------------------
// FLUSH LOGIC
// ------------------------------------------------

func (b *Broadcaster) flushOnce() {
	_ = b.box.ScanPending(func(seq uint64, rec outbox.Record) error {

		// Mark SENT first (idempotent): a crash between publish and
		// ack re-publishes the event, it never loses it.
		_ = b.box.MarkSent(seq)

		msg := &sarama.ProducerMessage{
			Topic: b.topicFor(rec.Kind),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			b.log.Warn("kafka publish failed, will retry",
				zap.Uint64("seq", seq), zap.Error(err))
			return nil // retry on the next flush
		}

		// Live fanout is best effort.
		if b.nc != nil {
			_ = b.nc.Publish("freyr."+rec.Kind, rec.Payload)
		}

		_ = b.box.MarkAcked(seq)
		return nil
	})
}

func (b *Broadcaster) topicFor(kind string) string {
	if kind == outbox.KindTradeSummary {
		return b.topics.Summaries
	}
	return b.topics.OrderBooks
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
