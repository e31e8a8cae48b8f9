package ledger

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cockroachdb/pebble"

	"freyr/domain/auction"
	"freyr/infra/sequence"
)

// Transaction is one settled leg: negative quantity with positive unit
// price for the seller, positive quantity with negative unit price for
// the buyer.
type Transaction struct {
	Participant string
	Period      auction.Period
	Quantity    float64
	UnitPrice   float64
	At          int64
}

// binary encoding: [period:8][qty:8][price:8][at:8][participant...]
func encodeTxn(t Transaction) []byte {
	buf := make([]byte, 32+len(t.Participant))
	binary.BigEndian.PutUint64(buf[0:8], uint64(t.Period))
	binary.BigEndian.PutUint64(buf[8:16], math.Float64bits(t.Quantity))
	binary.BigEndian.PutUint64(buf[16:24], math.Float64bits(t.UnitPrice))
	binary.BigEndian.PutUint64(buf[24:32], uint64(t.At))
	copy(buf[32:], t.Participant)
	return buf
}

func decodeTxn(b []byte) (Transaction, error) {
	if len(b) < 32 {
		return Transaction{}, errors.New("invalid ledger record length")
	}
	return Transaction{
		Period:      auction.Period(binary.BigEndian.Uint64(b[0:8])),
		Quantity:    math.Float64frombits(binary.BigEndian.Uint64(b[8:16])),
		UnitPrice:   math.Float64frombits(binary.BigEndian.Uint64(b[16:24])),
		At:          int64(binary.BigEndian.Uint64(b[24:32])),
		Participant: string(b[32:]),
	}, nil
}

// PebbleLedger is the durable market-transaction sink. Each Append is
// synced before it returns; an error here aborts the running cycle.
type PebbleLedger struct {
	db  *pebble.DB
	seq *sequence.Sequencer
}

func Open(dir string, seq *sequence.Sequencer) (*PebbleLedger, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &PebbleLedger{db: db, seq: seq}, nil
}

func (l *PebbleLedger) Close() error {
	return l.db.Close()
}

// Append records one transaction leg under a fresh sequence number.
func (l *PebbleLedger) Append(participant string, period auction.Period, quantity, unitPrice float64) error {
	t := Transaction{
		Participant: participant,
		Period:      period,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		At:          time.Now().UnixNano(),
	}
	key := keyFor(l.seq.Next())
	return l.db.Set(key, encodeTxn(t), pebble.Sync)
}

// Scan iterates all recorded transactions in sequence order.
func (l *PebbleLedger) Scan(fn func(seq uint64, t Transaction) error) error {
	iter, err := l.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("txn/"),
		UpperBound: []byte("txn/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		t, err := decodeTxn(iter.Value())
		if err != nil {
			return err
		}
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if err := fn(seq, t); err != nil {
			return err
		}
	}
	return iter.Error()
}

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("txn/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("txn/"))), "%d", &seq)
	return seq, err
}
